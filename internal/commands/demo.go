package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mxproto/mxp-go/pkg/a2a"
	"github.com/mxproto/mxp-go/pkg/bridge"
	"github.com/mxproto/mxp-go/pkg/frame"
	"github.com/mxproto/mxp-go/pkg/transport"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an in-process A2A message exchange over the UDP overlay transport",
	RunE:  runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	fmt.Println("=== MXP Demo ===")
	fmt.Println()

	server, err := transport.ListenOverlay("127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer server.Close()

	client, err := transport.DialOverlay(server.LocalAddr().String())
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer client.Close()

	fmt.Printf("Server listening on %s\n\n", server.LocalAddr())

	msg := a2a.UserText("Search for Rust tutorials")
	callFrame, err := bridge.ToMXP(msg)
	if err != nil {
		return fmt.Errorf("bridge to mxp: %w", err)
	}

	fmt.Printf("Client -> Server: %s %q\n", callFrame.Kind, msg.TextContent())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Send(ctx, frame.Encode(callFrame)); err != nil {
		return fmt.Errorf("send call: %w", err)
	}

	wire, err := server.Recv(ctx)
	if err != nil {
		return fmt.Errorf("recv call: %w", err)
	}
	received, err := frame.Decode(wire)
	if err != nil {
		return fmt.Errorf("decode call: %w", err)
	}

	result, err := bridge.FromMXP(received)
	if err != nil {
		return fmt.Errorf("bridge from mxp: %w", err)
	}
	fmt.Printf("Server received method=%s role=%s text=%q\n", result.Method, result.Message.Role, result.Message.TextContent())

	reply := a2a.AgentText("Here are three Rust tutorials...")
	replyFrame, err := bridge.ToMXPResponse(received, &reply, nil)
	if err != nil {
		return fmt.Errorf("bridge response: %w", err)
	}
	if err := server.Send(ctx, frame.Encode(replyFrame)); err != nil {
		return fmt.Errorf("send response: %w", err)
	}

	wire, err = client.Recv(ctx)
	if err != nil {
		return fmt.Errorf("recv response: %w", err)
	}
	responseFrame, err := frame.Decode(wire)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	responseResult, err := bridge.FromMXP(responseFrame)
	if err != nil {
		return fmt.Errorf("bridge response from mxp: %w", err)
	}
	fmt.Printf("Server -> Client: %s %q\n", responseFrame.Kind, responseResult.Message.TextContent())
	fmt.Printf("\ncorrelation_id matches original call's message_id: %v\n", responseFrame.CorrelationID == callFrame.MessageID)

	fmt.Println()
	fmt.Println("=== Demo complete ===")
	return nil
}
