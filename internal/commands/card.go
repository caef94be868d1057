package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mxproto/mxp-go/pkg/a2a"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Print a sample AgentCard discovery document",
	Run:   runCard,
}

func init() {
	rootCmd.AddCommand(cardCmd)
}

func runCard(cmd *cobra.Command, args []string) {
	card := a2a.NewAgentCard("Demo Agent", "An MXP-reachable agent printed by the mxp CLI", "https://demo-agent.local")
	card.Version = "1.0.0"
	card.WithMXPTransport("mxp://demo-agent.local:7700")
	card.Skills = []a2a.AgentSkill{{
		ID:          "echo",
		Name:        "Echo",
		Description: "Repeats whatever text it receives",
	}}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(card); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%s v%s (protocol %s)\n", card.Name, card.Version, card.ProtocolVersion)
	fmt.Printf("  %s\n", card.Description)
	fmt.Printf("  url: %s\n", card.URL)
	if card.Capabilities.MXPTransport {
		fmt.Printf("  mxp endpoint: %s\n", card.Capabilities.MXPEndpoint)
	}
	for _, s := range card.Skills {
		fmt.Printf("  skill: %s (%s)\n", s.Name, s.ID)
	}
}
