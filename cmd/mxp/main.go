// Command mxp is a small CLI for exercising the MXP protocol stack: it can
// print a sample AgentCard and run an in-process A2A message exchange over
// the loopback UDP overlay transport.
package main

import "github.com/mxproto/mxp-go/internal/commands"

func main() {
	commands.Execute()
}
