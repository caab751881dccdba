// Command redmars is an interactive host for the mars Redcode simulator.
// Arguments name battle-host script files (load/set/run commands), each
// replayed in turn before the session drops into an interactive prompt.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ondrik/redmars/host"
)

func main() {
	h := host.New()

	// Replay any battle-host scripts named on the command line.
	args := os.Args[1:]
	if len(args) > 0 {
		for _, filename := range args {
			file, err := os.Open(filename)
			if err != nil {
				exitOnError(err)
			}
			h.RunCommands(file, os.Stdout, false)
			file.Close()
		}
	}

	// Forward Ctrl-C to the host's Break instead of killing the session.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Drop into the interactive "mars>" prompt.
	h.RunCommands(os.Stdin, os.Stdout, true)
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
