package command

import (
	"bufio"
	"fmt"
)

// Reader is a type that can be used for getting command input, whether
// from an interactive terminal or a speech-decoder transcript feed.
type Reader interface {
	// ReadCommand reads a single line of input. It will block until one is
	// ready. If there is an error or output is at end (EOF), the returned
	// string will be empty, otherwise it will always be non-empty.
	ReadCommand() (string, error)

	// Close performs any operations required to clean up the resources
	// created by the Reader. It should be called at least once when the
	// Reader is no longer needed.
	Close() error
}

// Get obtains a single Command from input by reading from the provided
// Reader and running it through reg's grammar. It reads lines until one
// parses to completion, printing a diagnostic to ostream and trying again
// for every line that doesn't.
func Get(reg *Registry, cmdStream Reader, ostream *bufio.Writer) (Command, error) {
	var cmd Command

	if _, err := ostream.WriteString("> "); err != nil {
		return cmd, fmt.Errorf("could not write output: %w", err)
	}
	if err := ostream.Flush(); err != nil {
		return cmd, fmt.Errorf("could not flush output: %w", err)
	}

	for {
		input, err := cmdStream.ReadCommand()
		if err != nil {
			return cmd, fmt.Errorf("could not get input: %w", err)
		}

		cmd, err = reg.Parse(input)
		if err == nil {
			return cmd, nil
		}

		msg := fmt.Sprintf("%s\nTry HELP for valid commands\n> ", err.Error())
		if _, err := ostream.WriteString(msg); err != nil {
			return cmd, fmt.Errorf("could not write output: %w", err)
		}
		if err := ostream.Flush(); err != nil {
			return cmd, fmt.Errorf("could not flush output: %w", err)
		}
	}
}
