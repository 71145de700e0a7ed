/*
Voxctl starts an interactive voice-control command session.

It reads recognized-speech or typed command lines and dispatches them
against the built-in command grammar, printing the keystroke sequence or
callback each one resolves to. It does not itself perform audio capture,
speech recognition, or keystroke injection; those are external
collaborators (see the project's SPEC_FULL.md, section 6).

Usage:

	voxctl [flags]

The flags are:

	-v, --version
	    Give the current version of voxctl and then exit.

	-c, --config FILE
	    Use the provided TOML config file. Defaults to "voxctl.toml" in the
	    current working directory if present.

	-d, --direct
	    Force reading directly from the console as opposed to using GNU
	    readline based routines for reading command input, even if launched
	    in a tty with stdin and stdout.

	-m, --model DIR
	    Path to the speech-recognition model directory. Passed through
	    unused by the core; present for parity with the external decoder
	    driver this is meant to be paired with.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/corvidae/voxctl/internal/command"
	"github.com/corvidae/voxctl/internal/input"
	"github.com/corvidae/voxctl/internal/version"
	"github.com/corvidae/voxctl/internal/vocab"
	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

const (
	ExitSuccess = iota
	ExitSessionError
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  = pflag.StringP("config", "c", "voxctl.toml", "The TOML config file to load settings from")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	modelDir    = pflag.StringP("model", "m", "", "Path to the speech-recognition model directory (unused by the core)")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	cfg = cfg.FillDefaults()
	if *forceDirect {
		cfg.ForceDirect = true
	}
	if *modelDir != "" {
		cfg.ModelDir = *modelDir
	}

	sessionID := uuid.New()
	fmt.Printf("voxctl %s (session %s)\n", version.Current, sessionID)
	if cfg.ModelDir != "" {
		fmt.Printf("model dir: %s\n", cfg.ModelDir)
	}

	reg := command.NewRegistry()

	var reader command.Reader
	if cfg.ForceDirect || !isTTY(os.Stdin) {
		reader = input.NewDirectReader(os.Stdin)
	} else {
		icr, err := input.NewInteractiveReader()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		reader = icr
	}
	defer reader.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if err := runUntilQuit(reg, reader, out, cfg.ConsoleWidth); err != nil {
		msg := rosed.Edit(err.Error()).Wrap(cfg.ConsoleWidth).String()
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", msg)
		returnCode = ExitSessionError
	}
}

// runUntilQuit repeatedly reads and dispatches commands until a QUIT
// command is received or the Reader reaches end of input.
func runUntilQuit(reg *command.Registry, reader command.Reader, out *bufio.Writer, width int) error {
	for {
		cmd, err := command.Get(reg, reader, out)
		if err != nil {
			return err
		}

		switch cmd.Name {
		case "QUIT":
			fmt.Fprintln(out, "goodbye")
			out.Flush()
			return nil
		case "HELP":
			fmt.Fprintln(out, rosed.Edit(reg.Describe().String()).Wrap(width).String())
		default:
			describeAction(out, cmd)
		}
		out.Flush()
	}
}

// describeAction prints a human-readable summary of the Action a command
// resolved to; actually sending the keystrokes is the job of the external
// injection backend, not this driver.
func describeAction(out *bufio.Writer, cmd command.Command) {
	if cmd.Action.Callback != nil {
		fmt.Fprintf(out, "%s: <callback>\n", cmd.Name)
		return
	}
	if len(cmd.Action.Keystrokes) == 0 {
		fmt.Fprintf(out, "%s\n", cmd.Name)
		return
	}
	fmt.Fprintf(out, "%s:", cmd.Name)
	for _, k := range cmd.Action.Keystrokes {
		fmt.Fprintf(out, " %s", keystrokeLabel(k))
	}
	fmt.Fprintln(out)
}

func keystrokeLabel(k vocab.Keystroke) string {
	switch k.Kind {
	case vocab.Down:
		return fmt.Sprintf("down(%q)", k.Key)
	case vocab.Shift:
		return fmt.Sprintf("shift(%q)", k.Key)
	default:
		return fmt.Sprintf("press(%q)", k.Key)
	}
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
