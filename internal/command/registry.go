package command

import (
	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/internal/vocab"
)

// grammarTop assembles every command family into one named alternation.
// Each family is built from the shared grammar/vocab combinators, so the
// Description and DFA views of the registry fall out of this single tree
// for free.
func grammarTop() grammar.Parser[Command] {
	return grammar.Choose("<command>",
		typeCommand(),
		pressRepeatedCommand(),
		pressCommand(),
		moveCommand(),
		holdCommand(),
		zeroArgCommand("quit"),
		zeroArgCommand("help"),
	)
}

// typeCommand matches "type" followed by one or more spelled characters and
// produces a keystroke-sequence Action that types each of them in turn.
func typeCommand() grammar.Parser[Command] {
	body := grammar.Then(grammar.Lit("type"), grammar.Many1(vocab.ExtendedNato()))
	return grammar.Map(body, func(chars []rune) Command {
		var strokes []vocab.Keystroke
		for _, c := range chars {
			if k, ok := vocab.CharToKeystroke(c); ok {
				strokes = append(strokes, k)
			}
		}
		return Command{Name: "TYPE", Action: vocab.KeystrokeAction(strokes...)}
	})
}

// pressCommand matches "press <control-key>" and sends it once.
func pressCommand() grammar.Parser[Command] {
	body := grammar.Then(grammar.Lit("press"), vocab.ControlKeys())
	return grammar.Map(body, func(k rune) Command {
		return Command{Name: "PRESS", Action: vocab.KeystrokeAction(vocab.Keystroke{Kind: vocab.Press, Key: k})}
	})
}

// pressRepeatedCommand matches "press <control-key> <count> times" and
// sends the key that many times in a row.
func pressRepeatedCommand() grammar.Parser[Command] {
	type pressed struct {
		key   rune
		count int
	}
	countThenTimes := grammar.Join(
		vocab.NumberRange(1, 20),
		grammar.Lit("times"),
		func(n int, _ string) int { return n },
	)
	keyAndCount := grammar.Join(
		grammar.Then(grammar.Lit("press"), vocab.ControlKeys()),
		countThenTimes,
		func(k rune, n int) pressed { return pressed{key: k, count: n} },
	)
	return grammar.Map(keyAndCount, func(p pressed) Command {
		strokes := make([]vocab.Keystroke, p.count)
		for i := range strokes {
			strokes[i] = vocab.Keystroke{Kind: vocab.Press, Key: p.key}
		}
		return Command{Name: "PRESS", Action: vocab.KeystrokeAction(strokes...)}
	})
}

// moveCommand matches "move <navigation>" and sends a single navigation
// keystroke.
func moveCommand() grammar.Parser[Command] {
	body := grammar.Then(grammar.Lit("move"), vocab.Navigation())
	return grammar.Map(body, func(k rune) Command {
		return Command{Name: "MOVE", Action: vocab.KeystrokeAction(vocab.Keystroke{Kind: vocab.Press, Key: k})}
	})
}

// holdCommand matches "hold <modifier>" and produces a Down keystroke; the
// caller is responsible for eventually releasing it (see
// vocab.ReleaseOrder), typically as part of a following chorded action.
func holdCommand() grammar.Parser[Command] {
	body := grammar.Then(grammar.Lit("hold"), vocab.Modifiers())
	return grammar.Map(body, func(k rune) Command {
		return Command{Name: "HOLD", Action: vocab.KeystrokeAction(vocab.Keystroke{Kind: vocab.Down, Key: k})}
	})
}

// zeroArgCommand matches a bare verb with no arguments, such as "quit" or
// "help", producing a Command named after the upper-cased verb with no
// keystrokes and no callback; dispatch on Name is the caller's
// responsibility.
func zeroArgCommand(verb string) grammar.Parser[Command] {
	name := verb
	return grammar.Gives(grammar.Lit(verb), Command{Name: upper(name)})
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
