package vocab

import "github.com/corvidae/voxctl/internal/grammar"

// Special keys are encoded as runes in the Unicode private-use area rather
// than reusing any of the mis-transcoded symbol characters that show up
// across the reference material. External code treats these as opaque
// tokens: the only thing that matters is that Modifiers/ControlKeys/Arrow
// consistently produce them and the keystroke-injection boundary
// consistently recognizes them.
const (
	KeyShift     = ''
	KeyAlt       = ''
	KeyControl   = ''
	KeyCommand   = ''
	KeyTab       = '\t'
	KeyEscape    = ''
	KeyBackspace = ''
	KeyDelete    = ''
	KeyLeft      = ''
	KeyRight     = ''
	KeyUp        = ''
	KeyDown      = ''
	KeyPageUp    = ''
	KeyPageDown  = ''
	KeyHome      = ''
	KeyEnd       = ''
)

// Modifiers matches the English names of held-down modifier keys.
func Modifiers() grammar.Parser[rune] {
	return grammar.Choose("<modifier>",
		grammar.Gives(grammar.Lit("shift"), rune(KeyShift)),
		grammar.Gives(grammar.Lit("alt"), rune(KeyAlt)),
		grammar.Gives(grammar.Lit("option"), rune(KeyAlt)),
		grammar.Gives(grammar.Lit("control"), rune(KeyControl)),
		grammar.Gives(grammar.Lit("command"), rune(KeyCommand)),
		grammar.Gives(grammar.Lit("meta"), rune(KeyCommand)),
	)
}

// ControlKeys matches the English names of the non-printing keys that send
// a single press-and-release rather than being held down.
func ControlKeys() grammar.Parser[rune] {
	return grammar.Choose("<control-key>",
		grammar.Gives(grammar.Lit("tab"), rune(KeyTab)),
		grammar.Gives(grammar.Lit("escape"), rune(KeyEscape)),
		grammar.Gives(grammar.Lit("backspace"), rune(KeyBackspace)),
		grammar.Gives(grammar.Lit("delete"), rune(KeyDelete)),
		grammar.Gives(grammar.Lit("left"), rune(KeyLeft)),
		grammar.Gives(grammar.Lit("right"), rune(KeyRight)),
		grammar.Gives(grammar.Lit("up"), rune(KeyUp)),
		grammar.Gives(grammar.Lit("down"), rune(KeyDown)),
		grammar.Gives(grammar.Lit("page up"), rune(KeyPageUp)),
		grammar.Gives(grammar.Lit("page down"), rune(KeyPageDown)),
		grammar.Gives(grammar.Lit("home"), rune(KeyHome)),
		grammar.Gives(grammar.Lit("end"), rune(KeyEnd)),
	)
}

// Arrow is the subset of ControlKeys that moves the cursor without editing
// text: left, right, up, down.
func Arrow() grammar.Parser[rune] {
	return grammar.Choose("<arrow>",
		grammar.Gives(grammar.Lit("left"), rune(KeyLeft)),
		grammar.Gives(grammar.Lit("right"), rune(KeyRight)),
		grammar.Gives(grammar.Lit("up"), rune(KeyUp)),
		grammar.Gives(grammar.Lit("down"), rune(KeyDown)),
	)
}

// Navigation is Arrow plus page and line/document jump keys.
func Navigation() grammar.Parser[rune] {
	return grammar.Choose("<navigation>",
		Arrow(),
		grammar.Gives(grammar.Lit("page up"), rune(KeyPageUp)),
		grammar.Gives(grammar.Lit("page down"), rune(KeyPageDown)),
		grammar.Gives(grammar.Lit("home"), rune(KeyHome)),
		grammar.Gives(grammar.Lit("end"), rune(KeyEnd)),
	)
}

// KeyEventKind distinguishes the three ways a keystroke can be sent.
type KeyEventKind int

const (
	// Press sends a single key down-then-up.
	Press KeyEventKind = iota
	// Shift sends the key down-then-up while holding Shift for its
	// duration, for keys whose rune has no dedicated uppercase form.
	Shift
	// Down holds the key (typically a modifier) until the action
	// releases it, which happens in LIFO order relative to other Down
	// keys in the same action.
	Down
)

// Keystroke is one abstract keyboard event in a keystroke-sequence Action.
// The actual OS-level injection is an external collaborator; this type is
// only the vocabulary the core hands across that boundary.
type Keystroke struct {
	Kind KeyEventKind
	Key  rune
}

// ReleaseOrder returns the Down keys among strokes in the order they must be
// released once the action has otherwise completed: last held, first
// released.
func ReleaseOrder(strokes []Keystroke) []rune {
	var held []rune
	for _, k := range strokes {
		if k.Kind == Down {
			held = append(held, k.Key)
		}
	}
	for i, j := 0, len(held)-1; i < j; i, j = i+1, j-1 {
		held[i], held[j] = held[j], held[i]
	}
	return held
}

// Action is the value produced by a successful top-level parse: either a
// sequence of keystrokes to send, or an arbitrary callback. The core never
// inspects an Action beyond constructing and handing it back to the caller.
type Action struct {
	Keystrokes []Keystroke
	Callback   func()
}

// KeystrokeAction builds an Action that sends the given keystroke sequence.
func KeystrokeAction(strokes ...Keystroke) Action {
	return Action{Keystrokes: strokes}
}

// CallbackAction builds an Action that invokes fn with no arguments and no
// associated keystrokes.
func CallbackAction(fn func()) Action {
	return Action{Callback: fn}
}

// CharToKeystroke maps a single rune of dictated text to the keystroke that
// produces it: a plain Press for lowercase letters, digits, and space; a
// Shift for uppercase letters; and a Press of the corresponding symbol for
// the control-key runes defined above.
func CharToKeystroke(c rune) (Keystroke, bool) {
	switch {
	case c >= 'a' && c <= 'z', c == ' ', c >= '0' && c <= '9':
		return Keystroke{Kind: Press, Key: c}, true
	case c >= 'A' && c <= 'Z':
		return Keystroke{Kind: Shift, Key: c - 'A' + 'a'}, true
	case c == KeyTab, c == KeyEscape, c == KeyBackspace, c == KeyDelete,
		c == KeyLeft, c == KeyRight, c == KeyUp, c == KeyDown,
		c == KeyPageUp, c == KeyPageDown, c == KeyHome, c == KeyEnd:
		return Keystroke{Kind: Press, Key: c}, true
	case c == KeyShift, c == KeyAlt, c == KeyControl, c == KeyCommand:
		return Keystroke{Kind: Down, Key: c}, true
	default:
		return Keystroke{}, false
	}
}
