package grammar

// node is the runtime capability every combinator tree node provides: parse
// against a remaining input string, threading a packrat table through so that
// nested Choose nodes can memoize their failures.
type node[T any] interface {
	parse(input string, pr *packrat) (T, string, error)
	describe() Description
	couldBeEmpty() bool
	toGrammar(pos *int) regularGrammar
}

// Parser is an immutable combinator tree that produces values of type T on a
// successful parse. Parser values are built with Lit and the combinators in
// this package and may be freely shared and reused; nothing about parsing
// mutates the tree.
type Parser[T any] struct {
	n node[T]
}

// Parse runs p against input, starting a fresh memoization table for this
// call. On success it returns the produced value and the unconsumed
// remainder (empty, or starting immediately after a consumed token). On
// failure it returns a *ParseError with Verdict Incomplete or Wrong.
func (p Parser[T]) Parse(input string) (T, string, error) {
	return p.n.parse(input, newPackrat(len(input)))
}

// ParseComplete runs p against the entirety of input and requires that the
// whole string be consumed. A successful Parse that leaves a non-empty
// remainder is reported as Wrong (ExtraInput, projected to the external
// three-valued contract).
func (p Parser[T]) ParseComplete(input string) (T, error) {
	v, rest, err := p.Parse(input)
	if err != nil {
		var zero T
		return zero, err
	}
	if rest != "" {
		var zero T
		return zero, errWrong
	}
	return v, nil
}

// Describe renders the grammar of p as a named production listing suitable
// for help text.
func (p Parser[T]) Describe() Description {
	return p.n.describe()
}

// CouldBeEmpty reports whether p accepts the empty input.
func (p Parser[T]) CouldBeEmpty() bool {
	return p.n.couldBeEmpty()
}

// Compile lowers p to the regular-grammar intermediate representation and
// compiles it to a DFA usable as an external validity oracle (see DFA.Check).
func (p Parser[T]) Compile() *DFA {
	pos := 1
	body := p.n.toGrammar(&pos)
	top := regularGrammar{
		kind: rgPhrase,
		children: []regularGrammar{
			body,
			{kind: rgWord, bytes: []byte{sentinelByte}, position: sentinelPosition},
		},
	}
	return compileDFA(top)
}

// Lit builds a Parser that matches exactly the literal word w. w must not
// contain spaces; words are the atomic tokens of the token stream.
func Lit(w string) Parser[string] {
	return Parser[string]{n: literalNode(w)}
}

type literalNode string

func (w literalNode) parse(input string, _ *packrat) (string, string, error) {
	s := string(w)
	switch {
	case input == s:
		return s, "", nil
	case len(input) > len(s) && input[:len(s)] == s && input[len(s)] == ' ':
		return s, input[len(s)+1:], nil
	case len(input) < len(s) && s[:len(input)] == input:
		return "", "", errIncomplete
	default:
		return "", "", errWrong
	}
}

func (w literalNode) describe() Description {
	return Description{command: string(w)}
}

func (w literalNode) couldBeEmpty() bool {
	return false
}

func (w literalNode) toGrammar(pos *int) regularGrammar {
	bytes := []byte(string(w))
	p := *pos
	*pos += len(bytes)
	return regularGrammar{kind: rgWord, bytes: bytes, position: p}
}

// Empty is a Parser that matches only the empty phrase, producing Unit{}.
func Empty() Parser[Unit] {
	return Parser[Unit]{n: emptyNode{}}
}

type emptyNode struct{}

func (emptyNode) parse(input string, _ *packrat) (Unit, string, error) {
	return Unit{}, input, nil
}

func (emptyNode) describe() Description {
	return Description{}
}

func (emptyNode) couldBeEmpty() bool {
	return true
}

func (emptyNode) toGrammar(_ *int) regularGrammar {
	return regularGrammar{kind: rgPhrase}
}
