package grammar

import "github.com/corvidae/voxctl/internal/util"

// regularGrammar is the intermediate representation used only for DFA
// compilation: a much simpler tree than the combinator tree, since it has no
// semantic actions, only the shape needed to compute nullable/firstpos/
// lastpos/followpos and subset-construct a DFA.
type regularGrammar struct {
	kind rgKind

	// bytes and position are populated for kind == rgWord. position is the
	// position assigned to bytes[0]; subsequent bytes occupy
	// position+1, position+2, ...
	bytes    []byte
	position int

	// children holds every child for rgChoice and rgPhrase, and exactly one
	// child (itself wrapped) for rgMany0.
	children []regularGrammar
}

type rgKind int

const (
	rgWord rgKind = iota
	rgChoice
	rgPhrase
	rgMany0
)

// phraseJoin concatenates two lowered subtrees, flattening nested Phrases so
// that a sequence of Joins lowers to one flat Phrase rather than a
// right-leaning chain of two-child Phrases.
func phraseJoin(a, b regularGrammar) regularGrammar {
	aIsPhrase := a.kind == rgPhrase
	bIsPhrase := b.kind == rgPhrase
	switch {
	case aIsPhrase && bIsPhrase:
		children := make([]regularGrammar, 0, len(a.children)+len(b.children))
		children = append(children, a.children...)
		children = append(children, b.children...)
		return regularGrammar{kind: rgPhrase, children: children}
	case aIsPhrase:
		children := make([]regularGrammar, 0, len(a.children)+1)
		children = append(children, a.children...)
		children = append(children, b)
		return regularGrammar{kind: rgPhrase, children: children}
	case bIsPhrase:
		children := make([]regularGrammar, 0, len(b.children)+1)
		children = append(children, a)
		children = append(children, b.children...)
		return regularGrammar{kind: rgPhrase, children: children}
	default:
		return regularGrammar{kind: rgPhrase, children: []regularGrammar{a, b}}
	}
}

func (g regularGrammar) nullable() bool {
	switch g.kind {
	case rgWord:
		return len(g.bytes) == 0
	case rgPhrase:
		for _, c := range g.children {
			if !c.nullable() {
				return false
			}
		}
		return true
	case rgChoice:
		for _, c := range g.children {
			if c.nullable() {
				return true
			}
		}
		return false
	case rgMany0:
		return true
	default:
		panic("grammar: unreachable regularGrammar kind")
	}
}

func (g regularGrammar) firstpos() util.KeySet[int] {
	out := util.NewKeySet[int]()
	switch g.kind {
	case rgWord:
		if len(g.bytes) > 0 {
			out.Add(g.position)
		}
	case rgPhrase:
		for _, c := range g.children {
			out.AddAll(c.firstpos())
			if !c.nullable() {
				break
			}
		}
	case rgMany0:
		out.AddAll(g.children[0].firstpos())
	case rgChoice:
		for _, c := range g.children {
			out.AddAll(c.firstpos())
		}
	}
	return out
}

func (g regularGrammar) lastpos() util.KeySet[int] {
	out := util.NewKeySet[int]()
	switch g.kind {
	case rgWord:
		if len(g.bytes) > 0 {
			out.Add(g.position + len(g.bytes) - 1)
		}
	case rgPhrase:
		for i := len(g.children) - 1; i >= 0; i-- {
			c := g.children[i]
			out.AddAll(c.lastpos())
			if !c.nullable() {
				break
			}
		}
	case rgMany0:
		out.AddAll(g.children[0].lastpos())
	case rgChoice:
		for _, c := range g.children {
			out.AddAll(c.lastpos())
		}
	}
	return out
}
