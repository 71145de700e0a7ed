package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/corvidae/voxctl/internal/util"
)

// sentinelByte and sentinelPosition mark the end of the top-level phrase.
// Compile appends a one-byte Word carrying this position to whatever grammar
// it is given; the byte itself is never part of the 27-symbol input
// alphabet and is never actually transitioned on at runtime; its only job is
// to propagate through followpos so that any state whose position set
// contains sentinelPosition is marked an accept state.
const (
	sentinelByte     byte = 0x00
	sentinelPosition      = 0
)

// alphabetSize is the number of transition symbols a DFA state distinguishes:
// the 26 lowercase letters plus the space that separates words.
const alphabetSize = 27

// charnum maps an input byte to its transition-table column. It panics on
// any byte outside a-z and space, since normalization to that alphabet is a
// precondition enforced by the caller (see cmd/voxctl's input normalization).
func charnum(b byte) int {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a')
	case b == ' ':
		return 26
	default:
		panic(fmt.Sprintf("grammar: byte %q is outside the a-z/space alphabet", b))
	}
}

// numchar is charnum's inverse, used only for diagnostics.
func numchar(n int) byte {
	if n == 26 {
		return ' '
	}
	return byte('a' + n)
}

// followEntry is the per-position table row used while computing followpos:
// the byte occupying this position (so transitions know which column to
// follow), and the set of positions reachable immediately after it.
type followEntry struct {
	b      byte
	follow util.KeySet[int]
}

// buildFollowTable walks the lowered tree and fills in followpos for every
// position, per the standard firstpos/lastpos/followpos construction:
//   - for a Phrase child[i] followed by child[i+1] (lastpos(child[i]) feeding
//     firstpos(child[i+1])), every position in lastpos(child[i]) gets
//     firstpos(child[i+1]) added to its followpos
//   - for a Many0(g) node, every position in lastpos(g) gets firstpos(g)
//     added to its followpos (looping back on itself)
func buildFollowTable(g regularGrammar, table *[]followEntry) {
	ensureFollowLen := func(n int) {
		for len(*table) <= n {
			*table = append(*table, followEntry{follow: util.NewKeySet[int]()})
		}
	}

	switch g.kind {
	case rgWord:
		for i, b := range g.bytes {
			p := g.position + i
			ensureFollowLen(p)
			(*table)[p].b = b
		}
	case rgPhrase:
		for _, c := range g.children {
			buildFollowTable(c, table)
		}
		// For each adjacent pair (children[i], children[i+1]), the positions
		// that flow into firstpos(children[i+1]) are lastpos(children[i]),
		// plus - if children[i] is itself nullable - the same contribution
		// from children[i-1], and so on backward through any run of
		// nullable children. This generalizes the binary concatenation
		// followpos rule to this n-ary, pre-flattened Phrase.
		for i := 0; i+1 < len(g.children); i++ {
			first := g.children[i+1].firstpos()
			for j := i; j >= 0; j-- {
				for p := range g.children[j].lastpos() {
					ensureFollowLen(p)
					(*table)[p].follow.AddAll(first)
				}
				if !g.children[j].nullable() {
					break
				}
			}
		}
	case rgChoice:
		for _, c := range g.children {
			buildFollowTable(c, table)
		}
	case rgMany0:
		buildFollowTable(g.children[0], table)
		last := g.children[0].lastpos()
		first := g.children[0].firstpos()
		for p := range last {
			ensureFollowLen(p)
			(*table)[p].follow.AddAll(first)
		}
	}
}

// DFA is a compiled grammar: a deterministic finite automaton over the
// 27-symbol a-z/space alphabet. State 1 is always the start state; a
// transition to a state not present in Transitions means no word in the
// grammar continues with that symbol from this state.
type DFA struct {
	// Transitions[state][symbol] gives the next state, or 0 if there is no
	// such transition (0 is never a real state).
	Transitions [][alphabetSize]int
	Accept      []bool
	Start       int
}

// compileDFA subset-constructs a DFA from a lowered regular grammar whose
// top level already has the sentinel Word appended (see Parser.Compile).
func compileDFA(top regularGrammar) *DFA {
	var table []followEntry
	buildFollowTable(top, &table)

	start := top.firstpos()
	startKey := positionSetKey(start)

	type pendingState struct {
		positions util.KeySet[int]
		key       string
	}

	keyToState := map[string]int{startKey: 1}
	order := []pendingState{{positions: start, key: startKey}}
	transitions := [][alphabetSize]int{{}}

	for i := 0; i < len(order); i++ {
		cur := order[i]
		var row [alphabetSize]int
		for sym := 0; sym < alphabetSize; sym++ {
			next := util.NewKeySet[int]()
			for p := range cur.positions {
				if p >= len(table) {
					continue
				}
				if p == sentinelPosition {
					continue
				}
				if charnum(table[p].b) != sym {
					continue
				}
				next.AddAll(table[p].follow)
			}
			if next.Empty() {
				continue
			}
			key := positionSetKey(next)
			state, ok := keyToState[key]
			if !ok {
				state = len(order) + 1
				keyToState[key] = state
				order = append(order, pendingState{positions: next, key: key})
				transitions = append(transitions, [alphabetSize]int{})
			}
			row[sym] = state
		}
		transitions[i] = row
	}

	accept := make([]bool, len(order)+1)
	for i, st := range order {
		accept[i+1] = st.positions.Has(sentinelPosition)
	}

	return &DFA{
		Transitions: transitions,
		Accept:      accept,
		Start:       1,
	}
}

func positionSetKey(s util.KeySet[int]) string {
	ps := s.Elements()
	sort.Ints(ps)
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", p)
	}
	return sb.String()
}

// Check scores s against the grammar exactly as an external speech decoder's
// beam search wants: Wrong as soon as the prefix provably cannot lead
// anywhere in the grammar, Ok once s is itself a complete valid phrase,
// Incomplete otherwise. s must already be normalized to the a-z/space
// alphabet.
func (d *DFA) Check(s string) (Result, error) {
	state := d.Start
	for i := 0; i < len(s); i++ {
		sym := charnum(s[i])
		next := d.Transitions[state-1][sym]
		if next == 0 {
			return Wrong, nil
		}
		state = next
	}
	if d.Accept[state] {
		return Ok, nil
	}
	return Incomplete, nil
}
