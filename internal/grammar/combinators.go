package grammar

// Map transforms the value produced by a successful parse of p. It never
// affects whether p matches; Incomplete and Wrong propagate unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Parser[U]{n: mapNode[T, U]{parser: p, f: f}}
}

// Gives discards the value produced by p and always substitutes v on success.
func Gives[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

type mapNode[T, U any] struct {
	parser Parser[T]
	f      func(T) U
}

func (m mapNode[T, U]) parse(input string, pr *packrat) (U, string, error) {
	v, rest, err := m.parser.n.parse(input, pr)
	if err != nil {
		var zero U
		return zero, "", err
	}
	return m.f(v), rest, nil
}

func (m mapNode[T, U]) describe() Description {
	return m.parser.n.describe()
}

func (m mapNode[T, U]) couldBeEmpty() bool {
	return m.parser.n.couldBeEmpty()
}

func (m mapNode[T, U]) toGrammar(pos *int) regularGrammar {
	return m.parser.n.toGrammar(pos)
}

// Join sequences a then b, separated by a single space, combining their
// values with f. If a consumes the entire input with no trailing space, b is
// parsed against the empty remainder, which is Incomplete for any
// non-nullable b - so the expected separator-then-b is correctly reported as
// still pending rather than silently dropped.
func Join[A, B, V any](a Parser[A], b Parser[B], f func(A, B) V) Parser[V] {
	return Parser[V]{n: joinNode[A, B, V]{a: a, b: b, f: f}}
}

// Then is Join that discards the left-hand value.
func Then[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return Join(a, b, func(_ A, v B) B { return v })
}

type joinNode[A, B, V any] struct {
	a Parser[A]
	b Parser[B]
	f func(A, B) V
}

func (j joinNode[A, B, V]) parse(input string, pr *packrat) (V, string, error) {
	va, rest, err := j.a.n.parse(input, pr)
	if err != nil {
		var zero V
		return zero, "", err
	}
	vb, rest2, err := j.b.n.parse(rest, pr)
	if err != nil {
		var zero V
		return zero, "", err
	}
	return j.f(va, vb), rest2, nil
}

func (j joinNode[A, B, V]) describe() Description {
	return joinDescriptions(j.a.n.describe(), j.b.n.describe())
}

func (j joinNode[A, B, V]) couldBeEmpty() bool {
	return j.a.n.couldBeEmpty() && j.b.n.couldBeEmpty()
}

func (j joinNode[A, B, V]) toGrammar(pos *int) regularGrammar {
	g1 := j.a.n.toGrammar(pos)
	g2 := j.b.n.toGrammar(pos)
	return phraseJoin(g1, g2)
}

// Many0 matches zero or more space-separated repetitions of p, greedily: it
// stops as soon as p fails with Wrong, succeeding with whatever it has
// accumulated. An Incomplete from p always propagates, since a longer prefix
// might still extend the current repetition.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return Parser[[]T]{n: many0Node[T]{p: p}}
}

type many0Node[T any] struct {
	p Parser[T]
}

func (m many0Node[T]) parse(input string, pr *packrat) ([]T, string, error) {
	var out []T
	for {
		v, rest, err := m.p.n.parse(input, pr)
		if err != nil {
			if verdictOf(err) == Incomplete {
				return nil, "", err
			}
			return out, input, nil
		}
		out = append(out, v)
		input = rest
		if input == "" {
			return out, input, nil
		}
	}
}

func (m many0Node[T]) describe() Description {
	return repeatDescription(m.p.n.describe(), "*")
}

func (m many0Node[T]) couldBeEmpty() bool {
	return true
}

func (m many0Node[T]) toGrammar(pos *int) regularGrammar {
	child := m.p.n.toGrammar(pos)
	return regularGrammar{kind: rgMany0, children: []regularGrammar{child}}
}

// Many1 requires at least one successful match of p before behaving exactly
// like Many0 for any further repetitions.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Parser[[]T]{n: many1Node[T]{p: p}}
}

type many1Node[T any] struct {
	p Parser[T]
}

func (m many1Node[T]) parse(input string, pr *packrat) ([]T, string, error) {
	first, rest, err := m.p.n.parse(input, pr)
	if err != nil {
		return nil, "", err
	}
	out := []T{first}
	input = rest
	for input != "" {
		v, rest, err := m.p.n.parse(input, pr)
		if err != nil {
			if verdictOf(err) == Incomplete {
				return nil, "", err
			}
			return out, input, nil
		}
		out = append(out, v)
		input = rest
	}
	return out, input, nil
}

func (m many1Node[T]) describe() Description {
	return repeatDescription(m.p.n.describe(), "+")
}

func (m many1Node[T]) couldBeEmpty() bool {
	return false
}

func (m many1Node[T]) toGrammar(pos *int) regularGrammar {
	child := m.p.n.toGrammar(pos)
	childAgain := m.p.n.toGrammar(pos)
	return regularGrammar{kind: rgPhrase, children: []regularGrammar{
		child,
		{kind: rgMany0, children: []regularGrammar{childAgain}},
	}}
}

// Optional matches zero or one occurrence of p.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return Parser[Maybe[T]]{n: optionalNode[T]{p: p}}
}

type optionalNode[T any] struct {
	p Parser[T]
}

func (o optionalNode[T]) parse(input string, pr *packrat) (Maybe[T], string, error) {
	v, rest, err := o.p.n.parse(input, pr)
	if err != nil {
		if verdictOf(err) == Incomplete {
			return Maybe[T]{}, "", err
		}
		return Maybe[T]{}, input, nil
	}
	return Maybe[T]{Present: true, Value: v}, rest, nil
}

func (o optionalNode[T]) describe() Description {
	return repeatDescription(o.p.n.describe(), "?")
}

func (o optionalNode[T]) couldBeEmpty() bool {
	return true
}

func (o optionalNode[T]) toGrammar(pos *int) regularGrammar {
	child := o.p.n.toGrammar(pos)
	return regularGrammar{kind: rgChoice, children: []regularGrammar{
		child,
		{kind: rgPhrase},
	}}
}
