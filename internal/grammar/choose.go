package grammar

// Choose builds a named alternation: the first alternative that returns Ok
// wins, with no backtracking once it has committed. If no alternative
// succeeds, the result is Incomplete if any alternative was Incomplete, else
// Wrong. name becomes the non-terminal label used in descriptions and is the
// memoization key for this node's failures.
//
// Choose panics if given zero alternatives; an empty alternation is a
// programming error, not a recoverable parse failure.
func Choose[T any](name string, alts ...Parser[T]) Parser[T] {
	if len(alts) == 0 {
		panic("grammar: Choose requires at least one alternative: " + name)
	}
	return Parser[T]{n: chooseNode[T]{name: name, alts: alts}}
}

type chooseNode[T any] struct {
	name string
	alts []Parser[T]
}

func (c chooseNode[T]) parse(input string, pr *packrat) (T, string, error) {
	if verdict, cached := pr.check(c.name, input); cached {
		var zero T
		if verdict == Incomplete {
			return zero, "", errIncomplete
		}
		return zero, "", errWrong
	}

	worst := Wrong
	for _, alt := range c.alts {
		v, rest, err := alt.n.parse(input, pr)
		if err == nil {
			return v, rest, nil
		}
		if verdictOf(err) == Incomplete {
			worst = Incomplete
		}
	}

	pr.report(c.name, input, worst)
	var zero T
	if worst == Incomplete {
		return zero, "", errIncomplete
	}
	return zero, "", errWrong
}

func (c chooseNode[T]) describe() Description {
	var options []string
	var nested []namedProduction
	for _, alt := range c.alts {
		d := alt.n.describe()
		options = append(options, d.command)
		nested = mergeProductions(nested, d.productions)
	}
	self := namedProduction{name: c.name, alts: joinAlternatives(options)}
	return Description{
		command:     c.name,
		productions: append([]namedProduction{self}, nested...),
	}
}

func (c chooseNode[T]) couldBeEmpty() bool {
	for _, alt := range c.alts {
		if alt.n.couldBeEmpty() {
			return true
		}
	}
	return false
}

func (c chooseNode[T]) toGrammar(pos *int) regularGrammar {
	children := make([]regularGrammar, len(c.alts))
	for i, alt := range c.alts {
		children[i] = alt.n.toGrammar(pos)
	}
	return regularGrammar{kind: rgChoice, children: children}
}
