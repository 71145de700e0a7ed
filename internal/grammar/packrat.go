package grammar

// packrat is a per-top-level-parse memoization table. Only failures
// (Incomplete/Wrong) are cached, keyed by the name of the Choose node that
// failed and the length of the remaining input at the point of failure; Ok
// results carry semantic values produced by caller-supplied functions and so
// are never safe to share across call sites.
//
// Cache lifetime is exactly one call to Parser.Parse/ParseComplete: a fresh
// packrat is created at the top and threaded down through every combinator.
type packrat struct {
	// failures[n] holds, for each Choose name that has failed with exactly n
	// bytes of input remaining, the verdict it failed with.
	failures []map[string]Result
}

func newPackrat(inputLen int) *packrat {
	return &packrat{failures: make([]map[string]Result, inputLen+1)}
}

func (p *packrat) check(name string, remaining string) (Result, bool) {
	n := len(remaining)
	if n >= len(p.failures) || p.failures[n] == nil {
		return 0, false
	}
	r, ok := p.failures[n][name]
	return r, ok
}

func (p *packrat) report(name string, remaining string, verdict Result) {
	n := len(remaining)
	if n >= len(p.failures) {
		return
	}
	if p.failures[n] == nil {
		p.failures[n] = make(map[string]Result)
	}
	p.failures[n][name] = verdict
}
