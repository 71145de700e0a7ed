package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func babyActions() Parser[string] {
	return Choose("<baby actions>",
		Lit("nurse"),
		Lit("sleep"),
		Lit("poop"),
		Lit("cry"),
	)
}

func Test_Choose_babyActions(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectVal  string
		expectRest string
		expectErr  Result
	}{
		{name: "exact match", input: "nurse", expectVal: "nurse", expectRest: ""},
		{name: "prefix of one alt, not of another", input: "poo", expectErr: Incomplete},
		{name: "matches no alt's prefix", input: "pee", expectErr: Wrong},
		{name: "match with trailing words", input: "nurse more", expectVal: "nurse", expectRest: "more"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			p := babyActions()

			// execute
			val, rest, err := p.Parse(tc.input)

			// assert
			if tc.expectErr != 0 {
				if !assert.Error(err) {
					return
				}
				var perr *ParseError
				assert.ErrorAs(err, &perr)
				assert.Equal(tc.expectErr, perr.Verdict)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectVal, val)
			assert.Equal(tc.expectRest, rest)
		})
	}
}

func Test_Choose_babyActions_ParseComplete_extraInputIsWrong(t *testing.T) {
	assert := assert.New(t)
	p := babyActions()

	_, err := p.ParseComplete("nurse more")

	assert.Error(err)
	var perr *ParseError
	assert.ErrorAs(err, &perr)
	assert.Equal(Wrong, perr.Verdict)
}

func Test_Choose_babyActions_Describe(t *testing.T) {
	assert := assert.New(t)
	p := babyActions()

	desc := p.Describe()

	assert.Equal("<baby actions>\n\n<baby actions>: nurse | sleep | poop | cry\n", desc.String())
}

func Test_Choose_babyActions_DFA(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect Result
	}{
		{name: "complete word", input: "nurse", expect: Ok},
		{name: "shared prefix of poop only", input: "poo", expect: Incomplete},
		{name: "no alt has this prefix", input: "pee", expect: Wrong},
		{name: "empty input always incomplete", input: "", expect: Incomplete},
	}

	dfa := babyActions().Compile()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := dfa.Check(tc.input)

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, got)
		})
	}
}

// Test_DFA_sequence_consistency checks that a Literal+Choose+Literal sequence
// compiles to a DFA whose verdicts agree with the combinator parser at every
// stage of consuming "eat peas every day".
func Test_DFA_sequence_consistency(t *testing.T) {
	food := Choose("<food>", Lit("peas"), Lit("carrots"), Lit("rice"))
	seq := Then(Lit("eat"), Then(food, Lit("every day")))

	testCases := []struct {
		name   string
		input  string
		expect Result
	}{
		{name: "empty", input: "", expect: Incomplete},
		{name: "first word only", input: "eat", expect: Incomplete},
		{name: "first word prefix", input: "ea", expect: Incomplete},
		{name: "wrong first word", input: "sleep", expect: Wrong},
		{name: "second word prefix", input: "eat pe", expect: Incomplete},
		{name: "second word wrong", input: "eat sleep", expect: Wrong},
		{name: "second word complete, third pending", input: "eat peas", expect: Incomplete},
		{name: "third word prefix", input: "eat peas every", expect: Incomplete},
		{name: "complete phrase", input: "eat peas every day", expect: Ok},
		{name: "complete with trailing garbage", input: "eat peas every day now", expect: Wrong},
	}

	dfa := seq.Compile()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := dfa.Check(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, got, "DFA.Check(%q)", tc.input)

			// cross-check against the combinator parser's own three-valued
			// verdict wherever it can be computed directly.
			_, parseErr := seq.ParseComplete(tc.input)
			var parseVerdict Result
			if parseErr == nil {
				parseVerdict = Ok
			} else {
				parseVerdict = verdictOf(parseErr)
			}
			assert.Equal(tc.expect, parseVerdict, "Parser.ParseComplete(%q)", tc.input)
		})
	}
}

// Test_DFA_repetition_consistency checks a Literal + Many0(Choose) + Literal
// sequence, exercising the looped followpos construction for rgMany0.
func Test_DFA_repetition_consistency(t *testing.T) {
	note := Choose("<note>", Lit("la"), Lit("da"))
	body := Join(Many0(note), Lit("done"), func(notes []string, _ string) []string { return notes })
	seq := Join(Lit("sing"), body, func(_ string, notes []string) []string { return notes })

	testCases := []struct {
		name   string
		input  string
		expect Result
	}{
		{name: "zero reps", input: "sing done", expect: Ok},
		{name: "one rep", input: "sing la done", expect: Ok},
		{name: "several reps", input: "sing la da la done", expect: Ok},
		{name: "pending mid-repetition", input: "sing la d", expect: Incomplete},
		{name: "pending after a rep with no more input", input: "sing la", expect: Incomplete},
		{name: "wrong token inside the loop", input: "sing la nope", expect: Wrong},
	}

	dfa := seq.Compile()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := dfa.Check(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, got, "DFA.Check(%q)", tc.input)
		})
	}
}

// Test_Choose_sharedPrefixAlternatives exercises Choose's no-backtracking,
// first-alternative-wins priority: when an earlier alternative's text is a
// strict prefix of a later one, the earlier one commits as soon as it
// matches, even though the later alternative would otherwise have consumed
// more of the input.
func Test_Choose_sharedPrefixAlternatives(t *testing.T) {
	food := Choose("<food>",
		Lit("peas and corn"),
		Lit("peas and corn on the cob"),
	)

	testCases := []struct {
		name       string
		input      string
		expectVal  string
		expectRest string
		expectErr  Result
	}{
		{name: "shorter alt commits even though the longer one would match more", input: "peas and corn on the cob", expectVal: "peas and corn", expectRest: "on the cob"},
		{name: "exact match of the shorter alt", input: "peas and corn", expectVal: "peas and corn", expectRest: ""},
		{name: "prefix of both alts is incomplete", input: "peas and co", expectErr: Incomplete},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			val, rest, err := food.Parse(tc.input)

			if tc.expectErr != 0 {
				if !assert.Error(err) {
					return
				}
				assert.Equal(tc.expectErr, verdictOf(err))
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectVal, val)
			assert.Equal(tc.expectRest, rest)
		})
	}
}

func Test_Result_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Ok", Ok.String())
	assert.Equal("Incomplete", Incomplete.String())
	assert.Equal("Wrong", Wrong.String())
}

func Test_ParseError_Error(t *testing.T) {
	assert := assert.New(t)

	wrongErr := &ParseError{Verdict: Wrong}
	assert.NotEmpty(wrongErr.Error())

	incErr := &ParseError{Verdict: Incomplete}
	assert.NotEmpty(incErr.Error())
	assert.NotEqual(wrongErr.Error(), incErr.Error())
}

func Test_Many0_stopsOnWrong(t *testing.T) {
	assert := assert.New(t)
	note := Choose("<note>", Lit("la"), Lit("da"))
	p := Many0(note)

	val, rest, err := p.Parse("la da nope")

	if !assert.NoError(err) {
		return
	}
	assert.Equal([]string{"la", "da"}, val)
	assert.Equal("nope", rest)
}

func Test_Optional(t *testing.T) {
	assert := assert.New(t)
	p := Optional(Lit("please"))

	present, rest, err := p.Parse("please go")
	if assert.NoError(err) {
		assert.True(present.Present)
		assert.Equal("please", present.Value)
		assert.Equal("go", rest)
	}

	absent, rest2, err2 := p.Parse("go")
	if assert.NoError(err2) {
		assert.False(absent.Present)
		assert.Equal("go", rest2)
	}
}

func Test_CouldBeEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.False(Lit("go").CouldBeEmpty())
	assert.True(Empty().CouldBeEmpty())
	assert.True(Many0(Lit("go")).CouldBeEmpty())
	assert.False(Many1(Lit("go")).CouldBeEmpty())
	assert.True(Optional(Lit("go")).CouldBeEmpty())
}
