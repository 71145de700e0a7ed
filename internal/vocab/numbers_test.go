package vocab

import (
	"testing"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/stretchr/testify/assert"
)

func Test_NumberRange_0_999999(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect int
	}{
		{name: "zero", input: "zero", expect: 0},
		{name: "single digit", input: "seven", expect: 7},
		{name: "teen", input: "thirteen", expect: 13},
		{name: "bare tens", input: "twenty", expect: 20},
		{name: "tens plus ones", input: "twenty one", expect: 21},
		{name: "bare hundred", input: "three hundred", expect: 300},
		{name: "hundred and ones", input: "three hundred and one", expect: 301},
		{name: "hundred plus tens", input: "three hundred twenty one", expect: 321},
		{name: "bare thousand", input: "four thousand", expect: 4000},
		{name: "thousand and ones", input: "four thousand and one", expect: 4001},
		{name: "thousand plus hundreds", input: "four thousand three hundred and one", expect: 4301},
		{name: "large thousands", input: "three hundred thousand one hundred and one", expect: 300101},
		{name: "max of range", input: "nine hundred ninety nine thousand nine hundred ninety nine", expect: 999999},
	}

	p := Number()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			val, err := p.ParseComplete(tc.input)

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, val)
		})
	}
}

func Test_NumberRange_excludesZeroWhenMinIsOne(t *testing.T) {
	assert := assert.New(t)
	p := NumberRange(1, 20)

	_, err := p.ParseComplete("zero")

	assert.Error(err)
}

func Test_NumberRange_clampsToBounds(t *testing.T) {
	assert := assert.New(t)
	p := NumberRange(0, 9)

	val, err := p.ParseComplete("nine")
	if assert.NoError(err) {
		assert.Equal(9, val)
	}

	_, err = p.ParseComplete("ten")
	assert.Error(err)
}

func Test_NumberRange_rejectsValuesAboveMax(t *testing.T) {
	assert := assert.New(t)
	p := NumberRange(1, 20)

	val, err := p.ParseComplete("twenty")
	if assert.NoError(err) {
		assert.Equal(20, val)
	}

	_, err = p.ParseComplete("fifty")
	assert.Error(err)

	_, err = p.ParseComplete("twenty one")
	assert.Error(err)
}

func Test_NumberRange_DFA_consistency(t *testing.T) {
	p := Number()
	dfa := p.Compile()

	testCases := []struct {
		name   string
		input  string
		expect grammar.Result
	}{
		{name: "complete small number", input: "seven", expect: grammar.Ok},
		{name: "prefix of a teen", input: "thir", expect: grammar.Incomplete},
		{name: "complete compound number", input: "twenty one", expect: grammar.Ok},
		{name: "complete tens word alone", input: "twenty", expect: grammar.Ok},
		{name: "prefix of a tens word", input: "twen", expect: grammar.Incomplete},
		{name: "not a number word at all", input: "banana", expect: grammar.Wrong},
	}

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
