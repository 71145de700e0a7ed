package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Nato(t *testing.T) {
	testCases := []struct {
		input  string
		expect rune
	}{
		{"alpha", 'a'},
		{"bravo", 'b'},
		{"x-ray", 'x'},
		{"yankee", 'y'},
		{"zulu", 'z'},
	}

	p := Nato()

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert := assert.New(t)

			got, err := p.ParseComplete(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, got)
		})
	}
}

func Test_SpellingDigit(t *testing.T) {
	assert := assert.New(t)
	p := SpellingDigit()

	got, err := p.ParseComplete("seven")
	if assert.NoError(err) {
		assert.Equal('7', got)
	}
}

func Test_ExtendedNato(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect rune
	}{
		{name: "lowercase letter from NATO word", input: "delta", expect: 'd'},
		{name: "uppercase via big prefix", input: "big delta", expect: 'D'},
		{name: "bare digit word", input: "three", expect: '3'},
	}

	p := ExtendedNato()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := p.ParseComplete(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, got)
		})
	}
}
