package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Modifiers(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect rune
	}{
		{name: "shift", input: "shift", expect: KeyShift},
		{name: "alt", input: "alt", expect: KeyAlt},
		{name: "option is an alias for alt", input: "option", expect: KeyAlt},
		{name: "control", input: "control", expect: KeyControl},
		{name: "command", input: "command", expect: KeyCommand},
		{name: "meta is an alias for command", input: "meta", expect: KeyCommand},
	}

	p := Modifiers()

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

func Test_ControlKeys(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect rune
	}{
		{name: "tab", input: "tab", expect: KeyTab},
		{name: "escape", input: "escape", expect: KeyEscape},
		{name: "backspace", input: "backspace", expect: KeyBackspace},
		{name: "delete", input: "delete", expect: KeyDelete},
		{name: "multi-word literal", input: "page up", expect: KeyPageUp},
		{name: "multi-word literal, other direction", input: "page down", expect: KeyPageDown},
		{name: "home", input: "home", expect: KeyHome},
		{name: "end", input: "end", expect: KeyEnd},
	}

	p := ControlKeys()

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

func Test_Arrow_excludesNonArrowControlKeys(t *testing.T) {
	assert := assert.New(t)
	p := Arrow()

	_, err := p.ParseComplete("escape")

	assert.Error(err)
}

func Test_Navigation_includesArrowsAndPaging(t *testing.T) {
	assert := assert.New(t)
	p := Navigation()

	for _, tc := range []struct {
		input  string
		expect rune
	}{
		{"left", KeyLeft},
		{"page up", KeyPageUp},
		{"home", KeyHome},
	} {
		got, err := p.ParseComplete(tc.input)
		if assert.NoError(err) {
			assert.Equal(tc.expect, got)
		}
	}
}

func Test_ReleaseOrder_isLIFO(t *testing.T) {
	assert := assert.New(t)

	strokes := []Keystroke{
		{Kind: Down, Key: KeyShift},
		{Kind: Press, Key: 'a'},
		{Kind: Down, Key: KeyControl},
		{Kind: Press, Key: 'b'},
	}

	order := ReleaseOrder(strokes)

	assert.Equal([]rune{KeyControl, KeyShift}, order)
}

func Test_ReleaseOrder_noDownKeys(t *testing.T) {
	assert := assert.New(t)

	strokes := []Keystroke{{Kind: Press, Key: 'a'}, {Kind: Shift, Key: 'b'}}

	assert.Empty(ReleaseOrder(strokes))
}

func Test_CharToKeystroke(t *testing.T) {
	testCases := []struct {
		name       string
		char       rune
		expectKind KeyEventKind
		expectKey  rune
		expectOK   bool
	}{
		{name: "lowercase letter", char: 'q', expectKind: Press, expectKey: 'q', expectOK: true},
		{name: "uppercase letter becomes shift+lowercase", char: 'Q', expectKind: Shift, expectKey: 'q', expectOK: true},
		{name: "digit", char: '5', expectKind: Press, expectKey: '5', expectOK: true},
		{name: "space", char: ' ', expectKind: Press, expectKey: ' ', expectOK: true},
		{name: "control-key rune presses", char: KeyTab, expectKind: Press, expectKey: KeyTab, expectOK: true},
		{name: "modifier rune holds down", char: KeyShift, expectKind: Down, expectKey: KeyShift, expectOK: true},
		{name: "unrepresentable rune", char: '#', expectOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, ok := CharToKeystroke(tc.char)

			assert.Equal(tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(tc.expectKind, got.Kind)
				assert.Equal(tc.expectKey, got.Key)
			}
		})
	}
}
