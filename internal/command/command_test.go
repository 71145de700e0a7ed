package command

import (
	"testing"

	"github.com/corvidae/voxctl/internal/grammar"
	"github.com/corvidae/voxctl/internal/vocab"
	"github.com/stretchr/testify/assert"
)

func Test_Registry_Parse(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectName string
		expectLen  int
	}{
		{name: "type a single spelled letter", input: "type alpha", expectName: "TYPE", expectLen: 1},
		{name: "type several spelled characters", input: "type alpha bravo three", expectName: "TYPE", expectLen: 3},
		{name: "press a control key once", input: "press tab", expectName: "PRESS", expectLen: 1},
		{name: "press a control key repeatedly", input: "press tab three times", expectName: "PRESS", expectLen: 3},
		{name: "move by one navigation step", input: "move left", expectName: "MOVE", expectLen: 1},
		{name: "hold a modifier down", input: "hold shift", expectName: "HOLD", expectLen: 1},
		{name: "quit takes no arguments", input: "quit", expectName: "QUIT", expectLen: 0},
		{name: "help takes no arguments", input: "help", expectName: "HELP", expectLen: 0},
	}

	r := NewRegistry()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			cmd, err := r.Parse(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expectName, cmd.Name)
			assert.Len(cmd.Action.Keystrokes, tc.expectLen)
		})
	}
}

func Test_Registry_Parse_pressRepeated_keystrokes(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()

	cmd, err := r.Parse("press tab three times")
	if !assert.NoError(err) {
		return
	}

	assert.Len(cmd.Action.Keystrokes, 3)
	for _, k := range cmd.Action.Keystrokes {
		assert.Equal(vocab.Press, k.Kind)
		assert.Equal(vocab.KeyTab, k.Key)
	}
}

func Test_Registry_Parse_errorVerdicts(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect grammar.Result
	}{
		{name: "prefix of a known verb", input: "hel", expect: grammar.Incomplete},
		{name: "not any known verb", input: "dance", expect: grammar.Wrong},
		{name: "verb known but argument missing", input: "press", expect: grammar.Incomplete},
	}

	r := NewRegistry()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := r.Parse(tc.input)
			if !assert.Error(err) {
				return
			}
			var perr *grammar.ParseError
			assert.ErrorAs(err, &perr)
			assert.Equal(tc.expect, perr.Verdict)
		})
	}
}

func Test_Registry_Check_agreesWithParse(t *testing.T) {
	r := NewRegistry()

	testCases := []string{
		"quit",
		"qui",
		"hold shift",
		"hold shi",
		"dance",
		"press tab three times",
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			checkVerdict, err := r.Check(input)
			if !assert.NoError(err) {
				return
			}

			_, parseErr := r.Parse(input)
			var parseVerdict grammar.Result
			if parseErr == nil {
				parseVerdict = grammar.Ok
			} else {
				var perr *grammar.ParseError
				assert.ErrorAs(parseErr, &perr)
				parseVerdict = perr.Verdict
			}

			assert.Equal(parseVerdict, checkVerdict)
		})
	}
}

func Test_Registry_Describe_mentionsEveryVerb(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()

	desc := r.Describe().String()

	for _, verb := range []string{"type", "press", "move", "hold", "quit", "help"} {
		assert.Contains(desc, verb)
	}
}

func Test_upper(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("QUIT", upper("quit"))
	assert.Equal("HELP", upper("help"))
}
