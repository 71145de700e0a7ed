package command

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeReader struct {
	lines  []string
	i      int
	closed bool
}

func (f *fakeReader) ReadCommand() (string, error) {
	if f.i >= len(f.lines) {
		return "", bytes.ErrTooLarge
	}
	line := f.lines[f.i]
	f.i++
	return line, nil
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

func Test_Get_returnsFirstCompleteCommand(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	reader := &fakeReader{lines: []string{"quit"}}
	var out bytes.Buffer
	w := bufio.NewWriter(&out)

	cmd, err := Get(r, reader, w)

	if !assert.NoError(err) {
		return
	}
	assert.Equal("QUIT", cmd.Name)
}

func Test_Get_retriesOnBadInput(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	reader := &fakeReader{lines: []string{"banana", "quit"}}
	var out bytes.Buffer
	w := bufio.NewWriter(&out)

	cmd, err := Get(r, reader, w)

	if !assert.NoError(err) {
		return
	}
	assert.Equal("QUIT", cmd.Name)
	assert.Contains(out.String(), "Try HELP for valid commands")
}

func Test_Get_propagatesReadError(t *testing.T) {
	assert := assert.New(t)
	r := NewRegistry()
	reader := &fakeReader{lines: nil}
	var out bytes.Buffer
	w := bufio.NewWriter(&out)

	_, err := Get(r, reader, w)

	assert.Error(err)
}
