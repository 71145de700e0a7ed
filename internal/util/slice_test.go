package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SortBy(t *testing.T) {
	assert := assert.New(t)
	in := []int{3, 1, 2}

	out := SortBy(in, func(a, b int) bool { return a < b })

	assert.Equal([]int{1, 2, 3}, out)
	assert.Equal([]int{3, 1, 2}, in, "SortBy must not mutate its input")
}

func Test_SliceIndexOf(t *testing.T) {
	assert := assert.New(t)
	s := []string{"a", "b", "c"}

	assert.Equal(1, SliceIndexOf("b", s))
	assert.Equal(-1, SliceIndexOf("z", s))
}

func Test_SliceRemove(t *testing.T) {
	assert := assert.New(t)
	s := []string{"a", "b", "c"}

	out := SliceRemove("b", s)

	assert.Equal([]string{"a", "c"}, out)
	assert.Equal([]string{"a", "b", "c"}, s, "SliceRemove must not mutate its input")
}

func Test_SliceRemove_notPresent(t *testing.T) {
	assert := assert.New(t)
	s := []string{"a", "b", "c"}

	out := SliceRemove("z", s)

	assert.Equal(s, out)
}
