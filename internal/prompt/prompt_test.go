package prompt

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "v\n", "v"},
		{"uppercase", "Q\n", "q"},
		{"surrounding spaces", "  a  \n", "a"},
		{"no trailing newline", "q", "q"},
		{"retries until valid", "x\n\nyes\nv\n", "v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)
			got, err := p.Choose("pick: ", "v", "q", "a")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChoose_InvalidMessage(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("x\nq\n"), &out)
	got, err := p.Choose("Enter v or q: ", "v", "q")
	require.NoError(t, err)
	assert.Equal(t, "q", got)
	assert.Equal(t, "Enter v or q: Invalid option: \"x\" is not \"v\" or \"q\".\nEnter v or q: ", out.String())
}

func TestChoose_EOF(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("x\n"), &out)
	_, err := p.Choose("pick: ", "v", "q")
	assert.ErrorIs(t, err, io.EOF)
}

func TestChoose_SequentialQuestions(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("v\na\n"), &out)

	first, err := p.Choose("view? ", "v", "q")
	require.NoError(t, err)
	second, err := p.Choose("apply? ", "a", "q")
	require.NoError(t, err)
	assert.Equal(t, "v", first)
	assert.Equal(t, "a", second)
}

func TestOrList(t *testing.T) {
	assert.Equal(t, `"v"`, orList([]string{"v"}))
	assert.Equal(t, `"v" or "q"`, orList([]string{"v", "q"}))
	assert.Equal(t, `"a", "b" or "c"`, orList([]string{"a", "b", "c"}))
}

func TestIsInteractive(t *testing.T) {
	orig := IsTerminalFunc
	t.Cleanup(func() { IsTerminalFunc = orig })

	assert.False(t, IsInteractive(nil))

	IsTerminalFunc = func(int) bool { return true }
	assert.True(t, IsInteractive(os.Stdin))
	IsTerminalFunc = func(int) bool { return false }
	assert.False(t, IsInteractive(os.Stdin))
}
