package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	text, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	text, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", text)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	r := bufio.NewReader(strings.NewReader("\n"))
	text, err := GetTextWithDefault(r, "User ID", "USER-123", &out)
	require.NoError(t, err)
	assert.Equal(t, "USER-123", text)

	r = bufio.NewReader(strings.NewReader("USER-456\n"))
	text, err = GetTextWithDefault(r, "User ID", "USER-123", &out)
	require.NoError(t, err)
	assert.Equal(t, "USER-456", text)
}
