package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScripted(input string) (*Terminal, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out, false), &out
}

func TestGetLine(t *testing.T) {
	term, _ := newScripted("first\r\nsecond\nlast")

	for _, want := range []string{"first", "second", "last"} {
		got, err := term.GetLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := term.GetLine()
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.True(t, errors.Is(err, io.EOF))
}

func TestAsk_PromptFormat(t *testing.T) {
	term, out := newScripted("Ada Lovelace\n")

	got, err := term.Ask("First Name")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got)
	assert.Equal(t, "First Name> ", out.String())
}

func TestAskPassword_NotATerminal(t *testing.T) {
	term, out := newScripted("s3cret\n")

	got, err := term.AskPassword("Password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
	assert.Equal(t, "Password> ", out.String())
}

func TestAskInt_RepromptsUntilValid(t *testing.T) {
	term, out := newScripted("abc\n\n9\n 2 \n")

	n, err := term.AskInt("Choice", "Please input a valid option.", func(n int) bool { return n >= 0 && n <= 3 })
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 4, strings.Count(out.String(), "Choice> "))
	assert.Equal(t, 3, strings.Count(out.String(), "Please input a valid option."))
}

func TestAskInt_InputClosed(t *testing.T) {
	term, _ := newScripted("x\n")

	_, err := term.AskInt("Choice", "bad", nil)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestAskBinary(t *testing.T) {
	term, out := newScripted("yes\n2\n1\n0\n")

	yes, err := term.AskBinary("HR?")
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := term.AskBinary("HR?")
	require.NoError(t, err)
	assert.False(t, no)

	assert.Equal(t, 2, strings.Count(out.String(), "Please input a valid option."))
}

func TestAskUntil(t *testing.T) {
	term, out := newScripted("\ntaken\nfree\n")

	got, err := term.AskUntil("Username", func(s string) string {
		switch s {
		case "":
			return "Username must not be empty."
		case "taken":
			return "Username is already taken."
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, "free", got)
	assert.Contains(t, out.String(), "Username must not be empty.")
	assert.Contains(t, out.String(), "Username is already taken.")
}

func TestError_ANSI(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out, true)

	term.Error("nope")
	assert.Equal(t, "\n"+FgBrightRed+"nope"+Reset+"\n", out.String())

	out.Reset()
	term.Cls()
	assert.Equal(t, ClearScreen(), out.String())
}

func TestCls_ASCII(t *testing.T) {
	term, out := newScripted("")
	term.Cls()
	assert.Equal(t, strings.Repeat("\n", 24), out.String())
}

func TestHeader_SingleLine(t *testing.T) {
	h := Header("Login", 44)
	lines := strings.Split(strings.TrimSuffix(h, "\n\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, strings.Repeat("*", 44), lines[0])
	assert.Equal(t, strings.Repeat("*", 44), lines[4])
	for _, l := range lines {
		assert.Len(t, l, 44)
		assert.True(t, strings.HasPrefix(l, "*") && strings.HasSuffix(l, "*"), "line %q", l)
	}
	assert.Contains(t, lines[2], "Login")
	assert.Equal(t, "*"+strings.Repeat(" ", 42)+"*", lines[1])
}

func TestHeader_WrapsLongTitle(t *testing.T) {
	title := "Results for a rather long search query that cannot fit on one line"
	h := Header(title, 44)
	lines := strings.Split(strings.TrimSuffix(h, "\n\n"), "\n")

	require.Greater(t, len(lines), 5)
	for _, l := range lines {
		assert.Len(t, l, 44)
	}

	var words []string
	for _, l := range lines[1 : len(lines)-1] {
		words = append(words, strings.Fields(strings.Trim(l, "*"))...)
	}
	assert.Equal(t, strings.Fields(title), words)
}

func TestHeader_BlankRowsAreSymmetric(t *testing.T) {
	blank := "*" + strings.Repeat(" ", 42) + "*"

	for _, title := range []string{
		"Login",
		"Results for a query long enough to wrap",
		"Results for a rather long search query that cannot fit on one line at all, not even on two",
	} {
		lines := strings.Split(strings.TrimSuffix(Header(title, 44), "\n\n"), "\n")
		inner := lines[1 : len(lines)-1]

		assert.Equal(t, blank, inner[0], title)
		assert.Equal(t, blank, inner[len(inner)-1], title)
		for _, l := range inner[1 : len(inner)-1] {
			assert.NotEqual(t, blank, l, title)
		}
	}
}
