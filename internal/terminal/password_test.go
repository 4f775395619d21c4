//go:build linux

package terminal

import (
	"bytes"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPassword_TerminalDevice(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	var out bytes.Buffer
	term := New(tty, &out, false)
	require.GreaterOrEqual(t, term.fd, 0, "pty slave should be detected as a terminal")

	type result struct {
		pw  string
		err error
	}
	done := make(chan result, 1)
	go func() {
		pw, err := term.GetPassword()
		done <- result{pw, err}
	}()

	// Give ReadPassword time to switch echo off before typing.
	time.Sleep(100 * time.Millisecond)
	_, err = ptmx.Write([]byte("s3cret\n"))
	require.NoError(t, err)

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, "s3cret", r.pw)
	case <-time.After(3 * time.Second):
		t.Fatalf("GetPassword did not return")
	}
}
