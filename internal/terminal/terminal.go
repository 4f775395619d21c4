package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrInputClosed is returned by every read once input reaches EOF.
var ErrInputClosed = fmt.Errorf("input closed: %w", io.EOF)

// Terminal provides line-oriented prompts over a console. Input is read a
// full line at a time; the console itself handles echo and editing.
type Terminal struct {
	in          *bufio.Reader
	out         io.Writer
	fd          int // -1 when input is not a terminal
	ANSIEnabled bool
}

// New creates a Terminal reading from in and writing to out. When in is a
// terminal device, passwords are read without echo.
func New(in io.Reader, out io.Writer, ansiEnabled bool) *Terminal {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Terminal{
		in:          bufio.NewReader(in),
		out:         out,
		fd:          fd,
		ANSIEnabled: ansiEnabled,
	}
}

// Send writes raw text.
func (t *Terminal) Send(data string) error {
	_, err := io.WriteString(t.out, data)
	return err
}

// SendLn writes a line of text followed by a newline.
func (t *Terminal) SendLn(text string) error {
	return t.Send(text + "\n")
}

// Error writes a validation message on its own line, highlighted when ANSI
// is enabled.
func (t *Terminal) Error(text string) error {
	if t.ANSIEnabled {
		return t.Send("\n" + FgBrightRed + text + Reset + "\n")
	}
	return t.Send("\n" + text + "\n")
}

// Cls clears the screen.
func (t *Terminal) Cls() error {
	if t.ANSIEnabled {
		return t.Send(ClearScreen())
	}
	// ASCII fallback: push the previous screen out of view
	return t.Send(strings.Repeat("\n", 24))
}

// GetLine reads one line of input without its line ending.
func (t *Terminal) GetLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// GetPassword reads a line without echo when input is a terminal device,
// and a plain line otherwise.
func (t *Terminal) GetPassword() (string, error) {
	if t.fd < 0 {
		return t.GetLine()
	}

	b, err := term.ReadPassword(t.fd)
	t.Send("\n")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

// Ask displays "<label>> " and reads a line of input.
func (t *Terminal) Ask(label string) (string, error) {
	t.Send(label + "> ")
	return t.GetLine()
}

// AskPassword displays "<label>> " and reads a password.
func (t *Terminal) AskPassword(label string) (string, error) {
	t.Send(label + "> ")
	return t.GetPassword()
}

// AskInt prompts until the input is an integer accepted by valid. invalid
// is shown after every rejected entry.
func (t *Terminal) AskInt(label, invalid string, valid func(int) bool) (int, error) {
	for {
		s, err := t.Ask(label)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil && (valid == nil || valid(n)) {
			return n, nil
		}

		t.Error(invalid)
	}
}

// AskBinary prompts until the answer is 0 (no) or 1 (yes).
func (t *Terminal) AskBinary(label string) (bool, error) {
	n, err := t.AskInt(label, "Please input a valid option.", func(n int) bool {
		return n == 0 || n == 1
	})
	return n == 1, err
}

// AskUntil prompts until accept returns an empty message for the input.
// The returned string is the accepted input.
func (t *Terminal) AskUntil(label string, accept func(string) string) (string, error) {
	for {
		s, err := t.Ask(label)
		if err != nil {
			return "", err
		}
		msg := accept(s)
		if msg == "" {
			return s, nil
		}
		t.Error(msg)
	}
}
