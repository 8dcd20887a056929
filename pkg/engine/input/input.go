package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when Ctrl+C is read in raw mode
var ErrInterrupted = errors.New("input: interrupted")

// arrowCodes maps the final byte of an arrow escape sequence to its code
var arrowCodes = map[byte]string{
	'A': "arrow_up",
	'B': "arrow_down",
	'C': "arrow_right",
	'D': "arrow_left",
}

var arrowReplacer = func() *strings.Replacer {
	var pairs []string
	for b, code := range arrowCodes {
		pairs = append(pairs, "\x1b["+string(b), " "+code+" ", "\x1bO"+string(b), " "+code+" ")
	}
	return strings.NewReplacer(pairs...)
}()

// decodeArrows rewrites arrow escape sequences in a typed line into codes
func decodeArrows(line string) string {
	if !strings.Contains(line, "\x1b") {
		return line
	}
	return arrowReplacer.Replace(line)
}

// Reader yields intents. On a terminal it reads single keys in raw mode;
// on any other stream it reads one command per line.
type Reader struct {
	in  *bufio.Reader
	fd  int
	raw bool
}

// NewReader wraps r. Raw key mode is used only when r is a terminal.
func NewReader(r io.Reader) *Reader {
	ir := &Reader{in: bufio.NewReader(r), fd: -1}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		ir.fd = int(f.Fd())
		ir.raw = true
	}
	return ir
}

// Interactive reports whether keys are read from a terminal
func (r *Reader) Interactive() bool {
	return r.raw
}

// ReadLine reads one line without its terminator
func (r *Reader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Next reads the next intent. Throw and close read a second key (or a
// second word in line mode) for their direction.
func (r *Reader) Next() (Intent, error) {
	if !r.raw {
		line, err := r.ReadLine()
		if err != nil {
			return Intent{}, err
		}
		return ParseCommand(line), nil
	}

	code, err := r.ReadKey()
	if err != nil {
		return Intent{}, err
	}
	intent := MapToIntent(code)
	if intent.Action == ActionThrow || intent.Action == ActionCloseDoor {
		dir, err := r.ReadKey()
		if err != nil {
			return Intent{}, err
		}
		return intent.WithDirection(dir), nil
	}
	return intent, nil
}

// ReadKey reads a single key in raw mode and returns its code
func (r *Reader) ReadKey() (string, error) {
	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(r.fd, oldState)

	b, err := r.in.ReadByte()
	if err != nil {
		return "", err
	}
	switch b {
	case 3:
		return "", ErrInterrupted
	case 0x1b:
		return r.readEscape()
	case '\r', '\n':
		return "", nil
	}
	return string(b), nil
}

// readEscape decodes what follows an ESC byte. A lone ESC is "escape";
// unknown sequences are discarded.
func (r *Reader) readEscape() (string, error) {
	if r.in.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := r.in.ReadByte()
	if err != nil {
		return "", err
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	b3, err := r.in.ReadByte()
	if err != nil {
		return "", err
	}
	return arrowCodes[b3], nil
}
