// Package prompt reads interactive answers from a line-oriented input source.
//
// Any io.Reader works, so tests feed canned answers with strings.NewReader
// instead of a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EndSentinel terminates multi-line input when typed alone on a line.
const EndSentinel = "END"

// Prompter writes prompts to w and reads answers from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing prompts to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// readLine returns the next line without its line ending. If EOF occurs
// after some input was read, the partial line is returned with a nil error.
func (p *Prompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask prints label and returns the trimmed answer.
// End of input yields an empty answer.
func (p *Prompter) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(p.w, label); err != nil {
		return "", err
	}
	line, err := p.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadUntil accumulates lines until one equals sentinel after trimming, or
// input ends. Lines are returned verbatim and joined with '\n'.
func (p *Prompter) ReadUntil(sentinel string) (string, error) {
	var lines []string
	for {
		line, err := p.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if strings.TrimSpace(line) == sentinel {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// Confirm prints label and reports whether the answer is "y"
// (case-insensitive). Anything else, including end of input, is a no.
func (p *Prompter) Confirm(label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}
