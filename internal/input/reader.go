// Package input turns raw lines from stdin or a file into match candidates.
//
// Lines can optionally be cleaned of ANSI escape sequences and reduced to a
// single JSON field before matching. The original line is always retained so
// the accepted candidate can be printed exactly as it arrived.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/tidwall/gjson"

	appErrors "winnow/internal/errors"
	"winnow/internal/fuzzy"
)

// maxLineBytes caps a single input line. The scanner reports an error past
// this instead of growing its buffer without bound.
const maxLineBytes = 1 << 20

// ErrNoCandidates indicates the source produced no usable lines.
var ErrNoCandidates = errors.New("input: no candidates")

// Options control how raw lines become candidates.
type Options struct {
	// StripANSI removes terminal escape sequences from the matched text.
	StripANSI bool

	// JSONField, when non-empty, is a gjson path applied to each line.
	// The field value becomes the matched text. Lines that are not JSON
	// or lack the field are dropped.
	JSONField string
}

// Read consumes r line by line and returns the surviving candidates.
// Trailing carriage returns are stripped so CRLF input behaves like LF.
// Lines that are blank after processing are dropped.
func Read(r io.Reader, opts Options) ([]fuzzy.Candidate, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		candidates []fuzzy.Candidate
		sawLines   bool
	)
	for scanner.Scan() {
		raw := strings.TrimSuffix(scanner.Text(), "\r")
		sawLines = true

		text := raw
		if opts.StripANSI {
			text = ansi.Strip(text)
		}
		if opts.JSONField != "" {
			value := gjson.Get(text, opts.JSONField)
			if !value.Exists() {
				continue
			}
			text = value.String()
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		candidates = append(candidates, fuzzy.Candidate{
			Text:  text,
			Raw:   raw,
			Index: len(candidates),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeReadFailed, fmt.Sprintf("read input: %v", err), err)
	}
	if len(candidates) == 0 {
		if opts.JSONField != "" && sawLines {
			return nil, appErrors.New(appErrors.CodeBadField,
				fmt.Sprintf("field %q matched nothing on input", opts.JSONField), ErrNoCandidates)
		}
		return nil, appErrors.New(appErrors.CodeNoInput, "nothing to pick from", ErrNoCandidates)
	}
	return candidates, nil
}

// Source reads candidates from path, or from stdin when path is "-" or empty.
func Source(path string, opts Options) ([]fuzzy.Candidate, error) {
	if path == "" || path == "-" {
		return Read(os.Stdin, opts)
	}
	//nolint:gosec // G304: The path is the user's own --input argument
	f, err := os.Open(path)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeReadFailed, fmt.Sprintf("open %s: %v", path, err), err)
	}
	defer f.Close()
	return Read(f, opts)
}
