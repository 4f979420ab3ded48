// Package input reads the whitespace-delimited pattern and text tokens the
// command line consumes.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxTokenSize bounds a single token. Texts are read as one token, so
// this is the longest text accepted unless the caller asks for more.
const DefaultMaxTokenSize = 64 * 1024 * 1024

const initialBufferSize = 64 * 1024

// ErrMissingToken is returned when the input ends before all tokens were read.
var ErrMissingToken = errors.New("missing input token")

// ReadTokens reads exactly n whitespace-delimited tokens of at most
// maxTokenSize bytes from r. Anything after the n-th token is ignored.
func ReadTokens(r io.Reader, n, maxTokenSize int) ([]string, error) {
	if maxTokenSize <= 0 {
		maxTokenSize = DefaultMaxTokenSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(initialBufferSize, maxTokenSize)), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	tokens := make([]string, 0, n)
	for len(tokens) < n && scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read token %d: %w", len(tokens)+1, err)
	}
	if len(tokens) < n {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrMissingToken, n, len(tokens))
	}

	return tokens, nil
}

// ReadPatternAndText reads the pattern and then the text.
func ReadPatternAndText(r io.Reader, maxTokenSize int) (pattern, text string, err error) {
	tokens, err := ReadTokens(r, 2, maxTokenSize)
	if err != nil {
		return "", "", err
	}
	return tokens[0], tokens[1], nil
}
