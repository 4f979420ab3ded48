package output

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how match positions are rendered.
type Format string

const (
	// FormatText is a single line of space-separated positions.
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, name)
}

// Result is the structured form of one matching run.
type Result struct {
	Pattern   string `json:"pattern" yaml:"pattern"`
	TextSize  int    `json:"text_size" yaml:"text_size"`
	Positions []int  `json:"positions" yaml:"positions"`
}

// Printer writes results in a fixed format.
type Printer struct {
	w      io.Writer
	format Format
	pretty bool
}

// NewPrinter creates a printer. pretty only affects JSON output.
func NewPrinter(w io.Writer, format Format, pretty bool) *Printer {
	return &Printer{w: w, format: format, pretty: pretty}
}

// Print writes result followed by a newline.
func (p *Printer) Print(result Result) error {
	if result.Positions == nil {
		result.Positions = []int{}
	}

	var data []byte
	var err error
	switch p.format {
	case FormatText:
		data = []byte(FormatPositions(result.Positions))
	case FormatJSON:
		data, err = MarshalJSONPretty(result, p.pretty)
	case FormatYAML:
		data, err = yaml.Marshal(result)
		data = []byte(strings.TrimSuffix(string(data), "\n"))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, p.format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if _, err := fmt.Fprintf(p.w, "%s\n", data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// FormatPositions joins positions with single spaces.
func FormatPositions(positions []int) string {
	var sb strings.Builder
	for i, pos := range positions {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(pos))
	}
	return sb.String()
}
