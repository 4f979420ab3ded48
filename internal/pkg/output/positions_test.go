package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "text", want: FormatText},
		{name: "JSON", want: FormatJSON},
		{name: " yaml ", want: FormatYAML},
		{name: "csv", wantErr: true},
		{name: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatPositions(t *testing.T) {
	assert.Equal(t, "3 6 7 11", FormatPositions([]int{3, 6, 7, 11}))
	assert.Equal(t, "0", FormatPositions([]int{0}))
	assert.Equal(t, "", FormatPositions(nil))
}

func TestPrinter_Text(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatText, false)

	require.NoError(t, printer.Print(Result{Pattern: "a?c?", Positions: []int{3, 6, 7, 11}}))
	require.NoError(t, printer.Print(Result{Pattern: "zz"}))

	assert.Equal(t, "3 6 7 11\n\n", buf.String())
}

func TestPrinter_JSON(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, FormatJSON, pretty)

		require.NoError(t, printer.Print(Result{Pattern: "a?", TextSize: 5}))

		var decoded Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, Result{Pattern: "a?", TextSize: 5, Positions: []int{}}, decoded)
		assert.Contains(t, buf.String(), `"positions"`)
	}
}

func TestPrinter_YAML(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, FormatYAML, false)

	require.NoError(t, printer.Print(Result{Pattern: "a?c?", TextSize: 7, Positions: []int{6}}))

	var decoded Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, Result{Pattern: "a?c?", TextSize: 7, Positions: []int{6}}, decoded)
}

func TestPrinter_UnknownFormat(t *testing.T) {
	printer := NewPrinter(&bytes.Buffer{}, Format("xml"), false)
	assert.ErrorIs(t, printer.Print(Result{}), ErrUnknownFormat)
}
