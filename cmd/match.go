package cmd

import (
	"fmt"
	"time"

	"github.com/endorses/wildmatch/internal/pkg/cmdutil"
	"github.com/endorses/wildmatch/internal/pkg/filtering"
	"github.com/endorses/wildmatch/internal/pkg/input"
	"github.com/endorses/wildmatch/internal/pkg/logger"
	"github.com/endorses/wildmatch/internal/pkg/metrics"
	"github.com/endorses/wildmatch/internal/pkg/output"
	"github.com/endorses/wildmatch/internal/pkg/wildcard"
	"github.com/spf13/cobra"
)

const (
	defaultWildcard    = "?"
	defaultFormat      = "text"
	defaultLogLevel    = "warn"
	defaultMaxTextSize = "64M"
)

type matchOptions struct {
	pattern         string
	wildcard        string
	format          string
	pretty          bool
	maxTextSize     string
	metricsTextfile string
	logLevel        string
}

func runMatch(cmd *cobra.Command, opts *matchOptions) error {
	if err := logger.SetLevel(cmdutil.GetStringConfigOr("log.level", opts.logLevel, defaultLogLevel)); err != nil {
		return err
	}

	wc, err := filtering.ParseWildcard(cmdutil.GetStringConfigOr("wildcard", opts.wildcard, defaultWildcard))
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cmdutil.GetStringConfigOr("format", opts.format, defaultFormat))
	if err != nil {
		return err
	}

	maxTextSize, err := cmdutil.ParseSizeString(cmdutil.GetStringConfigOr("input.max_text_size", opts.maxTextSize, defaultMaxTextSize))
	if err != nil {
		return fmt.Errorf("invalid max text size: %w", err)
	}

	pattern, text, err := readInput(cmd, opts.pattern, int(maxTextSize))
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()

	matcher := wildcard.BuildFor(pattern, wc)
	collector.ObserveMatcher(matcher.Pieces(), matcher.NodeCount())

	started := time.Now()
	rejected := !matcher.MayMatch([]byte(text))
	positions := matcher.FindAll([]byte(text))
	elapsed := time.Since(started)
	collector.ObserveScan(len(text), len(positions), rejected, elapsed)

	logger.Info("Scan completed",
		"pattern_length", len(pattern),
		"text_size", len(text),
		"matches", len(positions),
		"prefilter_rejected", rejected,
		"duration", elapsed)

	pretty := cmdutil.GetBoolConfig("output.pretty", opts.pretty) || output.IsTTY()
	printer := output.NewPrinter(cmd.OutOrStdout(), format, pretty)
	if err := printer.Print(output.Result{
		Pattern:   pattern,
		TextSize:  len(text),
		Positions: positions,
	}); err != nil {
		return err
	}

	if path := cmdutil.GetStringConfig("metrics.textfile", opts.metricsTextfile); path != "" {
		if err := collector.WriteTextfile(path); err != nil {
			return err
		}
		logger.Debug("Wrote metrics textfile", "path", path)
	}

	return nil
}

// readInput returns the pattern and the text. The pattern comes from the
// flag when given, otherwise it is the first token of stdin.
func readInput(cmd *cobra.Command, patternFlag string, maxTextSize int) (string, string, error) {
	if patternFlag != "" {
		if err := filtering.ValidatePattern(patternFlag); err != nil {
			return "", "", err
		}
		tokens, err := input.ReadTokens(cmd.InOrStdin(), 1, maxTextSize)
		if err != nil {
			return "", "", fmt.Errorf("failed to read text: %w", err)
		}
		return patternFlag, tokens[0], nil
	}

	pattern, text, err := input.ReadPatternAndText(cmd.InOrStdin(), maxTextSize)
	if err != nil {
		return "", "", fmt.Errorf("failed to read pattern and text: %w", err)
	}
	return pattern, text, nil
}
