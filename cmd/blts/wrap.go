package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/theScottyJam/BuildlessTypeScript/internal/convert"
)

var (
	wrapRangesPath string
	wrapInPlace    bool
	wrapOut        string
)

var wrapCmd = &cobra.Command{
	Use:   "wrap <file>",
	Short: "Wrap declared type-only ranges in marker comments",
	Long: `Wrap converts direct TypeScript syntax into marker comments. Which spans
are type-only is decided by an external parse-tree walk; its findings are
supplied as a YAML sidecar of {start, end} byte ranges.`,
	Args: cobra.ExactArgs(1),
	RunE: runWrap,
}

func init() {
	wrapCmd.Flags().StringVar(&wrapRangesPath, "ranges", "", "YAML file with type-only byte ranges (required)")
	wrapCmd.Flags().BoolVarP(&wrapInPlace, "write", "w", false, "rewrite the file in place")
	wrapCmd.Flags().StringVarP(&wrapOut, "output", "o", "", "output file (default: stdout)")
	_ = wrapCmd.MarkFlagRequired("ranges")
}

type rangesFile struct {
	Ranges []convert.Range `yaml:"ranges"`
}

func runWrap(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	data, err := os.ReadFile(wrapRangesPath)
	if err != nil {
		return fmt.Errorf("reading ranges: %w", err)
	}
	var rf rangesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return fmt.Errorf("parsing ranges: %w", err)
	}

	out, err := convert.Wrap(src, rf.Ranges)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return writeResult(cmd, args[0], out, wrapInPlace, wrapOut)
}
