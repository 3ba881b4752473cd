package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
	"github.com/theScottyJam/BuildlessTypeScript/internal/scan"
)

var spansCmd = &cobra.Command{
	Use:   "spans <file>",
	Short: "List the marker-comment spans of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpans,
}

func runSpans(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	rec := comment.NewRecorder(src)
	s := scan.New(src, rec)
	for {
		if tok := s.Next(); tok.Kind == scan.EOF {
			break
		}
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	warn := color.New(color.FgRed)
	bold.Fprintf(out, "%-8s %-8s %-7s %-8s %s\n", "OPEN", "COLON", "COLONS", "CLOSE", "NOTES")
	spans := rec.Spans()
	for _, sp := range spans {
		notes := ""
		if sp.ContainedInnerOpener {
			notes = "inner opener"
		}
		if sp.Unterminated {
			if notes != "" {
				notes += ", "
			}
			notes += warn.Sprint("unterminated")
		}
		fmt.Fprintf(out, "%-8d %-8d %-7d %-8d %s\n", sp.Open, sp.ColonOffset, sp.ColonCount, sp.Close, notes)
	}
	if len(spans) == 0 {
		fmt.Fprintln(out, "no marker comments")
	}

	if s.Unterminated() && cfg.FailOnUnterminated {
		return fmt.Errorf("%s: unterminated marker comment", args[0])
	}
	return nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
