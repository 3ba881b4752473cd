package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/theScottyJam/BuildlessTypeScript/internal/comment"
	"github.com/theScottyJam/BuildlessTypeScript/internal/scan"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream the comment-aware scanner produces",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	kindColor := color.New(color.FgCyan)
	markColor := color.New(color.FgGreen)

	s := scan.New(src, comment.NewRecorder(src))
	for {
		tok := s.Next()
		if tok.Kind == scan.EOF {
			break
		}
		mark := ""
		if s.InMarker() {
			mark = markColor.Sprint(" [marker]")
		}
		fmt.Fprintf(out, "%5d..%-5d %-9s %q%s\n", tok.Start, tok.End, kindColor.Sprint(tok.Kind.String()), tok.Value, mark)
	}

	if s.Unterminated() {
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: %s: unterminated marker comment\n", args[0])
		if cfg.FailOnUnterminated {
			return fmt.Errorf("%s: unterminated marker comment", args[0])
		}
	}
	return nil
}
