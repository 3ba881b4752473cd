package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/theScottyJam/BuildlessTypeScript/internal/convert"
)

var (
	unwrapInPlace bool
	unwrapOut     string
)

var unwrapCmd = &cobra.Command{
	Use:   "unwrap <file-or-dir>",
	Short: "Convert marker comments into direct TypeScript syntax",
	Long: `Unwrap removes the marker-comment wrappers from a file: "/*: T */"
becomes ": T" and the opener and closer of "/*:: ... */" are dropped while
the body stays in place. Given a directory, every file with a configured
extension is converted into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnwrap,
}

func init() {
	unwrapCmd.Flags().BoolVarP(&unwrapInPlace, "write", "w", false, "rewrite the file in place")
	unwrapCmd.Flags().StringVarP(&unwrapOut, "output", "o", "", "output file (default: stdout) or directory")
}

func runUnwrap(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	if info.IsDir() {
		outDir := unwrapOut
		if outDir == "" {
			outDir = cfg.OutDir
		}
		perFile, err := convert.UnwrapDir(target, outDir, cfg.Extensions)
		if err != nil {
			return err
		}
		for _, fw := range perFile {
			for _, w := range fw.Warnings {
				printWarning(cmd, fmt.Sprintf("%s: %s", fw.File, w))
			}
		}
		if len(perFile) > 0 && cfg.FailOnUnterminated {
			return fmt.Errorf("%d file(s) with unterminated marker comments", len(perFile))
		}
		return nil
	}

	out, warns, err := convert.UnwrapFile(target)
	if err != nil {
		return err
	}
	for _, w := range warns {
		printWarning(cmd, fmt.Sprintf("%s: %s", target, w))
	}
	if len(warns) > 0 && cfg.FailOnUnterminated {
		return fmt.Errorf("%s: unterminated marker comment", target)
	}
	return writeResult(cmd, target, out, unwrapInPlace, unwrapOut)
}

func printWarning(cmd *cobra.Command, msg string) {
	color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: %s\n", msg)
}

func writeResult(cmd *cobra.Command, target, out string, inPlace bool, outPath string) error {
	switch {
	case inPlace:
		return os.WriteFile(target, []byte(out), 0o644)
	case outPath != "":
		return os.WriteFile(outPath, []byte(out), 0o644)
	default:
		_, err := fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}
}
