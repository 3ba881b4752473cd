package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileWarnings pairs a file name with the warnings its conversion raised.
type FileWarnings struct {
	File     string
	Warnings []Warning
}

// UnwrapFile unwraps one file and returns the converted text.
func UnwrapFile(path string) (string, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	out, warns := Unwrap(string(data))
	return out, warns, nil
}

// UnwrapDir unwraps every file in dir whose extension is in exts, writing
// results under outDir with the same base name. Files are processed in
// sorted order so reruns are deterministic.
func UnwrapDir(dir, outDir string, exts []string) ([]FileWarnings, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if matchesExt(ent.Name(), exts) {
			files = append(files, ent.Name())
		}
	}
	sort.Strings(files)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	var all []FileWarnings
	for _, name := range files {
		out, warns, err := UnwrapFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, name), []byte(out), 0o644); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(warns) > 0 {
			all = append(all, FileWarnings{File: name, Warnings: warns})
		}
	}
	return all, nil
}

func matchesExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
