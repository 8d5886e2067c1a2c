package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// foldVariadicFlag rewrites "--name a b c" into "--name=a --name=b --name=c".
// Values run until the next token starting with "--" or the end of args.
func foldVariadicFlag(args []string, name string) []string {
	flag := "--" + name
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] != flag {
			out = append(out, args[i])
			continue
		}
		j := i + 1
		for ; j < len(args) && !strings.HasPrefix(args[j], "--"); j++ {
			out = append(out, flag+"="+args[j])
		}
		i = j - 1
	}
	return out
}

// resolveFiles expands each pattern. A pattern that matches nothing, or
// is malformed, is kept as a literal path so the read reports it.
// Wildcards skip hidden entries unless the pattern names them with a
// leading dot.
func resolveFiles(fs afero.Fs, patterns []string) []string {
	var files []string
	for _, p := range patterns {
		matches, _ := afero.Glob(fs, p)
		var visible []string
		for _, m := range matches {
			if !hidden(p, m) {
				visible = append(visible, m)
			}
		}
		if len(visible) == 0 {
			files = append(files, p)
			continue
		}
		files = append(files, visible...)
	}
	return files
}

// hidden reports whether match has a dot-prefixed path element that the
// corresponding pattern element does not spell out.
func hidden(pattern, match string) bool {
	pe := strings.Split(filepath.ToSlash(pattern), "/")
	me := strings.Split(filepath.ToSlash(match), "/")
	if len(pe) != len(me) {
		return false
	}
	for i := range me {
		if strings.HasPrefix(me[i], ".") && !strings.HasPrefix(pe[i], ".") {
			return true
		}
	}
	return false
}

// anyExists reports whether at least one path names an existing file.
func anyExists(fs afero.Fs, paths []string) bool {
	for _, p := range paths {
		if info, err := fs.Stat(p); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
