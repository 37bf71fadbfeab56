// Package secretscan detects API keys accidentally hardcoded in source files,
// a last line of defense before a credential reaches version control.
package secretscan

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Patterns that look like committed credentials. These intentionally match
// literal keys, not references to environment variables.
var patterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"openai-key-literal", regexp.MustCompile(`sk-[a-zA-Z0-9]{30,}`)},
	{"api-key-assignment", regexp.MustCompile(`(?i)api[_-]?key\s*[:=]\s*["'][a-zA-Z0-9]{20,}["']`)},
	{"secret-key-assignment", regexp.MustCompile(`(?i)secret[_-]?key\s*[:=]\s*["'][a-zA-Z0-9]{20,}["']`)},
}

var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
	"venv":         true,
	"__pycache__":  true,
}

// Finding is one file that matched a credential pattern.
type Finding struct {
	Path    string
	Pattern string
}

// Scan walks root and reports source files containing what looks like a
// hardcoded credential. Unreadable files are skipped; a file is reported at
// most once, for the first pattern it matches.
func Scan(root string) ([]Finding, error) {
	var findings []Finding

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !isSourceFile(d.Name()) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		for _, p := range patterns {
			if p.re.Match(content) {
				findings = append(findings, Finding{Path: path, Pattern: p.name})
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return findings, nil
}

func isSourceFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".go", ".py", ".sh", ".js", ".ts":
		return true
	}
	return false
}
