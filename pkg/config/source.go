package config

import (
	"os"
	"path/filepath"
)

// Origin identifies which candidate produced the resolved file path.
type Origin string

const (
	// OriginOverride means the caller named the file explicitly, via the
	// ENV_FILE variable or the -env-file flag.
	OriginOverride Origin = "override"
	// OriginDevelopment is a .env.dev file in the working directory.
	OriginDevelopment Origin = "development"
	// OriginProduction is a .env file in the working directory.
	OriginProduction Origin = "production"
	// OriginExampleDev is the bundled examples/env.dev fallback.
	OriginExampleDev Origin = "example-dev"
	// OriginExampleProd is the bundled examples/env.prod fallback.
	OriginExampleProd Origin = "example-prod"
)

// Default candidate filenames, checked in strict order when no override is
// given. Only the first existing file is used; later candidates are never
// merged in.
const (
	devFile         = ".env.dev"
	prodFile        = ".env"
	exampleDevFile  = "examples/env.dev"
	exampleProdFile = "examples/env.prod"
)

// Source is the single environment file chosen for this process invocation.
type Source struct {
	Path   string
	Origin Origin
}

// Resolve picks exactly one environment file to load.
//
// When override is non-empty it must point at an existing file; a missing
// override is a *SourceNotFoundError, never a silent fallback to the default
// search order. Otherwise the default candidates are checked relative to dir
// in strict order and the first existing one wins. When nothing exists the
// returned error lists every path that was checked.
//
// Resolve only stats files; it never reads or writes them.
func Resolve(override, dir string) (Source, error) {
	if override != "" {
		path := override
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if !fileExists(path) {
			return Source{}, &SourceNotFoundError{Override: path, Checked: []string{path}}
		}
		return Source{Path: path, Origin: OriginOverride}, nil
	}

	candidates := []struct {
		name   string
		origin Origin
	}{
		{devFile, OriginDevelopment},
		{prodFile, OriginProduction},
		{filepath.FromSlash(exampleDevFile), OriginExampleDev},
		{filepath.FromSlash(exampleProdFile), OriginExampleProd},
	}

	checked := make([]string, 0, len(candidates))
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		if fileExists(path) {
			return Source{Path: path, Origin: c.origin}, nil
		}
		checked = append(checked, path)
	}

	return Source{}, &SourceNotFoundError{Checked: checked}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
