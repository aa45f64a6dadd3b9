package svgcheck

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Files matched by the patterns
	FilesSelected   int // Files kept for validation
	FilesSkipped    int // Non-SVG or gitignored matches
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isSVGFile checks the extension, case-insensitively.
func isSVGFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// shouldSkipFile determines if a glob match should be excluded.
//
// Two-layer filtering:
// 1. Extension check: only .svg files are validated
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if !isSVGFile(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are not affected by the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// isGlob reports whether pattern contains doublestar meta characters.
func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// ExpandPaths turns file paths and glob patterns into an ordered, deduplicated
// list of SVG files.
//
// Literal paths are kept as given and must exist; the caller asked for them
// explicitly, so they bypass filtering. Glob matches are filtered by
// shouldSkipFile.
func ExpandPaths(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		if !isGlob(pattern) {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, stats, errors.Wrapf(err, "path %s", pattern)
			}
			if info.IsDir() {
				return nil, stats, errors.Newf("path %s is a directory, use a glob such as %s/**/*.svg", pattern, pattern)
			}
			stats.FilesDiscovered++
			if !seen[pattern] {
				files = append(files, pattern)
				seen[pattern] = true
				stats.FilesSelected++
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, errors.Wrapf(err, "glob %s", pattern)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			seen[match] = true
			stats.FilesSelected++
		}
	}

	return files, stats, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
