package detect

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quinnoshea/claude-builder/internal/logging"
)

// Pattern match weights. Directories are the strongest indicator, globs
// next, exact root files weakest.
const (
	dirWeight  = 5.0
	globWeight = 4.0
	fileWeight = 3.0
)

// defaultIgnoreDirs are directory names skipped while walking the tree.
var defaultIgnoreDirs = []string{
	".git", ".svn", ".hg",
	"node_modules", "vendor",
	"__pycache__", ".pytest_cache", ".tox", "venv", ".venv",
	"target", "dist", "out", ".gradle", "obj",
	".idea", ".vscode",
}

// Analyzer detects DevOps and MLOps tooling in a project tree by file
// pattern matching.
type Analyzer struct {
	root       string
	maxFiles   int
	ignoreDirs map[string]bool
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxFiles caps the representative file paths captured per tool.
func WithMaxFiles(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxFiles = n
		}
	}
}

// WithExcludeDirs adds directory names to skip during the walk.
func WithExcludeDirs(dirs []string) Option {
	return func(a *Analyzer) {
		for _, d := range dirs {
			a.ignoreDirs[d] = true
		}
	}
}

// NewAnalyzer creates an Analyzer rooted at the given project directory.
func NewAnalyzer(root string, opts ...Option) *Analyzer {
	a := &Analyzer{
		root:       root,
		maxFiles:   5,
		ignoreDirs: make(map[string]bool, len(defaultIgnoreDirs)),
	}
	for _, d := range defaultIgnoreDirs {
		a.ignoreDirs[d] = true
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze walks the project tree once and scores every known tool.
// Tools detected in more than one category keep the record with the
// higher score.
func (a *Analyzer) Analyze() (*Profile, error) {
	info, err := os.Stat(a.root)
	if err != nil {
		return nil, fmt.Errorf("cannot analyze %s: %w", a.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot analyze %s: not a directory", a.root)
	}

	files, err := a.walk()
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", a.root, err)
	}

	profile := NewProfile()
	for _, cat := range categoryPatterns {
		for _, ps := range cat.tools {
			score, matched := a.scoreTool(ps.patterns, files)
			if score <= 0 {
				continue
			}

			if existing, ok := profile.Lookup(ps.tool); ok && existing.Score != nil && *existing.Score >= score {
				continue
			}

			s := score
			profile.Add(&ToolDetection{
				Key:             ps.tool,
				DisplayName:     DisplayName(ps.tool),
				Category:        cat.category,
				Confidence:      bucketFor(score),
				Score:           &s,
				Files:           matched,
				Recommendations: Recommendations(ps.tool),
			})
		}
	}

	logging.Debug("analysis complete", "root", a.root, "tools", profile.Len(), "files", len(files))

	return profile, nil
}

// walk collects slash-separated relative file paths, skipping ignored
// directories at any depth.
func (a *Analyzer) walk() ([]string, error) {
	var files []string

	err := filepath.WalkDir(a.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries degrade detection quality but must not
			// abort the whole analysis.
			logging.Debug("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != a.root && a.ignoreDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(a.root, path)
		if err != nil {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// scoreTool evaluates one tool's pattern set against the project.
// It returns the aggregate score and up to maxFiles representative
// relative paths, in pattern order.
func (a *Analyzer) scoreTool(patterns, files []string) (float64, []string) {
	var score float64
	matched := make([]string, 0, a.maxFiles)
	seen := make(map[string]bool)

	record := func(rel string) {
		if len(matched) >= a.maxFiles || seen[rel] {
			return
		}
		seen[rel] = true
		matched = append(matched, rel)
	}

	for _, pattern := range patterns {
		switch {
		case strings.Contains(pattern, "/"):
			// Directory or path pattern, relative to the project root.
			rel := strings.TrimSuffix(pattern, "/")
			if _, err := os.Stat(filepath.Join(a.root, filepath.FromSlash(rel))); err == nil {
				score += dirWeight
				record(rel)
			}

		case strings.Contains(pattern, "*"):
			// Glob pattern, matched against file names anywhere in the tree.
			hit := false
			for _, f := range files {
				ok, err := filepath.Match(pattern, baseName(f))
				if err != nil {
					break
				}
				if ok {
					hit = true
					record(f)
					if len(matched) >= a.maxFiles {
						break
					}
				}
			}
			if hit {
				score += globWeight
			}

		default:
			// Exact file, relative to the project root.
			if _, err := os.Stat(filepath.Join(a.root, pattern)); err == nil {
				score += fileWeight
				record(pattern)
			}
		}
	}

	return score, matched
}

func baseName(slashPath string) string {
	if i := strings.LastIndexByte(slashPath, '/'); i >= 0 {
		return slashPath[i+1:]
	}
	return slashPath
}
