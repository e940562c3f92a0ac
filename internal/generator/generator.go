package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/quinnoshea/claude-builder/internal/config"
	"github.com/quinnoshea/claude-builder/internal/detect"
	builderrors "github.com/quinnoshea/claude-builder/internal/errors"
	"github.com/quinnoshea/claude-builder/internal/logging"
	"github.com/quinnoshea/claude-builder/internal/render"
	"github.com/quinnoshea/claude-builder/internal/workspace"
)

// Result describes the outcome for one requested document.
type Result struct {
	// Document is the catalog name that was requested.
	Document string

	// Path is the written file path. Empty when the document failed.
	Path string

	// Tools are the tool keys that contributed a section.
	Tools []string

	// Err is the per-document failure, if any. One failing document
	// never blocks the others.
	Err error
}

// Generator runs the full pipeline: analyze a project, render the
// configured documents, and write them to the output directory.
type Generator struct {
	cfg  *config.Config
	root string
}

// New creates a Generator for the given project root.
func New(root string, cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, root: root}
}

// Analyze runs tool detection with the configured limits.
func (g *Generator) Analyze() (*detect.Profile, error) {
	analyzer := detect.NewAnalyzer(g.root,
		detect.WithMaxFiles(g.cfg.MaxFilesPerTool),
		detect.WithExcludeDirs(g.cfg.ExcludeDirs),
	)
	profile, err := analyzer.Analyze()
	if err != nil {
		return nil, builderrors.AnalyzeFailed(g.root, err)
	}
	return profile, nil
}

// Run analyzes the project and generates the named documents (or the
// configured set when names is empty). Documents render independently
// and in parallel; each Result carries its own error so a bad template
// cannot corrupt or suppress the other documents. Results come back in
// request order.
func (g *Generator) Run(names []string) ([]Result, error) {
	if len(names) == 0 {
		names = g.cfg.Documents
	}

	profile, err := g.Analyze()
	if err != nil {
		return nil, err
	}

	catalog, err := render.LoadCatalog(g.templatesDir())
	if err != nil {
		return nil, builderrors.ConfigError("failed to load template catalog", err)
	}

	outDir := g.outputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, builderrors.WriteFailed(outDir, err)
	}

	projectName := filepath.Base(g.root)

	results := make([]Result, len(names))
	var mu sync.Mutex

	var eg errgroup.Group
	for i, name := range names {
		eg.Go(func() error {
			res := g.generateOne(catalog, profile, projectName, outDir, name)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	// The group never returns an error; failures live in the results.
	_ = eg.Wait()

	if g.cfg.GitExclude {
		g.excludeFromGit(results)
	}

	return results, nil
}

// generateOne renders and writes a single document.
func (g *Generator) generateOne(catalog *render.Catalog, profile *detect.Profile, projectName, outDir, name string) Result {
	doc, ok := catalog.Get(name)
	if !ok {
		return Result{Document: name, Err: builderrors.TemplateNotFound(name)}
	}

	rendered, err := render.Render(doc, profile, projectName)
	if err != nil {
		return Result{Document: name, Err: builderrors.RenderFailed(name, err)}
	}

	path := filepath.Join(outDir, name+".md")
	if err := writeAtomic(path, []byte(rendered.Markdown)); err != nil {
		return Result{Document: name, Err: builderrors.WriteFailed(path, err)}
	}

	logging.Debug("document generated", "document", name, "path", path, "tools", len(rendered.Tools))

	return Result{Document: name, Path: path, Tools: rendered.Tools}
}

// writeAtomic writes via a temp file and rename so a failing render
// never leaves a truncated document behind.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// excludeFromGit appends the generated paths to .git/info/exclude.
// Failures are warnings: generation already succeeded.
func (g *Generator) excludeFromGit(results []Result) {
	if !workspace.IsGitRepo(g.root) {
		return
	}

	var paths []string
	for _, res := range results {
		if res.Err != nil || res.Path == "" {
			continue
		}
		rel, err := filepath.Rel(g.root, res.Path)
		if err != nil || filepath.IsAbs(rel) || rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
			continue
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return
	}
	if err := workspace.AddToExclude(g.root, paths); err != nil {
		logging.Warn("failed to update .git/info/exclude", "error", err)
	}
}

func (g *Generator) outputDir() string {
	if filepath.IsAbs(g.cfg.OutputDir) {
		return g.cfg.OutputDir
	}
	return filepath.Join(g.root, g.cfg.OutputDir)
}

func (g *Generator) templatesDir() string {
	if g.cfg.TemplatesDir == "" {
		return ""
	}
	if filepath.IsAbs(g.cfg.TemplatesDir) {
		return g.cfg.TemplatesDir
	}
	return filepath.Join(g.root, g.cfg.TemplatesDir)
}

// Describe returns a one-line human summary for a result.
func Describe(res Result) string {
	if res.Err != nil {
		return fmt.Sprintf("%s: %v", res.Document, res.Err)
	}
	return fmt.Sprintf("%s: %s (%d tools)", res.Document, res.Path, len(res.Tools))
}
