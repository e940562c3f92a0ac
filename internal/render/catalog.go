package render

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"text/template"

	securejoin "github.com/cyphar/filepath-securejoin"
	"gopkg.in/yaml.v3"

	"github.com/quinnoshea/claude-builder/internal/logging"
)

const templateSuffix = ".md.tmpl"

// Document is a renderable catalog entry.
type Document struct {
	// Name is the catalog key, also the output file stem.
	Name string

	// Title and Description are shown in catalog listings.
	Title       string
	Description string

	// Domain groups documents for listing (devops, mlops, custom).
	Domain string

	// Tools are the tool keys the template references.
	Tools []string

	// BuiltIn distinguishes embedded documents from user templates.
	BuiltIn bool

	tmpl         *template.Template
	templateName string
}

// builtinDocuments describes the embedded templates. Order here is the
// listing order.
var builtinDocuments = []Document{
	{
		Name:        "devops",
		Title:       "DevOps Guidance",
		Description: "Infrastructure, deployment, observability and security tooling",
		Domain:      "devops",
		BuiltIn:     true,
		Tools: []string{
			"terraform", "kubernetes", "helm", "docker",
			"prometheus", "grafana", "opentelemetry",
			"vault", "tfsec", "trivy",
		},
	},
	{
		Name:        "mlops",
		Title:       "MLOps Guidance",
		Description: "Data pipelines, model lifecycle and data governance tooling",
		Domain:      "mlops",
		BuiltIn:     true,
		Tools: []string{
			"airflow", "prefect", "dagster", "dbt", "dvc",
			"mlflow", "kubeflow", "feast", "great_expectations",
		},
	},
}

// sidecar is the optional YAML metadata next to a user template
// (<name>.yaml alongside <name>.md.tmpl).
type sidecar struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Domain      string   `yaml:"domain"`
	Tools       []string `yaml:"tools"`
}

// Catalog is the set of renderable documents: the built-ins plus any
// user templates discovered in a templates directory. Safe for
// concurrent use; Get may lazily load documents from multiple
// goroutines at once.
type Catalog struct {
	templatesDir string

	mu    sync.Mutex
	docs  map[string]*Document
	order []string
}

// LoadCatalog builds the catalog. templatesDir may be empty or absent;
// only a present-but-unreadable directory is an error.
func LoadCatalog(templatesDir string) (*Catalog, error) {
	c := &Catalog{
		templatesDir: templatesDir,
		docs:         make(map[string]*Document),
	}

	for i := range builtinDocuments {
		doc := builtinDocuments[i]
		doc.tmpl = baseTemplates
		doc.templateName = doc.Name + templateSuffix
		c.docs[doc.Name] = &doc
		c.order = append(c.order, doc.Name)
	}

	if templatesDir == "" {
		return c, nil
	}

	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read templates dir %s: %w", templatesDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), templateSuffix))
	}
	sort.Strings(names)

	for _, name := range names {
		if _, exists := c.docs[name]; exists {
			logging.Warn("user template shadows built-in document, skipping", "name", name)
			continue
		}
		doc, err := c.loadUserDocument(name)
		if err != nil {
			// A broken user template must not take down the catalog.
			logging.Warn("skipping unusable user template", "name", name, "error", err)
			continue
		}
		c.docs[name] = doc
		c.order = append(c.order, name)
	}

	return c, nil
}

// loadUserDocument parses a user template and its optional sidecar.
// Paths are resolved with SecureJoin so a crafted document name cannot
// escape the templates directory.
func (c *Catalog) loadUserDocument(name string) (*Document, error) {
	tmplPath, err := securejoin.SecureJoin(c.templatesDir, name+templateSuffix)
	if err != nil {
		return nil, fmt.Errorf("invalid template name %q: %w", name, err)
	}

	body, err := os.ReadFile(tmplPath)
	if err != nil {
		return nil, err
	}

	tmpl, err := baseTemplates.Clone()
	if err != nil {
		return nil, err
	}
	if _, err := tmpl.New(name + templateSuffix).Parse(string(body)); err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	doc := &Document{
		Name:         name,
		Title:        name,
		Domain:       "custom",
		tmpl:         tmpl,
		templateName: name + templateSuffix,
	}

	metaPath, err := securejoin.SecureJoin(c.templatesDir, name+".yaml")
	if err != nil {
		return nil, err
	}
	if data, err := os.ReadFile(metaPath); err == nil {
		var meta sidecar
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return nil, fmt.Errorf("failed to parse sidecar for %s: %w", name, err)
		}
		if meta.Title != "" {
			doc.Title = meta.Title
		}
		doc.Description = meta.Description
		if meta.Domain != "" {
			doc.Domain = meta.Domain
		}
		doc.Tools = meta.Tools
	}

	return doc, nil
}

// Get returns the document with the given name. Unknown names fall back
// to a lazy load from the templates directory, so a document can be
// requested by name without having been present at catalog build time.
func (c *Catalog) Get(name string) (*Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if doc, ok := c.docs[name]; ok {
		return doc, true
	}
	if c.templatesDir == "" {
		return nil, false
	}
	doc, err := c.loadUserDocument(name)
	if err != nil {
		return nil, false
	}
	c.docs[name] = doc
	c.order = append(c.order, name)
	return doc, true
}

// List returns the documents in catalog order: built-ins first, then
// user templates sorted by name.
func (c *Catalog) List() []*Document {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs := make([]*Document, 0, len(c.order))
	for _, name := range c.order {
		docs = append(docs, c.docs[name])
	}
	return docs
}
