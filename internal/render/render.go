package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/quinnoshea/claude-builder/internal/detect"
)

//go:embed templates/*.md.tmpl
var templatesFS embed.FS

var baseTemplates *template.Template

func init() {
	baseTemplates = template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.md.tmpl"),
	)
}

var templateFuncs = template.FuncMap{
	"joinStrings": strings.Join,
	"capitalize":  capitalize,
	"formatScore": formatScore,
	"recsOr":      recsOr,
}

// capitalize upper-cases the first letter, used for confidence buckets.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatScore renders a detection score with exactly one decimal place.
func formatScore(score *float64) string {
	return fmt.Sprintf("%.1f", *score)
}

// recsOr returns the detection's own recommendations, or the template's
// per-tool defaults when the detection carries none.
func recsOr(d *detect.ToolDetection, defaults ...string) []string {
	if len(d.Recommendations) > 0 {
		return d.Recommendations
	}
	return defaults
}

// RenderedDocument is the output of rendering one document.
type RenderedDocument struct {
	// Name is the catalog name of the document (e.g. "devops").
	Name string

	// Markdown is the full rendered document.
	Markdown string

	// Tools lists the tool keys that contributed a section, in the
	// order the template referenced them.
	Tools []string
}

// docContext is the data root passed to document templates. Tool lookups
// go through it so the renderer can report which tools contributed.
type docContext struct {
	ProjectName string

	profile *detect.Profile
	used    []string
}

// Tool returns the detection for a key, or nil when the tool was not
// detected so that {{with}} skips the section. Found keys are recorded.
func (c *docContext) Tool(key string) *detect.ToolDetection {
	d, ok := c.profile.Lookup(key)
	if !ok {
		return nil
	}
	c.used = append(c.used, key)
	return d
}

// HasAny reports whether any of the keys was detected, without recording
// a contribution. Used for group headings.
func (c *docContext) HasAny(keys ...string) bool {
	for _, key := range keys {
		if _, ok := c.profile.Lookup(key); ok {
			return true
		}
	}
	return false
}

// Render executes a document template against a detection profile.
// Rendering is pure: the same profile and template always produce
// byte-identical Markdown. A template error (e.g. an undefined variable
// path) fails only this document; nothing partial is returned.
func Render(doc *Document, profile *detect.Profile, projectName string) (*RenderedDocument, error) {
	ctx := &docContext{
		ProjectName: projectName,
		profile:     profile,
	}

	var buf bytes.Buffer
	if err := doc.tmpl.ExecuteTemplate(&buf, doc.templateName, ctx); err != nil {
		return nil, fmt.Errorf("template %s: %w", doc.Name, err)
	}

	return &RenderedDocument{
		Name:     doc.Name,
		Markdown: buf.String(),
		Tools:    ctx.used,
	}, nil
}
