package render

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/quinnoshea/claude-builder/internal/detect"
)

// writeUserTemplate creates a user template and optional YAML sidecar.
func writeUserTemplate(t *testing.T, dir, name, body, meta string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+templateSuffix), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if meta != "" {
		if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(meta), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadCatalog_BuiltinsOnly(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	docs := catalog.List()
	if len(docs) != 2 {
		t.Fatalf("List() = %d documents, want 2", len(docs))
	}
	if docs[0].Name != "devops" || docs[1].Name != "mlops" {
		t.Errorf("List() order = [%s %s], want [devops mlops]", docs[0].Name, docs[1].Name)
	}
	for _, doc := range docs {
		if !doc.BuiltIn {
			t.Errorf("document %s should be marked built-in", doc.Name)
		}
		if len(doc.Tools) == 0 {
			t.Errorf("document %s declares no tool keys", doc.Name)
		}
	}
}

func TestLoadCatalog_MissingTemplatesDir(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v for absent dir", err)
	}
	if len(catalog.List()) != 2 {
		t.Errorf("List() = %d documents, want 2 built-ins", len(catalog.List()))
	}
}

func TestLoadCatalog_UserTemplateWithSidecar(t *testing.T) {
	tmplDir := t.TempDir()
	body := `# Platform Notes for {{ .ProjectName }}
{{- with .Tool "terraform" }}

## {{ .DisplayName }}

{{ template "toolHeader" . }}

{{ template "toolFiles" . }}

{{ template "toolRecommendations" (recsOr . "Keep modules small.") }}
{{- end }}
`
	meta := `title: Platform Notes
description: Internal platform guidance
domain: devops
tools: [terraform]
`
	writeUserTemplate(t, tmplDir, "platform", body, meta)

	catalog, err := LoadCatalog(tmplDir)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	doc, ok := catalog.Get("platform")
	if !ok {
		t.Fatal("user template not discovered")
	}
	if doc.Title != "Platform Notes" || doc.Domain != "devops" {
		t.Errorf("sidecar metadata not applied: %+v", doc)
	}
	if doc.BuiltIn {
		t.Error("user template marked built-in")
	}
	if len(doc.Tools) != 1 || doc.Tools[0] != "terraform" {
		t.Errorf("Tools = %v, want [terraform]", doc.Tools)
	}

	// User templates share the macro library.
	profile := detect.NewProfile()
	profile.Add(&detect.ToolDetection{
		Key:         "terraform",
		DisplayName: "Terraform",
		Confidence:  detect.ConfidenceHigh,
		Score:       score(15),
	})

	got, err := Render(doc, profile, "sample")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(got.Markdown, "(no representative files captured yet)") {
		t.Errorf("macro library not available to user template:\n%s", got.Markdown)
	}
	if !strings.Contains(got.Markdown, "- Keep modules small.") {
		t.Errorf("user template defaults not rendered:\n%s", got.Markdown)
	}
}

func TestLoadCatalog_UserTemplateCannotShadowBuiltin(t *testing.T) {
	tmplDir := t.TempDir()
	writeUserTemplate(t, tmplDir, "devops", "# Impostor", "")

	catalog, err := LoadCatalog(tmplDir)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	doc, ok := catalog.Get("devops")
	if !ok {
		t.Fatal("devops document missing")
	}
	if !doc.BuiltIn {
		t.Error("user template shadowed a built-in document")
	}
}

func TestLoadCatalog_BrokenUserTemplateSkipped(t *testing.T) {
	tmplDir := t.TempDir()
	writeUserTemplate(t, tmplDir, "bad", "{{ unclosed", "")
	writeUserTemplate(t, tmplDir, "good", "# Fine", "")

	catalog, err := LoadCatalog(tmplDir)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	if _, ok := catalog.Get("good"); !ok {
		t.Error("valid user template not loaded")
	}
	docs := catalog.List()
	for _, doc := range docs {
		if doc.Name == "bad" {
			t.Error("unparseable template should be skipped")
		}
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if _, ok := catalog.Get("nope"); ok {
		t.Error("Get() should report unknown documents")
	}
}

func TestCatalog_GetEscapingNameStaysInDir(t *testing.T) {
	tmplDir := t.TempDir()

	// A file outside the templates dir must not be reachable via a
	// crafted document name.
	outside := filepath.Join(filepath.Dir(tmplDir), "outside"+templateSuffix)
	if err := os.WriteFile(outside, []byte("# Outside"), 0644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(tmplDir)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	if _, ok := catalog.Get("../outside"); ok {
		t.Error("Get() resolved a template outside the templates dir")
	}
}

func TestCatalog_GetConcurrentLazyLoad(t *testing.T) {
	tmplDir := t.TempDir()

	catalog, err := LoadCatalog(tmplDir)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	// Templates created after the catalog was built are only reachable
	// through Get's lazy load, which parallel generation hits from
	// several goroutines at once.
	names := []string{"alpha", "beta", "gamma", "delta"}
	for _, name := range names {
		writeUserTemplate(t, tmplDir, name, "# "+name+" for {{ .ProjectName }}\n", "")
	}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, ok := catalog.Get(name)
			if !ok {
				t.Errorf("Get(%q) failed under concurrent load", name)
				return
			}
			if doc.Name != name {
				t.Errorf("Get(%q) returned document %q", name, doc.Name)
			}
		}()
	}
	wg.Wait()

	if got := len(catalog.List()); got != 2+len(names) {
		t.Errorf("List() = %d documents after concurrent loads, want %d", got, 2+len(names))
	}
}
