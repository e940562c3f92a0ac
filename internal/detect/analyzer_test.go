package detect

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeFiles creates the given relative paths under root. Paths ending in
// "/" become directories.
func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if len(p) > 0 && p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAnalyze_DetectTerraform(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "main.tf", "variables.tf", "outputs.tf", ".terraform/")

	profile, err := NewAnalyzer(tmpDir).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	d, ok := profile.Lookup("terraform")
	if !ok {
		t.Fatal("expected terraform to be detected")
	}
	if d.DisplayName != "Terraform" {
		t.Errorf("DisplayName = %q, want %q", d.DisplayName, "Terraform")
	}
	if d.Category != CategoryInfrastructure {
		t.Errorf("Category = %q, want %q", d.Category, CategoryInfrastructure)
	}
	// 3 exact files (+3 each), one directory (+5), plus the *.tf glob (+4):
	// comfortably past the high threshold.
	if d.Confidence != ConfidenceHigh {
		t.Errorf("Confidence = %q, want %q", d.Confidence, ConfidenceHigh)
	}
	if d.Score == nil || *d.Score < highThreshold {
		t.Errorf("Score = %v, want >= %v", d.Score, highThreshold)
	}
	if len(d.Files) == 0 {
		t.Error("expected representative files to be captured")
	}
	if len(d.Recommendations) != 3 {
		t.Errorf("Recommendations = %d entries, want 3", len(d.Recommendations))
	}
}

func TestAnalyze_ConfidenceBuckets(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		tool  string
		want  string
	}{
		{
			name:  "low from a single exact file",
			paths: []string{".trivyignore"},
			tool:  "trivy",
			want:  ConfidenceLow,
		},
		{
			name:  "medium from two exact files and a glob",
			paths: []string{"prometheus.yml", "alert.rules", "api.rules.yml"},
			tool:  "prometheus",
			want:  ConfidenceMedium,
		},
		{
			name:  "high from directories and files",
			paths: []string{"dags/", "airflow/", "airflow.cfg"},
			tool:  "airflow",
			want:  ConfidenceHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFiles(t, tmpDir, tt.paths...)

			profile, err := NewAnalyzer(tmpDir).Analyze()
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}

			d, ok := profile.Lookup(tt.tool)
			if !ok {
				t.Fatalf("expected %s to be detected", tt.tool)
			}
			if d.Confidence != tt.want {
				t.Errorf("Confidence = %q (score %v), want %q", d.Confidence, *d.Score, tt.want)
			}
		})
	}
}

func TestAnalyze_AbsentToolNotReported(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "main.go", "go.mod")

	profile, err := NewAnalyzer(tmpDir).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if _, ok := profile.Lookup("vault"); ok {
		t.Error("vault should not be detected in a plain Go project")
	}
	if _, ok := profile.Lookup("mlflow"); ok {
		t.Error("mlflow should not be detected in a plain Go project")
	}
}

func TestAnalyze_IgnoredDirectoriesSkipped(t *testing.T) {
	tmpDir := t.TempDir()
	// Globs only match files found by the walk, so *.tf inside
	// node_modules must not count.
	writeFiles(t, tmpDir, "node_modules/pkg/main.tf")

	profile, err := NewAnalyzer(tmpDir).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if _, ok := profile.Lookup("terraform"); ok {
		t.Error("terraform should not be detected from ignored directories")
	}
}

func TestAnalyze_ExcludeDirsOption(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "fixtures/sample.ipynb", "fixtures/", "notebooks/")

	profile, err := NewAnalyzer(tmpDir, WithExcludeDirs([]string{"fixtures"})).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	d, ok := profile.Lookup("notebooks")
	if !ok {
		t.Fatal("expected notebooks to be detected from the notebooks/ dir")
	}
	for _, f := range d.Files {
		if f == "fixtures/sample.ipynb" {
			t.Errorf("excluded dir leaked into representative files: %v", d.Files)
		}
	}
}

func TestAnalyze_MaxFilesCap(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"a.tf", "b.tf", "c.tf", "d.tf",
		"main.tf", "variables.tf", "outputs.tf", "versions.tf", "provider.tf",
	)

	profile, err := NewAnalyzer(tmpDir, WithMaxFiles(3)).Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	d, ok := profile.Lookup("terraform")
	if !ok {
		t.Fatal("expected terraform to be detected")
	}
	if len(d.Files) != 3 {
		t.Errorf("Files = %v, want exactly 3 entries", d.Files)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "main.tf", "dvc.yaml", "prometheus.yml", "dags/", "Chart.yaml")

	a := NewAnalyzer(tmpDir)

	first, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	second, err := a.Analyze()
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if !reflect.DeepEqual(first.Keys(), second.Keys()) {
		t.Errorf("keys differ between runs: %v vs %v", first.Keys(), second.Keys())
	}
	for _, key := range first.Keys() {
		d1, _ := first.Lookup(key)
		d2, _ := second.Lookup(key)
		if !reflect.DeepEqual(d1, d2) {
			t.Errorf("detection for %s differs between runs:\n%+v\n%+v", key, d1, d2)
		}
	}
}

func TestAnalyze_NotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewAnalyzer(file).Analyze(); err == nil {
		t.Error("Analyze() should fail for a non-directory root")
	}

	if _, err := NewAnalyzer(filepath.Join(tmpDir, "missing")).Analyze(); err == nil {
		t.Error("Analyze() should fail for a missing root")
	}
}
