package workspace

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/quinnoshea/claude-builder/internal/logging"
)

const excludeMarker = "# claude-builder generated documents"

// IsGitRepo reports whether root is inside a git working tree. It
// checks for a .git entry directly so repositories work without the
// git binary installed.
func IsGitRepo(root string) bool {
	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		return true
	}
	out, err := runGit(root, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// GitDir returns the repository's .git directory for root. A plain
// .git directory is used as-is; otherwise git resolves it, which
// covers worktrees and submodules where .git is a file.
func GitDir(root string) (string, error) {
	direct := filepath.Join(root, ".git")
	if info, err := os.Stat(direct); err == nil && info.IsDir() {
		return direct, nil
	}
	out, err := runGit(root, "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate .git directory: %w", err)
	}
	dir := strings.TrimSpace(out)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return dir, nil
}

// AddToExclude appends the given repo-relative paths to
// .git/info/exclude so generated documents stay out of git status.
// Paths already present are skipped; calling it twice is a no-op.
func AddToExclude(root string, paths []string) error {
	gitDir, err := GitDir(root)
	if err != nil {
		return err
	}

	excludePath := filepath.Join(gitDir, "info", "exclude")
	if err := os.MkdirAll(filepath.Dir(excludePath), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(excludePath), err)
	}

	existing := map[string]bool{}
	content, err := os.ReadFile(excludePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read %s: %w", excludePath, err)
	}
	for _, line := range strings.Split(string(content), "\n") {
		existing[strings.TrimSpace(line)] = true
	}

	var missing []string
	for _, p := range paths {
		if p != "" && !existing[p] {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var b strings.Builder
	b.Write(content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		b.WriteByte('\n')
	}
	if !existing[excludeMarker] {
		b.WriteString(excludeMarker + "\n")
	}
	for _, p := range missing {
		b.WriteString(p + "\n")
	}

	if err := os.WriteFile(excludePath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", excludePath, err)
	}

	logging.Debug("updated git exclude file", "path", excludePath, "added", len(missing))
	return nil
}

// runGit executes a git subcommand in dir and returns its stdout.
func runGit(dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("git not found: %w", err)
	}

	logging.Debug("running git", "command", shellquote.Join(append([]string{"git"}, args...)...), "dir", dir)

	cmd := exec.Command(gitPath, args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}
	return string(output), nil
}
