//go:build integration

package integration_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bspy-dev/bspy/internal/scaffold"
	"github.com/bspy-dev/bspy/internal/toolchain"
)

// TestCreateWithRealGit runs the full pipeline against the installed git,
// skipping environment provisioning.
func TestCreateWithRealGit(t *testing.T) {
	requireTool(t, "git")
	isolateGit(t)

	spec, err := scaffold.NewProjectSpec("my-app", t.TempDir())
	if err != nil {
		t.Fatalf("NewProjectSpec: %v", err)
	}

	result, err := scaffold.New(&toolchain.Exec{}, nil).Create(context.Background(), spec, scaffold.Options{SkipEnv: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	assertDirExists(t, filepath.Join(spec.Root, ".git"))

	manifest := readFile(t, filepath.Join(spec.Root, "pyproject.toml"))
	if !strings.Contains(manifest, `{name = "Integration Tester", email = "it@example.com"}`) {
		t.Errorf("author not read from git config:\n%s", manifest)
	}
	license := readFile(t, filepath.Join(spec.Root, "LICENSE"))
	if !strings.Contains(license, "Integration Tester") {
		t.Errorf("LICENSE missing author:\n%s", license)
	}

	// The new repository sees every generated file as untracked.
	out, err := exec.Command("git", "-C", spec.Root, "status", "--porcelain", "--untracked-files=all").Output()
	if err != nil {
		t.Fatalf("git status: %v", err)
	}
	for _, f := range result.Files {
		if !strings.Contains(string(out), f) {
			t.Errorf("git status does not list %s:\n%s", f, out)
		}
	}
}

// TestCreateWithRealEnvironment also provisions venv/ and checks that the
// generated .gitignore hides it from git.
func TestCreateWithRealEnvironment(t *testing.T) {
	requireTool(t, "git")
	if _, err := exec.LookPath("virtualenv"); err != nil {
		requireTool(t, "python3")
	}
	isolateGit(t)

	spec, err := scaffold.NewProjectSpec("env-app", t.TempDir())
	if err != nil {
		t.Fatalf("NewProjectSpec: %v", err)
	}

	if _, err := scaffold.New(&toolchain.Exec{}, nil).Create(context.Background(), spec, scaffold.Options{}); err != nil {
		if errors.Is(err, scaffold.ErrExternalTool) {
			t.Skipf("environment provisioner unusable here: %v", err)
		}
		t.Fatalf("Create: %v", err)
	}

	assertDirExists(t, filepath.Join(spec.Root, toolchain.EnvDir))

	out, err := exec.Command("git", "-C", spec.Root, "status", "--porcelain", "--untracked-files=all").Output()
	if err != nil {
		t.Fatalf("git status: %v", err)
	}
	if strings.Contains(string(out), "venv/") {
		t.Errorf("venv/ should be ignored:\n%s", out)
	}
}
