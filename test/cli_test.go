package test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func binaryName() string {
	if runtime.GOOS == "windows" {
		return "timeline.exe"
	}
	return "timeline"
}

// buildCLI compiles ./cmd/timeline into a temp dir and returns its path.
func buildCLI(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	binaryPath := filepath.Join(t.TempDir(), binaryName())

	wd, _ := os.Getwd()
	projectRoot := filepath.Dir(wd)
	if _, err := os.Stat(filepath.Join(projectRoot, "cmd/timeline")); err != nil {
		projectRoot = wd
	}

	buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/timeline")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\n%s", err, output)
	}
	return binaryPath
}

func TestCLI(t *testing.T) {
	binaryPath := buildCLI(t)
	workDir := t.TempDir()

	run := func(args ...string) ([]byte, error) {
		cmd := exec.Command(binaryPath, args...)
		cmd.Dir = workDir
		return cmd.CombinedOutput()
	}

	t.Run("version_command", func(t *testing.T) {
		output, err := run("version")
		if err != nil {
			t.Fatalf("version command failed: %v\n%s", err, output)
		}
		if !bytes.Contains(output, []byte("timeline version")) {
			t.Errorf("version output missing name:\n%s", output)
		}
	})

	t.Run("help_shows_commands", func(t *testing.T) {
		output, _ := run("--help")
		for _, name := range []string{"status", "sections", "list", "serve", "tui", "validate", "config", "export", "init", "docs"} {
			if !bytes.Contains(output, []byte(name)) {
				t.Errorf("Help missing command: %s", name)
			}
		}
	})

	t.Run("status_embedded_dataset", func(t *testing.T) {
		output, err := run("status", "--no-color")
		if err != nil {
			t.Fatalf("status command failed: %v\n%s", err, output)
		}
		if !bytes.Contains(output, []byte("tasks completed")) {
			t.Errorf("status output missing summary:\n%s", output)
		}
	})

	t.Run("export_then_load", func(t *testing.T) {
		output, err := run("export", "--format", "yaml")
		if err != nil {
			t.Fatalf("export failed: %v\n%s", err, output)
		}
		path := filepath.Join(workDir, "steps.yaml")
		if err := os.WriteFile(path, output, 0644); err != nil {
			t.Fatal(err)
		}

		output, err = run("--data", "steps.yaml", "validate", "--no-color")
		if err != nil {
			t.Fatalf("validate of exported data failed: %v\n%s", err, output)
		}
		if !bytes.Contains(output, []byte("Status: VALID")) {
			t.Errorf("unexpected validate output:\n%s", output)
		}
	})

	t.Run("validate_exit_code", func(t *testing.T) {
		bad := filepath.Join(workDir, "bad.json")
		if err := os.WriteFile(bad, []byte(`[{"id":1,"title":"x","status":"nope","section":"A"}]`), 0644); err != nil {
			t.Fatal(err)
		}

		output, err := run("--data", "bad.json", "validate")
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
			t.Fatalf("expected exit status 1, got %v\n%s", err, output)
		}
		if !bytes.Contains(output, []byte("invalid status")) {
			t.Errorf("validate output missing problem:\n%s", output)
		}
	})
}
