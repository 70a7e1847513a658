package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode in dir with optional extra
// environment vars.
func runCLI(dir string, args []string, extraEnv ...string) (string, error) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	cmd.Env = append(cmd.Env, extraEnv...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a git repository with one commit containing the given
// manifest content and returns its directory.
func initRepo(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	runGit := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	runGit("init")
	runGit("config", "user.email", "test@example.com")
	runGit("config", "user.name", "Test User")
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	runGit("add", ".")
	runGit("commit", "-m", "initial")
	return dir
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

func TestCLIHelp(t *testing.T) {
	out, err := runCLI(t.TempDir(), []string{"--help"})
	if err != nil {
		t.Fatalf("help failed: %v\n%s", err, out)
	}
	for _, want := range []string{"current", "bump", "tag", "info", "version"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestCLIVersionCmd(t *testing.T) {
	out, err := runCLI(t.TempDir(), []string{"version"})
	if err != nil {
		t.Fatalf("version failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "relver dev") {
		t.Errorf("expected default build version in output, got:\n%s", out)
	}
}

func TestCLICurrentDefault(t *testing.T) {
	out, err := runCLI(t.TempDir(), []string{"current"})
	if err != nil {
		t.Fatalf("current failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Current version: 0.1.0") {
		t.Errorf("expected default version, got:\n%s", out)
	}
}

func TestCLIBumpIntegration(t *testing.T) {
	dir := t.TempDir()
	manifest := `[project]
name = "sip-ai-agent"
version = "1.2.3"
description = "SIP voice agent"
`
	path := filepath.Join(dir, "pyproject.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(dir, []string{"bump", "--type", "minor"})
	if err != nil {
		t.Fatalf("bump failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Bumped version from 1.2.3 to 1.3.0") {
		t.Errorf("unexpected bump output:\n%s", out)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `[project]
name = "sip-ai-agent"
version = "1.3.0"
description = "SIP voice agent"
`
	if string(got) != want {
		t.Errorf("manifest after bump:\n%s\nwant:\n%s", got, want)
	}
}

func TestCLIBumpMissingType(t *testing.T) {
	out, err := runCLI(t.TempDir(), []string{"bump"})
	if err == nil {
		t.Fatal("bump without --type succeeded")
	}
	if !strings.Contains(out, `required flag(s) "type" not set`) {
		t.Errorf("expected missing-flag error, got:\n%s", out)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("expected usage output, got:\n%s", out)
	}
}

func TestCLITagIntegration(t *testing.T) {
	requireGit(t)
	dir := initRepo(t, "version = \"1.2.3\"\n")

	out, err := runCLI(dir, []string{"tag"})
	if err != nil {
		t.Fatalf("tag failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created tag v1.2.3") {
		t.Errorf("unexpected tag output:\n%s", out)
	}

	tags := gitOutput(t, dir, "tag", "-n1", "-l", "v1.2.3")
	if !strings.Contains(tags, "v1.2.3") {
		t.Errorf("tag not created:\n%s", tags)
	}
	if !strings.Contains(tags, "Release version 1.2.3") {
		t.Errorf("expected default annotation, got:\n%s", tags)
	}

	// Tagging again is a no-op.
	out, err = runCLI(dir, []string{"tag"})
	if err != nil {
		t.Fatalf("second tag failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Tag v1.2.3 already exists") {
		t.Errorf("unexpected second tag output:\n%s", out)
	}
}

func TestCLITagPushIntegration(t *testing.T) {
	requireGit(t)
	remote := t.TempDir()
	if out, err := exec.Command("git", "init", "--bare", remote).CombinedOutput(); err != nil {
		t.Fatalf("git init --bare failed: %v\n%s", err, out)
	}
	dir := initRepo(t, "version = \"0.4.0\"\n")
	if out, err := exec.Command("git", "-C", dir, "remote", "add", "origin", remote).CombinedOutput(); err != nil {
		t.Fatalf("git remote add failed: %v\n%s", err, out)
	}

	out, err := runCLI(dir, []string{"tag", "--push"})
	if err != nil {
		t.Fatalf("tag --push failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created tag v0.4.0") {
		t.Errorf("unexpected tag output:\n%s", out)
	}
	if !strings.Contains(out, "Pushed tag v0.4.0 to remote") {
		t.Errorf("unexpected push output:\n%s", out)
	}

	remoteTags := gitOutput(t, remote, "tag")
	if !strings.Contains(remoteTags, "v0.4.0") {
		t.Errorf("tag not pushed to remote:\n%s", remoteTags)
	}
}

func TestCLITagExplicitVersion(t *testing.T) {
	requireGit(t)
	dir := initRepo(t, "version = \"1.2.3\"\n")

	out, err := runCLI(dir, []string{"tag", "--version", "2.0.0", "--message", "First stable release"})
	if err != nil {
		t.Fatalf("tag failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created tag v2.0.0") {
		t.Errorf("unexpected tag output:\n%s", out)
	}
	tags := gitOutput(t, dir, "tag", "-n1", "-l", "v2.0.0")
	if !strings.Contains(tags, "First stable release") {
		t.Errorf("expected custom annotation, got:\n%s", tags)
	}
}

func TestCLITagOutsideRepository(t *testing.T) {
	requireGit(t)
	out, err := runCLI(t.TempDir(), []string{"tag"})
	if err == nil {
		t.Fatalf("tag outside a repository succeeded:\n%s", out)
	}
	if !strings.Contains(out, "not a git repository") {
		t.Errorf("expected a git failure, got:\n%s", out)
	}
}

func TestCLICurrentFromGit(t *testing.T) {
	requireGit(t)
	dir := initRepo(t, "version = \"0.1.0\"\n")
	for _, tag := range []string{"v0.9.9", "v0.10.0"} {
		if out, err := exec.Command("git", "-C", dir, "tag", tag).CombinedOutput(); err != nil {
			t.Fatalf("git tag %s failed: %v\n%s", tag, err, out)
		}
	}

	out, err := runCLI(dir, []string{"current", "--from-git"})
	if err != nil {
		t.Fatalf("current --from-git failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Current version: 0.10.0") {
		t.Errorf("expected the highest tag, got:\n%s", out)
	}
}

func TestCLIInfoIntegration(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte("version = \"1.3.0\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(dir, []string{"info"}, "GITHUB_REPOSITORY=acme/widgets")
	if err != nil {
		t.Fatalf("info failed: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Docker Images Information:",
		`"registry": "ghcr.io"`,
		`"repository": "acme/widgets"`,
		`"agent": "ghcr.io/acme/widgets:1.3.0"`,
		`"web-ui": "ghcr.io/acme/widgets-web:1.3.0"`,
		`"web-ui-latest": "ghcr.io/acme/widgets-web:latest"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}
