// Package git shells out to the git binary for the tag operations the tool
// performs: listing, creating, and pushing release tags.
package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
	xsemver "golang.org/x/mod/semver"

	"github.com/relver/relver/internal/version"
)

// Runner executes a git command. The two methods differ only in whether the
// caller wants stdout back.
type Runner interface {
	Run(args ...string) error
	Output(args ...string) (string, error)
}

// RunError is the failure of one git invocation, carrying whatever git wrote
// to stderr.
type RunError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *RunError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *RunError) Unwrap() error { return e.Err }

// ExecRunner runs git in Dir. An empty Dir means the current directory.
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Run(args ...string) error {
	_, err := r.Output(args...)
	return err
}

func (r ExecRunner) Output(args ...string) (string, error) {
	log.Debugf("exec git %s", strings.Join(args, " "))
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", &RunError{Args: args, Stderr: stderr.String(), Err: err}
	}
	return string(out), nil
}

// CheckInstalled reports whether a git binary is on PATH.
func CheckInstalled() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.Wrap(err, "git is not installed")
	}
	return nil
}

// TagName renders the tag for a version, "v" plus the canonical form.
func TagName(v version.Version) string {
	return "v" + v.String()
}

// DefaultMessage is the annotation used when Create is given no message.
func DefaultMessage(v version.Version) string {
	return fmt.Sprintf("Release version %s", v)
}

// Tagger manages release tags through a Runner.
type Tagger struct {
	run    Runner
	remote string
}

// NewTagger returns a Tagger pushing to remote.
func NewTagger(r Runner, remote string) *Tagger {
	return &Tagger{run: r, remote: remote}
}

// Exists reports whether the tag for v is already present.
func (t *Tagger) Exists(v version.Version) (bool, error) {
	name := TagName(v)
	out, err := t.run.Output("tag", "-l", name)
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == name {
			return true, nil
		}
	}
	return false, nil
}

// Create makes an annotated tag for v unless it already exists. It reports
// whether a tag was created. An empty message falls back to DefaultMessage.
func (t *Tagger) Create(v version.Version, message string) (bool, error) {
	exists, err := t.Exists(v)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if message == "" {
		message = DefaultMessage(v)
	}
	if err := t.run.Run("tag", "-a", TagName(v), "-m", message); err != nil {
		return false, err
	}
	return true, nil
}

// Push sends the tag for v to the configured remote.
func (t *Tagger) Push(v version.Version) error {
	return t.run.Run("push", t.remote, TagName(v))
}

// LatestVersion returns the highest semver release tag, if any exist.
func (t *Tagger) LatestVersion() (version.Version, bool, error) {
	out, err := t.run.Output("tag", "-l", "v*")
	if err != nil {
		return version.Version{}, false, err
	}
	var tags []string
	for _, line := range strings.Split(out, "\n") {
		tag := strings.TrimSpace(line)
		if xsemver.IsValid(tag) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return version.Version{}, false, nil
	}
	xsemver.Sort(tags)
	latest := tags[len(tags)-1]
	// Canonical fills in short forms (v2 -> v2.0.0) and drops build
	// metadata, both of which IsValid lets through.
	v, err := version.Parse(strings.TrimPrefix(xsemver.Canonical(latest), "v"))
	if err != nil {
		return version.Version{}, false, errors.Wrapf(err, "tag %s", latest)
	}
	return v, true, nil
}
