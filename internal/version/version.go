// Package version parses, formats, and bumps the semantic version tracked in
// the project manifest.
//
// The accepted textual form is three dot-separated non-negative integers with
// an optional suffix introduced by "-" (pre-release or build metadata). The
// suffix is accepted on parse and discarded: the canonical form is always
// "major.minor.patch".
package version

import (
	"fmt"
	"regexp"

	"github.com/coreos/go-semver/semver"
	"github.com/pkg/errors"
)

// Errors reported by Parse and Bump. Callers match them with errors.Is.
var (
	ErrInvalidFormat   = errors.New("invalid version format")
	ErrInvalidBumpKind = errors.New("invalid bump type")
)

// Bump kinds accepted by Version.Bump.
const (
	BumpMajor = "major"
	BumpMinor = "minor"
	BumpPatch = "patch"
)

// Kinds lists the accepted bump kinds in the order the CLI documents them.
var Kinds = []string{BumpMajor, BumpMinor, BumpPatch}

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(-.*)?$`)

// Version is a three-component semantic version. The zero value is 0.0.0.
type Version struct {
	v semver.Version
}

// Parse reads a version string. It fails with ErrInvalidFormat for anything
// that is not "X.Y.Z" with an optional "-..." suffix.
func Parse(text string) (Version, error) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "%q", text)
	}
	// Only the numeric components carry; the suffix is discarded before the
	// semver parse so its contents are never validated.
	sv, err := semver.NewVersion(m[1] + "." + m[2] + "." + m[3])
	if err != nil {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "%q", text)
	}
	return Version{v: *sv}, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical "major.minor.patch" form. Suffixes accepted by
// Parse are never reproduced.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.v.Major, v.v.Minor, v.v.Patch)
}

// Major returns the major component.
func (v Version) Major() int64 { return v.v.Major }

// Minor returns the minor component.
func (v Version) Minor() int64 { return v.v.Minor }

// Patch returns the patch component.
func (v Version) Patch() int64 { return v.v.Patch }

// Bump returns the version produced by applying kind: a major bump resets
// minor and patch, a minor bump resets patch, a patch bump increments in
// place. Unknown kinds fail with ErrInvalidBumpKind.
func (v Version) Bump(kind string) (Version, error) {
	next := v.v
	switch kind {
	case BumpMajor:
		next.BumpMajor()
	case BumpMinor:
		next.BumpMinor()
	case BumpPatch:
		next.BumpPatch()
	default:
		return Version{}, errors.Wrapf(ErrInvalidBumpKind, "%q", kind)
	}
	return Version{v: next}, nil
}
