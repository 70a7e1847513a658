// Package manifest reads and writes the project version stored in a
// pyproject-style manifest file.
//
// Only the first line matching `version = "..."` is ever consulted or
// rewritten. Every other byte of the file, including formatting and any later
// version fields, is preserved exactly on write.
package manifest

import (
	"os"
	"regexp"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/relver/relver/internal/version"
)

// DefaultVersion is reported when the manifest is missing, has no version
// field, or carries a value that does not parse.
var DefaultVersion = version.MustParse("0.1.0")

var versionField = regexp.MustCompile(`version = "([^"]+)"`)

// File is a version accessor bound to one manifest path.
type File struct {
	Path string
}

// ReadVersion returns the version recorded in the manifest. A missing file,
// an absent version field, or an unparseable value all yield DefaultVersion;
// only the unparseable case is surfaced, as a warning.
func (f File) ReadVersion() (version.Version, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", f.Path).Debug("manifest not found, using default version")
			return DefaultVersion, nil
		}
		return version.Version{}, errors.Wrapf(err, "read %s", f.Path)
	}
	m := versionField.FindSubmatch(data)
	if m == nil {
		log.WithField("path", f.Path).Debug("no version field in manifest, using default version")
		return DefaultVersion, nil
	}
	v, err := version.Parse(string(m[1]))
	if err != nil {
		log.WithField("path", f.Path).
			WithField("value", string(m[1])).
			Warn("manifest version does not parse, using default version")
		return DefaultVersion, nil
	}
	return v, nil
}

// WriteVersion replaces the value of the first version field with v. When the
// file is missing or has no version field there is nothing to update; both
// cases log a warning and return nil.
func (f File) WriteVersion(v version.Version) error {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", f.Path).Warn("manifest not found, version not updated")
			return nil
		}
		return errors.Wrapf(err, "read %s", f.Path)
	}
	loc := versionField.FindSubmatchIndex(data)
	if loc == nil {
		log.WithField("path", f.Path).Warn("no version field in manifest, version not updated")
		return nil
	}
	// loc[2:4] bounds the quoted value captured by the first match.
	updated := make([]byte, 0, len(data)+len(v.String()))
	updated = append(updated, data[:loc[2]]...)
	updated = append(updated, v.String()...)
	updated = append(updated, data[loc[3]:]...)
	if err := os.WriteFile(f.Path, updated, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", f.Path)
	}
	log.WithField("path", f.Path).Debugf("updated version to %s", v)
	return nil
}
