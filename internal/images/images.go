// Package images builds the container image references published for a
// release: the agent image and its web UI variant, each tagged with the
// release version and with latest.
package images

import (
	"encoding/json"
	"sort"

	"github.com/google/go-containerregistry/pkg/name"
	"github.com/pkg/errors"

	"github.com/relver/relver/internal/version"
)

// Image keys reported by ForVersion.
const (
	KeyAgent       = "agent"
	KeyAgentLatest = "agent-latest"
	KeyWebUI       = "web-ui"
	KeyWebUILatest = "web-ui-latest"
)

// webSuffix marks the web UI repository, derived from the agent repository.
const webSuffix = "-web"

// Info describes every image published for one release.
type Info struct {
	Registry   string            `json:"registry"`
	Repository string            `json:"repository"`
	Version    string            `json:"version"`
	Images     map[string]string `json:"images"`
}

// ForVersion builds the image set for v under registry/repository.
func ForVersion(registry, repository string, v version.Version) Info {
	agent := registry + "/" + repository
	web := agent + webSuffix
	return Info{
		Registry:   registry,
		Repository: repository,
		Version:    v.String(),
		Images: map[string]string{
			KeyAgent:       agent + ":" + v.String(),
			KeyAgentLatest: agent + ":latest",
			KeyWebUI:       web + ":" + v.String(),
			KeyWebUILatest: web + ":latest",
		},
	}
}

// Validate checks that every reference is a well-formed, fully qualified
// image tag. References are checked in key order, so the reported failure is
// deterministic.
func (i Info) Validate() error {
	keys := make([]string, 0, len(i.Images))
	for key := range i.Images {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, err := name.NewTag(i.Images[key], name.StrictValidation); err != nil {
			return errors.Wrapf(err, "image %s", key)
		}
	}
	return nil
}

// Render returns the info as indented JSON.
func (i Info) Render() (string, error) {
	out, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode image info")
	}
	return string(out), nil
}
