// Package main implements the relver CLI tool.
//
// The relver tool is the release helper for the agent project. It keeps three
// things in step with each other: the version recorded in the project
// manifest (pyproject.toml by default), the annotated git release tags, and
// the container image references published for a release. The version is
// always the first `version = "..."` field in the manifest; release tags are
// always the version prefixed with "v".
//
// Command Usage:
//
//	relver [flags] <command>
//
// Commands:
//
//	current   Print the current version. Reads the manifest, or the highest
//	          semver release tag with --from-git.
//	bump      Bump the manifest version. Requires --type major, minor, or
//	          patch. --dry-run shows the result without writing.
//	tag       Create the annotated tag v<version> for the manifest version
//	          (or an explicit --version) and optionally --push it.
//	info      Print the container image references for the current version
//	          as indented JSON.
//	version   Print build information for the relver binary itself.
//
// Flags:
//
//	--config:    Path to a TOML config file. Defaults to .relver.toml when
//	             present; all settings fall back to built-in defaults.
//	--manifest:  Path to the manifest holding the version. Overrides the
//	             config file. Defaults to pyproject.toml.
//	--verbose:   Enable debug logging on stderr.
//
// Examples:
//
//	# Print the version recorded in pyproject.toml
//	relver current
//
//	# Bump the patch version (e.g. 1.2.3 -> 1.2.4)
//	relver bump --type patch
//
//	# See what a major bump would do without writing anything
//	relver bump --type major --dry-run
//
//	# Tag the current version and push the tag to origin
//	relver tag --push
//
//	# Tag an explicit version with a custom annotation
//	relver tag --version 2.0.0 --message "First stable release"
//
//	# Print the image references published for the current version
//	GITHUB_REPOSITORY=acme/widgets relver info
//
// Result lines are written to stdout so scripts and CI workflows can capture
// them; warnings and debug output go to stderr. Any failing git command makes
// the process exit non-zero.
package main
