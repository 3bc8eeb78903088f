package release

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/hostfleet/amforge/pkg/types"
)

// vPrefixThreshold marks the upstream release at which download paths moved
// under a v-prefixed tag (releases/download/v0.3.0/...). The archive filename
// kept the bare version on both sides of the change.
var vPrefixThreshold = semver.MustParse("0.3.0")

// URL returns the download URL for the release archive described by cfg.
// An explicit DownloadURL override is returned unchanged. Otherwise the URL
// is derived from the version, package name, platform, and extension, with
// the path segment format chosen by comparing the version against 0.3.0.
//
// A version that does not parse as a semantic version is a hard error; it
// must not silently fall into either URL format.
func URL(cfg *types.Config) (string, error) {
	if cfg.DownloadURL != "" {
		return cfg.DownloadURL, nil
	}

	v, err := semver.Parse(cfg.Version)
	if err != nil {
		return "", fmt.Errorf("invalid version %q: %v", cfg.Version, err)
	}

	tag := cfg.Version
	if v.GTE(vPrefixThreshold) {
		tag = "v" + cfg.Version
	}

	return fmt.Sprintf("%s/download/%s/%s", cfg.DownloadURLBase, tag, ArchiveName(cfg)), nil
}

// ArchiveName returns the release archive filename for cfg, always using the
// bare version regardless of the tag format.
func ArchiveName(cfg *types.Config) string {
	return fmt.Sprintf("%s-%s.%s-%s.%s",
		cfg.PackageName, cfg.Version, cfg.OS, cfg.Arch, cfg.DownloadExtension)
}
