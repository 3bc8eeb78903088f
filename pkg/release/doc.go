/*
Package release derives download URLs for Alertmanager release archives.

Upstream changed its release naming at version 0.3.0: earlier archives live
under releases/download/<version>/, later ones under releases/download/
v<version>/ (note the v prefix on the path segment only; the archive filename
keeps the bare version throughout). This package encodes that historical
split behind a single URL function.

# URL Resolution

Resolution order:

 1. Explicit DownloadURL override: returned unchanged, all other download
    fields are ignored.
 2. Derived: {base}/download/{tag}/{package}-{version}.{os}-{arch}.{ext}
    where tag is v{version} for versions >= 0.3.0 and {version} below.

The version is parsed with blang/semver before comparison; a malformed
version string fails the evaluation rather than falling arbitrarily into one
of the two formats.

# Usage

	url, err := release.URL(cfg)
	if err != nil {
		return err
	}
	// https://github.com/prometheus/alertmanager/releases/download/v0.5.1/
	//   alertmanager-0.5.1.linux-amd64.tar.gz

# See Also

  - pkg/defaults for the download metadata baseline
  - pkg/graph for where the URL lands in the install descriptor
*/
package release
