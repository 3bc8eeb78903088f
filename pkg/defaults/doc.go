/*
Package defaults provides the immutable per-platform baseline configuration.

Every evaluation starts from defaults.For(os, arch), which returns a fully
populated Config keyed by the target platform: release version, download
metadata, filesystem layout, runtime identity, and init style. Operator
overrides from the parameters file are layered on top by pkg/params; the
defaults table itself holds no mutable state and For returns a fresh record
on every call.

The baseline includes a minimal working alerting configuration (one Admin
receiver mailing root over the local MTA), so a bare parameters file still
renders a document the daemon accepts.

Architecture names are normalized to upstream release-archive naming
(x86_64 becomes amd64, aarch64 becomes arm64, and so on) so that both uname
output and Go's GOARCH values are accepted.

# See Also

  - pkg/params for the override layering
  - pkg/release for how the download metadata is consumed
*/
package defaults
