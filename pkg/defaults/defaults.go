package defaults

import (
	"runtime"

	"github.com/hostfleet/amforge/pkg/types"
)

const (
	// DefaultVersion is the Alertmanager release installed when no version
	// override is given
	DefaultVersion = "0.5.1"

	// DefaultConfigDir is the base directory for Alertmanager configuration
	DefaultConfigDir = "/etc/alertmanager"

	// DefaultStoragePath is the directory for silence and notification state
	DefaultStoragePath = "/var/lib/alertmanager"
)

// Host returns the (os, arch) pair of the machine amforge runs on, with the
// architecture already normalized to release-archive naming.
func Host() (string, string) {
	return runtime.GOOS, NormalizeArch(runtime.GOARCH)
}

// NormalizeArch maps kernel/uname architecture names to the names used in
// upstream release archives. Values already in archive form pass through.
func NormalizeArch(arch string) string {
	switch arch {
	case "x86_64":
		return "amd64"
	case "i386", "i686":
		return "386"
	case "armv7l":
		return "armv7"
	case "aarch64":
		return "arm64"
	default:
		return arch
	}
}

// For returns the baseline Config for the given platform. The result is a
// fresh record on every call; callers overlay operator-supplied overrides on
// top of it and never share instances between evaluations.
func For(osName, arch string) *types.Config {
	global, route, receivers, inhibitRules := alertingDefaults()

	return &types.Config{
		Version:           DefaultVersion,
		PackageName:       "alertmanager",
		PackageEnsure:     "latest",
		OS:                osName,
		Arch:              NormalizeArch(arch),
		DownloadExtension: "tar.gz",
		DownloadURLBase:   "https://github.com/prometheus/alertmanager/releases",

		ConfigDir:      DefaultConfigDir,
		ConfigFile:     DefaultConfigDir + "/alertmanager.yaml",
		ConfigMode:     "0660",
		BinDir:         "/usr/local/bin",
		StoragePath:    DefaultStoragePath,
		PurgeConfigDir: true,

		User:        "alertmanager",
		Group:       "alertmanager",
		ManageUser:  true,
		ManageGroup: true,

		InitStyle:       initStyleFor(osName),
		InstallMethod:   types.InstallMethodURL,
		ManageService:   true,
		ServiceEnable:   true,
		ServiceEnsure:   types.ServiceStateRunning,
		RestartOnChange: true,

		Global:       global,
		Route:        route,
		Receivers:    receivers,
		InhibitRules: inhibitRules,
	}
}

func initStyleFor(osName string) types.InitStyle {
	switch osName {
	case "linux":
		return types.InitStyleSystemd
	case "darwin":
		return types.InitStyleLaunchd
	case "freebsd", "openbsd", "netbsd":
		return types.InitStyleSysv
	default:
		return types.InitStyleNone
	}
}
