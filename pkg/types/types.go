package types

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved set of parameters for one Alertmanager host
// evaluation. It is built once per run from platform defaults plus operator
// overrides and never mutated afterwards; every evaluation produces a fresh
// record.
type Config struct {
	// Identity/version
	Version           string
	PackageName       string
	PackageEnsure     string
	OS                string
	Arch              string
	DownloadExtension string
	DownloadURLBase   string
	DownloadURL       string // explicit override; empty means derive from version

	// Filesystem
	ConfigDir      string
	ConfigFile     string
	ConfigMode     string
	BinDir         string
	StoragePath    string // empty disables persistent alert storage
	PurgeConfigDir bool
	Templates      []string

	// Runtime identity
	User        string
	Group       string
	ExtraGroups []string
	ManageUser  bool
	ManageGroup bool

	// Service control
	InitStyle       InitStyle
	InstallMethod   InstallMethod
	ManageService   bool
	ServiceEnable   bool
	ServiceEnsure   ServiceState
	RestartOnChange bool

	// Alerting semantics, passed through verbatim to the rendered
	// configuration. Kept as YAML nodes so operator-supplied structure
	// (key order, nesting, tags) survives the round trip untouched.
	Global       *yaml.Node
	Route        *yaml.Node
	Receivers    *yaml.Node
	InhibitRules *yaml.Node

	// ExtraOptions is appended verbatim to the launch command
	ExtraOptions string
}

// InstallMethod defines how the Alertmanager binary reaches the host
type InstallMethod string

const (
	InstallMethodURL     InstallMethod = "url"     // fetch and extract a release archive
	InstallMethodPackage InstallMethod = "package" // system package manager
)

// ServiceState represents the desired state of the managed service
type ServiceState string

const (
	ServiceStateRunning ServiceState = "running"
	ServiceStateStopped ServiceState = "stopped"
)

// InitStyle identifies the host's init system
type InitStyle string

const (
	InitStyleSystemd InitStyle = "systemd"
	InitStyleLaunchd InitStyle = "launchd"
	InitStyleSysv    InitStyle = "sysv"
	InitStyleNone    InitStyle = "none"
)

// ResourceKind identifies the primitive a resource descriptor maps to in the
// external reconciliation engine
type ResourceKind string

const (
	ResourceKindDirectory ResourceKind = "directory"
	ResourceKindFile      ResourceKind = "file"
	ResourceKindService   ResourceKind = "service"
	ResourceKindInstall   ResourceKind = "install"
)

// Resource is one desired-state declaration handed to the reconciliation
// engine. Exactly one of the spec fields is set, matching Kind.
type Resource struct {
	Kind      ResourceKind   `yaml:"kind" json:"kind"`
	Name      string         `yaml:"name" json:"name"`
	DependsOn []string       `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Directory *DirectorySpec `yaml:"directory,omitempty" json:"directory,omitempty"`
	File      *FileSpec      `yaml:"file,omitempty" json:"file,omitempty"`
	Service   *ServiceSpec   `yaml:"service,omitempty" json:"service,omitempty"`
	Install   *InstallSpec   `yaml:"install,omitempty" json:"install,omitempty"`
}

// DirectorySpec declares a directory that must exist on the host
type DirectorySpec struct {
	Path    string `yaml:"path" json:"path"`
	Owner   string `yaml:"owner" json:"owner"`
	Group   string `yaml:"group" json:"group"`
	Mode    string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Purge   bool   `yaml:"purge,omitempty" json:"purge,omitempty"`
	Recurse bool   `yaml:"recurse,omitempty" json:"recurse,omitempty"`
}

// FileSpec declares a file with managed content
type FileSpec struct {
	Path    string `yaml:"path" json:"path"`
	Owner   string `yaml:"owner" json:"owner"`
	Group   string `yaml:"group" json:"group"`
	Mode    string `yaml:"mode" json:"mode"`
	Content string `yaml:"content" json:"content"`
}

// ServiceSpec declares the desired state of a service unit
type ServiceSpec struct {
	Unit  string       `yaml:"unit" json:"unit"`
	State ServiceState `yaml:"state" json:"state"`
}

// InstallSpec parameterizes the external daemon installer: it fetches or
// installs the release, places the binary, creates the user/group, and wires
// the service definition.
type InstallSpec struct {
	InstallMethod     InstallMethod `yaml:"install_method" json:"install_method"`
	Version           string        `yaml:"version" json:"version"`
	DownloadExtension string        `yaml:"download_extension" json:"download_extension"`
	OS                string        `yaml:"os" json:"os"`
	Arch              string        `yaml:"arch" json:"arch"`
	DownloadURL       string        `yaml:"download_url" json:"download_url"`
	BinDir            string        `yaml:"bin_dir" json:"bin_dir"`
	PackageName       string        `yaml:"package_name" json:"package_name"`
	PackageEnsure     string        `yaml:"package_ensure" json:"package_ensure"`
	Options           string        `yaml:"options" json:"options"`
	ManageUser        bool          `yaml:"manage_user" json:"manage_user"`
	User              string        `yaml:"user" json:"user"`
	ExtraGroups       []string      `yaml:"extra_groups,omitempty" json:"extra_groups,omitempty"`
	ManageGroup       bool          `yaml:"manage_group" json:"manage_group"`
	Group             string        `yaml:"group" json:"group"`
	Purge             bool          `yaml:"purge" json:"purge"`
	InitStyle         InitStyle     `yaml:"init_style" json:"init_style"`
	ManageService     bool          `yaml:"manage_service" json:"manage_service"`
	ServiceEnsure     ServiceState  `yaml:"service_ensure" json:"service_ensure"`
	ServiceEnable     bool          `yaml:"service_enable" json:"service_enable"`
	NotifyService     string        `yaml:"notify_service,omitempty" json:"notify_service,omitempty"`
}

// Plan is the ordered resource graph produced by one evaluation
type Plan struct {
	ID          string      `yaml:"id" json:"id"`
	GeneratedAt time.Time   `yaml:"generated_at" json:"generated_at"`
	Resources   []*Resource `yaml:"resources" json:"resources"`
}
