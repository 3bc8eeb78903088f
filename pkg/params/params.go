package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hostfleet/amforge/pkg/defaults"
	"github.com/hostfleet/amforge/pkg/log"
	"github.com/hostfleet/amforge/pkg/types"
)

// Load reads a parameters file and resolves it into a Config.
func Load(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters file: %v", err)
	}
	return Parse(data)
}

// Parse resolves a parameters document against the platform defaults table.
// Resolution is all-or-nothing: the first malformed field aborts with a
// descriptive error and no Config is returned.
func Parse(data []byte) (*types.Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse parameters: %v", err)
	}

	osName, arch := defaults.Host()

	// Empty document: pure platform defaults
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return defaults.For(osName, arch), nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return defaults.For(osName, arch), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parameters document must be a mapping, got %s", describe(root))
	}

	// The defaults table is keyed by platform, so os/arch overrides have to
	// be known before the baseline is built.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "os":
			if err := decodeString("os", val, &osName); err != nil {
				return nil, err
			}
		case "arch":
			if err := decodeString("arch", val, &arch); err != nil {
				return nil, err
			}
		}
	}

	cfg := defaults.For(osName, arch)

	logger := log.WithComponent("params")
	logger.Debug().Str("os", osName).Str("arch", cfg.Arch).Msg("platform defaults resolved")

	configDirSet, configFileSet := false, false
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parameter names must be strings, got %s", describe(key))
		}
		switch key.Value {
		case "config_dir":
			configDirSet = true
		case "config_file":
			configFileSet = true
		}
		if err := applyField(cfg, key.Value, val); err != nil {
			return nil, err
		}
	}

	// config_file tracks an overridden config_dir unless pinned explicitly
	if configDirSet && !configFileSet {
		cfg.ConfigFile = cfg.ConfigDir + "/alertmanager.yaml"
	}

	if err := validateEnums(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyField dispatches one top-level parameter onto the Config, checking
// the value shape as it goes. Unknown parameters are rejected outright.
func applyField(cfg *types.Config, name string, val *yaml.Node) error {
	switch name {
	case "version":
		return decodeString(name, val, &cfg.Version)
	case "package_name":
		return decodeString(name, val, &cfg.PackageName)
	case "package_ensure":
		return decodeString(name, val, &cfg.PackageEnsure)
	case "os":
		return decodeString(name, val, &cfg.OS)
	case "arch":
		return decodeArch(name, val, &cfg.Arch)
	case "download_extension":
		return decodeString(name, val, &cfg.DownloadExtension)
	case "download_url_base":
		return decodeString(name, val, &cfg.DownloadURLBase)
	case "download_url":
		return decodeString(name, val, &cfg.DownloadURL)
	case "config_dir":
		return decodeString(name, val, &cfg.ConfigDir)
	case "config_file":
		return decodeString(name, val, &cfg.ConfigFile)
	case "config_mode":
		return decodeString(name, val, &cfg.ConfigMode)
	case "bin_dir":
		return decodeString(name, val, &cfg.BinDir)
	case "storage_path":
		// null clears the default and disables persistent storage
		if val.Tag == "!!null" {
			cfg.StoragePath = ""
			return nil
		}
		return decodeString(name, val, &cfg.StoragePath)
	case "purge_config_dir":
		return decodeBool(name, val, &cfg.PurgeConfigDir)
	case "templates":
		return decodeStringSlice(name, val, &cfg.Templates)
	case "user":
		return decodeString(name, val, &cfg.User)
	case "group":
		return decodeString(name, val, &cfg.Group)
	case "extra_groups":
		return decodeStringSlice(name, val, &cfg.ExtraGroups)
	case "manage_user":
		return decodeBool(name, val, &cfg.ManageUser)
	case "manage_group":
		return decodeBool(name, val, &cfg.ManageGroup)
	case "init_style":
		var s string
		if err := decodeString(name, val, &s); err != nil {
			return err
		}
		cfg.InitStyle = types.InitStyle(s)
		return nil
	case "install_method":
		var s string
		if err := decodeString(name, val, &s); err != nil {
			return err
		}
		cfg.InstallMethod = types.InstallMethod(s)
		return nil
	case "manage_service":
		return decodeBool(name, val, &cfg.ManageService)
	case "service_enable":
		return decodeBool(name, val, &cfg.ServiceEnable)
	case "service_ensure":
		var s string
		if err := decodeString(name, val, &s); err != nil {
			return err
		}
		cfg.ServiceEnsure = types.ServiceState(s)
		return nil
	case "restart_on_change":
		return decodeBool(name, val, &cfg.RestartOnChange)
	case "extra_options":
		return decodeString(name, val, &cfg.ExtraOptions)
	case "global":
		return requireMapping(name, val, &cfg.Global)
	case "route":
		return requireMapping(name, val, &cfg.Route)
	case "receivers":
		return requireSequence(name, val, &cfg.Receivers)
	case "inhibit_rules":
		return requireSequence(name, val, &cfg.InhibitRules)
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
}

func validateEnums(cfg *types.Config) error {
	switch cfg.InstallMethod {
	case types.InstallMethodURL, types.InstallMethodPackage:
	default:
		return fmt.Errorf("parameter install_method: must be %q or %q, got %q",
			types.InstallMethodURL, types.InstallMethodPackage, cfg.InstallMethod)
	}

	switch cfg.ServiceEnsure {
	case types.ServiceStateRunning, types.ServiceStateStopped:
	default:
		return fmt.Errorf("parameter service_ensure: must be %q or %q, got %q",
			types.ServiceStateRunning, types.ServiceStateStopped, cfg.ServiceEnsure)
	}

	switch cfg.InitStyle {
	case types.InitStyleSystemd, types.InitStyleLaunchd, types.InitStyleSysv, types.InitStyleNone:
	default:
		return fmt.Errorf("parameter init_style: unsupported init style %q", cfg.InitStyle)
	}

	return nil
}
