package launch

import (
	"strings"

	"github.com/hostfleet/amforge/pkg/types"
)

// Options composes the command-line argument string the daemon is launched
// with. The config file flag is always present; the storage path flag only
// when a storage path is configured. ExtraOptions is appended verbatim with
// no quoting or escaping: shell-safety is the operator's responsibility.
func Options(cfg *types.Config) string {
	parts := []string{"-config.file=" + cfg.ConfigFile}
	if cfg.StoragePath != "" {
		parts = append(parts, "-storage.path="+cfg.StoragePath)
	}
	if cfg.ExtraOptions != "" {
		parts = append(parts, cfg.ExtraOptions)
	}
	return strings.Join(parts, " ")
}
