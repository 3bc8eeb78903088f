package graph

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hostfleet/amforge/pkg/launch"
	"github.com/hostfleet/amforge/pkg/log"
	"github.com/hostfleet/amforge/pkg/release"
	"github.com/hostfleet/amforge/pkg/render"
	"github.com/hostfleet/amforge/pkg/types"
)

const (
	// LegacyServiceName is the daemon's pre-0.3.0 service unit name. Hosts
	// upgraded across that release keep a stale unit behind, so every plan
	// carries a stop declaration for it.
	LegacyServiceName = "alert_manager"

	// StorageDirMode is the fixed permission mode for the storage directory
	StorageDirMode = "0755"
)

// Resource names within a plan; DependsOn edges refer to these
const (
	ResourceConfigDir  = "config-dir"
	ResourceConfigFile = "config-file"
	ResourceLegacyStop = "stop-legacy-service"
	ResourceStorageDir = "storage-dir"
	ResourceInstall    = "install-alertmanager"
)

// candidate pairs a resource with its emission condition. The emitter builds
// the full ordered list and filters it, instead of branching imperatively.
type candidate struct {
	when bool
	res  *types.Resource
}

// Emit translates a resolved Config into the ordered desired-state plan
// handed to the reconciliation engine. Emission is all-or-nothing: any
// resolution error aborts before a plan exists.
func Emit(cfg *types.Config) (*types.Plan, error) {
	url, err := release.URL(cfg)
	if err != nil {
		return nil, err
	}

	content, err := render.Config(cfg)
	if err != nil {
		return nil, err
	}

	options := launch.Options(cfg)

	// Restart wiring is deliberate opt-out: without it, config changes land
	// on disk but the running daemon is left alone.
	notify := ""
	if cfg.RestartOnChange {
		notify = cfg.PackageName
	}

	candidates := []candidate{
		{true, &types.Resource{
			Kind: types.ResourceKindDirectory,
			Name: ResourceConfigDir,
			Directory: &types.DirectorySpec{
				Path:    cfg.ConfigDir,
				Owner:   cfg.User,
				Group:   cfg.Group,
				Purge:   cfg.PurgeConfigDir,
				Recurse: cfg.PurgeConfigDir,
			},
		}},
		{true, &types.Resource{
			Kind:      types.ResourceKindFile,
			Name:      ResourceConfigFile,
			DependsOn: []string{ResourceConfigDir},
			File: &types.FileSpec{
				Path:    cfg.ConfigFile,
				Owner:   cfg.User,
				Group:   cfg.Group,
				Mode:    cfg.ConfigMode,
				Content: string(content),
			},
		}},
		{true, &types.Resource{
			Kind: types.ResourceKindService,
			Name: ResourceLegacyStop,
			Service: &types.ServiceSpec{
				Unit:  LegacyServiceName,
				State: types.ServiceStateStopped,
			},
		}},
		{cfg.StoragePath != "", &types.Resource{
			Kind: types.ResourceKindDirectory,
			Name: ResourceStorageDir,
			Directory: &types.DirectorySpec{
				Path:  cfg.StoragePath,
				Owner: cfg.User,
				Group: cfg.Group,
				Mode:  StorageDirMode,
			},
		}},
		{true, &types.Resource{
			Kind:      types.ResourceKindInstall,
			Name:      ResourceInstall,
			DependsOn: []string{ResourceConfigFile},
			Install: &types.InstallSpec{
				InstallMethod:     cfg.InstallMethod,
				Version:           cfg.Version,
				DownloadExtension: cfg.DownloadExtension,
				OS:                cfg.OS,
				Arch:              cfg.Arch,
				DownloadURL:       url,
				BinDir:            cfg.BinDir,
				PackageName:       cfg.PackageName,
				PackageEnsure:     cfg.PackageEnsure,
				Options:           options,
				ManageUser:        cfg.ManageUser,
				User:              cfg.User,
				ExtraGroups:       cfg.ExtraGroups,
				ManageGroup:       cfg.ManageGroup,
				Group:             cfg.Group,
				Purge:             cfg.PurgeConfigDir,
				InitStyle:         cfg.InitStyle,
				ManageService:     cfg.ManageService,
				ServiceEnsure:     cfg.ServiceEnsure,
				ServiceEnable:     cfg.ServiceEnable,
				NotifyService:     notify,
			},
		}},
	}

	plan := &types.Plan{
		ID:          fmt.Sprintf("eval-%s", uuid.NewString()),
		GeneratedAt: time.Now().UTC(),
	}
	for _, c := range candidates {
		if c.when {
			plan.Resources = append(plan.Resources, c.res)
		}
	}

	logger := log.WithComponent("graph")
	logger.Debug().
		Str("evaluation_id", plan.ID).
		Int("resources", len(plan.Resources)).
		Str("download_url", url).
		Msg("plan emitted")

	return plan, nil
}
