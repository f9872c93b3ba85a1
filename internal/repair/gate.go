package repair

import (
	"context"

	"naprawa-udostepnien/internal/version"
)

// ConfigStore reads persisted system configuration values.
type ConfigStore interface {
	GetSystemValueString(ctx context.Context, key string, def string) (string, error)
}

const versionKey = "version"

// VersionGate decides whether the repair has to run for this
// installation, based on the version recorded before the upgrade.
type VersionGate struct {
	config ConfigStore
}

func NewVersionGate(config ConfigStore) *VersionGate {
	return &VersionGate{config: config}
}

// ShouldRun reports whether the recorded version falls inside one of
// the affected release ranges. The three checks overlap, each one
// tracks the release line a fix shipped in. Keep them separate, the
// thresholds move independently.
func (g *VersionGate) ShouldRun(ctx context.Context) (bool, error) {
	v, err := g.config.GetSystemValueString(ctx, versionKey, "0.0.0")
	if err != nil {
		return false, err
	}

	return version.Compare(v, "14.0.11") < 0 ||
		version.Compare(v, "15.0.8") < 0 ||
		version.Compare(v, "16.0.0") <= 0, nil
}
