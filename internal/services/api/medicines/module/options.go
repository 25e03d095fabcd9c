package module

import (
	"time"

	"pillbox/internal/platform/config"
	"pillbox/internal/services/api/medicines/repo"
)

// Options controls search and label fetching
type Options struct {
	SearchTable string

	LabelsBaseURL string
	LabelsTimeout time.Duration
	LabelsEnabled bool
}

// FromConfig reads SERVICE_CLICKHOUSE_TABLE and CORE_LABELS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	ch := cfg.Prefix("SERVICE_CLICKHOUSE_")
	lc := cfg.Prefix("CORE_LABELS_")
	return Options{
		SearchTable:   ch.MayString("TABLE", repo.DefaultSearchTable),
		LabelsBaseURL: lc.MayString("BASE_URL", ""),
		LabelsTimeout: lc.MayDuration("TIMEOUT", 5*time.Second),
		LabelsEnabled: lc.MayBool("ENABLED", true),
	}
}
