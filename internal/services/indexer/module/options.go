package module

import (
	"time"

	"pillbox/internal/platform/config"
)

// Options holds configuration for the indexer
type Options struct {
	Workers   int
	PageSize  int
	Attempts  int
	RetryBase time.Duration
	Table     string
}

// FromConfig reads CORE_INDEXER_ and the shared SERVICE_CLICKHOUSE_TABLE
func FromConfig(cfg config.Conf) Options {
	ix := cfg.Prefix("CORE_INDEXER_")
	return Options{
		Workers:   ix.MayInt("WORKERS", 2),
		PageSize:  ix.MayInt("PAGE_SIZE", 5000),
		Attempts:  ix.MayInt("READ_ATTEMPTS", 3),
		RetryBase: ix.MayDuration("RETRY_BASE", 200*time.Millisecond),
		Table:     cfg.Prefix("SERVICE_CLICKHOUSE_").MayString("TABLE", "medicine_search"),
	}
}
