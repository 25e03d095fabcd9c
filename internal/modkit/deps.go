package modkit

import (
	"pillbox/internal/modkit/repokit"
	"pillbox/internal/platform/config"
	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// CH and RDS are nil when the store is disabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	RDS store.Redis
}
