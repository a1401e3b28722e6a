package app

import (
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/shared/config"
)

type dbProviderIn struct {
	fx.In

	Config config.ConfigProvider
	Bin    string `name:"bin"`
}

// postgresPool opens the connection on first use. Only the postgres session
// store and the postgres idempotency store need it.
type postgresPool struct {
	cfg config.ConfigProvider
	bin string

	once sync.Once
	db   *sqlx.DB
	err  error
}

func providePostgresPool(in dbProviderIn) *postgresPool {
	return &postgresPool{cfg: in.Config, bin: in.Bin}
}

func (p *postgresPool) DB() (*sqlx.DB, error) {
	p.once.Do(func() {
		p.db, p.err = openPostgresSQLX(p.cfg, p.bin)
	})
	return p.db, p.err
}

func (p *postgresPool) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

func openPostgresSQLX(cfg config.ConfigProvider, bin string) (*sqlx.DB, error) {
	useModuleConfig := !isSingleBinaryBin(bin)
	module := strings.TrimSpace(strings.ToLower(bin))

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		moduleDBString(cfg, module, "host", useModuleConfig),
		moduleDBInt(cfg, module, "port", useModuleConfig),
		moduleDBString(cfg, module, "user", useModuleConfig),
		moduleDBString(cfg, module, "password", useModuleConfig),
		moduleDBString(cfg, module, "name", useModuleConfig),
		moduleDBString(cfg, module, "ssl_mode", useModuleConfig),
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db(%s): failed to open postgres connection: %w", module, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): failed to ping postgres: %w", module, err)
	}

	return db, nil
}

// moduleDBString prefers database.<bin>.<key> when the process runs one bin,
// then falls back to the shared database.<key>.
func moduleDBString(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetString(moduleKey)
		}
	}
	return cfg.GetString(fmt.Sprintf("database.%s", key))
}

func moduleDBInt(cfg config.ConfigProvider, module, key string, useModuleConfig bool) int {
	if useModuleConfig {
		moduleKey := fmt.Sprintf("database.%s.%s", module, key)
		if cfg.IsSet(moduleKey) {
			return cfg.GetInt(moduleKey)
		}
	}
	return cfg.GetInt(fmt.Sprintf("database.%s", key))
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == "all"
}
