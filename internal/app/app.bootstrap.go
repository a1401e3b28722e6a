package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/shared/config"
	sharedjwt "github.com/joshuarp/flight-admin/internal/shared/jwt"
	sharedlog "github.com/joshuarp/flight-admin/internal/shared/log"
	"github.com/joshuarp/flight-admin/internal/shared/uid"
)

const (
	BinGateway = "gateway"
	BinWatch   = "watch"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	return fx.New(Options(bin, modules...)...)
}

// Options is the full option set New builds the app from.
func Options(bin string, modules ...fx.Option) []fx.Option {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
		fx.Invoke(registerLifecycle),
	}
	return append(opts, modules...)
}

// GatewayModules are the modules of the HTTP gateway binary.
func GatewayModules() []fx.Option {
	return []fx.Option{
		AuthModule(),
		FlightsModule(),
		HTTPServerModule(),
	}
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideUIDGenerator,
			provideJWTTokenManager,
			provideMetricsRegistry,
			provideRedisClient,
			providePostgresPool,
			provideFiberApp,
			provideRouterGroups,
			provideMessageExtractor,
			provideFetchMetrics,
			provideFetchOptions,
			provideUpstreamClient,
			provideSessionStore,
			provideFlightListings,
			provideRefresher,
			provideErrorResponder,
		),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := strings.TrimSpace(strings.ToLower(in.Bin))

	loadOrder := make([]config.Options, 0, 4)
	if bin == BinGateway || bin == BinWatch {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:  fmt.Sprintf(".env.%s", bin),
			},
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:  fmt.Sprintf(".env.%s.example", bin),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.yaml.example",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		opts.Defaults = config.Defaults()
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      "flight-admin",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func provideUIDGenerator(cfg config.ConfigProvider) (uid.UIDGenerator, error) {
	strategy, err := uid.ParseStrategy(cfg.GetString("uid.strategy"))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	return uid.New(uid.Options{
		Strategy: strategy,
		NodeID:   cfg.GetInt64("uid.node_id"),
	})
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}

func provideMetricsRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}
