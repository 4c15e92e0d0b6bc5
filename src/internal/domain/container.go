package domain

import (
	"fmt"
	"time"

	"github.com/shourov-bot/bot-panel/src/internal/auth"
	"github.com/shourov-bot/bot-panel/src/internal/chat"
	"github.com/shourov-bot/bot-panel/src/internal/config"
	"github.com/shourov-bot/bot-panel/src/internal/log"
	"github.com/shourov-bot/bot-panel/src/internal/metrics"
	"github.com/shourov-bot/bot-panel/src/internal/models"
	"github.com/shourov-bot/bot-panel/src/internal/service"
	"github.com/shourov-bot/bot-panel/src/internal/stats"
	"github.com/shourov-bot/bot-panel/src/internal/store"
)

// AppDependencies is a dependency injection container that holds all application dependencies.
//
// It replaces module-level singletons: the store, the stats aggregator and
// the services built on them are created here once and handed to the API
// router and the commands.
//
// Usage:
//
//	deps, err := domain.NewAppDependencies(domain.AppConfigFromConfig(cfg))
//	if err != nil {
//	    return err
//	}
//	defer deps.Close()
//	router, err := api.NewRouter(deps, api.RouterOptions{})
type AppDependencies struct {
	store   *store.Store
	stats   *stats.Aggregator
	metrics *metrics.Registry
	chat    *chat.Responder

	logService  *service.LogService
	botService  *service.BotService
	authService *service.AuthService
}

// AppConfig holds configuration for creating application dependencies.
type AppConfig struct {
	AdminUsername string
	AdminPassword string

	// TokenSecret signs session tokens. Empty means a random per-process secret.
	TokenSecret string
	TokenTTL    time.Duration

	BotName       string
	RestartDelay  time.Duration
	RestartPolicy stats.RestartPolicy

	// SkipSeed leaves the store empty.
	SkipSeed bool

	// Clock overrides time.Now for store timestamps.
	Clock func() time.Time
}

// AppConfigFromConfig maps a loaded configuration onto AppConfig.
func AppConfigFromConfig(cfg *config.Config) AppConfig {
	policy := stats.PolicyReplace
	if cfg.Bot.RestartPolicy == config.RestartPolicyReject {
		policy = stats.PolicyReject
	}

	return AppConfig{
		AdminUsername: cfg.Auth.AdminUsername,
		AdminPassword: cfg.Auth.AdminPassword,
		TokenSecret:   cfg.Auth.TokenSecret,
		TokenTTL:      cfg.Auth.TokenTTL(),
		BotName:       cfg.Bot.Name,
		RestartDelay:  cfg.Bot.RestartDelay(),
		RestartPolicy: policy,
	}
}

// NewAppDependencies creates a new dependency container and seeds the store.
func NewAppDependencies(cfg AppConfig) (*AppDependencies, error) {
	reg := metrics.New()

	var storeOpts []store.Option
	if cfg.Clock != nil {
		storeOpts = append(storeOpts, store.WithClock(cfg.Clock))
	}
	st := store.New(storeOpts...)
	st.OnLog(reg.ObserveLog)

	agg := stats.NewAggregator(
		stats.WithRestartPolicy(cfg.RestartPolicy),
		stats.WithStatusHook(func(prev, next models.BotStatus) {
			reg.SetBotStatus(next)
			if prev == models.BotStatusRestarting && next == models.BotStatusOnline {
				reg.Restarts.Inc()
			}
		}),
	)
	reg.SetBotStatus(agg.Snapshot().Status)

	tokens, err := auth.NewIssuer(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	logService := service.NewLogService(st)

	if !cfg.SkipSeed {
		if store.Seed(st, store.SeedOptions{
			AdminUsername: cfg.AdminUsername,
			AdminPassword: cfg.AdminPassword,
		}) {
			log.Debugf("Store seeded with bootstrap data")
		}
	}

	return &AppDependencies{
		store:       st,
		stats:       agg,
		metrics:     reg,
		chat:        chat.NewResponder(cfg.BotName),
		logService:  logService,
		botService:  service.NewBotService(agg, logService, cfg.RestartDelay),
		authService: service.NewAuthService(st, tokens),
	}, nil
}

// NewDefaultDependencies creates dependencies using the default configuration.
func NewDefaultDependencies() (*AppDependencies, error) {
	return NewAppDependencies(AppConfigFromConfig(config.DefaultConfig()))
}

// Store returns the entity store.
func (d *AppDependencies) Store() *store.Store {
	return d.store
}

// Stats returns the bot stats aggregator.
func (d *AppDependencies) Stats() *stats.Aggregator {
	return d.stats
}

// Metrics returns the Prometheus registry.
func (d *AppDependencies) Metrics() *metrics.Registry {
	return d.metrics
}

// Chat returns the assistant responder.
func (d *AppDependencies) Chat() *chat.Responder {
	return d.chat
}

// LogService returns the activity log service.
func (d *AppDependencies) LogService() *service.LogService {
	return d.logService
}

// BotService returns the bot control service.
func (d *AppDependencies) BotService() *service.BotService {
	return d.botService
}

// AuthService returns the login service.
func (d *AppDependencies) AuthService() *service.AuthService {
	return d.authService
}

// Close stops background timers.
func (d *AppDependencies) Close() {
	d.botService.Close()
}
