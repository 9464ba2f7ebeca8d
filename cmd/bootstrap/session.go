package bootstrap

import (
	"context"
	"log/slog"

	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/infra/sessionstore"
	"booking-widget/internal/pkg/clock"
	"booking-widget/internal/pkg/config"
	"booking-widget/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(fx.Self()),
			fx.As(new(usecase.SessionRepository)),
		),
	),
)

// NewSessionStore runs the idle sweeper for as long as the app is up.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) *sessionstore.MemoryStore {
	store := sessionstore.NewMemoryStore(
		cfg.Session.IdleTTL,
		clk,
		logger,
		workflow.WithCurrencySymbol(cfg.Widget.CurrencySymbol),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				store.Run(ctx, cfg.Session.SweepInterval)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})

	return store
}
