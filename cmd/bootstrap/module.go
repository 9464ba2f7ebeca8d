package bootstrap

import (
	"booking-widget/cmd/bootstrap/components"
	"booking-widget/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Provide(clock.NewRealClock),
	JWTModule,
	SessionModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
