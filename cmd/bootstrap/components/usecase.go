package components

import (
	"booking-widget/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewSessionUseCase,
		usecase.NewWidgetUseCase,
	),
)
