package components

import (
	"log/slog"

	"booking-widget/internal/infra/reservationapi"
	"booking-widget/internal/pkg/config"
	"booking-widget/internal/usecase"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewReservationClient,
			fx.As(new(usecase.ReservationAPI)),
		),
	),
)

func NewReservationClient(cfg config.Config, logger *slog.Logger) *reservationapi.Client {
	return reservationapi.NewClient(cfg.ReservationAPI, logger)
}
