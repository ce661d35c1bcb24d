package components

import (
	"tutorhub/internal/handler"
	"tutorhub/internal/handler/api"
	"tutorhub/internal/handler/middleware"
	"tutorhub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewNotificationHandler,
		NewIdentityMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewIdentityMiddleware(cfg config.Config) *middleware.IdentityMiddleware {
	return middleware.NewIdentityMiddleware(cfg.Auth)
}
