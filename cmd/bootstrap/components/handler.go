package components

import (
	"pass-config-engine/internal/handler"
	"pass-config-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewTempURLHandler,
		api.NewLibraryHandler,
		api.NewPricingHandler,
		api.NewSellerHandler,
	),
	fx.Invoke(handler.NewRouter),
)
