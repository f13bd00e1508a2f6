package bootstrap

import (
	"pass-config-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	ReconcileModule,
	MessagingModule,
	components.HandlerModule,
)
