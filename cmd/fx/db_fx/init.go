package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"optiqa/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(registerDBLifecycle),
)

func provideDB() *gorm.DB {
	return infra.InitDatabase()
}

func registerDBLifecycle(lc fx.Lifecycle, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db)
			return nil
		},
	})
}
