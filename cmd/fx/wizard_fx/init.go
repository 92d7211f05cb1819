package wizard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"optiqa/internal/repositories"
	"optiqa/internal/services"
	"optiqa/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionRepo, provideSessionRuntimes, provideWizardService,
)

func provideSessionRepo(db *gorm.DB) repositories.SessionRepositoryInterface {
	return repositories.NewSessionRepository(db)
}

func provideSessionRuntimes() *memcache.SessionRuntimes {
	return memcache.NewSessionRuntimes()
}

func provideWizardService(
	repo repositories.SessionRepositoryInterface,
	runtimes *memcache.SessionRuntimes,
	insights services.InsightServiceInterface,
) services.WizardServiceInterface {
	return services.NewWizardService(repo, runtimes, insights)
}
