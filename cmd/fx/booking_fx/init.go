package booking_fx

import (
	"go.uber.org/fx"

	"optiqa/internal/repositories"
	"optiqa/internal/services"
)

var Module = fx.Provide(
	provideBookingService, provideExportService,
)

func provideBookingService(repo repositories.SessionRepositoryInterface) services.BookingServiceInterface {
	return services.NewBookingService(repo)
}

func provideExportService(repo repositories.SessionRepositoryInterface) services.ExportServiceInterface {
	return services.NewExportService(repo)
}
