package controllers_fx

import (
	"go.uber.org/fx"

	"optiqa/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewWizardController),
	fx.Provide(controllers.NewBookingController))
