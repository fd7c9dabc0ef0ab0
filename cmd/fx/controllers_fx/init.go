package controllers_fx

import (
	"go.uber.org/fx"

	"campscan/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewParticipantController),
	fx.Provide(controllers.NewScanController),
	fx.Provide(controllers.NewReportController))
