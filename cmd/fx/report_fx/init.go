package report_fx

import (
	"go.uber.org/fx"

	"campscan/internal/repositories"
	"campscan/internal/services"
)

var Module = fx.Provide(
	provideReportService)

func provideReportService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	activityRepo repositories.ActivityRepository,
	locations services.LocationServiceInterface,
) services.ReportServiceInterface {
	return services.NewReportService(eventRepo, participantRepo, activityRepo, locations)
}
