package scan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"campscan/internal/repositories"
	"campscan/internal/services"
)

var Module = fx.Provide(
	provideScanService, provideLocationService, provideActivityLogRepo)

func provideActivityLogRepo(db *gorm.DB) repositories.ActivityLogRepository {
	return repositories.NewActivityLogRepository(db)
}

func provideLocationService(
	logRepo repositories.ActivityLogRepository,
	participantRepo repositories.ParticipantRepository,
	activityRepo repositories.ActivityRepository,
) services.LocationServiceInterface {
	return services.NewLocationService(logRepo, participantRepo, activityRepo)
}

func provideScanService(
	participantRepo repositories.ParticipantRepository,
	activityRepo repositories.ActivityRepository,
	logRepo repositories.ActivityLogRepository,
	locations services.LocationServiceInterface,
) services.ScanServiceInterface {
	return services.NewScanService(participantRepo, activityRepo, logRepo, locations)
}
