package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"campscan/internal/repositories"
	"campscan/internal/services"
)

var Module = fx.Provide(
	provideActivityService, provideActivityRepo)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	eventRepo repositories.EventRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, eventRepo)
}
