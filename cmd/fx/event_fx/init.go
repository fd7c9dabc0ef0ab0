package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"campscan/internal/repositories"
	"campscan/internal/services"
)

var Module = fx.Provide(
	provideEventService, provideEventRepo)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(
	eventRepo repositories.EventRepository,
	participantRepo repositories.ParticipantRepository,
	locations services.LocationServiceInterface,
) services.EventServiceInterface {
	return services.NewEventService(eventRepo, participantRepo, locations)
}
