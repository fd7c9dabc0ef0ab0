package participant_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"campscan/internal/repositories"
	"campscan/internal/services"
)

var Module = fx.Provide(
	provideParticipantService, provideParticipantRepo)

func provideParticipantRepo(db *gorm.DB) repositories.ParticipantRepository {
	return repositories.NewParticipantRepository(db)
}

func provideParticipantService(
	participantRepo repositories.ParticipantRepository,
	eventRepo repositories.EventRepository,
	activityRepo repositories.ActivityRepository,
	accountRepo repositories.AccountRepository,
	logRepo repositories.ActivityLogRepository,
) services.ParticipantServiceInterface {
	return services.NewParticipantService(participantRepo, eventRepo, activityRepo, accountRepo, logRepo)
}
