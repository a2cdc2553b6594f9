package services

import (
	"context"
	"log/slog"

	"github.com/clinicproject/vetclinic-backend/internal/models"
)

// Notifier is told about account events. No email is sent yet.
type Notifier interface {
	StaffRegistered(ctx context.Context, user *models.User)
	TutorRegistered(ctx context.Context, tutor *models.Tutor)
}

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) StaffRegistered(ctx context.Context, user *models.User) {
	slog.InfoContext(ctx, "welcome notification queued",
		"entity", "user", "entity_id", user.ID.String(), "email", user.Email, "role", user.Role.String())
}

func (LogNotifier) TutorRegistered(ctx context.Context, tutor *models.Tutor) {
	slog.InfoContext(ctx, "welcome notification queued",
		"entity", "tutor", "entity_id", tutor.ID.String(), "email", tutor.Email)
}
