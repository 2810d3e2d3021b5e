package repositories

import (
	"context"

	"github.com/google/uuid"
	"msc-team.backend/internal/domain/entities"
)

// TeamMemberRepository persists team member profiles. Implementations must
// enforce uniqueness of email and regNumber themselves and report a
// violation as domainerrors.ErrDuplicateKey.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *entities.TeamMember) error
	// FindByEmailOrRegNumber returns domainerrors.ErrNotFound when no
	// profile uses either key.
	FindByEmailOrRegNumber(ctx context.Context, email, regNumber string) (*entities.TeamMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error)
	// List returns the filtered page ordered by creation time, newest first,
	// and the total number of matching profiles.
	List(ctx context.Context, filter entities.TeamMemberFilter) ([]*entities.TeamMember, int64, error)
	Update(ctx context.Context, member *entities.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}
