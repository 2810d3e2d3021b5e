package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"msc-team.backend/internal/domain/entities"
	domainerrors "msc-team.backend/internal/domain/errors"
	"msc-team.backend/internal/domain/repositories"
	"msc-team.backend/pkg/logger"
	"msc-team.backend/pkg/metrics"
	"msc-team.backend/pkg/utils"
)

const (
	MsgTeamMemberNotFound = "Team member not found"
	MsgAlreadyRegistered  = "Team member with this email or registration number already exists"
	MsgDuplicateEntry     = "Duplicate entry - email or registration number already exists"
)

// TeamMemberUsecase handles team member registration and roster management
type TeamMemberUsecase struct {
	repo    repositories.TeamMemberRepository
	metrics *metrics.Metrics
}

// NewTeamMemberUsecase creates a new team member usecase. m may be nil.
func NewTeamMemberUsecase(repo repositories.TeamMemberRepository, m *metrics.Metrics) *TeamMemberUsecase {
	return &TeamMemberUsecase{repo: repo, metrics: m}
}

// Register creates a profile from an already validated submission.
// imageURL is the reference returned by the image uploader.
func (u *TeamMemberUsecase) Register(ctx context.Context, input *entities.TeamMemberInput, imageURL string) (*entities.RegistrationConfirmation, error) {
	existing, err := u.repo.FindByEmailOrRegNumber(ctx, input.Email, input.RegNumber)
	switch {
	case err == nil && existing != nil:
		u.metrics.RecordRegistration(metrics.OutcomeDuplicate)
		logger.Warn(ctx, "Registration rejected: already registered",
			zap.String("email", input.Email),
			zap.String("reg_number", input.RegNumber),
		)
		return nil, domainerrors.Conflict(MsgAlreadyRegistered)
	case err != nil && !errors.Is(err, domainerrors.ErrNotFound):
		u.metrics.RecordRegistration(metrics.OutcomeError)
		logger.Error(ctx, "Duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("check existing team member: %w", err)
	}

	member := &entities.TeamMember{ID: utils.NewID()}
	input.Apply(member)
	if imageURL != "" {
		member.ImagePath = null.StringFrom(imageURL)
	}

	if err := u.repo.Create(ctx, member); err != nil {
		return nil, u.registerFailure(ctx, input, err)
	}

	u.metrics.RecordRegistration(metrics.OutcomeCreated)
	logger.Info(ctx, "Team member registered",
		zap.String("id", member.ID.String()),
		zap.String("department", member.Department),
	)
	return &entities.RegistrationConfirmation{
		ID:         member.ID,
		Name:       member.Name,
		Email:      member.Email,
		Department: member.Department,
		Role:       member.Role,
	}, nil
}

func (u *TeamMemberUsecase) registerFailure(ctx context.Context, input *entities.TeamMemberInput, err error) error {
	switch {
	case domainerrors.IsDuplicate(err):
		// Lost a race against a concurrent registration with the same key.
		u.metrics.RecordRegistration(metrics.OutcomeDuplicate)
		logger.Warn(ctx, "Registration rejected by unique index",
			zap.String("email", input.Email),
			zap.String("reg_number", input.RegNumber),
		)
		return domainerrors.Conflict(MsgDuplicateEntry)
	case errors.Is(err, domainerrors.ErrValidation):
		u.metrics.RecordRegistration(metrics.OutcomeValidationFailed)
		return err
	default:
		u.metrics.RecordRegistration(metrics.OutcomeError)
		logger.Error(ctx, "Failed to store team member", zap.Error(err))
		return fmt.Errorf("create team member: %w", err)
	}
}

// List returns one page of profiles, newest first, with its pagination meta.
func (u *TeamMemberUsecase) List(ctx context.Context, department string, page, limit int) ([]*entities.TeamMember, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	items, total, err := u.repo.List(ctx, entities.TeamMemberFilter{
		Department: department,
		Page:       params.Page,
		Limit:      params.Limit,
	})
	if err != nil {
		return nil, utils.PaginationMeta{}, fmt.Errorf("list team members: %w", err)
	}
	return items, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Get returns a single profile.
func (u *TeamMemberUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	member, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if domainerrors.IsNotFound(err) {
			return nil, domainerrors.NotFound(MsgTeamMemberNotFound)
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return member, nil
}

// Update replaces the submitted fields of a profile. The stored image is
// kept unless imageURL is non-empty.
func (u *TeamMemberUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.TeamMemberInput, imageURL string) (*entities.TeamMember, error) {
	member, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(member)
	if imageURL != "" {
		member.ImagePath = null.StringFrom(imageURL)
	}

	if err := u.repo.Update(ctx, member); err != nil {
		switch {
		case domainerrors.IsNotFound(err):
			return nil, domainerrors.NotFound(MsgTeamMemberNotFound)
		case domainerrors.IsDuplicate(err):
			return nil, domainerrors.Conflict(MsgDuplicateEntry)
		case errors.Is(err, domainerrors.ErrValidation):
			return nil, err
		default:
			logger.Error(ctx, "Failed to update team member", zap.String("id", id.String()), zap.Error(err))
			return nil, fmt.Errorf("update team member: %w", err)
		}
	}

	logger.Info(ctx, "Team member updated", zap.String("id", id.String()))
	return member, nil
}

// Delete removes a profile.
func (u *TeamMemberUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if domainerrors.IsNotFound(err) {
			return domainerrors.NotFound(MsgTeamMemberNotFound)
		}
		logger.Error(ctx, "Failed to delete team member", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("delete team member: %w", err)
	}
	logger.Info(ctx, "Team member deleted", zap.String("id", id.String()))
	return nil
}

// Roster groups every profile by department, in department order, oldest
// member first. Departments without members are omitted.
func (u *TeamMemberUsecase) Roster(ctx context.Context) ([]entities.DepartmentRoster, error) {
	items, _, err := u.repo.List(ctx, entities.TeamMemberFilter{})
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	byDept := make(map[string][]*entities.TeamMember)
	for i := len(items) - 1; i >= 0; i-- {
		m := items[i]
		byDept[m.Department] = append(byDept[m.Department], m)
	}

	roster := make([]entities.DepartmentRoster, 0, len(byDept))
	for _, d := range entities.DepartmentNames() {
		members := byDept[d]
		if len(members) == 0 {
			continue
		}
		roster = append(roster, entities.DepartmentRoster{
			Department: d,
			Count:      len(members),
			Members:    members,
		})
	}
	return roster, nil
}
