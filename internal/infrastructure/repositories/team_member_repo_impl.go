package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"msc-team.backend/internal/domain/entities"
	domainerrors "msc-team.backend/internal/domain/errors"
	"msc-team.backend/internal/infrastructure/models"
	"msc-team.backend/pkg/utils"
)

// TeamMemberRepository is the relational profile store. The unique indexes
// on email and reg_number arbitrate concurrent registrations.
type TeamMemberRepository struct {
	db *gorm.DB
}

func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

func (r *TeamMemberRepository) Create(ctx context.Context, member *entities.TeamMember) error {
	member.Normalize()
	if err := member.Validate(); err != nil {
		return err
	}
	if member.ID == uuid.Nil {
		member.ID = utils.NewID()
	}

	m := toTeamMemberModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return mapStoreError(err)
	}
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TeamMemberRepository) FindByEmailOrRegNumber(ctx context.Context, email, regNumber string) (*entities.TeamMember, error) {
	var m models.TeamMember
	err := r.db.WithContext(ctx).
		Where("email = ? OR reg_number = ?", email, regNumber).
		First(&m).Error
	if err != nil {
		return nil, mapStoreError(err)
	}
	return toTeamMemberEntity(&m), nil
}

func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.TeamMember, error) {
	var m models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return toTeamMemberEntity(&m), nil
}

func (r *TeamMemberRepository) List(ctx context.Context, filter entities.TeamMemberFilter) ([]*entities.TeamMember, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TeamMember{})
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC, id DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit)
	}

	var ms []models.TeamMember
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.TeamMember, 0, len(ms))
	for i := range ms {
		items = append(items, toTeamMemberEntity(&ms[i]))
	}
	return items, total, nil
}

func (r *TeamMemberRepository) Update(ctx context.Context, member *entities.TeamMember) error {
	member.Normalize()
	if err := member.Validate(); err != nil {
		return err
	}
	member.UpdatedAt = time.Now()

	m := toTeamMemberModel(member)
	result := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Where("id = ?", member.ID).
		Select(
			"name", "reg_number", "email", "contact_number", "department", "role",
			"github_link", "linkedin_link", "resume_link", "portfolio_link",
			"skills", "short_bio", "image_path", "updated_at",
		).
		Updates(m)
	if result.Error != nil {
		return mapStoreError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toTeamMemberModel(e *entities.TeamMember) *models.TeamMember {
	return &models.TeamMember{
		ID:            e.ID,
		Name:          e.Name,
		RegNumber:     e.RegNumber,
		Email:         e.Email,
		ContactNumber: e.ContactNumber,
		Department:    e.Department,
		Role:          e.Role,
		GithubLink:    e.GithubLink,
		LinkedinLink:  e.LinkedinLink,
		ResumeLink:    e.ResumeLink,
		PortfolioLink: e.PortfolioLink,
		Skills:        e.Skills,
		ShortBio:      e.ShortBio,
		ImagePath:     e.ImagePath.Ptr(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toTeamMemberEntity(m *models.TeamMember) *entities.TeamMember {
	skills := m.Skills
	if skills == nil {
		skills = []string{}
	}
	return &entities.TeamMember{
		ID:            m.ID,
		Name:          m.Name,
		RegNumber:     m.RegNumber,
		Email:         m.Email,
		ContactNumber: m.ContactNumber,
		Department:    m.Department,
		Role:          m.Role,
		GithubLink:    m.GithubLink,
		LinkedinLink:  m.LinkedinLink,
		ResumeLink:    m.ResumeLink,
		PortfolioLink: m.PortfolioLink,
		Skills:        skills,
		ShortBio:      m.ShortBio,
		ImagePath:     null.StringFromPtr(m.ImagePath),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
