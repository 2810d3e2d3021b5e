package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"msc-team.backend/internal/domain/entities"
	domainerrors "msc-team.backend/internal/domain/errors"
	"msc-team.backend/internal/domain/validation"
	"msc-team.backend/internal/infrastructure/media"
	"msc-team.backend/internal/interfaces/http/middleware"
	"msc-team.backend/internal/interfaces/http/response"
	"msc-team.backend/internal/usecases"
	"msc-team.backend/pkg/metrics"
)

const (
	msgRegistered    = "Team member registered successfully"
	msgUpdated       = "Team member updated successfully"
	msgDeleted       = "Team member deleted successfully"
	msgInvalidBody   = "Invalid request body"
	msgRegisterError = "Server error while registering team member"
	msgListError     = "Server error while fetching team members"
	msgGetError      = "Server error while fetching team member"
	msgUpdateError   = "Server error while updating team member"
	msgDeleteError   = "Server error while deleting team member"
	msgRosterError   = "Server error while fetching team roster"
)

type TeamMemberHandler struct {
	usecase   *usecases.TeamMemberUsecase
	validator *validation.Validator
	metrics   *metrics.Metrics
}

func NewTeamMemberHandler(usecase *usecases.TeamMemberUsecase, validator *validation.Validator, m *metrics.Metrics) *TeamMemberHandler {
	return &TeamMemberHandler{usecase: usecase, validator: validator, metrics: m}
}

// CreateTeamMember registers a new team member.
// POST /api/team-members
func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var input entities.TeamMemberInput
	fieldErrs, ok := h.bindInput(c, &input)
	if !ok {
		return
	}

	imageURL := middleware.UploadedImageURL(c)
	if imageURL == "" && middleware.ImageMissing(c) {
		fieldErrs = validation.Merge(fieldErrs, domainerrors.FieldError{
			Field:   media.FieldName,
			Message: middleware.MsgImageRequired,
		})
	}
	if len(fieldErrs) > 0 {
		h.metrics.RecordRegistration(metrics.OutcomeValidationFailed)
		response.Error(c, domainerrors.NewValidationError(fieldErrs), msgRegisterError)
		return
	}

	confirmation, err := h.usecase.Register(c.Request.Context(), &input, imageURL)
	if err != nil {
		response.Error(c, err, msgRegisterError)
		return
	}
	response.Success(c, http.StatusCreated, msgRegistered, confirmation)
}

// ListTeamMembers returns a page of team members, newest first.
// GET /api/team-members?department=&page=&limit=
func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, meta, err := h.usecase.List(c.Request.Context(), c.Query("department"), page, limit)
	if err != nil {
		response.Error(c, err, msgListError)
		return
	}
	response.Paginated(c, items, meta)
}

// GetTeamMember returns one team member.
// GET /api/team-members/:id
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	id, ok := parseMemberID(c)
	if !ok {
		return
	}
	member, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err, msgGetError)
		return
	}
	response.Success(c, http.StatusOK, "", member)
}

// UpdateTeamMember replaces a team member's fields. The image is optional.
// PUT /api/team-members/:id
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	var input entities.TeamMemberInput
	fieldErrs, ok := h.bindInput(c, &input)
	if !ok {
		return
	}
	if len(fieldErrs) > 0 {
		response.Error(c, domainerrors.NewValidationError(fieldErrs), msgUpdateError)
		return
	}

	id, ok := parseMemberID(c)
	if !ok {
		return
	}
	member, err := h.usecase.Update(c.Request.Context(), id, &input, middleware.UploadedImageURL(c))
	if err != nil {
		response.Error(c, err, msgUpdateError)
		return
	}
	response.Success(c, http.StatusOK, msgUpdated, member)
}

// DeleteTeamMember removes a team member.
// DELETE /api/team-members/:id
func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := parseMemberID(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err, msgDeleteError)
		return
	}
	response.Success(c, http.StatusOK, msgDeleted, nil)
}

// GetRoster returns the members grouped by department.
// GET /api/team-members/roster
func (h *TeamMemberHandler) GetRoster(c *gin.Context) {
	roster, err := h.usecase.Roster(c.Request.Context())
	if err != nil {
		response.Error(c, err, msgRosterError)
		return
	}
	response.Success(c, http.StatusOK, "", roster)
}

// ListDepartments returns the department enumeration.
// GET /api/team-members/departments
func (h *TeamMemberHandler) ListDepartments(c *gin.Context) {
	response.Success(c, http.StatusOK, "", entities.DepartmentNames())
}

// GetValidationRules returns the field rule set so that forms can check
// input before submitting.
// GET /api/team-members/rules
func (h *TeamMemberHandler) GetValidationRules(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.validator.Rules())
}

// bindInput decodes the body into input, sanitizes it and returns every
// failing field. A wrongly typed JSON value is reported against its field.
// ok is false when a response has already been written.
func (h *TeamMemberHandler) bindInput(c *gin.Context, input *entities.TeamMemberInput) (fieldErrs []domainerrors.FieldError, ok bool) {
	var typeErrs []domainerrors.FieldError
	if err := c.ShouldBind(input); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			typeErrs = append(typeErrs, validation.TypeMismatch(typeErr.Field))
		case errors.Is(err, io.EOF):
			// Empty body: every required field is reported below.
		default:
			response.ErrorWithError(c, http.StatusBadRequest, domainerrors.CodeBadRequest, msgInvalidBody)
			return nil, false
		}
	}

	input.Sanitize()
	return validation.Merge(h.validator.Validate(input), typeErrs...), true
}

// parseMemberID reports a malformed id as not found.
func parseMemberID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.NotFound(usecases.MsgTeamMemberNotFound), "")
		return uuid.Nil, false
	}
	return id, true
}
