package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/service"
)

// DraftHandler handles draft-related HTTP requests.
type DraftHandler struct {
	draftService DraftServiceInterface
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(draftService DraftServiceInterface) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// CreateDraft handles POST /drafts.
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req CreateDraftRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" && req.CohortID == "" {
		BadRequest(c, "name or cohort_id is required")
		return
	}

	d, notifications, err := h.draftService.CreateDraft(c.Request.Context(), domain.DraftInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerUserID: req.OwnerUserID,
		CohortID:    req.CohortID,
	})
	if err != nil {
		if errors.Is(err, service.ErrCohortNotFound) {
			NotFound(c, "cohort not found")
			return
		}
		ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DraftResponse{Draft: d, Notifications: notifications})
}

// GetDraft handles GET /drafts/:id.
func (h *DraftHandler) GetDraft(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	d, err := h.draftService.GetDraft(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// DeleteDraft handles DELETE /drafts/:id.
func (h *DraftHandler) DeleteDraft(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	if err := h.draftService.DeleteDraft(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMembers handles POST /drafts/:id/members.
func (h *DraftHandler) AddMembers(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	var req AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	for _, m := range req.Members {
		if m.Key == "" {
			BadRequest(c, "member key is required")
			return
		}
	}

	d, added, err := h.draftService.AddMembers(c.Request.Context(), id, req.Members)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: d, Added: &added})
}

// RemoveMember handles DELETE /drafts/:id/members/:key.
func (h *DraftHandler) RemoveMember(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	d, err := h.draftService.RemoveMember(c.Request.Context(), id, c.Param("key"))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: d})
}

// PopulateDraft handles POST /drafts/:id/populate.
func (h *DraftHandler) PopulateDraft(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	var req PopulateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	d, notifications, err := h.draftService.PopulateDraft(c.Request.Context(), id, req.Keys)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, DraftResponse{Draft: d, Notifications: notifications})
}

// CommitDraft handles POST /drafts/:id/commit.
func (h *DraftHandler) CommitDraft(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	cohort, err := h.draftService.CommitDraft(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	resp, err := cohortToResponse(cohort)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DraftHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDraftNotFound):
		NotFound(c, "draft not found")
	case errors.Is(err, service.ErrMemberNotFound):
		NotFound(c, "member not found")
	case errors.Is(err, service.ErrCohortNotFound):
		NotFound(c, "cohort not found")
	case errors.Is(err, service.ErrDraftEmpty):
		Error(c, ErrorDraftEmpty, "draft has no members", http.StatusBadRequest)
	default:
		ServerError(c, err)
	}
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		BadRequest(c, "invalid draft id")
		return uuid.Nil, false
	}
	return id, true
}
