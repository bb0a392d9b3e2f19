package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/service"
)

// CohortHandler handles cohort-related HTTP requests.
type CohortHandler struct {
	cohortService CohortServiceInterface
}

// NewCohortHandler creates a new cohort handler.
func NewCohortHandler(cohortService CohortServiceInterface) *CohortHandler {
	return &CohortHandler{cohortService: cohortService}
}

// ListCohorts handles GET /cohorts.
func (h *CohortHandler) ListCohorts(c *gin.Context) {
	cohorts, err := h.cohortService.ListCohorts(c.Request.Context())
	if err != nil {
		ServerError(c, err)
		return
	}

	if cohorts == nil {
		cohorts = []domain.CohortSummary{}
	}
	c.JSON(http.StatusOK, CohortListResponse{Cohorts: cohorts})
}

// GetCohort handles GET /cohorts/:id.
func (h *CohortHandler) GetCohort(c *gin.Context) {
	cohort, err := h.cohortService.GetCohort(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCohortNotFound) {
			NotFound(c, "cohort not found")
			return
		}
		ServerError(c, err)
		return
	}

	h.respondCohort(c, http.StatusOK, cohort)
}

// GetCohortMembers handles GET /cohorts/:id/members.
func (h *CohortHandler) GetCohortMembers(c *gin.Context) {
	cm, err := h.cohortService.GetCohortMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCohortNotFound) {
			NotFound(c, "cohort not found")
			return
		}
		ServerError(c, err)
		return
	}

	resp, err := cohortToResponse(cm.Cohort)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	body, err := (&CohortMembersResponse{
		Cohort:        resp,
		Members:       cm.Members,
		Notifications: nonNilNotifications(cm.Notifications),
	}).encode()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	writeJSON(c, http.StatusOK, body)
}

// GetCohortPhenotypes handles GET /cohorts/:id/phenotypes.
func (h *CohortHandler) GetCohortPhenotypes(c *gin.Context) {
	phenotypes, err := h.cohortService.GetCohortPhenotypes(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCohortNotFound) {
			NotFound(c, "cohort not found")
			return
		}
		ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, PhenotypesResponse{Phenotypes: phenotypes})
}

// CreateCohort handles POST /cohorts.
func (h *CohortHandler) CreateCohort(c *gin.Context) {
	var req CohortRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	cohort, err := h.cohortService.CreateCohort(c.Request.Context(), req.toInput(""))
	if err != nil {
		ServerError(c, err)
		return
	}

	h.respondCohort(c, http.StatusCreated, cohort)
}

// UpdateCohort handles PUT /cohorts/:id.
func (h *CohortHandler) UpdateCohort(c *gin.Context) {
	var req CohortRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	cohort, err := h.cohortService.UpdateCohort(c.Request.Context(), req.toInput(c.Param("id")))
	if err != nil {
		if errors.Is(err, service.ErrCohortNotFound) {
			NotFound(c, "cohort not found")
			return
		}
		ServerError(c, err)
		return
	}

	h.respondCohort(c, http.StatusOK, cohort)
}

// DeleteCohort handles DELETE /cohorts/:id.
func (h *CohortHandler) DeleteCohort(c *gin.Context) {
	err := h.cohortService.DeleteCohort(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCohortNotFound) {
			NotFound(c, "cohort not found")
			return
		}
		ServerError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetConceptSummary handles GET /concepts/:key/summary.
func (h *CohortHandler) GetConceptSummary(c *gin.Context) {
	summary, err := h.cohortService.GetConceptSummary(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, service.ErrConceptNotFound) {
			NotFound(c, "concept not found")
			return
		}
		ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// DecorateMembers handles POST /members/decorate.
func (h *CohortHandler) DecorateMembers(c *gin.Context) {
	var req DecorateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	members, notifications, err := h.cohortService.DecorateKeys(c.Request.Context(), req.Keys)
	if err != nil {
		ServerError(c, err)
		return
	}

	if members == nil {
		members = []domain.Member{}
	}
	c.JSON(http.StatusOK, DecorateResponse{
		Members:       members,
		Notifications: nonNilNotifications(notifications),
	})
}

func (h *CohortHandler) respondCohort(c *gin.Context, status int, cohort *domain.Cohort) {
	resp, err := cohortToResponse(cohort)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	body, err := resp.encode()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	writeJSON(c, status, body)
}

func (r CohortRequest) toInput(id string) domain.CohortInput {
	return domain.CohortInput{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		OwnerUserID: r.OwnerUserID,
		Members:     r.Members,
	}
}
