package handler

import "github.com/mishasvintus/cohort_gateway/internal/domain"

// CohortRequest represents request body for POST /cohorts and PUT /cohorts/:id.
type CohortRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	OwnerUserID *int64          `json:"owner_user_id"`
	Members     []domain.Member `json:"members"`
}

// DecorateRequest represents request body for POST /members/decorate.
type DecorateRequest struct {
	Keys []string `json:"keys" binding:"required"`
}

// CreateDraftRequest represents request body for POST /drafts.
// Name may be omitted when the draft starts from a cohort.
type CreateDraftRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerUserID *int64 `json:"owner_user_id"`
	CohortID    string `json:"cohort_id"`
}

// AddMembersRequest represents request body for POST /drafts/:id/members.
type AddMembersRequest struct {
	Members []domain.Member `json:"members" binding:"required,min=1"`
}

// PopulateDraftRequest represents request body for POST /drafts/:id/populate.
type PopulateDraftRequest struct {
	Keys []string `json:"keys" binding:"required"`
}
