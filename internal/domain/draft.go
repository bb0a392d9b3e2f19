package domain

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a member list being edited before it is committed as a cohort.
// CohortID is empty until the draft is committed for the first time
// or when the draft was not started from an existing cohort.
type Draft struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerUserID *int64    `json:"owner_user_id"`
	CohortID    string    `json:"cohort_id,omitempty"`
	Members     []Member  `json:"members"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DraftInput describes a new draft.
type DraftInput struct {
	Name        string
	Description string
	OwnerUserID *int64
	CohortID    string
}

// CohortInput converts the draft into a create/update request.
func (d *Draft) CohortInput() CohortInput {
	return CohortInput{
		ID:          d.CohortID,
		Name:        d.Name,
		Description: d.Description,
		OwnerUserID: d.OwnerUserID,
		Members:     d.Members,
	}
}
