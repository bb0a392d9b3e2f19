package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
	"github.com/mishasvintus/cohort_gateway/internal/eureka"
	"github.com/mishasvintus/cohort_gateway/internal/expression"
)

// ErrorCode represents API error codes.
type ErrorCode string

const (
	ErrorNotFound       ErrorCode = "NOT_FOUND"
	ErrorInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorDraftEmpty     ErrorCode = "DRAFT_EMPTY"
	ErrorUpstream       ErrorCode = "UPSTREAM_ERROR"
	ErrorInternal       ErrorCode = "INTERNAL_ERROR"
	ErrorUnavailable    ErrorCode = "UNAVAILABLE"
)

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

// CohortResponse wraps cohort data. Node is the member expression in the
// upstream wire format.
type CohortResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	OwnerUserID *int64          `json:"owner_user_id"`
	Node        json.RawMessage `json:"node"`
	MemberKeys  []string        `json:"member_keys"`
}

// CohortListResponse wraps the cohort list.
type CohortListResponse struct {
	Cohorts []domain.CohortSummary `json:"cohorts"`
}

// CohortMembersResponse wraps a cohort with decorated members.
type CohortMembersResponse struct {
	Cohort        *CohortResponse       `json:"cohort"`
	Members       []domain.Member       `json:"members"`
	Notifications []domain.Notification `json:"notifications"`
}

// PhenotypesResponse wraps summaries of cohort members.
type PhenotypesResponse struct {
	Phenotypes []domain.ConceptSummary `json:"phenotypes"`
}

// DecorateResponse wraps decorated members.
type DecorateResponse struct {
	Members       []domain.Member       `json:"members"`
	Notifications []domain.Notification `json:"notifications"`
}

// DraftResponse wraps a draft.
type DraftResponse struct {
	Draft         *domain.Draft         `json:"draft"`
	Notifications []domain.Notification `json:"notifications,omitempty"`
	Added         *int                  `json:"added,omitempty"`
}

// HealthResponse represents the health check result.
type HealthResponse struct {
	Status string `json:"status"`
}

func cohortToResponse(c *domain.Cohort) (*CohortResponse, error) {
	node, err := domain.MarshalNode(c.Root)
	if err != nil {
		return nil, err
	}
	return &CohortResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OwnerUserID: c.OwnerUserID,
		Node:        node,
		MemberKeys:  expression.Flatten(c.Root),
	}, nil
}

type cohortFields CohortResponse

// encode writes the response with the node appended verbatim, so deep
// expressions bypass the nesting limit of gin's JSON renderer.
func (r *CohortResponse) encode() ([]byte, error) {
	head, err := json.Marshal(struct {
		*cohortFields
		Node *struct{} `json:"node,omitempty"`
	}{cohortFields: (*cohortFields)(r)})
	if err != nil {
		return nil, err
	}
	return domain.AppendMember(head, "node", r.Node)
}

type cohortMembersFields CohortMembersResponse

func (r *CohortMembersResponse) encode() ([]byte, error) {
	head, err := json.Marshal(struct {
		*cohortMembersFields
		Cohort *struct{} `json:"cohort,omitempty"`
	}{cohortMembersFields: (*cohortMembersFields)(r)})
	if err != nil {
		return nil, err
	}
	cohort, err := r.Cohort.encode()
	if err != nil {
		return nil, err
	}
	return domain.AppendMember(head, "cohort", cohort)
}

func writeJSON(c *gin.Context, status int, body []byte) {
	c.Data(status, "application/json; charset=utf-8", body)
}

func nonNilNotifications(n []domain.Notification) []domain.Notification {
	if n == nil {
		return []domain.Notification{}
	}
	return n
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: struct {
			Code    ErrorCode `json:"code"`
			Message string    `json:"message"`
		}{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, ErrorInvalidRequest, message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, ErrorInternal, message, http.StatusInternalServerError)
}

// ServerError sends 502 with the upstream message when err came from the
// remote API, 500 otherwise.
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)

	var rerr *eureka.RemoteError
	if errors.As(err, &rerr) {
		Error(c, ErrorUpstream, rerr.Message, http.StatusBadGateway)
		return
	}
	InternalError(c, err.Error())
}
