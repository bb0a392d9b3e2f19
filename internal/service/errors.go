package service

import "errors"

var (
	ErrCohortNotFound  = errors.New("cohort not found")
	ErrConceptNotFound = errors.New("concept not found")
	ErrDraftNotFound   = errors.New("draft not found")
	ErrDraftEmpty      = errors.New("draft has no members")
	ErrMemberNotFound  = errors.New("member is not in the draft")
)
