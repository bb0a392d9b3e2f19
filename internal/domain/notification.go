package domain

// NotificationKind classifies a non-fatal problem reported to the user.
type NotificationKind string

// Notification kinds.
const (
	NotificationUnknownConcept   NotificationKind = "unknown_concept"
	NotificationUnknownPhenotype NotificationKind = "unknown_phenotype"
)

// Notification is a user-visible message that does not abort an operation.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Key     string           `json:"key"`
	Message string           `json:"message"`
}
