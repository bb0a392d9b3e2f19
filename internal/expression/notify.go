package expression

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/mishasvintus/cohort_gateway/internal/domain"
)

// UnresolvedMemberError reports a key without display metadata.
// It never aborts the operation that produced it.
type UnresolvedMemberError struct {
	Kind domain.NotificationKind
	Key  string
}

func (e *UnresolvedMemberError) Error() string {
	switch e.Kind {
	case domain.NotificationUnknownPhenotype:
		return "Unknown phenotype " + e.Key
	case domain.NotificationUnknownConcept:
		return "Unknown concept " + e.Key
	default:
		return fmt.Sprintf("Unknown member %s", e.Key)
	}
}

// Notification converts the error into a user-visible notification.
func (e *UnresolvedMemberError) Notification() domain.Notification {
	return domain.Notification{Kind: e.Kind, Key: e.Key, Message: e.Error()}
}

// Notifier receives non-fatal notifications. Implementations must be safe
// for concurrent use.
type Notifier interface {
	Notify(n domain.Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n domain.Notification)

// Notify implements Notifier.
func (f NotifierFunc) Notify(n domain.Notification) { f(n) }

// Collector accumulates notifications.
type Collector struct {
	mu    sync.Mutex
	items []domain.Notification
}

// Notify implements Notifier.
func (c *Collector) Notify(n domain.Notification) {
	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()
}

// Notifications returns collected notifications in arrival order.
func (c *Collector) Notifications() []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Notification, len(c.items))
	copy(out, c.items)
	return out
}

// LogNotifier writes notifications to the global logger.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(n domain.Notification) {
	log.Warn().
		Str("module", "expression").
		Str("kind", string(n.Kind)).
		Str("key", n.Key).
		Msg(n.Message)
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(n domain.Notification) {
	for _, notifier := range m {
		if notifier != nil {
			notifier.Notify(n)
		}
	}
}
