package dashboard

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind selects how a notification is styled.
type NotificationKind int

const (
	NotifyInfo NotificationKind = iota
	NotifySuccess
	NotifyWarning
	NotifyError
)

func (k NotificationKind) String() string {
	switch k {
	case NotifySuccess:
		return "success"
	case NotifyWarning:
		return "warning"
	case NotifyError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a transient status message. Only the notification whose
// ID matches State.Notification can be dismissed by its timer.
type Notification struct {
	ID        uuid.UUID
	Text      string
	Kind      NotificationKind
	RaisedAt  time.Time
	ExpiresIn time.Duration
}

// Effect is work the runtime must perform after a state transition.
type Effect interface {
	isEffect()
}

// ScheduleDismiss asks the runtime to dispatch DismissNotification{ID} after
// the given delay.
type ScheduleDismiss struct {
	ID    uuid.UUID
	After time.Duration
}

func (ScheduleDismiss) isEffect() {}

func notify(env Env, s State, text string, kind NotificationKind) (State, []Effect) {
	n := &Notification{
		ID:        env.newID(),
		Text:      text,
		Kind:      kind,
		RaisedAt:  env.now(),
		ExpiresIn: env.timeout(),
	}
	s.Notification = n
	return s, []Effect{ScheduleDismiss{ID: n.ID, After: n.ExpiresIn}}
}

func dismiss(s State, id uuid.UUID) State {
	if s.Notification != nil && s.Notification.ID == id {
		s.Notification = nil
	}
	return s
}
