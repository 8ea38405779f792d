package domain

import (
	"context"
	"errors"
	"time"
)

// Kind is the submission category, driving subject lines and auto-reply phrasing.
type Kind string

const (
	KindContact Kind = "contact"
	KindRequest Kind = "request"
)

// ParseKind maps an untrusted type value to a Kind. Anything that is not
// exactly "request" falls back to "contact".
func ParseKind(s string) Kind {
	if s == string(KindRequest) {
		return KindRequest
	}
	return KindContact
}

var (
	ErrBotSuspected = errors.New("honeypot field filled")
	ErrStoreFailed  = errors.New("could not persist submission")
)

// ValidationError carries the user-facing rejection message for a rule failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Submission is one contact or catering-request record captured from a form.
// Immutable once stored; ID and CreatedAt are assigned by the store.
type Submission struct {
	ID        string
	CreatedAt time.Time

	Kind          Kind
	Name          string
	Email         string
	Phone         string
	EventDate     string
	EventLocation string
	EventType     string
	Headcount     string
	Message       string
}

// SubmissionStore persists one record per submission. Save assigns ID and
// CreatedAt before writing. There is no update or delete path.
type SubmissionStore interface {
	Save(ctx context.Context, sub *Submission) error
}

// Notifier dispatches the staff alert and the submitter auto-reply.
// Both sends are best-effort from the endpoint's point of view.
type Notifier interface {
	NotifyStaff(ctx context.Context, sub *Submission) error
	AutoReply(ctx context.Context, sub *Submission) error
}

// Mailer is the raw email transport behind the Notifier.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// CacheRepository backs the fixed-window rate limiter.
type CacheRepository interface {
	AllowRequest(ctx context.Context, ip string, limit int, window time.Duration) (bool, error)
}
