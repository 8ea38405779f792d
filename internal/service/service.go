package service

import (
	"context"

	"github.com/meatfest/lead-service/internal/domain"
	"github.com/meatfest/lead-service/internal/metrics"
	"github.com/meatfest/lead-service/internal/pkg/logger"
	"github.com/meatfest/lead-service/internal/sanitizer"
)

// Input is the raw decoded payload, pre-sanitization.
type Input struct {
	Type          string
	Name          string
	Email         string
	Phone         string
	EventDate     string
	EventLocation string
	EventType     string
	Headcount     string
	Message       string
	Honeypot      string
}

type LeadService struct {
	store    domain.SubmissionStore
	notifier domain.Notifier
}

func NewLeadService(store domain.SubmissionStore, notifier domain.Notifier) *LeadService {
	return &LeadService{store: store, notifier: notifier}
}

// Submit runs the full pipeline: sanitize, validate, persist, then dispatch
// both notifications best-effort. A store failure aborts before any send; a
// send failure never changes the outcome.
func (s *LeadService) Submit(ctx context.Context, in Input) (*domain.Submission, error) {
	in = sanitizeInput(in)

	if err := validate(in); err != nil {
		switch err.(type) {
		case *domain.ValidationError:
			metrics.RecordSubmissionRejected(metrics.ReasonValidation)
		default:
			metrics.RecordSubmissionRejected(metrics.ReasonBot)
		}
		return nil, err
	}

	sub := &domain.Submission{
		Kind:          domain.ParseKind(in.Type),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		EventDate:     in.EventDate,
		EventLocation: in.EventLocation,
		EventType:     in.EventType,
		Headcount:     in.Headcount,
		Message:       in.Message,
	}

	if err := s.store.Save(ctx, sub); err != nil {
		metrics.RecordSubmissionRejected(metrics.ReasonStoreError)
		logger.WithCtx(ctx).Error().Err(err).Msg("submission store write failed")
		return nil, domain.ErrStoreFailed
	}
	metrics.RecordSubmissionStored(string(sub.Kind))

	// Best-effort, sequential: staff first, then the auto-reply. Failures
	// are logged and counted by the notifier and swallowed here.
	_ = s.notifier.NotifyStaff(ctx, sub)
	_ = s.notifier.AutoReply(ctx, sub)

	return sub, nil
}

func sanitizeInput(in Input) Input {
	return Input{
		Type:          sanitizer.Clean(in.Type),
		Name:          sanitizer.Clean(in.Name),
		Email:         sanitizer.Clean(in.Email),
		Phone:         sanitizer.Clean(in.Phone),
		EventDate:     sanitizer.Clean(in.EventDate),
		EventLocation: sanitizer.Clean(in.EventLocation),
		EventType:     sanitizer.Clean(in.EventType),
		Headcount:     sanitizer.Clean(in.Headcount),
		Message:       sanitizer.Clean(in.Message),
		Honeypot:      sanitizer.Clean(in.Honeypot),
	}
}
