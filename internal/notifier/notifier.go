// Package notifier composes and sends the staff alert and the submitter
// auto-reply for a stored submission.
package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meatfest/lead-service/internal/domain"
	"github.com/meatfest/lead-service/internal/metrics"
)

type Notifier struct {
	mailer  domain.Mailer
	staffTo string
	lg      zerolog.Logger
}

func New(mailer domain.Mailer, staffTo string, lg zerolog.Logger) *Notifier {
	return &Notifier{
		mailer:  mailer,
		staffTo: staffTo,
		lg:      lg.With().Str("component", "notifier").Logger(),
	}
}

// NotifyStaff sends the line-oriented alert to the configured staff address.
func (n *Notifier) NotifyStaff(ctx context.Context, sub *domain.Submission) error {
	subject := StaffSubject(sub)
	body := StaffBody(sub)

	if err := n.mailer.Send(ctx, n.staffTo, subject, body); err != nil {
		metrics.RecordEmailFailed(metrics.EmailStaffAlert)
		n.lg.Error().Err(err).Str("submission_id", sub.ID).Msg("staff alert send failed")
		return fmt.Errorf("staff alert: %w", err)
	}
	metrics.RecordEmailSent(metrics.EmailStaffAlert)
	return nil
}

// AutoReply sends the acknowledgment to the submitter's own address.
func (n *Notifier) AutoReply(ctx context.Context, sub *domain.Submission) error {
	subject := AutoReplySubject(sub)
	body := AutoReplyBody(sub)

	if err := n.mailer.Send(ctx, sub.Email, subject, body); err != nil {
		metrics.RecordEmailFailed(metrics.EmailAutoReply)
		n.lg.Error().Err(err).Str("submission_id", sub.ID).Msg("auto reply send failed")
		return fmt.Errorf("auto reply: %w", err)
	}
	metrics.RecordEmailSent(metrics.EmailAutoReply)
	return nil
}

func StaffSubject(sub *domain.Submission) string {
	if sub.Kind == domain.KindRequest {
		return "New Catering Request from " + sub.Name
	}
	return "New Contact from " + sub.Name
}

// StaffBody lists the submission fields one per line; optional fields appear
// only when non-empty.
func StaffBody(sub *domain.Submission) string {
	lines := []string{
		"Type: " + string(sub.Kind),
		"Created: " + sub.CreatedAt.Format(time.RFC3339),
		"Name: " + sub.Name,
		"Email: " + sub.Email,
	}
	if sub.Phone != "" {
		lines = append(lines, "Phone: "+sub.Phone)
	}
	if sub.EventDate != "" {
		lines = append(lines, "Event Date: "+sub.EventDate)
	}
	if sub.EventLocation != "" {
		lines = append(lines, "Event Location: "+sub.EventLocation)
	}
	if sub.EventType != "" {
		lines = append(lines, "Event Type: "+sub.EventType)
	}
	if sub.Headcount != "" {
		lines = append(lines, "Headcount: "+sub.Headcount)
	}

	msg := sub.Message
	if msg == "" {
		msg = "(none)"
	}
	lines = append(lines, "", "Message:", msg)

	return strings.Join(lines, "\n")
}

func AutoReplySubject(sub *domain.Submission) string {
	if sub.Kind == domain.KindRequest {
		return "Thanks for your catering request!"
	}
	return "Thanks for contacting Meatfest Catering!"
}

func AutoReplyBody(sub *domain.Submission) string {
	received := "message"
	if sub.Kind == domain.KindRequest {
		received = "catering request"
	}

	eventLine := ""
	if sub.Kind == domain.KindRequest && sub.EventDate != "" {
		eventLine = fmt.Sprintf("We'll be in touch soon about your event on %s.", sub.EventDate)
	}

	return fmt.Sprintf(`Hi %s,

Thanks for reaching out to Meatfest Catering! We've received your %s and will get back to you within 1 business day.

%s

In the meantime, if you have urgent questions, feel free to call us at (614) 555-1234 (Mon-Fri 9am-6pm EST).

Thanks for considering Meatfest Catering for your event!

Best regards,
The Meatfest Catering Team
Columbus, Ohio

---
This is an automated confirmation. Please do not reply to this email.`,
		sub.Name, received, eventLine)
}
