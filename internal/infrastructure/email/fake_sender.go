package email

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// FakeSender is a development/testing sender. It logs every message instead
// of delivering it, and can simulate failures via env var.
//
// FAKE_FAIL_MODE:
// - "none" (default): always succeed
// - "fail": return an error on every send
type FakeSender struct {
	lg zerolog.Logger
}

func NewFakeSender(lg zerolog.Logger) *FakeSender {
	return &FakeSender{
		lg: lg.With().Str("component", "fake_sender").Logger(),
	}
}

func (s *FakeSender) Send(ctx context.Context, to, subject, body string) error {
	s.lg.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("FAKE send email")

	mode := strings.TrimSpace(strings.ToLower(os.Getenv("FAKE_FAIL_MODE")))
	if mode == "fail" {
		return errors.New("fake send failure")
	}
	return nil
}
