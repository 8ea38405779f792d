package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/meatfest/lead-service/internal/domain"
	"github.com/meatfest/lead-service/internal/metrics"
	"github.com/meatfest/lead-service/internal/pkg/logger"
	"github.com/meatfest/lead-service/internal/service"
	"github.com/meatfest/lead-service/internal/transport/rest/response"
)

const (
	msgSubmitted    = "Submitted"
	msgInvalidJSON  = "Invalid JSON"
	msgStoreFailed  = "Could not save your request."
	msgBodyTooLarge = "Request body too large."
)

type Handler struct {
	svc *service.LeadService
}

func NewHandler(svc *service.LeadService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		// MaxBytesReader trips mid-read on chunked bodies that never
		// declared a Content-Length
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			response.Message(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		// an empty body counts as an empty object, not a parse failure
		metrics.RecordSubmissionRejected(metrics.ReasonInvalidJSON)
		response.Message(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	sub, err := h.svc.Submit(r.Context(), req.toInput())
	if err != nil {
		h.handleErr(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).
		Info().
		Str("submission_id", sub.ID).
		Str("kind", string(sub.Kind)).
		Msg("submission stored")

	response.Message(w, http.StatusOK, msgSubmitted)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.Message(w, http.StatusOK, "ok")
}

func (h *Handler) handleErr(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrBotSuspected):
		// indistinguishable from success: never tip off the caller
		logger.WithCtx(r.Context()).Info().Msg("honeypot tripped, dropping submission")
		response.Message(w, http.StatusOK, msgSubmitted)

	case errors.As(err, &verr):
		response.Message(w, http.StatusBadRequest, verr.Reason)

	case errors.Is(err, domain.ErrStoreFailed):
		response.Message(w, http.StatusInternalServerError, msgStoreFailed)

	default:
		// root cause stays server-side
		logger.WithCtx(r.Context()).Error().Err(err).Msg("unexpected submission error")
		response.Message(w, http.StatusInternalServerError, msgStoreFailed)
	}
}
