package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petitionpay/internal/confirmation"
	"petitionpay/internal/petitioner"
	"petitionpay/internal/platform/middleware"
	"petitionpay/internal/token"
	dErrors "petitionpay/pkg/domain-errors"
	"petitionpay/pkg/platform/httputil"
)

// SearchService looks petitioners up by name or serial number.
type SearchService interface {
	Search(ctx context.Context, q string) ([]petitioner.Petitioner, error)
}

// ConfirmService applies the one-shot payment confirmation.
type ConfirmService interface {
	Confirm(ctx context.Context, petitionerID string, actor token.Actor) (*confirmation.Result, error)
}

// PetitionerHandler serves the roster search and confirmation endpoints.
// Both sit behind RequireAuth.
type PetitionerHandler struct {
	search  SearchService
	confirm ConfirmService
	logger  *slog.Logger
}

func NewPetitionerHandler(search SearchService, confirm ConfirmService, logger *slog.Logger) *PetitionerHandler {
	return &PetitionerHandler{
		search:  search,
		confirm: confirm,
		logger:  logger,
	}
}

// RegisterProtected mounts the routes that require a verified bearer token.
func (h *PetitionerHandler) RegisterProtected(r chi.Router) {
	r.Get("/search", h.handleSearch)
	r.Post("/confirm", h.handleConfirm)
}

func (h *PetitionerHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	q := r.URL.Query().Get("q")
	if q == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "search query is required"))
		return
	}

	results, err := h.search.Search(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "petitioner search failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "search failed"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, results)
}

type confirmRequest struct {
	PetitionerID string `json:"petitionerId"`
}

type confirmResponse struct {
	Message    string                `json:"message"`
	Petitioner petitioner.Petitioner `json:"petitioner"`
}

func (h *PetitionerHandler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	actor := middleware.GetActor(ctx)
	if actor == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "no token provided or token format is incorrect"))
		return
	}

	req, ok := httputil.DecodeJSON[confirmRequest](w, r, h.logger, requestID)
	if !ok {
		return
	}

	res, err := h.confirm.Confirm(ctx, req.PetitionerID, *actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, confirmResponse{
		Message:    res.Message,
		Petitioner: res.Petitioner,
	})
}
