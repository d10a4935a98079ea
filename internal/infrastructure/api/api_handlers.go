package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/application/usecases"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
)

const maxJSONBodyBytes = 1 << 20

// APIHandler exposes the selection and the generator as JSON.
type APIHandler struct {
	selectionUseCase      *usecases.SelectionUseCase
	recommendationUseCase *usecases.RecommendationUseCase
	adviceUseCase         *usecases.AdviceUseCase
	sessions              *SessionManager
}

func NewAPIHandler(
	selectionUseCase *usecases.SelectionUseCase,
	recommendationUseCase *usecases.RecommendationUseCase,
	adviceUseCase *usecases.AdviceUseCase,
	sessions *SessionManager,
) *APIHandler {
	return &APIHandler{
		selectionUseCase:      selectionUseCase,
		recommendationUseCase: recommendationUseCase,
		adviceUseCase:         adviceUseCase,
		sessions:              sessions,
	}
}

type selectionResponse struct {
	Selection       entities.SelectionSnapshot `json:"selection"`
	Complete        bool                       `json:"complete"`
	Occasion        valueobjects.OccasionInfo  `json:"occasion"`
	Recommendations []entities.Recommendation  `json:"recommendations"`
}

func (h *APIHandler) HandleSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessions.Ensure(w, r)

	output, err := h.selectionUseCase.View(r.Context(), sessionID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to load selection")
		sendError(w, "failed to load selection", http.StatusInternalServerError)
		return
	}

	sendJSON(w, selectionResponse{
		Selection:       output.Selection.Snapshot(),
		Complete:        output.Selection.IsComplete(),
		Occasion:        output.Selection.Occasion().Info(),
		Recommendations: output.Recommendations,
	}, http.StatusOK)
}

type recommendationRequest struct {
	Upper    string            `json:"upper"`
	Lower    string            `json:"lower"`
	Shoe     string            `json:"shoe"`
	Occasion string            `json:"occasion"`
	Images   entities.ImageSet `json:"images"`
}

// HandleRecommendations runs the generator on the posted palette without
// reading or changing the caller's session.
func (h *APIHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes)).Decode(&req); err != nil {
		sendError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	output := h.recommendationUseCase.Execute(r.Context(), usecases.RecommendationInput{
		Upper:    req.Upper,
		Lower:    req.Lower,
		Shoe:     req.Shoe,
		Occasion: req.Occasion,
		Images:   req.Images,
	})

	sendJSON(w, output, http.StatusOK)
}

func (h *APIHandler) HandleSwatches(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]any{"swatches": valueobjects.Swatches}, http.StatusOK)
}

func (h *APIHandler) HandleOccasions(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, map[string]any{"occasions": valueobjects.OccasionOptions}, http.StatusOK)
}

func (h *APIHandler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessions.Ensure(w, r)

	output, err := h.adviceUseCase.Execute(r.Context(), sessionID)
	switch {
	case err == nil:
		sendJSON(w, output, http.StatusOK)
	case errors.Is(err, usecases.ErrAdvisorDisabled):
		sendError(w, "the style advisor is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, services.ErrInvalidAdvice):
		sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrAdvisorBusy):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("advisor quota exhausted")
		sendError(w, "the style advisor is busy, please try again in a minute", http.StatusTooManyRequests)
	case errors.Is(err, services.ErrEmptyAdvice):
		sendError(w, "the style advisor had nothing to say, please try again", http.StatusBadGateway)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("advice failed")
		sendError(w, "failed to get advice", http.StatusInternalServerError)
	}
}
