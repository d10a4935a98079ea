package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/irsath0710/clazzy-outfit-advisor/internal/application/services"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/application/usecases"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/entities"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/domain/valueobjects"
	"github.com/irsath0710/clazzy-outfit-advisor/internal/logging"
)

// OutfitHandler serves the page and its form posts. Every post answers
// with a redirect back to "/" so a reload never repeats an action.
type OutfitHandler struct {
	selectionUseCase *usecases.SelectionUseCase
	adviceUseCase    *usecases.AdviceUseCase
	formService      *services.FormService
	sessions         *SessionManager
	page             *pageRenderer
}

func NewOutfitHandler(
	selectionUseCase *usecases.SelectionUseCase,
	adviceUseCase *usecases.AdviceUseCase,
	formService *services.FormService,
	sessions *SessionManager,
) *OutfitHandler {
	return &OutfitHandler{
		selectionUseCase: selectionUseCase,
		adviceUseCase:    adviceUseCase,
		formService:      formService,
		sessions:         sessions,
		page:             newPageRenderer(),
	}
}

func (h *OutfitHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessions.Ensure(w, r)

	output, err := h.selectionUseCase.View(r.Context(), sessionID)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to load selection")
		sendError(w, "failed to load your selection", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.page.render(w, output, h.adviceUseCase.Enabled()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to render page")
	}
}

func (h *OutfitHandler) HandleColor(w http.ResponseWriter, r *http.Request) {
	slot, color, err := h.formService.ParseColor(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.apply(w, r, func(id entities.SessionID) error {
		_, err := h.selectionUseCase.SetColor(r.Context(), id, slot, color)
		return err
	})
}

func (h *OutfitHandler) HandleSwatch(w http.ResponseWriter, r *http.Request) {
	slot, color, err := h.formService.ParseSwatch(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.apply(w, r, func(id entities.SessionID) error {
		_, err := h.selectionUseCase.ApplySwatch(r.Context(), id, slot, color)
		return err
	})
}

func (h *OutfitHandler) HandleOccasion(w http.ResponseWriter, r *http.Request) {
	occasion, err := h.formService.ParseOccasion(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.apply(w, r, func(id entities.SessionID) error {
		_, err := h.selectionUseCase.SelectOccasion(r.Context(), id, occasion)
		return err
	})
}

// HandleImage stores an uploaded photo for a slot. Files that cannot be
// read or decoded leave the slot unchanged, as does an upload overtaken by
// a clear or reset.
func (h *OutfitHandler) HandleImage(w http.ResponseWriter, r *http.Request) {
	input, err := h.formService.ParseImageUpload(w, r)
	switch {
	case errors.Is(err, services.ErrInvalidForm):
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrUnreadableUpload):
		logging.Ctx(r.Context()).Warn().Err(err).Str("slot", string(input.Slot)).Msg("upload ignored")
		redirectHome(w, r)
		return
	case err != nil:
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sessionID := h.sessions.Ensure(w, r)
	_, err = h.selectionUseCase.AttachImage(r.Context(), sessionID, input)
	switch {
	case errors.Is(err, valueobjects.ErrUnsupportedImage):
		logging.Ctx(r.Context()).Warn().Err(err).Str("slot", string(input.Slot)).Msg("upload ignored")
	case errors.Is(err, entities.ErrStaleUpload):
		logging.Ctx(r.Context()).Info().Str("slot", string(input.Slot)).Uint64("generation", input.Generation).Msg("stale upload discarded")
	case err != nil:
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to attach image")
		sendError(w, "failed to save image", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func (h *OutfitHandler) HandleClearImage(w http.ResponseWriter, r *http.Request) {
	slot, err := h.formService.ParseSlot(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.apply(w, r, func(id entities.SessionID) error {
		_, err := h.selectionUseCase.ClearImage(r.Context(), id, slot)
		return err
	})
}

func (h *OutfitHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(id entities.SessionID) error {
		_, err := h.selectionUseCase.Reset(r.Context(), id)
		return err
	})
}

func (h *OutfitHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (h *OutfitHandler) apply(w http.ResponseWriter, r *http.Request, action func(entities.SessionID) error) {
	sessionID := h.sessions.Ensure(w, r)
	if err := action(sessionID); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to update selection")
		sendError(w, "failed to update your selection", http.StatusInternalServerError)
		return
	}
	redirectHome(w, r)
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func sendError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, map[string]string{"error": message}, statusCode)
}

func sendJSON(w http.ResponseWriter, body any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
