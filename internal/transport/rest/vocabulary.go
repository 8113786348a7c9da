package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-catalog/internal/domain"
	"github.com/heartmarshall/vocab-catalog/internal/service/vocabulary"
)

// vocabularyService defines the minimal interface needed by VocabularyHandler.
type vocabularyService interface {
	Create(ctx context.Context, snap domain.VocabularySnapshot) (*domain.Vocabulary, error)
	Get(ctx context.Context, source, target, id string) (*domain.Vocabulary, error)
	Update(ctx context.Context, source, target, id string, patch vocabulary.Patch) (*domain.Vocabulary, error)
}

// VocabularyHandler serves the vocabulary REST endpoints.
type VocabularyHandler struct {
	svc          vocabularyService
	log          *slog.Logger
	maxBodyBytes int64
}

// NewVocabularyHandler creates a VocabularyHandler. Request bodies larger
// than maxBodyBytes are rejected; zero disables the limit.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger, maxBodyBytes int64) *VocabularyHandler {
	return &VocabularyHandler{
		svc:          svc,
		log:          logger.With("handler", "vocabulary"),
		maxBodyBytes: maxBodyBytes,
	}
}

// Register mounts the handler's routes on mux.
func (h *VocabularyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/vocabularies", h.Create)
	mux.HandleFunc("GET /api/v1/vocabularies/{source}/{target}/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/vocabularies/{source}/{target}/{id}", h.Update)
}

// Create handles POST /api/v1/vocabularies.
func (h *VocabularyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VocabularyDTO
	if !h.decode(w, r, &req) {
		return
	}

	snap, err := FromDTO(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.svc.Create(r.Context(), snap)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ToDTO(v.Snapshot()))
}

// Get handles GET /api/v1/vocabularies/{source}/{target}/{id}.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Get(r.Context(), r.PathValue("source"), r.PathValue("target"), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ToDTO(v.Snapshot()))
}

// Update handles PATCH /api/v1/vocabularies/{source}/{target}/{id}.
func (h *VocabularyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req PatchDTO
	if !h.decode(w, r, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.svc.Update(r.Context(), r.PathValue("source"), r.PathValue("target"), r.PathValue("id"), patch)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ToDTO(v.Snapshot()))
}

func (h *VocabularyHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
