package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/service"
)

// RegistrationHandler holds the HTTP handlers for the registration ledger.
type RegistrationHandler struct {
	svc *service.RegistrationService
}

// NewRegistrationHandler constructs a RegistrationHandler.
func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Get handles GET /registrations/{id}
func (h *RegistrationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.Get(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// GetByCode handles GET /registrations/code/{code}
func (h *RegistrationHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	reg, err := h.svc.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// UpdateStatus handles PUT /registrations/{id}/status
func (h *RegistrationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), idParam(r), req.Status); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cancel handles POST /registrations/{id}/cancel
func (h *RegistrationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Cancel(r.Context(), idParam(r)); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckIn handles POST /registrations/checkin
func (h *RegistrationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req model.CheckInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.svc.CheckIn(r.Context(), req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}
