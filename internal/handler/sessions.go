package handler

import (
	"net/http"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/session"
)

// GuestCookie is the cookie carrying the anonymous-session token.
const GuestCookie = "eventease_guest"

// SessionHandler holds the HTTP handlers for the lightweight anonymous
// session: contact details, session-scoped registrations and check-in
// statistics, all without an account.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// state returns the request's guest State, minting a token and cookie on
// first contact.
func (h *SessionHandler) state(w http.ResponseWriter, r *http.Request) *session.State {
	if c, err := r.Cookie(GuestCookie); err == nil {
		if st, ok := h.sessions.Guest(c.Value); ok {
			return st
		}
	}
	token, st := h.sessions.IssueGuest()
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return st
}

// Set handles PUT /session
func (h *SessionHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req model.SetSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := h.state(w, r)
	st.SetSession(req.FullName, req.Email, req.Phone, req.Company)
	writeJSON(w, http.StatusOK, st.Current())
}

// Get handles GET /session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := h.state(w, r)
	cur := st.Current()
	if cur == nil {
		writeError(w, http.StatusNotFound, "no session")
		return
	}
	writeJSON(w, http.StatusOK, cur)
}

// Clear handles DELETE /session
func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	st := h.state(w, r)
	st.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// MyRegistrations handles GET /session/registrations
func (h *SessionHandler) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	st := h.state(w, r)
	regs, err := st.MyRegistrations(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, regs)
}

// Register handles POST /session/events/{id}/register. A missing session is
// created implicitly from the registrant's contact fields.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := h.state(w, r)
	reg, err := st.AddRegistration(r.Context(), idParam(r), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// Registrations handles GET /session/events/{id}/registrations
func (h *SessionHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	st := h.state(w, r)
	regs, err := st.Registrations(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}

// CheckIn handles POST /session/checkin
func (h *SessionHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req model.CheckInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	st := h.state(w, r)
	reg, err := st.CheckIn(r.Context(), req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reg)
}

// Stats handles GET /session/events/{id}/stats
func (h *SessionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st := h.state(w, r)
	stats, err := st.AttendanceStats(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
