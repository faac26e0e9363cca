package handler

import (
	"context"
	"net/http"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/service"
	"github.com/eventease-app/eventease/internal/session"
)

// AccountHandler holds the HTTP handlers for accounts, authentication and
// the per-account favorite/registered event sets.
type AccountHandler struct {
	dir      *service.Directory
	regs     *service.RegistrationService
	sessions *session.Manager
}

// NewAccountHandler constructs an AccountHandler.
func NewAccountHandler(dir *service.Directory, regs *service.RegistrationService, sessions *session.Manager) *AccountHandler {
	return &AccountHandler{dir: dir, regs: regs, sessions: sessions}
}

func (h *AccountHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup handles POST /auth/signup. Creating an account also logs the new
// user in.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.dir.Register(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	h.setSessionCookie(w, h.sessions.IssueUser(user.ID))
	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.dir.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	h.setSessionCookie(w, h.sessions.IssueUser(user.ID))
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout. The token is revoked unconditionally.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		h.sessions.Revoke(c.Value)
	}
	h.dir.Logout(r.Context(), actorID(r))
	h.setSessionCookie(w, "")
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := requireActor(w, r)
	if userID == 0 {
		return
	}
	user, err := h.dir.GetUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateMe handles PUT /me
func (h *AccountHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := requireActor(w, r)
	if userID == 0 {
		return
	}
	var req model.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.dir.UpdateUser(r.Context(), userID, req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ListFavorites handles GET /me/favorites
func (h *AccountHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID := requireActor(w, r)
	if userID == 0 {
		return
	}
	writeJSON(w, http.StatusOK, h.dir.Favorites(r.Context(), userID))
}

// AddFavorite handles PUT /me/favorites/{id}
func (h *AccountHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateSet(w, r, h.dir.AddFavorite)
}

// RemoveFavorite handles DELETE /me/favorites/{id}
func (h *AccountHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutateSet(w, r, h.dir.RemoveFavorite)
}

// MarkRegistered handles PUT /me/registrations/{id}
func (h *AccountHandler) MarkRegistered(w http.ResponseWriter, r *http.Request) {
	h.mutateSet(w, r, h.dir.AddRegistration)
}

// ListRegisteredIDs handles GET /me/registrations
func (h *AccountHandler) ListRegisteredIDs(w http.ResponseWriter, r *http.Request) {
	userID := requireActor(w, r)
	if userID == 0 {
		return
	}
	writeJSON(w, http.StatusOK, h.dir.Registrations(r.Context(), userID))
}

// ListMyRegistrations handles GET /me/registrations/records
func (h *AccountHandler) ListMyRegistrations(w http.ResponseWriter, r *http.Request) {
	userID := requireActor(w, r)
	if userID == 0 {
		return
	}
	regs, err := h.regs.ListByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}

type setMutator func(ctx context.Context, userID, eventID int) (bool, error)

func (h *AccountHandler) mutateSet(w http.ResponseWriter, r *http.Request, mutate setMutator) {
	userID := requireActor(w, r)
	if userID == 0 {
		return
	}
	changed, err := mutate(r.Context(), userID, idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"changed": changed})
}
