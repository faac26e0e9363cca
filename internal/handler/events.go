package handler

import (
	"net/http"
	"time"

	"github.com/eventease-app/eventease/internal/model"
	"github.com/eventease-app/eventease/internal/service"
)

// EventHandler holds the HTTP handlers for the event catalog.
type EventHandler struct {
	svc  *service.EventService
	regs *service.RegistrationService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc *service.EventService, regs *service.RegistrationService) *EventHandler {
	return &EventHandler{svc: svc, regs: regs}
}

// eventView extends an event with its derived availability fields.
type eventView struct {
	model.Event
	AvailableSeats   int     `json:"available_seats"`
	OccupancyPercent float64 `json:"occupancy_percent"`
	RegistrationOpen bool    `json:"registration_open"`
}

func toView(e model.Event) eventView {
	now := time.Now()
	return eventView{
		Event:            e,
		AvailableSeats:   e.AvailableSeats(),
		OccupancyPercent: e.OccupancyPercentage(),
		RegistrationOpen: e.IsRegistrationOpen(now),
	}
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toView(*event))
}

// ListEvents handles GET /events and GET /events?category=
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list events")
		return
	}

	// Return an empty array rather than null for better client compatibility.
	views := make([]eventView, 0, len(events))
	for _, e := range events {
		views = append(views, toView(e))
	}
	writeJSON(w, http.StatusOK, views)
}

// GetEvent handles GET /events/{id}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.svc.GetEvent(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toView(*event))
}

// UpdateEvent handles PUT /events/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateEvent(r.Context(), idParam(r), req); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent handles DELETE /events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteEvent(r.Context(), idParam(r)); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register handles POST /events/{id}/register
func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	reg, err := h.regs.Register(r.Context(), idParam(r), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// ListRegistrations handles GET /events/{id}/registrations
func (h *EventHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.regs.ListByEvent(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if regs == nil {
		regs = []model.Registration{}
	}
	writeJSON(w, http.StatusOK, regs)
}

// TicketCount handles GET /events/{id}/tickets
func (h *EventHandler) TicketCount(w http.ResponseWriter, r *http.Request) {
	total, err := h.regs.TicketsForEvent(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"tickets": total})
}

// AttendanceStats handles GET /events/{id}/stats
func (h *EventHandler) AttendanceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.regs.AttendanceStats(r.Context(), idParam(r))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
