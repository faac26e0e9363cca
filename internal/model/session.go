package model

import (
	"strings"
	"time"
)

// Session is a lightweight anonymous session used when no full account
// exists, identified by a generated token rather than credentials.
type Session struct {
	SessionID          string    `json:"session_id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Company            string    `json:"company"`
	RegisteredEventIDs []int     `json:"registered_event_ids"`
	CreatedAt          time.Time `json:"created_at"`
	LastActivityAt     time.Time `json:"last_activity_at"`
}

// IsAuthenticated reports whether the session carries a usable identity.
func (s *Session) IsAuthenticated() bool {
	return strings.TrimSpace(s.Email) != ""
}

// TotalRegistrations returns the number of events registered in this session.
func (s *Session) TotalRegistrations() int {
	return len(s.RegisteredEventIDs)
}
