package model

import "time"

// UserRole is the coarse role of a user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

// Presence is the last known online status of a user.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceOffline Presence = "offline"
	PresenceAway    Presence = "away"
)

// User is an external reference; the library never creates or destroys users.
type User struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Avatar     string     `json:"avatar,omitempty"`
	Role       UserRole   `json:"role"`
	Department string     `json:"department,omitempty"`
	Title      string     `json:"title,omitempty"`
	Status     Presence   `json:"status,omitempty"`
	LastActive *time.Time `json:"lastActive,omitempty"`
}
