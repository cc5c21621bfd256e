package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

// ValidTicketStatus reports whether s is one of the closed set of ticket
// states.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

type SupportTicket struct {
	gorm.Model
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	FirstName string     `gorm:"not null" json:"firstName"`
	LastName  string     `gorm:"not null" json:"lastName"`
	Email     string     `gorm:"not null" json:"email"`
	Category  string     `gorm:"not null" json:"category"`
	Subject   string     `gorm:"not null" json:"subject"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Status    string     `gorm:"default:open" json:"status"`
}
