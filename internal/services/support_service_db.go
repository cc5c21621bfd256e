package services

import (
	"edumate_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportServiceDB defines the interface for support tickets. Tickets may be
// anonymous; the status transition is the only mutation after creation.
type SupportServiceDB interface {
	CreateTicket(ticket *models.SupportTicket) error
	GetTicketByID(id uint) (*models.SupportTicket, error)
	GetTicketsByUserID(userID uuid.UUID) ([]models.SupportTicket, error)
	UpdateTicketStatus(id uint, status string) error
}

type DefaultSupportService struct {
	db *gorm.DB
}

func NewSupportServiceDB(db *gorm.DB) SupportServiceDB {
	return &DefaultSupportService{db: db}
}

func (s *DefaultSupportService) CreateTicket(ticket *models.SupportTicket) error {
	ticket.Status = models.TicketStatusOpen
	return s.db.Create(ticket).Error
}

func (s *DefaultSupportService) GetTicketByID(id uint) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	result := s.db.Where("id = ?", id).First(&ticket)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &ticket, nil
}

func (s *DefaultSupportService) GetTicketsByUserID(userID uuid.UUID) ([]models.SupportTicket, error) {
	tickets := []models.SupportTicket{}
	result := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}
	return tickets, nil
}

func (s *DefaultSupportService) UpdateTicketStatus(id uint, status string) error {
	return s.db.Model(&models.SupportTicket{}).
		Where("id = ?", id).
		Update("status", status).Error
}
