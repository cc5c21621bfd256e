package services

import (
	"errors"

	"edumate_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNoSessionsRemaining signals that the caller's session credit is
// exhausted. The conditional decrement below is the only place credit is
// spent.
var ErrNoSessionsRemaining = errors.New("no sessions remaining")

// ChatServiceDB defines the interface for chat session and message
// persistence.
type ChatServiceDB interface {
	CreateSessionWithCredit(userID uuid.UUID, title, subject string) (*models.ChatSession, error)
	GetSessionByID(id uint) (*models.ChatSession, error)
	GetSessionsByUserID(userID uuid.UUID) ([]models.ChatSession, error)
	TouchSession(id uint) error
	SaveMessage(sessionID uint, role, content string, metadata datatypes.JSON) (*models.ChatMessage, error)
	GetMessagesBySessionID(sessionID uint) ([]models.ChatMessage, error)
	GetRecentMessages(sessionID uint, limit int) ([]models.ChatMessage, error)
}

// DefaultChatService implements ChatServiceDB
type DefaultChatService struct {
	db *gorm.DB
}

func NewChatServiceDB(db *gorm.DB) ChatServiceDB {
	return &DefaultChatService{db: db}
}

// CreateSessionWithCredit creates a session and spends one session credit in
// the same transaction. The decrement is a single conditional update
// (decrement-if-positive), so two concurrent calls against one remaining
// credit can never both succeed.
func (s *DefaultChatService) CreateSessionWithCredit(userID uuid.UUID, title, subject string) (*models.ChatSession, error) {
	session := &models.ChatSession{
		UserID:   userID,
		Title:    title,
		Subject:  subject,
		IsActive: true,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ? AND sessions_remaining > 0", userID).
			Update("sessions_remaining", gorm.Expr("sessions_remaining - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoSessionsRemaining
		}
		return tx.Create(session).Error
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionByID returns (nil, nil) for missing rows. Callers must check
// ownership before exposing the result.
func (s *DefaultChatService) GetSessionByID(id uint) (*models.ChatSession, error) {
	var session models.ChatSession
	result := s.db.Where("id = ?", id).First(&session)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &session, nil
}

// GetSessionsByUserID retrieves all sessions for a user, newest-updated
// first.
func (s *DefaultChatService) GetSessionsByUserID(userID uuid.UUID) ([]models.ChatSession, error) {
	sessions := []models.ChatSession{}
	result := s.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}
	return sessions, nil
}

// TouchSession refreshes the session's updated_at so listing order tracks
// conversation activity.
func (s *DefaultChatService) TouchSession(id uint) error {
	return s.db.Model(&models.ChatSession{}).
		Where("id = ?", id).
		Update("updated_at", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// SaveMessage appends a message to a session. Messages are append-only.
func (s *DefaultChatService) SaveMessage(sessionID uint, role, content string, metadata datatypes.JSON) (*models.ChatMessage, error) {
	message := &models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Metadata:  metadata,
	}
	if err := s.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// GetMessagesBySessionID retrieves the full message history in chronological
// order, oldest first, to reconstruct the conversation.
func (s *DefaultChatService) GetMessagesBySessionID(sessionID uint) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	result := s.db.Where("session_id = ?", sessionID).Order("created_at asc").Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}

// GetRecentMessages returns the last limit messages in chronological order,
// used as bounded context for the AI chat turn.
func (s *DefaultChatService) GetRecentMessages(sessionID uint, limit int) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	result := s.db.Where("session_id = ?", sessionID).Order("created_at desc").Limit(limit).Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	// reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
