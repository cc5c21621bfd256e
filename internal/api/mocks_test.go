package api

import (
	"context"

	"edumate_go_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testRouter returns an engine whose requests run with user already
// resolved, standing in for the auth middleware.
func testRouter(user *models.User) *gin.Engine {
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user", user)
		})
	}
	return r
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) CreateSessionWithCredit(userID uuid.UUID, title, subject string) (*models.ChatSession, error) {
	args := m.Called(userID, title, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

func (m *MockChatService) GetSessionByID(id uint) (*models.ChatSession, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatSession), args.Error(1)
}

func (m *MockChatService) GetSessionsByUserID(userID uuid.UUID) ([]models.ChatSession, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatSession), args.Error(1)
}

func (m *MockChatService) TouchSession(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockChatService) SaveMessage(sessionID uint, role, content string, metadata datatypes.JSON) (*models.ChatMessage, error) {
	args := m.Called(sessionID, role, content, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockChatService) GetMessagesBySessionID(sessionID uint) ([]models.ChatMessage, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatService) GetRecentMessages(sessionID uint, limit int) ([]models.ChatMessage, error) {
	args := m.Called(sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

type MockSupportService struct {
	mock.Mock
}

func (m *MockSupportService) CreateTicket(ticket *models.SupportTicket) error {
	args := m.Called(ticket)
	return args.Error(0)
}

func (m *MockSupportService) GetTicketByID(id uint) (*models.SupportTicket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SupportTicket), args.Error(1)
}

func (m *MockSupportService) GetTicketsByUserID(userID uuid.UUID) ([]models.SupportTicket, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SupportTicket), args.Error(1)
}

func (m *MockSupportService) UpdateTicketStatus(id uint, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) CreateFile(userID uuid.UUID, sessionID *uint, fileName, filePath string, fileSize int64, mimeType string) (*models.UploadedFile, error) {
	args := m.Called(userID, sessionID, fileName, filePath, fileSize, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedFile), args.Error(1)
}

func (m *MockFileService) GetFileByID(id uint) (*models.UploadedFile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedFile), args.Error(1)
}

func (m *MockFileService) GetFilesByUserID(userID uuid.UUID) ([]models.UploadedFile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UploadedFile), args.Error(1)
}

func (m *MockFileService) MarkProcessed(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	args := m.Called(ctx, prompt, jsonOutput)
	return args.String(0), args.Error(1)
}
