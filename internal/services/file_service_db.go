package services

import (
	"edumate_go_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileServiceDB defines the interface for uploaded-file metadata
// persistence. The metadata row is only created after the bytes are durably
// on disk.
type FileServiceDB interface {
	CreateFile(userID uuid.UUID, sessionID *uint, fileName, filePath string, fileSize int64, mimeType string) (*models.UploadedFile, error)
	GetFileByID(id uint) (*models.UploadedFile, error)
	GetFilesByUserID(userID uuid.UUID) ([]models.UploadedFile, error)
	MarkProcessed(id uint) error
}

type DefaultFileService struct {
	db *gorm.DB
}

func NewFileServiceDB(db *gorm.DB) FileServiceDB {
	return &DefaultFileService{db: db}
}

func (s *DefaultFileService) CreateFile(userID uuid.UUID, sessionID *uint, fileName, filePath string, fileSize int64, mimeType string) (*models.UploadedFile, error) {
	file := &models.UploadedFile{
		UserID:    userID,
		SessionID: sessionID,
		FileName:  fileName,
		FilePath:  filePath,
		FileSize:  fileSize,
		MimeType:  mimeType,
	}
	if err := s.db.Create(file).Error; err != nil {
		return nil, err
	}
	return file, nil
}

func (s *DefaultFileService) GetFileByID(id uint) (*models.UploadedFile, error) {
	var file models.UploadedFile
	result := s.db.Where("id = ?", id).First(&file)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &file, nil
}

func (s *DefaultFileService) GetFilesByUserID(userID uuid.UUID) ([]models.UploadedFile, error) {
	files := []models.UploadedFile{}
	result := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&files)
	if result.Error != nil {
		return nil, result.Error
	}
	return files, nil
}

// MarkProcessed flips the processed flag once content analysis completed.
func (s *DefaultFileService) MarkProcessed(id uint) error {
	return s.db.Model(&models.UploadedFile{}).
		Where("id = ?", id).
		Update("is_processed", true).Error
}
