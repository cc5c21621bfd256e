package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"edumate_go_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func multipartUpload(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	partHeader.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeader)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func uploadRouter(t *testing.T, fileService services.FileServiceDB, chatService services.ChatServiceDB) http.Handler {
	t.Helper()
	uploadService, err := services.NewUploadService(t.TempDir())
	assert.NoError(t, err)

	completer := new(MockCompleter)
	aiService := services.NewAIService(completer, "gemini-1.5-flash")

	r := testRouter(subscribedUser())
	r.POST("/api/files/upload", uploadFileHandler(uploadService, fileService, chatService, aiService))
	return r
}

func TestUploadFileMissing(t *testing.T) {
	fileService := new(MockFileService)
	r := uploadRouter(t, fileService, new(MockChatService))

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "لم يتم رفع أي ملف")
}

func TestUploadFileUnsupportedType(t *testing.T) {
	fileService := new(MockFileService)
	r := uploadRouter(t, fileService, new(MockChatService))

	body, contentType := multipartUpload(t, "photo.png", "image/png", []byte("not a document"))
	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "نوع الملف غير مدعوم")
	fileService.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadFileOversize(t *testing.T) {
	fileService := new(MockFileService)
	r := uploadRouter(t, fileService, new(MockChatService))

	body, contentType := multipartUpload(t, "big.pdf", services.MimePDF, make([]byte, services.MaxUploadSize+1))
	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "حجم الملف يتجاوز الحد الأقصى")
	fileService.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadFileSessionNotOwned(t *testing.T) {
	fileService := new(MockFileService)
	chatService := new(MockChatService)
	chatService.On("GetSessionByID", uint(12)).Return(nil, nil)
	r := uploadRouter(t, fileService, chatService)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="notes.docx"`)
	partHeader.Set("Content-Type", services.MimeDocx)
	part, err := writer.CreatePart(partHeader)
	assert.NoError(t, err)
	_, err = part.Write([]byte("docx bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.WriteField("sessionId", "12"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "جلسة المحادثة غير موجودة")
	fileService.AssertNotCalled(t, "CreateFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
