package api

import (
	"net/http"
	"strconv"

	apperrors "edumate_go_backend/internal/errors"
	"edumate_go_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func uploadFileHandler(uploadService *services.UploadService, fileService services.FileServiceDB, chatService services.ChatServiceDB, aiService *services.AIService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			apperrors.HandleError(c, apperrors.New400Error("لم يتم رفع أي ملف"))
			return
		}

		// Validation happens before any disk write.
		if err := uploadService.ValidateUpload(header); err != nil {
			switch err {
			case services.ErrFileTooLarge:
				apperrors.HandleError(c, apperrors.New400Error("حجم الملف يتجاوز الحد الأقصى (10 ميجابايت)"))
			case services.ErrUnsupportedFileType:
				apperrors.HandleError(c, apperrors.New400Error("نوع الملف غير مدعوم. يرجى رفع ملفات PDF أو Word فقط."))
			default:
				apperrors.HandleError(c, apperrors.New500Error("فشل في رفع الملف", err))
			}
			return
		}

		var sessionID *uint
		if raw := c.PostForm("sessionId"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				apperrors.HandleError(c, apperrors.New400Error("معرف الجلسة غير صالح"))
				return
			}
			session, err := chatService.GetSessionByID(uint(parsed))
			if err != nil {
				apperrors.HandleError(c, apperrors.New500Error("فشل في رفع الملف", err))
				return
			}
			if session == nil || session.UserID != user.ID {
				apperrors.HandleError(c, apperrors.New404Error("جلسة المحادثة غير موجودة"))
				return
			}
			sessionID = &session.ID
		}

		path, err := uploadService.SaveFile(header)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في رفع الملف", err))
			return
		}

		mimeType := header.Header.Get("Content-Type")
		file, err := fileService.CreateFile(user.ID, sessionID, header.Filename, path, header.Size, mimeType)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في رفع الملف", err))
			return
		}

		if mimeType != services.MimePDF {
			c.JSON(http.StatusOK, gin.H{"file": file, "message": "تم رفع الملف بنجاح"})
			return
		}

		// Upload success and analysis success are independent outcomes:
		// a failed analysis leaves the record unprocessed but the upload
		// is still reported as successful.
		content, err := uploadService.ExtractPDFText(path)
		if err == nil {
			analysis, aerr := aiService.AnalyzePDFContent(c.Request.Context(), content, header.Filename)
			if aerr == nil {
				if merr := fileService.MarkProcessed(file.ID); merr != nil {
					log.Warn().Err(merr).Uint("fileID", file.ID).Msg("failed to mark file processed")
				} else {
					file.IsProcessed = true
				}
				c.JSON(http.StatusOK, gin.H{"file": file, "analysis": analysis, "message": "تم رفع الملف وتحليله بنجاح"})
				return
			}
			err = aerr
		}
		log.Error().Err(err).Uint("fileID", file.ID).Msg("document analysis failed")
		c.JSON(http.StatusOK, gin.H{"file": file, "message": "تم رفع الملف ولكن فشل في تحليله"})
	}
}

func listFilesHandler(fileService services.FileServiceDB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			apperrors.HandleError(c, apperrors.New401Error())
			return
		}

		files, err := fileService.GetFilesByUserID(user.ID)
		if err != nil {
			apperrors.HandleError(c, apperrors.New500Error("فشل في جلب الملفات", err))
			return
		}

		c.JSON(http.StatusOK, files)
	}
}
