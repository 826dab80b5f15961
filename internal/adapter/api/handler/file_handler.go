package handler

import (
	"github.com/labstack/echo/v4"

	"rewear/internal/infrastructure/storage"
	"rewear/internal/usecase"
	"rewear/pkg/errors"
	"rewear/pkg/response"
)

type FileHandler struct {
	storageClient *storage.CloudStorageClient
	userUseCase   *usecase.UserUseCase
}

var fileHandler *FileHandler

func SetupFileHandler(storageClient *storage.CloudStorageClient, userUseCase *usecase.UserUseCase) {
	fileHandler = &FileHandler{
		storageClient: storageClient,
		userUseCase:   userUseCase,
	}
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

const maxUploadSize = 5 << 20 // 5 MB

// UploadImage accepts a multipart image and returns its public URL.
// The folder form field selects the destination: "products" for
// listing photos, "avatars" for profile pictures.
func (h *FileHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	if fileHeader.Size > maxUploadSize {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	folder := c.FormValue("folder")
	if folder != "avatars" {
		folder = "products"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storageClient.UploadImage(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to upload image", err))
	}

	if folder == "avatars" {
		uid := c.Get("uid").(string)
		if _, err := h.userUseCase.UpdateAvatar(c.Request().Context(), uid, url); err != nil {
			return response.Error(c, err)
		}
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
