package handler

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"eventexplorer/internal/models"
	"eventexplorer/pkg/storage"
)

// PublicImagePath is where saved images are served from.
const PublicImagePath = "/api/images"

type UploadHandler struct {
	storage storage.StorageService
	logger  *zap.Logger
}

func NewUploadHandler(storage storage.StorageService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		storage: storage,
		logger:  logger,
	}
}

// UploadImage stores a multipart image under a collision-resistant name and
// returns the URL clients use to fetch it later.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("File is required"))
	}
	if fileHeader.Size == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("File is empty"))
	}

	// Keep the original extension so browsers can sniff the type.
	name := uuid.New().String() + filepath.Ext(fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("opening uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to upload file: " + err.Error()))
	}
	defer src.Close()

	if err := h.storage.Save(name, src); err != nil {
		h.logger.Error("saving uploaded file", zap.String("name", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to upload file: " + err.Error()))
	}

	return c.JSON(models.UploadResponse{
		ImageURL: PublicImagePath + "/" + name,
	})
}
