package usecases

import (
	"context"

	"residconnect/internal/shared/errors"
	"residconnect/internal/shared/logger"
)

const maxImageSize = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadImageCommand struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadImageResult struct {
	AttachmentID string
	FileName     string
	FileSize     int64
	URL          string
}

// UploadImageUseCase validates an image and pushes it to the store's
// content host. The returned attachment ID is what ticket creation
// references.
type UploadImageUseCase struct {
	uploader ImageUploader
	logger   logger.Interface
}

func NewUploadImageUseCase(uploader ImageUploader, logger logger.Interface) *UploadImageUseCase {
	return &UploadImageUseCase{
		uploader: uploader,
		logger:   logger,
	}
}

func (uc *UploadImageUseCase) Execute(ctx context.Context, cmd UploadImageCommand) (*UploadImageResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	id, url, err := uc.uploader.UploadImage(ctx, cmd.Filename, cmd.ContentType, cmd.Data)
	if err != nil {
		uc.logger.Errorw("image upload failed", "filename", cmd.Filename, "error", err)
		return nil, errors.NewUpstreamError("Erreur serveur", err.Error())
	}

	uc.logger.Infow("image uploaded", "attachment_id", id, "size", len(cmd.Data))

	return &UploadImageResult{
		AttachmentID: id,
		FileName:     cmd.Filename,
		FileSize:     int64(len(cmd.Data)),
		URL:          url,
	}, nil
}

func (uc *UploadImageUseCase) validateCommand(cmd UploadImageCommand) error {
	if len(cmd.Data) == 0 {
		return errors.NewValidationError("Aucun fichier fourni")
	}
	if len(cmd.Data) > maxImageSize {
		return errors.NewValidationError("L'image ne peut pas dépasser 10 Mo")
	}
	if !allowedImageTypes[cmd.ContentType] {
		return errors.NewValidationError("Format d'image non supporté (jpeg, png, gif, webp)")
	}
	return nil
}
