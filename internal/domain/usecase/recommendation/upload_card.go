package recommendation

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
)

// UploadCardImage stores a business card image under a caller-scoped key
// and returns the durable URL to attach to a recommendation
func (s *Service) UploadCardImage(ctx context.Context, userID, filename string, content io.Reader, contentType string) (string, error) {
	if userID == "" {
		return "", errs.ErrInvalidUserID
	}
	if filename == "" || content == nil {
		return "", errs.ErrInvalidRequest
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("cards/%s/%s%s", userID, s.codeGen.NewID(), ext)

	url, err := s.blobStore.Put(ctx, key, content, contentType)
	if err != nil {
		s.logger.Error("Card image upload failed", map[string]any{
			"user_id": userID,
			"key":     key,
			"error":   err.Error(),
		})
		return "", fmt.Errorf("%w: %v", errs.ErrExternalService, err)
	}

	s.logger.Info("Card image uploaded", map[string]any{
		"user_id": userID,
		"key":     key,
	})
	return url, nil
}
