package upload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

var (
	ErrTooLarge    = errors.New("image exceeds the maximum upload size")
	ErrInvalidType = errors.New("image type is not allowed")
)

// ImageValidator checks multipart image attachments against the configured
// size and MIME-type limits and re-encodes them as inline data URLs.
type ImageValidator struct {
	maxSize      int64
	allowedTypes map[string]bool
}

func NewImageValidator(maxSize int64, allowedTypes []string) *ImageValidator {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = true
	}
	return &ImageValidator{
		maxSize:      maxSize,
		allowedTypes: allowed,
	}
}

// EncodeDataURL validates one attachment and returns it as a
// data:<mime>;base64,... URL. Either limit violation fails the whole
// request before anything is persisted.
func (v *ImageValidator) EncodeDataURL(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > v.maxSize {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, fileHeader.Filename)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !v.allowedTypes[contentType] {
		return "", fmt.Errorf("%w: %s", ErrInvalidType, contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Size from the part header is client-supplied; cap the actual read too.
	content, err := io.ReadAll(io.LimitReader(file, v.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(content)) > v.maxSize {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, fileHeader.Filename)
	}

	encoded := base64.StdEncoding.EncodeToString(content)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
}

// EncodeAll validates and encodes every attachment, failing fast on the
// first violation.
func (v *ImageValidator) EncodeAll(fileHeaders []*multipart.FileHeader) ([]string, error) {
	if len(fileHeaders) == 0 {
		return nil, nil
	}
	urls := make([]string, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		url, err := v.EncodeDataURL(fh)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
