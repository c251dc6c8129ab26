package storage

import (
	"Foodgram-Backend/domain"
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var AllowImage = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

var (
	ErrInvalidImage     = domain.NewError(domain.ErrValidation, "image must be a base64 encoded data uri")
	ErrImageTypeDenied  = domain.NewError(domain.ErrValidation, "unsupported image type")
	ErrImageNotProvided = domain.NewError(domain.ErrValidation, "image is empty")
)

type File struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeDataURI parses "data:image/png;base64,...." and sniffs the payload.
// The declared media type is ignored, only the content decides.
func DecodeDataURI(uri string) (*File, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidImage
	}
	if len(data) == 0 {
		return nil, ErrImageNotProvided
	}

	mtype := mimetype.Detect(data)
	return &File{
		Data:        data,
		ContentType: mtype.String(),
		Extension:   mtype.Extension(),
	}, nil
}

func checkType(file *File, allowType ...string) error {
	if len(allowType) == 0 {
		return nil
	}
	if mimetype.EqualsAny(file.ContentType, allowType...) {
		return nil
	}
	return ErrImageTypeDenied
}
