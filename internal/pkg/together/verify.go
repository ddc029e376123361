package together

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/word-blender/internal/entity"
)

// DecodeImage checks that a base64 payload holds a decodable image.
func DecodeImage(payload string) (image.Image, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: image is not base64: %v", entity.ErrUpstreamFormat, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: image does not decode: %v", entity.ErrUpstreamFormat, err)
	}
	return img, nil
}
