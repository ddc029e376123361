package transport

import (
	"strings"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/ds124wfegd/word-blender/internal/service"
)

type GameHandler struct {
	words   service.WordService
	blender service.BlendService
	images  service.ImageService
}

func NewGameHandler(words service.WordService, blender service.BlendService, images service.ImageService) *GameHandler {
	return &GameHandler{words: words, blender: blender, images: images}
}

// upstreamCause drops the sentinel prefix so the caller sees the remote failure text.
func upstreamCause(err error) string {
	return strings.TrimPrefix(err.Error(), entity.ErrUpstreamCall.Error()+": ")
}
