package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/sirupsen/logrus"
)

const SafetyClause = "suitable for children, no violence, no scary or adult themes"

// DefaultArtStyles are the kid-safe styles an illustration is drawn in.
var DefaultArtStyles = []string{
	"children's coloring book style",
	"chibi cartoon-style",
	"crayon drawing",
	"watercolor painting",
	"paper cutout art",
	"lego style",
	"playdough sculpture",
	"storybook illustration",
	"cute kawaii style",
	"simple doodle",
}

type ImageServiceConfig struct {
	// Styles to choose from; a single entry pins the style.
	Styles []string
	// Pick returns a value in [0, n). Defaults to math/rand/v2.IntN.
	Pick func(n int) int
}

type imageService struct {
	generator ImageGenerator
	styles    []string
	pick      func(n int) int
	events    *EventEmitter
}

func NewImageService(generator ImageGenerator, events *EventEmitter, config *ImageServiceConfig) ImageService {
	s := &imageService{
		generator: generator,
		styles:    DefaultArtStyles,
		pick:      rand.IntN,
		events:    events,
	}
	if config != nil {
		if styles := cleanStyles(config.Styles); len(styles) > 0 {
			s.styles = styles
		}
		if config.Pick != nil {
			s.pick = config.Pick
		}
	}
	return s
}

// BuildImagePrompt interpolates the word and style into the safety-constrained template.
func BuildImagePrompt(style, word string) string {
	return fmt.Sprintf("a colorful, %s illustration of '%s', %s", style, word, SafetyClause)
}

func (s *imageService) GenerateImage(ctx context.Context, req entity.ImageRequest) (*entity.ImageResult, error) {
	word := strings.TrimSpace(req.Word)

	style := s.styles[s.pick(len(s.styles))]
	prompt := BuildImagePrompt(style, word)

	log := logrus.WithFields(logrus.Fields{"word": word, "style": style})
	log.WithField("prompt", prompt).Info("generating image")

	payload, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("error generating image")
		if errors.Is(err, entity.ErrNoImageData) || errors.Is(err, entity.ErrUpstreamFormat) ||
			errors.Is(err, entity.ErrMissingCredential) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstreamCall, err)
	}

	log.Info("image generated successfully")
	s.events.emit(entity.EventImage, []string{word}, word, style)
	return &entity.ImageResult{ImageData: payload, Word: word}, nil
}

func cleanStyles(styles []string) []string {
	out := make([]string, 0, len(styles))
	for _, style := range styles {
		if style = strings.TrimSpace(style); style != "" {
			out = append(out, style)
		}
	}
	return out
}
