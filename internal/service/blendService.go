package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/sirupsen/logrus"
)

const (
	BlendSystemPrompt = "You are a creative word-blending assistant. Create a single portmanteau by combining the two words provided. " +
		"Return only a JSON object with the key 'blended_word' and the new word as the value."
	blendUserPromptFormat = "Blend these two words into one creative new word: '%s' and '%s'"
)

type blendService struct {
	chat   ChatCompleter
	events *EventEmitter
}

func NewBlendService(chat ChatCompleter, events *EventEmitter) BlendService {
	return &blendService{chat: chat, events: events}
}

func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// BuildBlendPrompt formats the user message; both words appear verbatim.
func BuildBlendPrompt(word1, word2 string) string {
	return fmt.Sprintf(blendUserPromptFormat, word1, word2)
}

func (s *blendService) Blend(ctx context.Context, pair entity.WordPair) (entity.BlendResult, error) {
	word1 := NormalizeWord(pair.Word1)
	word2 := NormalizeWord(pair.Word2)

	log := logrus.WithFields(logrus.Fields{"word1": word1, "word2": word2})
	log.Info("blending words")

	raw, err := s.chat.CompleteJSON(ctx, BlendSystemPrompt, BuildBlendPrompt(word1, word2))
	if err != nil {
		if errors.Is(err, entity.ErrMissingCredential) {
			log.WithError(err).Error("OpenAI API key not configured")
			return nil, err
		}
		log.WithError(err).Error("error blending words")
		return nil, fmt.Errorf("%w: %w", entity.ErrUpstreamCall, err)
	}

	result, err := entity.ParseBlendResult(raw)
	if err != nil {
		// the raw payload stays in the log and never reaches the caller
		log.WithError(err).WithField("response", raw).Error("error parsing OpenAI response")
		return nil, err
	}

	log.WithField("blended_word", result.BlendedWord()).Info("generated blend")
	s.events.emit(entity.EventBlend, []string{word1, word2}, result.BlendedWord(), "")
	return result, nil
}
