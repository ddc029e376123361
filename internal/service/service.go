package service

import (
	"context"

	"github.com/ds124wfegd/word-blender/internal/entity"
)

type WordService interface {
	RandomWords() (*entity.WordsResponse, error)
}

type BlendService interface {
	Blend(ctx context.Context, pair entity.WordPair) (entity.BlendResult, error)
}

type ImageService interface {
	GenerateImage(ctx context.Context, req entity.ImageRequest) (*entity.ImageResult, error)
}

// ChatCompleter returns the raw JSON content of a chat completion.
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ImageGenerator returns one base64 encoded image for a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.GameEvent) error
	Close() error
}

// WordSampler draws n distinct words.
type WordSampler interface {
	Sample(n int) ([]string, error)
}
