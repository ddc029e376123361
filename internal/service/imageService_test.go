package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ds124wfegd/word-blender/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagePromptAlwaysCarriesSafetyClause(t *testing.T) {
	for i, style := range DefaultArtStyles {
		i := i
		t.Run(style, func(t *testing.T) {
			generator := &fakeGenerator{payload: "aGVsbG8="}
			svc := NewImageService(generator, nil, &ImageServiceConfig{
				Pick: func(n int) int { return i },
			})

			result, err := svc.GenerateImage(context.Background(), entity.ImageRequest{Word: "  Dragon "})
			require.NoError(t, err)
			assert.Equal(t, "Dragon", result.Word)
			assert.Equal(t, "aGVsbG8=", result.ImageData)

			require.Len(t, generator.prompts, 1)
			prompt := generator.prompts[0]
			assert.Contains(t, prompt, "no violence, no scary or adult themes")
			assert.Contains(t, prompt, style)
			assert.Contains(t, prompt, "'Dragon'")
		})
	}
}

func TestImageStyleIsChosenFromConfiguredList(t *testing.T) {
	generator := &fakeGenerator{payload: "aGVsbG8="}
	svc := NewImageService(generator, nil, &ImageServiceConfig{Styles: []string{" ", "crayon drawing"}})

	for i := 0; i < 10; i++ {
		_, err := svc.GenerateImage(context.Background(), entity.ImageRequest{Word: "cat"})
		require.NoError(t, err)
	}
	for _, prompt := range generator.prompts {
		assert.Equal(t, BuildImagePrompt("crayon drawing", "cat"), prompt)
	}
}

func TestImageRandomStyleStaysInList(t *testing.T) {
	generator := &fakeGenerator{payload: "aGVsbG8="}
	svc := NewImageService(generator, nil, nil)

	for i := 0; i < 50; i++ {
		_, err := svc.GenerateImage(context.Background(), entity.ImageRequest{Word: "cat"})
		require.NoError(t, err)
	}
	for _, prompt := range generator.prompts {
		found := false
		for _, style := range DefaultArtStyles {
			if strings.HasPrefix(prompt, "a colorful, "+style+" illustration") {
				found = true
			}
		}
		assert.True(t, found, "unexpected prompt %q", prompt)
	}
}

func TestImageErrors(t *testing.T) {
	tests := []struct {
		name   string
		genErr error
		is     error
		text   string
	}{
		{name: "no image data", genErr: entity.ErrNoImageData, is: entity.ErrNoImageData, text: "No image data"},
		{name: "unreachable", genErr: errors.New("dial tcp 127.0.0.1:9: connect: connection refused"), is: entity.ErrUpstreamCall, text: "connection refused"},
		{name: "bad payload", genErr: entity.ErrUpstreamFormat, is: entity.ErrUpstreamFormat, text: "could not interpret"},
		{name: "missing key", genErr: entity.ErrMissingCredential, is: entity.ErrMissingCredential, text: "api key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &recordingPublisher{}
			events := NewEventEmitter(publisher, 0)
			svc := NewImageService(&fakeGenerator{err: tt.genErr}, events, nil)

			_, err := svc.GenerateImage(context.Background(), entity.ImageRequest{Word: "dragon"})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is))
			assert.Contains(t, err.Error(), tt.text)

			events.Wait()
			assert.Empty(t, publisher.recorded())
		})
	}
}

func TestImageForwardsBlankWord(t *testing.T) {
	generator := &fakeGenerator{payload: "aGVsbG8="}
	svc := NewImageService(generator, nil, &ImageServiceConfig{Styles: []string{"simple doodle"}})

	result, err := svc.GenerateImage(context.Background(), entity.ImageRequest{Word: "   "})
	require.NoError(t, err)
	assert.Equal(t, "", result.Word)
	require.Len(t, generator.prompts, 1)
	assert.Equal(t, BuildImagePrompt("simple doodle", ""), generator.prompts[0])
}

func TestImageEmitsEvent(t *testing.T) {
	publisher := &recordingPublisher{}
	events := NewEventEmitter(publisher, 0)
	svc := NewImageService(&fakeGenerator{payload: "aGVsbG8="}, events, &ImageServiceConfig{Styles: []string{"lego style"}})

	_, err := svc.GenerateImage(context.Background(), entity.ImageRequest{Word: "robot"})
	require.NoError(t, err)

	events.Wait()
	recorded := publisher.recorded()
	require.Len(t, recorded, 1)
	assert.Equal(t, entity.EventImage, recorded[0].Type)
	assert.Equal(t, "robot", recorded[0].Result)
	assert.Equal(t, "lego style", recorded[0].Style)
}
