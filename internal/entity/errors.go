package entity

import "errors"

var (
	// Configuration errors
	ErrMissingCredential = errors.New("api key not configured")

	// Upstream errors
	ErrUpstreamFormat = errors.New("could not interpret AI response")
	ErrUpstreamCall   = errors.New("upstream call failed")
	ErrNoImageData    = errors.New("No image data received from Together API")

	// Request errors
	ErrInvalidRequest = errors.New("invalid request")
	ErrPoolTooSmall   = errors.New("word pool is smaller than the requested sample")
	ErrEmptyPool      = errors.New("word pool is empty")
)
