package provider

import "context"

// Generator is the outbound boundary to an image-generation provider.
// Generate returns the image as base64 or the provider's error.
type Generator interface {
	Generate(ctx context.Context, prompt string, size string) (string, error)
}
