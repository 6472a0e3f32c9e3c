package textgen

import "context"

// Generator is the narrow boundary to an external text-generation
// capability. Implementations absorb every failure: an empty text means
// "use your fallback", and no error ever reaches the caller.
type Generator interface {
	Generate(ctx context.Context, prompt string) (text string, provider string)
}

// Disabled is the no-op generator used when the external provider is
// switched off; callers always take their local fallback.
type Disabled struct{}

func (Disabled) Generate(context.Context, string) (string, string) { return "", "" }
