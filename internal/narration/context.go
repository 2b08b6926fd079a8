package narration

import "context"

type generationKey struct{}

// WithGeneration tags ctx with the presentation generation a Speak belongs to.
func WithGeneration(ctx context.Context, gen uint64) context.Context {
	return context.WithValue(ctx, generationKey{}, gen)
}

// GenerationFromContext returns the tagged generation, or 0.
func GenerationFromContext(ctx context.Context) uint64 {
	gen, _ := ctx.Value(generationKey{}).(uint64)
	return gen
}
