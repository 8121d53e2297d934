package domain

// Config holds the quality criteria for one validator instance.
// It is read-only after construction; a single Config may be shared by
// goroutines evaluating different texts.
type Config struct {
	// MinOutputLength is the minimum number of characters for a
	// substantial output.
	MinOutputLength int
	// RequireCodeExamples enables the code-example check for technical
	// agent labels.
	RequireCodeExamples bool
	// RequireRecommendations enables the actionable-recommendation check.
	RequireRecommendations bool
	// CheckPlaceholders enables scanning for placeholder and
	// hallucination markers.
	CheckPlaceholders bool
}

// DefaultConfig returns the standard quality criteria.
func DefaultConfig() Config {
	return Config{
		MinOutputLength:        500,
		RequireCodeExamples:    true,
		RequireRecommendations: true,
		CheckPlaceholders:      true,
	}
}
