package normalizer

// Normalizer cleans raw transcript text before segmentation
type Normalizer interface {
	Normalize(raw string) string
}
