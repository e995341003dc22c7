package internal

// ExtractorSource reads one candidate value from the request.
// It reports false when the request carries nothing usable.
type ExtractorSource = func(Context) (string, bool)

// Extractor is an ordered list of sources; the first hit wins.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor returns an Extractor trying sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first non-empty value, or ("", false).
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// FromQuery reads the query parameter name.
func FromQuery(name string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := c.Query(name)
		return v, v != ""
	}
}
