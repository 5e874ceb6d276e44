package normalisers

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/studyshelf/internal/core/domain"
	"github.com/custodia-labs/studyshelf/internal/logger"
)

// Normalise converts one raw JSON payload into uniform documents. The shape
// is detected first, then the matching normaliser runs. Most payloads yield
// exactly one document; the compound steps/traditions shape yields up to
// two. Unrecognised or malformed input yields a single empty document of
// kind unknown - normalisation never fails.
func Normalise(id string, data []byte, fallbackTitle string) []domain.Document {
	shape := domain.DetectShape(data)
	logger.Debug("Normalise %s: shape=%s, %d bytes", id, shape, len(data))

	switch shape {
	case domain.ShapeDailyList:
		return normaliseDaily(id, data, fallbackTitle)
	case domain.ShapeCompound:
		return normaliseCompound(id, data, fallbackTitle)
	case domain.ShapeSectioned:
		return normaliseSectioned(id, data, fallbackTitle)
	default:
		return []domain.Document{unknownDocument(id, fallbackTitle)}
	}
}

// unknownDocument is the deliberate non-failure result for unrecognised
// input: empty, harmlessly displayable.
func unknownDocument(id, fallbackTitle string) domain.Document {
	doc := domain.Document{
		ID:    id,
		Title: firstNonEmpty(fallbackTitle, id),
		Kind:  domain.KindUnknown,
	}
	doc.Finalize()
	return doc
}

var slugStripper = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases text, collapses every non-alphanumeric run to one
// dash, and trims leading and trailing dashes.
func slugify(text string) string {
	slug := slugStripper.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}

// dropEmpty filters out empty strings, preserving order.
func dropEmpty(values []string) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return kept
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
