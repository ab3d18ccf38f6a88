package types

import "fmt"

// ArticleType is the business context the article was generated for.
type ArticleType string

const (
	ArticleTypeVacancy     ArticleType = "vacancy"
	ArticleTypeAssessment  ArticleType = "assessment"
	ArticleTypeEmail       ArticleType = "email"
	ArticleTypeTestResults ArticleType = "test_results"
	ArticleTypeCustom      ArticleType = "custom"
)

func (t ArticleType) Valid() bool {
	switch t {
	case ArticleTypeVacancy, ArticleTypeAssessment, ArticleTypeEmail, ArticleTypeTestResults, ArticleTypeCustom:
		return true
	default:
		return false
	}
}

func ParseArticleType(s string) (ArticleType, error) {
	t := ArticleType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown article type %q", s)
	}
	return t, nil
}

// ContentMode selects how the article body is obtained.
type ContentMode string

const (
	// ContentModeFormatted takes the body as ready HTML, untouched.
	ContentModeFormatted ContentMode = "formatted"
	// ContentModeRaw sends the text through the formatting model first.
	ContentModeRaw ContentMode = "raw"
)

func (m ContentMode) Valid() bool {
	return m == ContentModeFormatted || m == ContentModeRaw
}

// FormatType names the output format and the first segment of the storage key.
// Only HTML exists today; the key scheme is already parameterized on it.
type FormatType string

const (
	FormatTypeHTML FormatType = "html"
)

func (f FormatType) Valid() bool {
	return f == FormatTypeHTML
}
