package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/cbamatrix-go/pkg/cbamatrix/models"
)

// RatingWords are the ordinal rating labels, lowest first.
var RatingWords = []string{"Poor", "Fair", "Good", "Very Good", "Excellent"}

// ratingPattern matches an optional leading rating token followed by an optional
// separated description. Dot does not cross newlines.
var ratingPattern = regexp.MustCompile(`(?i)^\s*(very\s+good|excellent|good|fair|poor|[1-5](?:\.0)?)\s*(?:[:\-–—]\s*(.*))?$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// RatingRank maps a rating word to 1..5, or 0 when it is not a rating word.
func RatingRank(word string) int {
	for i, w := range RatingWords {
		if strings.EqualFold(w, word) {
			return i + 1
		}
	}
	return 0
}

// SplitRating extracts the rating word and remaining description from raw cell text.
// Without a leading rating token the whole trimmed text becomes the description.
func SplitRating(raw string) models.CellContent {
	s := strings.TrimSpace(raw)
	content := models.CellContent{Raw: raw}
	if s == "" {
		return content
	}

	m := ratingPattern.FindStringSubmatch(s)
	if m == nil {
		content.Description = s
		return content
	}

	token := strings.ToLower(whitespaceRun.ReplaceAllString(m[1], " "))
	if token[0] >= '1' && token[0] <= '5' {
		content.Rating = RatingWords[token[0]-'1']
	} else {
		content.Rating = RatingWords[RatingRank(token)-1]
	}
	content.Description = m[2]
	return content
}
