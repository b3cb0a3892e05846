package parser

import (
	"regexp"
	"strings"
)

// bulletTriggers mark text as a list when any of them is present.
var bulletTriggers = []string{"\n", ";", " • ", " - ", " – "}

// itemSeparators are turned into line breaks before splitting.
var itemSeparators = strings.NewReplacer(
	"\r", "",
	";", "\n",
	" • ", "\n",
	" – ", "\n",
	" - ", "\n",
)

var leadingMarker = regexp.MustCompile(`^\s*[-•–]\s*`)

// Bulletize turns delimited text into a "• item" list, one item per line.
// Text without any recognized separator is returned trimmed but otherwise unchanged.
func Bulletize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" || !containsAny(s, bulletTriggers) {
		return s
	}

	var items []string
	for _, line := range strings.Split(itemSeparators.Replace(s), "\n") {
		item := strings.TrimSpace(leadingMarker.ReplaceAllString(line, ""))
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return s
	}
	return "• " + strings.Join(items, "\n• ")
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
