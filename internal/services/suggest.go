package services

import (
	"regexp"
	"strings"

	"bookclub/internal/models"
)

// Keywords commonly seen in catalog categories; a topic whose name carries
// one of these is considered a match for any categorized candidate.
var categoryKeywords = []string{
	"fiction", "nonfiction", "science", "fantasy", "mystery", "thriller",
	"romance", "horror", "biography", "history", "business", "self-help",
	"philosophy", "psychology", "technology", "computers", "programming",
}

var categorySplitter = regexp.MustCompile(`[\s&,/]+`)

// SuggestTopics maps catalog categories onto existing topic ids by keyword
// and substring matching. Categories flow in as an explicit parameter from
// the catalog lookup result; nothing is stashed in shared state between the
// lookup and this step.
func SuggestTopics(categories []string, topics []models.Topic) []uint {
	if len(categories) == 0 {
		return nil
	}

	words := make([]string, 0, len(categories))
	for _, category := range categories {
		for _, word := range categorySplitter.Split(strings.ToLower(category), -1) {
			if word != "" {
				words = append(words, word)
			}
		}
	}

	var matched []uint
	for _, topic := range topics {
		name := strings.ToLower(topic.Name)

		hit := false
		for _, keyword := range categoryKeywords {
			if strings.Contains(name, keyword) {
				hit = true
				break
			}
		}
		if !hit {
			for _, word := range words {
				if strings.Contains(name, word) || strings.Contains(word, name) {
					hit = true
					break
				}
			}
		}

		if hit {
			matched = append(matched, topic.ID)
		}
	}
	return matched
}
