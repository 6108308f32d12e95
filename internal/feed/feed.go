package feed

import (
	"sort"

	"bookclub/internal/services"
)

// DisplayOrder computes the presentation order of the book feed. It is a
// pure function over the listing output: the input slice and the stored
// data are never mutated.
//
// Order: optional topic filter, then newest first with vote count breaking
// timestamp ties. With more than two entries, position 1 is then promoted
// to the highest-voted book outside position 0, so the top of the feed
// reads "most recent, then most popular not already shown".
func DisplayOrder(books []services.BookSummary, topic string) []services.BookSummary {
	ordered := make([]services.BookSummary, 0, len(books))
	for _, b := range books {
		if topic == "" || hasTopic(b, topic) {
			ordered = append(ordered, b)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].Votes > ordered[j].Votes
	})

	if len(ordered) > 2 {
		// Highest votes outside position 0; ties keep the earlier entry.
		best := 1
		for i := 2; i < len(ordered); i++ {
			if ordered[i].Votes > ordered[best].Votes {
				best = i
			}
		}
		if best != 1 {
			ordered[1], ordered[best] = ordered[best], ordered[1]
		}
	}

	return ordered
}

func hasTopic(b services.BookSummary, topic string) bool {
	for _, name := range b.Topics {
		if name == topic {
			return true
		}
	}
	return false
}
