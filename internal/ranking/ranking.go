// Package ranking orders post collections for display. It is pure: no I/O, no
// clocks, no shared state. The reference instant is always a parameter so that
// concurrent readers get deterministic, testable results.
package ranking

import (
	"sort"
	"time"

	"spotted/internal/models"
)

const (
	// StaleAfter is how old a declared sighting may be before its post stops
	// competing with fresh posts.
	StaleAfter = 30 * 24 * time.Hour
	// staleDemotion is subtracted from a stale post's publish time to build a
	// synthetic priority that sorts below essentially all live posts. The post
	// still appears in the feed, just ranked as if it were old.
	staleDemotion = 60 * 24 * time.Hour
)

// Priority returns the sortable instant for a post relative to now. A post
// whose declared sighting is more than thirty days old is demoted to its
// publish time minus sixty days regardless of how recently it was posted.
func Priority(p *models.Post, now time.Time) time.Time {
	if p.SightingDate != nil && now.Sub(*p.SightingDate) > StaleAfter {
		return p.CreatedAt.Add(-staleDemotion)
	}
	return p.SightingTime()
}

// RankPosts returns a new slice ordered by priority, most relevant first when
// ascending is false. Ties break on created_at in the same direction so the
// order is a total one. The input slice is never reordered.
func RankPosts(posts []models.Post, now time.Time, ascending bool) []models.Post {
	ranked := make([]models.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := Priority(&ranked[i], now), Priority(&ranked[j], now)
		if !pi.Equal(pj) {
			if ascending {
				return pi.Before(pj)
			}
			return pi.After(pj)
		}
		if ascending {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
	})

	return ranked
}
