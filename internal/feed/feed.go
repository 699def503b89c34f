// Package feed derives the home-view panels from store snapshots: trending
// tags, latest posts, recommended people and popular groups. Everything is a
// pure function over the input slice.
package feed

import (
	"math/rand"
	"sort"

	"github.com/founderhub/founderhub/internal/models"
)

// TrendingTags counts tag occurrences across posts and returns the topN most
// frequent, most frequent first. Ties keep first-appearance order.
func TrendingTags(posts []models.Post, topN int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for _, p := range posts {
		for _, tag := range p.Tags {
			if tag == "" {
				continue
			}
			if _, seen := counts[tag]; !seen {
				firstSeen[tag] = len(order)
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if topN < len(order) {
		order = order[:topN]
	}
	return order
}

// LatestPosts returns the first n posts; the posts collection is kept newest
// first by the store.
func LatestPosts(posts []models.Post, n int) []models.Post {
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n]
}

// PopularGroups returns the n groups with the most members, descending.
func PopularGroups(groups []models.ChatGroup, n int) []models.ChatGroup {
	sorted := make([]models.ChatGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Members > sorted[j].Members })

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// RecommendedUsers picks up to n random users excluding the viewer.
func RecommendedUsers(users []models.User, current models.User, n int, rng *rand.Rand) []models.User {
	others := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.ID != current.ID {
			others = append(others, u)
		}
	}

	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	if n > len(others) {
		n = len(others)
	}
	return others[:n]
}

// UpcomingEvents is the static event list the home view displays.
func UpcomingEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Startup Funding Workshop", Date: "August 25, 2023", Location: "Virtual"},
		{ID: 2, Title: "Networking Mixer", Date: "September 2, 2023", Location: "New York City"},
		{ID: 3, Title: "Tech Startup Conference", Date: "September 15, 2023", Location: "San Francisco"},
	}
}
