// Package mockdata seeds the store with randomly generated users, posts and
// chat groups, standing in for the real backend the demo does not have. All
// logic-relevant fields come from a seedable source so runs are
// reproducible; avatar references use opaque nanoid seeds and are not part
// of the deterministic surface.
package mockdata

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/founderhub/founderhub/internal/models"
)

type Options struct {
	Seed      int64 // 0 picks a time-based seed
	UserCount int
	PostCount int
}

// Dataset is everything the store needs to start. CurrentUser is the first
// generated user, mirroring the demo's fixed viewer.
type Dataset struct {
	Users       []models.User
	Posts       []models.Post
	ChatGroups  []models.ChatGroup
	CurrentUser models.User
}

var (
	fundingSeries = []string{
		"Pre-seed", "Seed", "Series A", "Series B", "Series C", "Series D+",
		"Bootstrapped", "Not specified",
	}
	industries = []string{
		"Software & Tech", "Fintech", "Healthcare", "E-commerce", "Education",
		"AI & Machine Learning", "Clean Energy", "Crypto & Blockchain",
		"Consumer Goods", "B2B Services",
	}
	companySizes   = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}
	lookingForPool = []string{"Funding", "Co-founder", "Mentorship", "Partnerships", "Talent", "Customers"}
	skillsPool     = []string{
		"React", "JavaScript", "Business Strategy", "Marketing", "Finance",
		"UX Design", "Product Management", "Leadership", "Sales", "Networking",
	}
	tagsPool = []string{
		"Startups", "Funding", "Tech", "Marketing", "Success",
		"Product", "Innovation", "Growth", "Networking", "AI",
	}
	chatCategories = []string{
		"Tech Startups", "Funding & Investment", "Marketing Strategies",
		"Product Development", "Networking Events", "Leadership & Management",
		"Design Thinking", "Remote Work", "E-commerce", "Fintech Innovations",
		"AI & Machine Learning", "Blockchain & Crypto",
	}
	founderRoles = []string{"Founder", "Co-Founder", "CEO", "CTO"}
	memberRoles  = []string{"Investor", "Product Manager", "Designer", "Developer", "Marketing Director"}

	firstNames = []string{
		"Ada", "Ben", "Chloe", "Dmitri", "Eve", "Felix", "Grace", "Hugo",
		"Imani", "Jonas", "Kira", "Liam", "Mara", "Noah", "Olivia", "Pavel",
		"Quinn", "Rosa", "Sven", "Tara", "Umar", "Vera", "Wes", "Yara",
	}
	lastNames = []string{
		"Fontaine", "Ortiz", "Nguyen", "Walsh", "Okafor", "Brandt", "Silva",
		"Kato", "Meyer", "Haddad", "Lindqvist", "Romano", "Petrov", "Ellis",
		"Moreau", "Tanaka", "Novak", "Diallo", "Becker", "Costa", "Ivanov",
		"Sharma", "Klein", "Duarte",
	}
	cityCountries = []string{
		"Berlin, Germany", "Austin, United States", "Lyon, France",
		"Lagos, Nigeria", "Lisbon, Portugal", "Toronto, Canada",
		"Singapore, Singapore", "Amsterdam, Netherlands", "Warsaw, Poland",
		"Nairobi, Kenya", "Stockholm, Sweden", "Tokyo, Japan",
		"Medellin, Colombia", "Tallinn, Estonia", "Dublin, Ireland",
		"Bangalore, India", "Melbourne, Australia", "Zurich, Switzerland",
		"Seoul, South Korea", "Mexico City, Mexico",
	}
	companyNames = []string{
		"Acme Labs", "Beacon Health", "Zeta Robotics", "Lumen Pay",
		"Orbital Works", "Fernwood", "Quanta Grid", "Helio Market",
		"Northstar Analytics", "Packlane", "Driftwell", "Cobalt Systems",
		"Verdant Energy", "Maple Finance", "Atlas Ledger", "Nimbus Learn",
		"Forge & Field", "Solstice AI", "Harbor Stack", "Piquant Foods",
		"Tessera Cloud", "Windrose Travel", "Carbide Tools", "Opaline Care",
		"Relay Freight", "Juniper Retail", "Vantage Media", "Kestrel Security",
	}
	loremWords = []string{
		"momentum", "runway", "iterate", "market", "traction", "pivot",
		"customers", "product", "launch", "scaling", "revenue", "community",
		"feedback", "roadmap", "vision", "growth", "hiring", "culture",
		"metrics", "pitch", "capital", "network", "platform", "strategy",
	}
)

// Generate builds a dataset sized by opts.
func Generate(opts Options) Dataset {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	now := time.Now()

	users := generateUsers(rng, now, opts.UserCount)
	posts := generatePosts(rng, now, users, opts.PostCount)
	groups := generateChatGroups(rng, now, users)

	return Dataset{
		Users:       users,
		Posts:       posts,
		ChatGroups:  groups,
		CurrentUser: users[0],
	}
}

func generateUsers(rng *rand.Rand, now time.Time, count int) []models.User {
	if count < 1 {
		count = 1
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		isFounder := rng.Float64() < 0.6
		first := pick(rng, firstNames)
		last := pick(rng, lastNames)
		company := pick(rng, companyNames)

		role := pick(rng, memberRoles)
		if isFounder {
			role = pick(rng, founderRoles)
		}

		u := models.User{
			ID:        i + 1,
			Name:      first + " " + last,
			Username:  strings.ToLower(first) + "." + strings.ToLower(last) + fmt.Sprint(between(rng, 10, 99)),
			Email:     strings.ToLower(first) + "." + strings.ToLower(last) + "@" + slug(company) + ".example",
			Avatar:    "https://i.pravatar.cc/150?u=" + gonanoid.Must(10),
			Company:   company,
			Role:      role,
			Bio:       sentences(rng, 3),
			Location:  pick(rng, cityCountries),
			Website:   "https://" + slug(company) + ".example",
			JoinDate:  now.AddDate(0, 0, -between(rng, 30, 3*365)),
			Followers: between(rng, 0, 5000),
			Following: between(rng, 0, 1000),
			Industry:  pick(rng, industries),
			Skills:    sample(rng, skillsPool, between(rng, 2, 6)),
			IsFounder: isFounder,
		}

		if isFounder {
			founded := now.AddDate(0, 0, -between(rng, 90, 10*365))
			u.FoundingDate = &founded
			u.FundingSeries = pick(rng, fundingSeries)
			u.CompanySize = pick(rng, companySizes)
			u.LookingFor = sample(rng, lookingForPool, between(rng, 1, 3))
		}

		users = append(users, u)
	}
	return users
}

func generatePosts(rng *rand.Rand, now time.Time, users []models.User, count int) []models.Post {
	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		p := models.Post{
			ID:        i + 1,
			Author:    pick(rng, users),
			Content:   sentences(rng, between(rng, 1, 4)),
			Likes:     between(rng, 0, 200),
			Comments:  between(rng, 0, 50),
			Shares:    between(rng, 0, 30),
			Tags:      sample(rng, tagsPool, between(rng, 0, 3)),
			Timestamp: now.Add(-time.Duration(between(rng, 1, 30*24*60)) * time.Minute),
		}
		if rng.Intn(2) == 0 {
			p.Image = fmt.Sprintf("https://picsum.photos/seed/%d/800/500", between(rng, 1, 1000))
		}
		posts = append(posts, p)
	}

	// Feed invariant: newest first.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
	return posts
}

func generateChatGroups(rng *rand.Rand, now time.Time, users []models.User) []models.ChatGroup {
	groups := make([]models.ChatGroup, 0, len(chatCategories))
	for i, name := range chatCategories {
		msgCount := between(rng, 10, 50)
		msgs := make([]models.Message, 0, msgCount)
		for m := 0; m < msgCount; m++ {
			msgs = append(msgs, models.Message{
				Sender:    pick(rng, users),
				Content:   sentences(rng, between(rng, 1, 3)),
				Timestamp: now.Add(-time.Duration(between(rng, 1, 7*24*60)) * time.Minute),
			})
		}

		// Chronological, oldest first, with ids following that order so the
		// next append gets len+1.
		sort.SliceStable(msgs, func(a, b int) bool {
			return msgs[a].Timestamp.Before(msgs[b].Timestamp)
		})
		for m := range msgs {
			msgs[m].ID = m + 1
		}

		groups = append(groups, models.ChatGroup{
			ID:          i + 1,
			Name:        name,
			Description: sentences(rng, 1),
			Members:     between(rng, 5, 200),
			Image:       "https://source.unsplash.com/random/200x200?" + slug(name),
			Messages:    msgs,
		})
	}
	return groups
}

func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// between returns a random int in [min, max].
func between(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// sample returns n distinct elements of pool in random order.
func sample[T any](rng *rand.Rand, pool []T, n int) []T {
	idx := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]T, 0, n)
	for _, i := range idx[:n] {
		out = append(out, pool[i])
	}
	return out
}

func sentences(rng *rand.Rand, n int) string {
	var b strings.Builder
	for s := 0; s < n; s++ {
		if s > 0 {
			b.WriteByte(' ')
		}
		words := between(rng, 6, 12)
		for w := 0; w < words; w++ {
			word := pick(rng, loremWords)
			if w == 0 {
				word = strings.ToUpper(word[:1]) + word[1:]
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(word)
		}
		b.WriteByte('.')
	}
	return b.String()
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}
