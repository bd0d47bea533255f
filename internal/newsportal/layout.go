package newsportal

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// LatestCategory is the menu label that lists every article.
const LatestCategory = "최신기사"

const (
	secondaryEnd = 4
	midGridEnd   = 7
)

// HomeLayout splits the ordered article list into the homepage bands.
type HomeLayout struct {
	Lead      *Article
	Secondary []Article
	MidGrid   []Article
	Feed      []Article
}

// Layout assigns slots purely by index: 0 lead, 1-3 secondary, 4-6 mid grid,
// the rest feed.
func Layout(articles []Article) HomeLayout {
	var l HomeLayout
	if len(articles) == 0 {
		return l
	}

	lead := articles[0]
	l.Lead = &lead
	l.Secondary = band(articles, 1, secondaryEnd)
	l.MidGrid = band(articles, secondaryEnd, midGridEnd)
	l.Feed = band(articles, midGridEnd, len(articles))
	return l
}

func band(list []Article, from, to int) []Article {
	if from >= len(list) {
		return []Article{}
	}
	if to > len(list) {
		to = len(list)
	}
	return clone(list[from:to])
}

// CategoryFilter is either "all articles" or one named category.
type CategoryFilter struct {
	name string
	all  bool
}

func AllCategories() CategoryFilter { return CategoryFilter{all: true} }

func NamedCategory(name string) CategoryFilter { return CategoryFilter{name: name} }

// ParseCategoryFilter turns a menu label into a filter. The latest label is
// the only one treated as All.
func ParseCategoryFilter(label string) CategoryFilter {
	if label == LatestCategory {
		return AllCategories()
	}
	return NamedCategory(label)
}

func (f CategoryFilter) All() bool { return f.all }

func (f CategoryFilter) Name() string {
	if f.all {
		return LatestCategory
	}
	return f.name
}

func (f CategoryFilter) Match(a Article) bool {
	return f.all || a.Category == f.name
}

func FilterByCategory(articles []Article, f CategoryFilter) []Article {
	if f.all {
		return clone(articles)
	}

	out := make([]Article, 0)
	for _, a := range articles {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// OrphanedArticles returns articles whose category is missing from the menu.
// They can still be opened directly or found by search.
func OrphanedArticles(articles []Article, nav []string) []Article {
	out := make([]Article, 0)
	for _, a := range articles {
		if !slices.Contains(nav, a.Category) {
			out = append(out, a)
		}
	}
	return out
}

type SearchResult struct {
	Query    string
	Articles []Article
	Videos   []Video
}

// Empty reports a search with no hits at all.
func (r SearchResult) Empty() bool {
	return len(r.Articles) == 0 && len(r.Videos) == 0
}

// Search matches q case-insensitively against article title/content and
// video title/description, keeping collection order.
func Search(articles []Article, videos []Video, q string) SearchResult {
	needle := strings.ToLower(q)
	res := SearchResult{
		Query:    q,
		Articles: make([]Article, 0),
		Videos:   make([]Video, 0),
	}

	for _, a := range articles {
		if containsFold(a.Title, needle) || containsFold(a.Content, needle) {
			res.Articles = append(res.Articles, a)
		}
	}

	for _, v := range videos {
		if containsFold(v.Title, needle) || containsFold(v.Description, needle) {
			res.Videos = append(res.Videos, v)
		}
	}

	return res
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// VisibleAds returns the visible ads of one placement in collection order.
func VisibleAds(ads []AdConfig, t AdType) []AdConfig {
	out := make([]AdConfig, 0)
	for _, ad := range ads {
		if ad.Type == t && ad.IsVisible {
			out = append(out, ad)
		}
	}
	return out
}

// PickAd chooses one visible ad of type t at random.
func PickAd(ads []AdConfig, t AdType, rnd *rand.Rand) (AdConfig, bool) {
	visible := VisibleAds(ads, t)
	if len(visible) == 0 {
		return AdConfig{}, false
	}
	if rnd == nil {
		return visible[rand.IntN(len(visible))], true
	}
	return visible[rnd.IntN(len(visible))], true
}

// CountAds counts ads of type t regardless of visibility.
func CountAds(ads []AdConfig, t AdType) int {
	n := 0
	for _, ad := range ads {
		if ad.Type == t {
			n++
		}
	}
	return n
}
