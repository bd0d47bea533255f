package newsportal

import (
	"regexp"
	"strings"
)

const (
	DefaultArticleImage  = "https://media.istockphoto.com/id/1170028399/vector/white-half-tone-background.jpg?s=612x612&w=0&k=20&c=2L44isbJdJt3LW7yYOhqLLiByWELcujetoXKsx6QVdE="
	DefaultReporterEmail = "process@innonews.co.kr"
	leadExcerptLen       = 300
)

var (
	imageMarker = regexp.MustCompile(`\[IMG:(.*?)\]`)
	descLink    = regexp.MustCompile(`https?://[^\s]+`)
)

type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentImage SegmentKind = "image"
	SegmentLink  SegmentKind = "link"
)

// Segment is one renderable piece of a body or description.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// ExpandImages splits body on [IMG:url] markers. Text around markers is kept
// verbatim, empty text between adjacent markers is dropped.
func ExpandImages(body string) []Segment {
	matches := imageMarker.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: SegmentText, Value: body}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: SegmentText, Value: body[last:m[0]]})
		}
		segments = append(segments, Segment{Kind: SegmentImage, Value: body[m[2]:m[3]]})
		last = m[1]
	}
	if last < len(body) {
		segments = append(segments, Segment{Kind: SegmentText, Value: body[last:]})
	}

	return segments
}

// LinkifyDescription turns http(s) URLs in a video description into links.
func LinkifyDescription(text string) []Segment {
	matches := descLink.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: SegmentText, Value: text}}
	}

	segments := make([]Segment, 0, len(matches)*2+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: SegmentText, Value: text[last:m[0]]})
		}
		segments = append(segments, Segment{Kind: SegmentLink, Value: text[m[0]:m[1]]})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Kind: SegmentText, Value: text[last:]})
	}

	return segments
}

// StripImageMarkers removes every [IMG:...] marker, for list excerpts.
func StripImageMarkers(body string) string {
	return imageMarker.ReplaceAllString(body, "")
}

// Excerpt cuts body to n runes and appends an ellipsis.
func Excerpt(body string, n int) string {
	r := []rune(body)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}

// LeadExcerpt is the teaser shown under the lead story.
func LeadExcerpt(body string) string {
	return Excerpt(body, leadExcerptLen)
}

// ArticleImage falls back to the placeholder for blank cover URLs.
func ArticleImage(url string) string {
	if strings.TrimSpace(url) == "" {
		return DefaultArticleImage
	}
	return url
}

// Byline is the reporter box under an article.
type Byline struct {
	Reporter Reporter
	Found    bool
}

func (b Byline) Email() string {
	if b.Reporter.Email == "" {
		return DefaultReporterEmail
	}
	return b.Reporter.Email
}

// FindByline looks up the article's reporter. A dangling reporter id yields
// an empty byline with Found unset.
func FindByline(a Article, reporters []Reporter) Byline {
	if i := IndexByID(reporters, a.ReporterID); i >= 0 {
		return Byline{Reporter: reporters[i], Found: true}
	}
	return Byline{}
}
