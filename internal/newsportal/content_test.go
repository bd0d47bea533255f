package newsportal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandImages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Segment
	}{
		{
			name: "SingleMarker",
			body: "a[IMG:http://x]b",
			want: []Segment{
				{Kind: SegmentText, Value: "a"},
				{Kind: SegmentImage, Value: "http://x"},
				{Kind: SegmentText, Value: "b"},
			},
		},
		{
			name: "NoMarkers",
			body: "plain text only",
			want: []Segment{{Kind: SegmentText, Value: "plain text only"}},
		},
		{
			name: "Empty",
			body: "",
			want: []Segment{{Kind: SegmentText, Value: ""}},
		},
		{
			name: "AdjacentMarkers",
			body: "[IMG:http://a][IMG:http://b]",
			want: []Segment{
				{Kind: SegmentImage, Value: "http://a"},
				{Kind: SegmentImage, Value: "http://b"},
			},
		},
		{
			name: "MultilineTextKept",
			body: "first\n[IMG:https://img/1.png]\nsecond",
			want: []Segment{
				{Kind: SegmentText, Value: "first\n"},
				{Kind: SegmentImage, Value: "https://img/1.png"},
				{Kind: SegmentText, Value: "\nsecond"},
			},
		},
		{
			name: "UnclosedMarkerIsText",
			body: "a[IMG:http://x",
			want: []Segment{{Kind: SegmentText, Value: "a[IMG:http://x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandImages(tt.body))
		})
	}
}

func TestLinkifyDescription(t *testing.T) {
	got := LinkifyDescription("홈페이지 https://innonews.co.kr 에서 확인")

	assert.Equal(t, []Segment{
		{Kind: SegmentText, Value: "홈페이지 "},
		{Kind: SegmentLink, Value: "https://innonews.co.kr"},
		{Kind: SegmentText, Value: " 에서 확인"},
	}, got)

	assert.Equal(t, []Segment{{Kind: SegmentText, Value: "no links"}}, LinkifyDescription("no links"))
}

func TestStripImageMarkersAndExcerpt(t *testing.T) {
	assert.Equal(t, "ab", StripImageMarkers("a[IMG:http://x]b"))

	assert.Equal(t, "가나...", Excerpt("가나다라", 2))
	assert.Equal(t, "short...", Excerpt("short", 10))

	long := strings.Repeat("가", 400)
	assert.Equal(t, 303, len([]rune(LeadExcerpt(long))))
}

func TestArticleImage(t *testing.T) {
	assert.Equal(t, DefaultArticleImage, ArticleImage(""))
	assert.Equal(t, DefaultArticleImage, ArticleImage("   "))
	assert.Equal(t, "https://x/y.png", ArticleImage("https://x/y.png"))
}

func TestFindByline(t *testing.T) {
	reporters := []Reporter{{ID: "rep1", Name: "김이노", Email: "kim@innonews.co.kr"}, {ID: "rep2", Name: "이혁신"}}

	b := FindByline(Article{ReporterID: "rep1"}, reporters)
	assert.True(t, b.Found)
	assert.Equal(t, "kim@innonews.co.kr", b.Email())

	b = FindByline(Article{ReporterID: "rep2"}, reporters)
	assert.True(t, b.Found)
	assert.Equal(t, DefaultReporterEmail, b.Email())

	b = FindByline(Article{ReporterID: "gone"}, reporters)
	assert.False(t, b.Found)
}
