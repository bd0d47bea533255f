package newsportal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYouTubeID(t *testing.T) {
	tests := []struct {
		url    string
		want   string
		wantOK bool
	}{
		{url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://youtu.be/dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://youtu.be/dQw4w9WgXcQ?t=42", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://www.youtube.com/embed/dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://www.youtube.com/v/dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ#t=1", want: "dQw4w9WgXcQ", wantOK: true},
		{url: "https://www.youtube.com/watch?v=short", wantOK: false},
		{url: "https://example.com/video", wantOK: false},
		{url: "not a url", wantOK: false},
		{url: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, ok := YouTubeID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbedAndThumbnail(t *testing.T) {
	v := Video{YoutubeURL: "https://youtu.be/dQw4w9WgXcQ", ThumbnailType: ThumbnailDefault}

	embed, ok := EmbedURL(v)
	assert.True(t, ok)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=0", embed)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", ThumbnailURL(v, ThumbnailMaxRes))
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", ThumbnailURL(v, ThumbnailHQ))

	custom := Video{YoutubeURL: v.YoutubeURL, ThumbnailType: ThumbnailImage, CustomThumbnail: "https://cdn/thumb.jpg"}
	assert.Equal(t, "https://cdn/thumb.jpg", ThumbnailURL(custom, ThumbnailMaxRes))

	_, ok = EmbedURL(Video{YoutubeURL: "https://vimeo.com/1"})
	assert.False(t, ok)

	assert.Equal(t, DefaultArticleImage, ThumbnailURL(Video{YoutubeURL: "https://vimeo.com/1"}, ThumbnailMaxRes))
	assert.Equal(t, DefaultArticleImage, ThumbnailURL(Video{ThumbnailType: ThumbnailImage}, ThumbnailHQ))
}
