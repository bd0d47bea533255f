package newsportal

import (
	"fmt"
	"regexp"
)

const youtubeIDLen = 11

const (
	ThumbnailMaxRes = "maxresdefault"
	ThumbnailHQ     = "hqdefault"
)

var youtubeURL = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeID extracts the 11 character video id from the common URL shapes.
func YouTubeID(url string) (string, bool) {
	m := youtubeURL.FindStringSubmatch(url)
	if m == nil || len(m[2]) != youtubeIDLen {
		return "", false
	}
	return m[2], true
}

// EmbedURL is the player URL for a video, or false when no id can be found.
func EmbedURL(v Video) (string, bool) {
	id, ok := YouTubeID(v.YoutubeURL)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s?autoplay=0", id), true
}

// ThumbnailURL picks the custom image when configured, otherwise the YouTube
// still of the given quality. Text thumbnails still get the still as backdrop.
// Videos without a recognisable id get the article placeholder.
func ThumbnailURL(v Video, quality string) string {
	if v.ThumbnailType == ThumbnailImage && v.CustomThumbnail != "" {
		return v.CustomThumbnail
	}
	id, ok := YouTubeID(v.YoutubeURL)
	if !ok {
		return DefaultArticleImage
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/%s.jpg", id, quality)
}
