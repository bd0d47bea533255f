package rpc

import "time"

type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	ReporterID string    `json:"reporterId"`
}

type Byline struct {
	Found bool   `json:"found"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email"`
}

type ArticleDetail struct {
	Article Article `json:"article"`
	Byline  Byline  `json:"byline"`
}

type HomeLayout struct {
	Lead      *Article  `json:"lead"`
	Secondary []Article `json:"secondary"`
	MidGrid   []Article `json:"midGrid"`
	Feed      []Article `json:"feed"`
}

type CategoryArticles struct {
	Category string    `json:"category"`
	All      bool      `json:"all"`
	Total    int       `json:"total"`
	Articles []Article `json:"articles"`
}

type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	YoutubeURL   string `json:"youtubeUrl"`
	YoutubeID    string `json:"youtubeId,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type SearchResult struct {
	Query    string    `json:"query"`
	Empty    bool      `json:"empty"`
	Articles []Article `json:"articles"`
	Videos   []Video   `json:"videos"`
}
