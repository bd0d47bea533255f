package newsportal

import "time"

type AdType string

const (
	AdSidebar AdType = "sidebar"
	AdTop     AdType = "top"
	AdPopup   AdType = "popup"
	AdBottom  AdType = "bottom"
)

// Valid reports whether t is one of the known ad placements.
func (t AdType) Valid() bool {
	switch t {
	case AdSidebar, AdTop, AdPopup, AdBottom:
		return true
	}
	return false
}

type ThumbnailType string

const (
	ThumbnailDefault ThumbnailType = "default"
	ThumbnailImage   ThumbnailType = "image"
	ThumbnailText    ThumbnailType = "text"
)

// Article is a published story. Its position in the store list is its display order.
type Article struct {
	ID         string
	Title      string
	Category   string
	Content    string
	Image      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ReporterID string
}

func (a Article) RecordID() string { return a.ID }

type AdConfig struct {
	ID        string
	Type      AdType
	ImageURL  string
	LinkURL   string
	IsVisible bool
}

func (a AdConfig) RecordID() string { return a.ID }

type Reporter struct {
	ID    string
	Name  string
	Role  string
	Photo string
	Email string
}

func (r Reporter) RecordID() string { return r.ID }

// Report is a visitor tip submission. Reports are append-only.
type Report struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Title       string
	Content     string
	FileName    string
	IsUrgent    bool
	SubmittedAt time.Time
}

func (r Report) RecordID() string { return r.ID }

type Video struct {
	ID              string
	Title           string
	Description     string
	YoutubeURL      string
	ThumbnailType   ThumbnailType
	CustomThumbnail string
	ThumbnailText   string
}

func (v Video) RecordID() string { return v.ID }

// State is a point-in-time copy of every collection held by the Store.
type State struct {
	Articles      []Article
	Videos        []Video
	Ads           []AdConfig
	Reporters     []Reporter
	Reports       []Report
	NavCategories []string
	AdminPassword string
	IsAdmin       bool
}
