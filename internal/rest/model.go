package rest

import "time"

type Article struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	Image      string    `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	ReporterID string    `json:"reporterId"`
}

type Reporter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Photo string `json:"photo"`
	Email string `json:"email,omitempty"`
}

type Byline struct {
	Found bool   `json:"found"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Photo string `json:"photo,omitempty"`
	Email string `json:"email"`
}

type ArticleDetail struct {
	Article Article `json:"article"`
	Byline  Byline  `json:"byline"`
}

type HomeLayout struct {
	Lead        *Article  `json:"lead"`
	LeadExcerpt string    `json:"leadExcerpt,omitempty"`
	Secondary   []Article `json:"secondary"`
	MidGrid     []Article `json:"midGrid"`
	Feed        []Article `json:"feed"`
}

type CategoryArticles struct {
	Category string    `json:"category"`
	All      bool      `json:"all"`
	Total    int       `json:"total"`
	Articles []Article `json:"articles"`
}

type Video struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	YoutubeURL      string `json:"youtubeUrl"`
	YoutubeID       string `json:"youtubeId,omitempty"`
	EmbedURL        string `json:"embedUrl,omitempty"`
	ThumbnailType   string `json:"thumbnailType"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	CustomThumbnail string `json:"customThumbnail,omitempty"`
	ThumbnailText   string `json:"thumbnailText,omitempty"`
}

type Ad struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	ImageURL  string `json:"imageUrl"`
	LinkURL   string `json:"linkUrl"`
	IsVisible bool   `json:"isVisible"`
}

type SearchResult struct {
	Query         string    `json:"query"`
	Empty         bool      `json:"empty"`
	TotalArticles int       `json:"totalArticles"`
	TotalVideos   int       `json:"totalVideos"`
	Articles      []Article `json:"articles"`
	Videos        []Video   `json:"videos"`
}

type DismissResult struct {
	Next   *Ad  `json:"next"`
	Closed bool `json:"closed"`
}

type Report struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	FileName    string    `json:"fileName,omitempty"`
	IsUrgent    bool      `json:"isUrgent"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type ReportReceipt struct {
	Report    Report `json:"report"`
	MailtoURL string `json:"mailtoUrl,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ListRequest is the limit/offset window for list endpoints. Limit 0 returns
// everything.
type ListRequest struct {
	Limit  int
	Offset int
}

type ArticleRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	Content    string `json:"content"`
	Image      string `json:"image"`
	ReporterID string `json:"reporterId"`
}

type MoveRequest struct {
	// Direction is "up" or "down". Ignored when Index is set.
	Direction string `json:"direction"`
	Index     *int   `json:"index"`
}

type AdRequest struct {
	Type      string `json:"type"`
	ImageURL  string `json:"imageUrl"`
	LinkURL   string `json:"linkUrl"`
	IsVisible *bool  `json:"isVisible"`
}

type VideoRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	YoutubeURL      string `json:"youtubeUrl"`
	ThumbnailType   string `json:"thumbnailType"`
	CustomThumbnail string `json:"customThumbnail"`
	ThumbnailText   string `json:"thumbnailText"`
}

type ReportRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	FileName string `json:"fileName"`
	Agree    bool   `json:"agree"`
	IsUrgent bool   `json:"isUrgent"`
	SendMail bool   `json:"sendMail"`
}

type DismissRequest struct {
	HideWeek bool `json:"hideWeek"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type PasswordRequest struct {
	Current string `json:"current"`
	Next    string `json:"next"`
	Confirm string `json:"confirm"`
}

type CategoriesRequest struct {
	Categories []string `json:"categories"`
}

type ReportersRequest struct {
	Reporters []Reporter `json:"reporters"`
}
