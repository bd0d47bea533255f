package newsportal

import "time"

type ArticleInput struct {
	Title      string `validate:"required"`
	Category   string `validate:"required"`
	Content    string `validate:"required"`
	Image      string
	ReporterID string
}

type AdInput struct {
	Type      AdType `validate:"required,oneof=sidebar top popup bottom"`
	ImageURL  string `validate:"required"`
	LinkURL   string `validate:"required"`
	IsVisible *bool
}

type VideoInput struct {
	Title           string `validate:"required"`
	YoutubeURL      string `validate:"required"`
	Description     string
	ThumbnailType   ThumbnailType `validate:"omitempty,oneof=default image text"`
	CustomThumbnail string
	ThumbnailText   string
}

type ReportInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Title    string `validate:"required"`
	Content  string `validate:"required"`
	FileName string
	Agree    bool `validate:"required"`
	IsUrgent bool
	// SendMail is the visitor's answer to "open the mail composer" for urgent tips.
	SendMail bool
}

func NewArticle(id string, in ArticleInput, now time.Time) Article {
	return Article{
		ID:         id,
		Title:      in.Title,
		Category:   in.Category,
		Content:    in.Content,
		Image:      in.Image,
		CreatedAt:  now,
		UpdatedAt:  now,
		ReporterID: in.ReporterID,
	}
}

// MergeArticle applies an edit form to a, keeping its id and creation time.
func MergeArticle(a Article, in ArticleInput, now time.Time) Article {
	a.Title = in.Title
	a.Category = in.Category
	a.Content = in.Content
	a.Image = in.Image
	a.ReporterID = in.ReporterID
	a.UpdatedAt = now
	return a
}

func NewAd(id string, in AdInput) AdConfig {
	visible := true
	if in.IsVisible != nil {
		visible = *in.IsVisible
	}

	return AdConfig{
		ID:        id,
		Type:      in.Type,
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		IsVisible: visible,
	}
}

// MergeAd applies an edit to ad. The placement of an existing ad never changes.
func MergeAd(ad AdConfig, in AdInput) AdConfig {
	ad.ImageURL = in.ImageURL
	ad.LinkURL = in.LinkURL
	if in.IsVisible != nil {
		ad.IsVisible = *in.IsVisible
	}
	return ad
}

func NewVideo(id string, in VideoInput) Video {
	return MergeVideo(Video{ID: id}, in)
}

func MergeVideo(v Video, in VideoInput) Video {
	v.Title = in.Title
	v.Description = in.Description
	v.YoutubeURL = in.YoutubeURL
	v.ThumbnailType = in.ThumbnailType
	if v.ThumbnailType == "" {
		v.ThumbnailType = ThumbnailDefault
	}
	v.CustomThumbnail = in.CustomThumbnail
	v.ThumbnailText = in.ThumbnailText
	return v
}

func NewReport(id string, in ReportInput, now time.Time) Report {
	return Report{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Title:       in.Title,
		Content:     in.Content,
		FileName:    in.FileName,
		IsUrgent:    in.IsUrgent,
		SubmittedAt: now,
	}
}
