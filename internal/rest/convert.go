package rest

import (
	"github.com/daniilsolovey/innonews/internal/newsportal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

// window applies a limit/offset to list. Limit 0 means no limit.
func window[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func NewArticle(a newsportal.Article) Article {
	return Article{
		ID:         a.ID,
		Title:      a.Title,
		Category:   a.Category,
		Content:    a.Content,
		Summary:    newsportal.StripImageMarkers(a.Content),
		Image:      newsportal.ArticleImage(a.Image),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		ReporterID: a.ReporterID,
	}
}

func NewArticles(list []newsportal.Article) []Article {
	return Map(list, NewArticle)
}

func NewReporter(r newsportal.Reporter) Reporter {
	return Reporter{
		ID:    r.ID,
		Name:  r.Name,
		Role:  r.Role,
		Photo: r.Photo,
		Email: r.Email,
	}
}

func NewByline(b newsportal.Byline) Byline {
	byline := Byline{
		Found: b.Found,
		Email: b.Email(),
	}
	if b.Found {
		byline.Name = b.Reporter.Name
		byline.Role = b.Reporter.Role
		byline.Photo = b.Reporter.Photo
	}
	return byline
}

func NewArticleDetail(d newsportal.ArticleDetail) ArticleDetail {
	return ArticleDetail{
		Article: NewArticle(d.Article),
		Byline:  NewByline(d.Byline),
	}
}

func NewHomeLayout(l newsportal.HomeLayout) HomeLayout {
	home := HomeLayout{
		Secondary: NewArticles(l.Secondary),
		MidGrid:   NewArticles(l.MidGrid),
		Feed:      NewArticles(l.Feed),
	}
	if l.Lead != nil {
		lead := NewArticle(*l.Lead)
		home.Lead = &lead
		home.LeadExcerpt = newsportal.LeadExcerpt(lead.Summary)
	}
	return home
}

func newVideo(quality string) func(newsportal.Video) Video {
	return func(v newsportal.Video) Video {
		video := Video{
			ID:              v.ID,
			Title:           v.Title,
			Description:     v.Description,
			YoutubeURL:      v.YoutubeURL,
			ThumbnailType:   string(v.ThumbnailType),
			ThumbnailURL:    newsportal.ThumbnailURL(v, quality),
			CustomThumbnail: v.CustomThumbnail,
			ThumbnailText:   v.ThumbnailText,
		}
		if id, ok := newsportal.YouTubeID(v.YoutubeURL); ok {
			video.YoutubeID = id
		}
		if embed, ok := newsportal.EmbedURL(v); ok {
			video.EmbedURL = embed
		}
		return video
	}
}

func NewVideo(v newsportal.Video) Video {
	return newVideo(newsportal.ThumbnailMaxRes)(v)
}

func NewVideos(list []newsportal.Video) []Video {
	return Map(list, NewVideo)
}

func NewAd(a newsportal.AdConfig) Ad {
	return Ad{
		ID:        a.ID,
		Type:      string(a.Type),
		ImageURL:  a.ImageURL,
		LinkURL:   a.LinkURL,
		IsVisible: a.IsVisible,
	}
}

func NewAds(list []newsportal.AdConfig) []Ad {
	return Map(list, NewAd)
}

func NewSearchResult(r newsportal.SearchResult, req ListRequest) SearchResult {
	return SearchResult{
		Query:         r.Query,
		Empty:         r.Empty(),
		TotalArticles: len(r.Articles),
		TotalVideos:   len(r.Videos),
		Articles:      NewArticles(window(r.Articles, req.Limit, req.Offset)),
		Videos:        Map(window(r.Videos, req.Limit, req.Offset), newVideo(newsportal.ThumbnailHQ)),
	}
}

func NewDismissResult(r newsportal.DismissResult) DismissResult {
	res := DismissResult{Closed: r.Closed}
	if r.Next != nil {
		next := NewAd(*r.Next)
		res.Next = &next
	}
	return res
}

func NewReport(r newsportal.Report) Report {
	return Report{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Title:       r.Title,
		Content:     r.Content,
		FileName:    r.FileName,
		IsUrgent:    r.IsUrgent,
		SubmittedAt: r.SubmittedAt,
	}
}

func NewReportReceipt(r newsportal.ReportReceipt) ReportReceipt {
	return ReportReceipt{
		Report:    NewReport(r.Report),
		MailtoURL: r.MailtoURL,
	}
}

func NewFieldErrors(list []newsportal.FieldError) []FieldError {
	return Map(list, func(f newsportal.FieldError) FieldError {
		return FieldError{Field: f.Field, Rule: f.Rule}
	})
}

func (r ArticleRequest) ToInput() newsportal.ArticleInput {
	return newsportal.ArticleInput{
		Title:      r.Title,
		Category:   r.Category,
		Content:    r.Content,
		Image:      r.Image,
		ReporterID: r.ReporterID,
	}
}

func (r AdRequest) ToInput() newsportal.AdInput {
	return newsportal.AdInput{
		Type:      newsportal.AdType(r.Type),
		ImageURL:  r.ImageURL,
		LinkURL:   r.LinkURL,
		IsVisible: r.IsVisible,
	}
}

func (r VideoRequest) ToInput() newsportal.VideoInput {
	return newsportal.VideoInput{
		Title:           r.Title,
		Description:     r.Description,
		YoutubeURL:      r.YoutubeURL,
		ThumbnailType:   newsportal.ThumbnailType(r.ThumbnailType),
		CustomThumbnail: r.CustomThumbnail,
		ThumbnailText:   r.ThumbnailText,
	}
}

func (r ReportRequest) ToInput() newsportal.ReportInput {
	return newsportal.ReportInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Title:    r.Title,
		Content:  r.Content,
		FileName: r.FileName,
		Agree:    r.Agree,
		IsUrgent: r.IsUrgent,
		SendMail: r.SendMail,
	}
}

func (r ReportersRequest) ToReporters() []newsportal.Reporter {
	return Map(r.Reporters, func(rep Reporter) newsportal.Reporter {
		return newsportal.Reporter{
			ID:    rep.ID,
			Name:  rep.Name,
			Role:  rep.Role,
			Photo: rep.Photo,
			Email: rep.Email,
		}
	})
}
