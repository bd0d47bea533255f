package rpc

import "github.com/daniilsolovey/innonews/internal/newsportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func page[T any](list []T, limit, offset int) []T {
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
		Image:      newsportal.ArticleImage(a.Image),
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		ReporterID: a.ReporterID,
	}
}

func NewArticles(list []newsportal.Article) []Article {
	return Map(list, NewArticle)
}

func NewArticleDetail(d newsportal.ArticleDetail) ArticleDetail {
	detail := ArticleDetail{
		Article: NewArticle(d.Article),
		Byline: Byline{
			Found: d.Byline.Found,
			Email: d.Byline.Email(),
		},
	}
	if d.Byline.Found {
		detail.Byline.Name = d.Byline.Reporter.Name
		detail.Byline.Role = d.Byline.Reporter.Role
	}
	return detail
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
	}
	return home
}

func NewVideo(v newsportal.Video) Video {
	id, _ := newsportal.YouTubeID(v.YoutubeURL)
	return Video{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		YoutubeURL:   v.YoutubeURL,
		YoutubeID:    id,
		ThumbnailURL: newsportal.ThumbnailURL(v, newsportal.ThumbnailMaxRes),
	}
}

func NewVideos(list []newsportal.Video) []Video {
	return Map(list, NewVideo)
}

func NewSearchResult(r newsportal.SearchResult, limit, offset int) SearchResult {
	return SearchResult{
		Query:    r.Query,
		Empty:    r.Empty(),
		Articles: NewArticles(page(r.Articles, limit, offset)),
		Videos:   NewVideos(page(r.Videos, limit, offset)),
	}
}
