package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/innonews/internal/newsportal"
)

//go:generate zenrpc

// NewsService exposes the public site data over JSON-RPC.
type NewsService struct {
	zenrpc.Service
	manager *newsportal.Manager
}

func NewNewsService(manager *newsportal.Manager) *NewsService {
	return &NewsService{manager: manager}
}

func validWindow(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return zenrpc.NewStringError(400, "limit and offset must not be negative")
	}
	return nil
}

// Home returns the homepage bands: lead, secondary, mid grid and feed.
//
//zenrpc:return homepage layout
func (s *NewsService) Home(ctx context.Context) HomeLayout {
	return NewHomeLayout(s.manager.HomeLayout())
}

// Categories returns the navigation menu in order.
//
//zenrpc:return category names
func (s *NewsService) Categories(ctx context.Context) []string {
	return s.manager.Categories()
}

// ByCategory lists the articles of a category. The category 최신기사 lists everything.
//
//zenrpc:category category name
//zenrpc:limit=0 page size, 0 for all
//zenrpc:offset=0 items to skip
//zenrpc:return articles of the category
//zenrpc:400 limit and offset must not be negative
func (s *NewsService) ByCategory(ctx context.Context, category string, limit, offset *int) (*CategoryArticles, error) {
	if err := validWindow(*limit, *offset); err != nil {
		return nil, err
	}

	filter, articles := s.manager.ArticlesByCategory(category)

	return &CategoryArticles{
		Category: filter.Name(),
		All:      filter.All(),
		Total:    len(articles),
		Articles: NewArticles(page(articles, *limit, *offset)),
	}, nil
}

// ByID returns an article with its byline.
//
//zenrpc:id article id
//zenrpc:return article with byline
//zenrpc:400 id is required
//zenrpc:404 article not found
func (s *NewsService) ByID(ctx context.Context, id string) (*ArticleDetail, error) {
	if id == "" {
		return nil, zenrpc.NewStringError(400, "id is required")
	}

	detail := s.manager.ArticleByID(id)
	if detail == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	res := NewArticleDetail(*detail)
	return &res, nil
}

// Search matches query case-insensitively against articles and videos.
//
//zenrpc:query search query
//zenrpc:limit=0 page size per list, 0 for all
//zenrpc:offset=0 items to skip per list
//zenrpc:return matching articles and videos
//zenrpc:400 limit and offset must not be negative
func (s *NewsService) Search(ctx context.Context, query string, limit, offset *int) (*SearchResult, error) {
	if err := validWindow(*limit, *offset); err != nil {
		return nil, err
	}

	res := NewSearchResult(s.manager.Search(query), *limit, *offset)
	return &res, nil
}

// Videos returns every video in list order.
//
//zenrpc:return videos
func (s *NewsService) Videos(ctx context.Context) []Video {
	return NewVideos(s.manager.Videos())
}
