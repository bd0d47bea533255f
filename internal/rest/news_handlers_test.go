package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/daniilsolovey/innonews/docs"
	"github.com/daniilsolovey/innonews/internal/newsportal"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, cfg newsportal.Config) *echo.Echo {
	t.Helper()

	clock := func() time.Time { return testNow }
	manager := newsportal.NewNewsManager(
		newsportal.NewStore(newsportal.DefaultState()),
		newsportal.NewPopups(newsportal.NewMemoryKV(), clock),
		cfg,
	).WithClock(clock)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNewsHandler(manager, logger, nil).RegisterRoutes(nil)
}

func do(t *testing.T, e *echo.Echo, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func cookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	require.Failf(t, "cookie not set", "cookie %q", name)
	return nil
}

func TestNewsHandler_Health(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNewsHandler_Home(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/api/v1/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	home := decode[HomeLayout](t, rec)
	require.NotNil(t, home.Lead)
	assert.Equal(t, "1", home.Lead.ID)
	assert.True(t, strings.HasSuffix(home.LeadExcerpt, "..."))
	require.Len(t, home.Secondary, 1)
	assert.Equal(t, "2", home.Secondary[0].ID)
	assert.NotNil(t, home.MidGrid)
	assert.Empty(t, home.Feed)
}

func TestNewsHandler_Categories(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, newsportal.DefaultNavCategories(), decode[[]string](t, rec))
}

func TestNewsHandler_ArticlesByCategory(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})
	path := func(name, query string) string {
		return "/api/v1/categories/" + url.PathEscape(name) + "/articles" + query
	}

	t.Run("LatestListsEverything", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, path(newsportal.LatestCategory, ""), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[CategoryArticles](t, rec)
		assert.True(t, res.All)
		assert.Equal(t, newsportal.LatestCategory, res.Category)
		assert.Equal(t, 2, res.Total)
		assert.Len(t, res.Articles, 2)
	})

	t.Run("NamedCategory", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, path("기술", ""), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[CategoryArticles](t, rec)
		assert.False(t, res.All)
		require.Len(t, res.Articles, 1)
		assert.Equal(t, "1", res.Articles[0].ID)
	})

	t.Run("EmptyCategoryIsEmptyList", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, path("스포츠", ""), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"articles":[]`)
	})

	t.Run("Pagination", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, path(newsportal.LatestCategory, "?limit=1&offset=1"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		res := decode[CategoryArticles](t, rec)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Articles, 1)
		assert.Equal(t, "2", res.Articles[0].ID)
	})

	t.Run("NegativeLimit", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, path("기술", "?limit=-1"), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNewsHandler_Article(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	t.Run("Found", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/articles/1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		d := decode[ArticleDetail](t, rec)
		assert.Equal(t, "1", d.Article.ID)
		assert.True(t, d.Byline.Found)
		assert.Equal(t, "김이노", d.Byline.Name)
		assert.Equal(t, newsportal.DefaultReporterEmail, d.Byline.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/articles/404", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"article not found"}`, rec.Body.String())
	})

	t.Run("BodyHTML", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/api/v1/articles/2/body", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
		assert.True(t, strings.HasPrefix(rec.Body.String(), `<div class="article-body">`))
	})
}

func TestNewsHandler_Search(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/api/v1/search?q="+url.QueryEscape("스마트 오피스"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[SearchResult](t, rec)
	assert.False(t, res.Empty)
	require.Len(t, res.Articles, 1)
	assert.Equal(t, "2", res.Articles[0].ID)
	assert.Empty(t, res.Videos)

	rec = do(t, e, http.MethodGet, "/api/v1/search?q=nothing-matches", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[SearchResult](t, rec)
	assert.True(t, res.Empty)

	rec = do(t, e, http.MethodGet, "/api/v1/search?q=a&offset=-3", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsHandler_Videos(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/api/v1/videos", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	videos := decode[[]Video](t, rec)
	require.Len(t, videos, 1)
	assert.Equal(t, "dQw4w9WgXcQ", videos[0].YoutubeID)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=0", videos[0].EmbedURL)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", videos[0].ThumbnailURL)

	rec = do(t, e, http.MethodGet, "/api/v1/videos/v1/description", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<a href="https://innonews.co.kr" target="_blank"`)

	rec = do(t, e, http.MethodGet, "/api/v1/videos/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewsHandler_Ad(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/api/v1/ads/top", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ad-top-1", decode[Ad](t, rec).ID)

	rec = do(t, e, http.MethodGet, "/api/v1/ads/bottom", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/ads/banner", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNewsHandler_Popups(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})

	rec := do(t, e, http.MethodGet, "/api/v1/popups", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	visitor := cookie(t, rec, visitorCookie)
	assert.Equal(t, []string{"ad-pop-1", "ad-pop-2"}, adIDs(decode[[]Ad](t, rec)))

	rec = do(t, e, http.MethodPost, "/api/v1/popups/ad-pop-1/dismiss", nil, visitor)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[DismissResult](t, rec)
	require.NotNil(t, res.Next)
	assert.Equal(t, "ad-pop-2", res.Next.ID)
	assert.False(t, res.Closed)

	rec = do(t, e, http.MethodGet, "/api/v1/popups", nil, visitor)
	assert.Equal(t, []string{"ad-pop-2"}, adIDs(decode[[]Ad](t, rec)))

	rec = do(t, e, http.MethodGet, "/api/v1/popups", nil)
	assert.Len(t, decode[[]Ad](t, rec), 2, "a new visitor sees every popup")

	rec = do(t, e, http.MethodPost, "/api/v1/popups/ad-pop-2/dismiss", DismissRequest{HideWeek: true}, visitor)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[DismissResult](t, rec)
	assert.True(t, res.Closed)
	assert.Nil(t, res.Next)

	rec = do(t, e, http.MethodGet, "/api/v1/popups", nil, visitor)
	assert.Empty(t, decode[[]Ad](t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/popups/ad-top-1/dismiss", nil, visitor)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func adIDs(ads []Ad) []string {
	ids := make([]string, len(ads))
	for i, a := range ads {
		ids[i] = a.ID
	}
	return ids
}

func TestNewsHandler_SubmitReport(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{UrgentMailbox: "ai@aag.co.kr", SiteName: "이노뉴스"})

	valid := ReportRequest{
		Name:    "제보자",
		Email:   "tip@example.com",
		Phone:   "010-0000-0000",
		Title:   "긴급",
		Content: "내용",
		Agree:   true,
	}

	t.Run("ConsentRequired", func(t *testing.T) {
		req := valid
		req.Agree = false

		rec := do(t, e, http.MethodPost, "/api/v1/reports", req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		res := decode[ValidationErrorResponse](t, rec)
		assert.Equal(t, []FieldError{{Field: "Agree", Rule: "required"}}, res.Fields)
	})

	t.Run("Plain", func(t *testing.T) {
		rec := do(t, e, http.MethodPost, "/api/v1/reports", valid)
		require.Equal(t, http.StatusCreated, rec.Code)
		res := decode[ReportReceipt](t, rec)
		assert.NotEmpty(t, res.Report.ID)
		assert.Empty(t, res.MailtoURL)
	})

	t.Run("UrgentMail", func(t *testing.T) {
		req := valid
		req.IsUrgent = true
		req.SendMail = true

		rec := do(t, e, http.MethodPost, "/api/v1/reports", req)
		require.Equal(t, http.StatusCreated, rec.Code)
		res := decode[ReportReceipt](t, rec)
		assert.True(t, strings.HasPrefix(res.MailtoURL, "mailto:ai@aag.co.kr?subject="))
	})

	t.Run("BadJSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", strings.NewReader("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNewsHandler_MetricsAndDocs(t *testing.T) {
	e := newTestEngine(t, newsportal.Config{})
	do(t, e, http.MethodGet, "/health", nil)

	rec := do(t, e, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `innonews_http_requests_total{method="GET",route="/health",status="200"} 1`)

	rec = do(t, e, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"swagger"`)
}
