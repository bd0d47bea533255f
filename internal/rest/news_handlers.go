package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	"github.com/daniilsolovey/innonews/internal/newsportal"
	"github.com/daniilsolovey/innonews/internal/render"
)

type NewsHandler struct {
	manager *newsportal.Manager
	log     *slog.Logger
	metrics *Metrics
}

func NewNewsHandler(manager *newsportal.Manager, log *slog.Logger, metrics *Metrics) *NewsHandler {
	if metrics == nil {
		metrics = NewMetrics()
	}

	return &NewsHandler{
		manager: manager,
		log:     log,
		metrics: metrics,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// handleManagerError maps Manager errors to responses.
func (h *NewsHandler) handleManagerError(c echo.Context, err error) error {
	var ve *newsportal.ValidationError
	switch {
	case errors.As(err, &ve):
		h.log.Debug("validation failed", "error", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: NewFieldErrors(ve.Fields),
		})
	case errors.Is(err, newsportal.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "not found")
	case errors.Is(err, newsportal.ErrAdLimit):
		return h.handleError(c, err, http.StatusConflict, "ad limit reached for this placement")
	case errors.Is(err, newsportal.ErrWrongPassword):
		return h.handleError(c, err, http.StatusUnauthorized, "wrong password")
	case errors.Is(err, newsportal.ErrPasswordMismatch):
		return h.handleError(c, err, http.StatusBadRequest, "password confirmation does not match")
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

func (h *NewsHandler) listRequest(c echo.Context) (ListRequest, error) {
	var req ListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return req, err
	}
	if req.Limit < 0 || req.Offset < 0 {
		return req, fmt.Errorf("limit and offset must not be negative: limit=%d, offset=%d", req.Limit, req.Offset)
	}
	return req, nil
}

// Health handles GET /health
func (h *NewsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Home handles GET /api/v1/home
// @Summary Homepage layout
// @Description Splits the ordered article list into lead, secondary (1-3), mid grid (4-6) and feed (7+)
// @Tags articles
// @Produce json
// @Success 200 {object} rest.HomeLayout
// @Router /api/v1/home [get]
func (h *NewsHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, NewHomeLayout(h.manager.HomeLayout()))
}

// Categories handles GET /api/v1/categories
// @Summary Navigation menu
// @Description Returns the configured categories in menu order
// @Tags categories
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/categories [get]
func (h *NewsHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manager.Categories())
}

// ArticlesByCategory handles GET /api/v1/categories/:name/articles
// @Summary Articles of a category
// @Description Lists articles whose category equals name exactly. The name 최신기사 lists every article.
// @Tags categories
// @Produce json
// @Param name path string true "Category name"
// @Param limit query int false "Page size, 0 for all"
// @Param offset query int false "Items to skip"
// @Success 200 {object} rest.CategoryArticles
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories/{name}/articles [get]
func (h *NewsHandler) ArticlesByCategory(c echo.Context) error {
	req, err := h.listRequest(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category")
	}

	filter, articles := h.manager.ArticlesByCategory(name)

	return c.JSON(http.StatusOK, CategoryArticles{
		Category: filter.Name(),
		All:      filter.All(),
		Total:    len(articles),
		Articles: NewArticles(window(articles, req.Limit, req.Offset)),
	})
}

// ArticleByID handles GET /api/v1/articles/:id
// @Summary Article page
// @Description Returns the article with its reporter byline
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.ArticleDetail
// @Failure 404 {object} map[string]string
// @Router /api/v1/articles/{id} [get]
func (h *NewsHandler) ArticleByID(c echo.Context) error {
	detail := h.manager.ArticleByID(c.Param("id"))
	if detail == nil {
		return h.handleError(c, nil, http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, NewArticleDetail(*detail))
}

// ArticleBody handles GET /api/v1/articles/:id/body
// @Summary Article body as HTML
// @Description Renders the article content with [IMG:url] markers replaced by images
// @Tags articles
// @Produce html
// @Param id path string true "Article ID"
// @Success 200 {string} string
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/articles/{id}/body [get]
func (h *NewsHandler) ArticleBody(c echo.Context) error {
	detail := h.manager.ArticleByID(c.Param("id"))
	if detail == nil {
		return h.handleError(c, nil, http.StatusNotFound, "article not found")
	}

	html, err := render.String(render.ArticleBody(detail.Article.Content))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTML(http.StatusOK, html)
}

// Search handles GET /api/v1/search
// @Summary Search articles and videos
// @Description Case-insensitive substring search over article title/content and video title/description
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Param limit query int false "Page size per list, 0 for all"
// @Param offset query int false "Items to skip per list"
// @Success 200 {object} rest.SearchResult
// @Failure 400 {object} map[string]string
// @Router /api/v1/search [get]
func (h *NewsHandler) Search(c echo.Context) error {
	req, err := h.listRequest(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	result := h.manager.Search(c.QueryParam("q"))
	return c.JSON(http.StatusOK, NewSearchResult(result, req))
}

// Videos handles GET /api/v1/videos
// @Summary Video list
// @Tags videos
// @Produce json
// @Success 200 {array} rest.Video
// @Router /api/v1/videos [get]
func (h *NewsHandler) Videos(c echo.Context) error {
	return c.JSON(http.StatusOK, NewVideos(h.manager.Videos()))
}

// VideoByID handles GET /api/v1/videos/:id
// @Summary Video page
// @Tags videos
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} rest.Video
// @Failure 404 {object} map[string]string
// @Router /api/v1/videos/{id} [get]
func (h *NewsHandler) VideoByID(c echo.Context) error {
	v := h.manager.VideoByID(c.Param("id"))
	if v == nil {
		return h.handleError(c, nil, http.StatusNotFound, "video not found")
	}

	return c.JSON(http.StatusOK, NewVideo(*v))
}

// VideoDescription handles GET /api/v1/videos/:id/description
// @Summary Video description as HTML
// @Description Renders the description with URLs turned into links
// @Tags videos
// @Produce html
// @Param id path string true "Video ID"
// @Success 200 {string} string
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/videos/{id}/description [get]
func (h *NewsHandler) VideoDescription(c echo.Context) error {
	v := h.manager.VideoByID(c.Param("id"))
	if v == nil {
		return h.handleError(c, nil, http.StatusNotFound, "video not found")
	}

	html, err := render.String(render.VideoDescription(v.Description))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTML(http.StatusOK, html)
}

// Ad handles GET /api/v1/ads/:type
// @Summary Banner for a placement
// @Description Picks one visible ad of the placement at random
// @Tags ads
// @Produce json
// @Param type path string true "Placement" Enums(sidebar, top, popup, bottom)
// @Success 200 {object} rest.Ad
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/ads/{type} [get]
func (h *NewsHandler) Ad(c echo.Context) error {
	t := newsportal.AdType(c.Param("type"))
	if !t.Valid() {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid ad type")
	}

	ad, ok := h.manager.Ad(t)
	if !ok {
		return h.handleError(c, nil, http.StatusNotFound, "no visible ad")
	}

	return c.JSON(http.StatusOK, NewAd(ad))
}

// SubmitReport handles POST /api/v1/reports
// @Summary Submit a tip
// @Description Stores a visitor tip. Urgent tips with sendMail get a mailto link for the newsroom mailbox.
// @Tags reports
// @Accept json
// @Produce json
// @Param report body rest.ReportRequest true "Tip"
// @Success 201 {object} rest.ReportReceipt
// @Failure 400 {object} rest.ValidationErrorResponse
// @Router /api/v1/reports [post]
func (h *NewsHandler) SubmitReport(c echo.Context) error {
	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	receipt, err := h.manager.SubmitReport(req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	h.metrics.reportAccepted(receipt.Report.IsUrgent)
	h.log.Info("report submitted", "id", receipt.Report.ID, "urgent", receipt.Report.IsUrgent)

	return c.JSON(http.StatusCreated, NewReportReceipt(receipt))
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *NewsHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger doc unavailable")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
