package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/innonews/internal/newsportal"
)

const adminCookie = "admin_session"

// requireAdmin rejects requests without a live admin session cookie.
func (h *NewsHandler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ck, err := c.Cookie(adminCookie)
		if err != nil || !h.manager.IsAdminSession(ck.Value) {
			h.log.Warn("admin session required", "path", c.Path(), "remote_addr", c.RealIP())
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "admin session required"})
		}
		return next(c)
	}
}

// Login handles POST /api/v1/admin/login
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.LoginRequest true "Password"
// @Success 204
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/admin/login [post]
func (h *NewsHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	token, err := h.manager.Login(req.Password)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     adminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	h.log.Info("admin logged in", "remote_addr", c.RealIP())

	return c.NoContent(http.StatusNoContent)
}

// Logout handles POST /api/v1/admin/logout
// @Summary Admin logout
// @Tags admin
// @Success 204
// @Router /api/v1/admin/logout [post]
func (h *NewsHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(adminCookie); err == nil {
		h.manager.Logout(ck.Value)
	}

	c.SetCookie(&http.Cookie{
		Name:   adminCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	return c.NoContent(http.StatusNoContent)
}

// AdminArticles handles GET /api/v1/admin/articles
// @Summary All articles in display order
// @Tags admin
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 401 {object} map[string]string
// @Router /api/v1/admin/articles [get]
func (h *NewsHandler) AdminArticles(c echo.Context) error {
	return c.JSON(http.StatusOK, NewArticles(h.manager.Articles()))
}

// PublishArticle handles POST /api/v1/admin/articles
// @Summary Publish an article
// @Description The new article becomes the lead story
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.ArticleRequest true "Article"
// @Success 201 {object} rest.Article
// @Failure 400 {object} rest.ValidationErrorResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/admin/articles [post]
func (h *NewsHandler) PublishArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	a, err := h.manager.PublishArticle(req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewArticle(a))
}

// EditArticle handles PUT /api/v1/admin/articles/:id
// @Summary Edit an article
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param body body rest.ArticleRequest true "Article"
// @Success 200 {object} rest.Article
// @Failure 400 {object} rest.ValidationErrorResponse
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [put]
func (h *NewsHandler) EditArticle(c echo.Context) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	a, err := h.manager.EditArticle(c.Param("id"), req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(a))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
// @Summary Delete an article
// @Tags admin
// @Param id path string true "Article ID"
// @Success 204
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [delete]
func (h *NewsHandler) DeleteArticle(c echo.Context) error {
	if err := h.manager.DeleteArticle(c.Param("id")); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MoveArticle handles POST /api/v1/admin/articles/:id/move
// @Summary Reorder an article
// @Description Swaps with the upper or lower neighbour, or moves to index when given
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param body body rest.MoveRequest true "Move"
// @Success 200 {array} rest.Article
// @Failure 400,401,404 {object} map[string]string
// @Router /api/v1/admin/articles/{id}/move [post]
func (h *NewsHandler) MoveArticle(c echo.Context) error {
	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	var (
		articles []newsportal.Article
		err      error
	)
	switch {
	case req.Index != nil:
		articles, err = h.manager.MoveArticleTo(c.Param("id"), *req.Index)
	case req.Direction == "up":
		articles, err = h.manager.MoveArticle(c.Param("id"), newsportal.Up)
	case req.Direction == "down":
		articles, err = h.manager.MoveArticle(c.Param("id"), newsportal.Down)
	default:
		return h.handleError(c, nil, http.StatusBadRequest, "direction must be up or down")
	}
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// OrphanedArticles handles GET /api/v1/admin/orphans
// @Summary Articles outside the menu
// @Description Articles whose category is not in the navigation menu and so cannot be browsed by category
// @Tags admin
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 401 {object} map[string]string
// @Router /api/v1/admin/orphans [get]
func (h *NewsHandler) OrphanedArticles(c echo.Context) error {
	return c.JSON(http.StatusOK, NewArticles(h.manager.OrphanedArticles()))
}

// AdminAds handles GET /api/v1/admin/ads
// @Summary Ads of every placement
// @Tags admin
// @Produce json
// @Param type query string false "Placement filter" Enums(sidebar, top, popup, bottom)
// @Success 200 {array} rest.Ad
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/admin/ads [get]
func (h *NewsHandler) AdminAds(c echo.Context) error {
	t := newsportal.AdType(c.QueryParam("type"))
	if t != "" && !t.Valid() {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid ad type")
	}

	return c.JSON(http.StatusOK, NewAds(h.manager.Ads(t)))
}

// CreateAd handles POST /api/v1/admin/ads
// @Summary Add an ad
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.AdRequest true "Ad"
// @Success 201 {object} rest.Ad
// @Failure 400 {object} rest.ValidationErrorResponse
// @Failure 401,409 {object} map[string]string
// @Router /api/v1/admin/ads [post]
func (h *NewsHandler) CreateAd(c echo.Context) error {
	var req AdRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	ad, err := h.manager.SaveAd("", req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewAd(ad))
}

// EditAd handles PUT /api/v1/admin/ads/:id
// @Summary Edit an ad
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Ad ID"
// @Param body body rest.AdRequest true "Ad"
// @Success 200 {object} rest.Ad
// @Failure 400 {object} rest.ValidationErrorResponse
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/ads/{id} [put]
func (h *NewsHandler) EditAd(c echo.Context) error {
	var req AdRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	ad, err := h.manager.SaveAd(c.Param("id"), req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewAd(ad))
}

// DeleteAd handles DELETE /api/v1/admin/ads/:id
// @Summary Delete an ad
// @Tags admin
// @Param id path string true "Ad ID"
// @Success 204
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/ads/{id} [delete]
func (h *NewsHandler) DeleteAd(c echo.Context) error {
	if err := h.manager.DeleteAd(c.Param("id")); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleAd handles POST /api/v1/admin/ads/:id/toggle
// @Summary Show or hide an ad
// @Tags admin
// @Produce json
// @Param id path string true "Ad ID"
// @Success 200 {object} rest.Ad
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/ads/{id}/toggle [post]
func (h *NewsHandler) ToggleAd(c echo.Context) error {
	ad, err := h.manager.ToggleAd(c.Param("id"))
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewAd(ad))
}

// Reports handles GET /api/v1/admin/reports
// @Summary Received tips, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} rest.Report
// @Failure 401 {object} map[string]string
// @Router /api/v1/admin/reports [get]
func (h *NewsHandler) Reports(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Reports(), NewReport))
}

// ChangePassword handles PUT /api/v1/admin/password
// @Summary Change the admin password
// @Tags admin
// @Accept json
// @Param body body rest.PasswordRequest true "Passwords"
// @Success 204
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/admin/password [put]
func (h *NewsHandler) ChangePassword(c echo.Context) error {
	var req PasswordRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	if err := h.manager.ChangePassword(req.Current, req.Next, req.Confirm); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateCategories handles PUT /api/v1/admin/categories
// @Summary Replace the navigation menu
// @Description Blank entries are dropped. Articles of removed categories stay reachable by id and search only.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.CategoriesRequest true "Menu"
// @Success 200 {array} string
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/admin/categories [put]
func (h *NewsHandler) UpdateCategories(c echo.Context) error {
	var req CategoriesRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	return c.JSON(http.StatusOK, h.manager.UpdateNavCategories(req.Categories))
}

// CreateVideo handles POST /api/v1/admin/videos
// @Summary Add a video
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.VideoRequest true "Video"
// @Success 201 {object} rest.Video
// @Failure 400 {object} rest.ValidationErrorResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/admin/videos [post]
func (h *NewsHandler) CreateVideo(c echo.Context) error {
	var req VideoRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	v, err := h.manager.SaveVideo("", req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusCreated, NewVideo(v))
}

// EditVideo handles PUT /api/v1/admin/videos/:id
// @Summary Edit a video
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param body body rest.VideoRequest true "Video"
// @Success 200 {object} rest.Video
// @Failure 400 {object} rest.ValidationErrorResponse
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/videos/{id} [put]
func (h *NewsHandler) EditVideo(c echo.Context) error {
	var req VideoRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	v, err := h.manager.SaveVideo(c.Param("id"), req.ToInput())
	if err != nil {
		return h.handleManagerError(c, err)
	}

	return c.JSON(http.StatusOK, NewVideo(v))
}

// DeleteVideo handles DELETE /api/v1/admin/videos/:id
// @Summary Delete a video
// @Tags admin
// @Param id path string true "Video ID"
// @Success 204
// @Failure 401,404 {object} map[string]string
// @Router /api/v1/admin/videos/{id} [delete]
func (h *NewsHandler) DeleteVideo(c echo.Context) error {
	if err := h.manager.DeleteVideo(c.Param("id")); err != nil {
		return h.handleManagerError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateReporters handles PUT /api/v1/admin/reporters
// @Summary Replace the reporter list
// @Description Entries without an id get one. Articles keep the ids of removed reporters.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body rest.ReportersRequest true "Reporters"
// @Success 200 {array} rest.Reporter
// @Failure 400,401 {object} map[string]string
// @Router /api/v1/admin/reporters [put]
func (h *NewsHandler) UpdateReporters(c echo.Context) error {
	var req ReportersRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	reporters := h.manager.UpdateReporters(req.ToReporters())
	return c.JSON(http.StatusOK, Map(reporters, NewReporter))
}

// AdminReporters handles GET /api/v1/admin/reporters
// @Summary Reporter list
// @Tags admin
// @Produce json
// @Success 200 {array} rest.Reporter
// @Failure 401 {object} map[string]string
// @Router /api/v1/admin/reporters [get]
func (h *NewsHandler) AdminReporters(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Reporters(), NewReporter))
}
