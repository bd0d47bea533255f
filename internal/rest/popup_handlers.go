package rest

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	visitorCookie    = "visitor"
	visitorCookieTTL = 365 * 24 * time.Hour
)

// visitorID returns the visitor cookie value, issuing a new id when the
// cookie is missing or not a uuid.
func (h *NewsHandler) visitorID(c echo.Context) string {
	if ck, err := c.Cookie(visitorCookie); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			return ck.Value
		}
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     visitorCookie,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// Popups handles GET /api/v1/popups
// @Summary Popups to show
// @Description Visible popup ads the visitor has not suppressed, in display order
// @Tags popups
// @Produce json
// @Success 200 {array} rest.Ad
// @Failure 500 {object} map[string]string
// @Router /api/v1/popups [get]
func (h *NewsHandler) Popups(c echo.Context) error {
	ads, err := h.manager.Popups(c.Request().Context(), h.visitorID(c))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, NewAds(ads))
}

// DismissPopup handles POST /api/v1/popups/:id/dismiss
// @Summary Close a popup
// @Description Hides the popup for 24 hours and returns the next one, or hides every popup for 7 days when hideWeek is set
// @Tags popups
// @Accept json
// @Produce json
// @Param id path string true "Popup ad ID"
// @Param body body rest.DismissRequest false "Dismiss options"
// @Success 200 {object} rest.DismissResult
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/popups/{id}/dismiss [post]
func (h *NewsHandler) DismissPopup(c echo.Context) error {
	var req DismissRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	res, err := h.manager.DismissPopup(c.Request().Context(), h.visitorID(c), c.Param("id"), req.HideWeek)
	if err != nil {
		return h.handleManagerError(c, err)
	}

	h.metrics.popupDismissed(req.HideWeek)
	return c.JSON(http.StatusOK, NewDismissResult(res))
}
