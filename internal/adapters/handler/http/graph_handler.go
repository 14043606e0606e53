package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
	"github.com/comitanigiacomo/activity-graph/internal/core/services"
)

const (
	svgContentType   = "image/svg+xml"
	svgCacheControl  = "public, max-age=3600, stale-while-revalidate=7200"
	themeQueryParam  = "theme"
	legacyUserParam  = "user"
	usernamePathPart = "username"
)

type GraphHandler struct {
	svc *services.GraphService
}

func NewGraphHandler(svc *services.GraphService) *GraphHandler {
	return &GraphHandler{svc: svc}
}

func (h *GraphHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/activity", h.GetActivity)

	api := r.Group("/api/v1")
	{
		api.GET("/users/:username/activity.svg", h.GetUserActivity)
		api.GET("/themes", h.ListThemes)
	}
}

// GetActivity serves /activity?user=NAME&theme=KEY.
func (h *GraphHandler) GetActivity(c *gin.Context) {
	h.render(c, c.Query(legacyUserParam))
}

func (h *GraphHandler) GetUserActivity(c *gin.Context) {
	h.render(c, c.Param(usernamePathPart))
}

func (h *GraphHandler) render(c *gin.Context, username string) {
	status, body := h.svc.Render(c.Request.Context(), username, c.Query(themeQueryParam))

	c.Header("Cache-Control", svgCacheControl)
	c.Data(status, svgContentType, []byte(body))
}

// RejectRateLimited answers throttled clients with an SVG so embedded images
// still show a readable card.
func (h *GraphHandler) RejectRateLimited(c *gin.Context, retryIn time.Duration) {
	body := h.svc.RenderMessage(c.Query(themeQueryParam),
		fmt.Sprintf("Too many requests, retry in %ds", int(retryIn.Seconds())))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusTooManyRequests, svgContentType, []byte(body))
}

func (h *GraphHandler) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"themes":  domain.ThemeKeys(),
		"default": domain.DefaultThemeKey,
	})
}
