package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
	"github.com/comitanigiacomo/activity-graph/internal/core/render"
)

const invalidUsernameMessage = "Missing or invalid ?user= parameter"

// GraphService is the single entry point used by every adapter: it validates
// the username, fetches, builds the grid and always returns an SVG body.
type GraphService struct {
	fetcher domain.HeatmapSource
	loc     *time.Location
	now     func() time.Time
}

func NewGraphService(fetcher domain.HeatmapSource, loc *time.Location) *GraphService {
	if loc == nil {
		loc = time.UTC
	}
	return &GraphService{
		fetcher: fetcher,
		loc:     loc,
		now:     time.Now,
	}
}

func (s *GraphService) WithClock(now func() time.Time) *GraphService {
	s.now = now
	return s
}

// Render returns the HTTP status and SVG document for username drawn with the
// theme registered under themeKey.
func (s *GraphService) Render(ctx context.Context, username, themeKey string) (int, string) {
	theme, _ := domain.LookupTheme(themeKey)

	if err := domain.ValidateUsername(username); err != nil {
		return http.StatusBadRequest, render.RenderError(invalidUsernameMessage, theme)
	}

	records, err := s.fetcher.FetchHeatmap(ctx, username)
	if err != nil {
		status, message := describeFetchError(username, err)
		log.Printf("[UPSTREAM] Heatmap for %s failed (%d): %v", username, status, err)
		return status, render.RenderError(message, theme)
	}

	grid := BuildGrid(records, s.now().In(s.loc))
	return http.StatusOK, render.RenderImage(username, grid, theme)
}

func describeFetchError(username string, err error) (int, string) {
	var upstream *domain.UpstreamError
	var network *domain.NetworkError

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, fmt.Sprintf("User %q not found on Codeberg", username)
	case errors.As(err, &upstream):
		return http.StatusBadGateway, fmt.Sprintf("Codeberg API error: %d", upstream.StatusCode)
	case errors.As(err, &network):
		return http.StatusBadGateway, "Could not reach Codeberg, please try again later"
	default:
		return http.StatusBadGateway, "Failed to load activity"
	}
}

// RenderMessage draws an error card with message in the requested theme.
func (s *GraphService) RenderMessage(themeKey, message string) string {
	theme, _ := domain.LookupTheme(themeKey)
	return render.RenderError(message, theme)
}
