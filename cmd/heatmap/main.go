// Command heatmap renders a Codeberg activity graph to an SVG file.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"github.com/comitanigiacomo/activity-graph/internal/adapters/cache"
	"github.com/comitanigiacomo/activity-graph/internal/adapters/codeberg"
	"github.com/comitanigiacomo/activity-graph/internal/core/domain"
	"github.com/comitanigiacomo/activity-graph/internal/core/services"
)

type options struct {
	user     string
	theme    string
	out      string
	baseURL  string
	timeout  time.Duration
	timezone string
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("heatmap", "Render a Codeberg contribution heatmap as SVG.")

	app.Flag("user", "Codeberg username").Short('u').Required().StringVar(&opts.user)
	app.Flag("theme", "colour theme").Short('t').Default(domain.DefaultThemeKey).StringVar(&opts.theme)
	app.Flag("out", "output file (stdout when empty)").Short('o').StringVar(&opts.out)
	app.Flag("base-url", "Codeberg base URL").Envar("CODEBERG_BASE_URL").Default(codeberg.DefaultBaseURL).StringVar(&opts.baseURL)
	app.Flag("timeout", "upstream request timeout").Envar("UPSTREAM_TIMEOUT").Default(codeberg.DefaultTimeout.String()).DurationVar(&opts.timeout)
	app.Flag("timezone", "time zone used to place days").Envar("HEATMAP_TIMEZONE").Default("UTC").StringVar(&opts.timezone)

	return app
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var opts options
	if _, err := newApp(&opts).Parse(args); err != nil {
		return err
	}

	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", opts.timezone, err)
	}

	client := codeberg.NewClient(opts.baseURL, opts.timeout)
	fetcher := services.NewHeatmapService(client, cache.NewMemoryHeatmapCache(), domain.DefaultCacheTTL)
	status, body := services.NewGraphService(fetcher, loc).Render(ctx, opts.user, opts.theme)

	if err := write(opts.out, stdout, body); err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("render %s: status %d", opts.user, status)
	}
	return nil
}

func write(path string, stdout io.Writer, body string) error {
	if path == "" {
		_, err := io.WriteString(stdout, body)
		return err
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Printf("Wrote %s", path)
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}
