// Package web parses web service flags and launches the site server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/fromvivianmusic/fvm-web/internal/platform/branding"
	entrypoint "github.com/fromvivianmusic/fvm-web/internal/platform/cmd"
	"github.com/fromvivianmusic/fvm-web/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"WEB_HTTP_ADDR" envDefault:":8080"`
	SiteURL  string `env:"WEB_SITE_URL"`
}

// ParseConfig parses environment and flags into Config. Flags win over
// environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.HTTPAddr, "http-addr", "", "HTTP listen address (default :8080)")
	fs.StringVar(&cfg.SiteURL, "site-url", "", "Public site origin for canonical links and the sitemap")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = branding.DefaultSiteURL
	}
	return cfg, nil
}

// Run starts the site server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			SiteURL:  cfg.SiteURL,
			Logger:   log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
