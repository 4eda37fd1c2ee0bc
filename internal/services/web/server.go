package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/fromvivianmusic/fvm-web/internal/platform/branding"
	"github.com/fromvivianmusic/fvm-web/internal/platform/i18n/catalog"
	"github.com/fromvivianmusic/fvm-web/internal/platform/timeouts"
	"github.com/fromvivianmusic/fvm-web/internal/services/shared/route"
	webapp "github.com/fromvivianmusic/fvm-web/internal/services/web/app"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/modules"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/httpx"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/observability"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/pagerender"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const otelOperation = "fvm-web"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// SiteURL is the public origin used for canonical links and the sitemap.
	SiteURL string
	Logger  *log.Logger
}

// Server hosts the site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root site handler from the embedded catalogs and posts.
func NewHandler(config Config) (http.Handler, error) {
	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	posts, err := content.LoadBlog()
	if err != nil {
		return nil, fmt.Errorf("load blog: %w", err)
	}
	return newHandler(config, bundle, posts)
}

func newHandler(config Config, bundle *catalog.Bundle, posts *content.Blog) (http.Handler, error) {
	if bundle == nil {
		return nil, errors.New("translation bundle is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	siteURL := strings.TrimSpace(config.SiteURL)
	if siteURL == "" {
		siteURL = branding.DefaultSiteURL
	}

	renderer := pagerender.Renderer{
		Publisher: seo.Publisher{SiteURL: siteURL, Logger: logger},
		Logger:    logger,
	}
	root, err := webapp.Compose(webapp.ComposeInput{
		Modules: modules.DefaultModules(modules.Dependencies{
			Renderer: renderer,
			Blog:     posts,
			SiteURL:  siteURL,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	handler := httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RequireRead(),
		route.TrailingSlash,
		webi18n.Middleware(bundle, logger),
	)
	return otelhttp.NewHandler(handler, otelOperation), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		ReadTimeout:       timeouts.Read,
		IdleTimeout:       timeouts.Idle,
	}
	if config.Logger != nil {
		httpServer.ErrorLog = config.Logger
	}
	return &Server{httpAddr: httpAddr, httpServer: httpServer}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
