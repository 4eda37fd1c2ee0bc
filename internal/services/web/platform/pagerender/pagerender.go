// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/platform/httpx"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
	webtemplates "github.com/fromvivianmusic/fvm-web/internal/services/web/templates"
)

// Page describes one full-document response.
type Page struct {
	Meta       seo.PageMeta
	StatusCode int
	Body       templ.Component
}

// Renderer writes pages inside the site layout with published head tags.
type Renderer struct {
	Publisher seo.Publisher
	Logger    *log.Logger
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Write renders page for the request language. Output is buffered so a
// failing component never leaves a partial document on the wire.
func (rr Renderer) Write(w http.ResponseWriter, r *http.Request, page Page) {
	if w == nil {
		return
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	lang := webi18n.FromContext(ctx).Language()
	head := rr.Publisher.Publish(page.Meta, lang)
	pageContext := webtemplates.PageContext{}
	if r != nil && r.URL != nil {
		pageContext.CurrentPath = r.URL.Path
		pageContext.CurrentQuery = r.URL.RawQuery
	}

	var rendered bytes.Buffer
	if err := webtemplates.Layout(pageContext, head).Render(templ.WithChildren(ctx, body), &rendered); err != nil {
		rr.logf("render page failed path=%s err=%v", pageContext.CurrentPath, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(w, statusCode, rendered.Bytes()); err != nil {
		rr.logf("write page failed path=%s err=%v", pageContext.CurrentPath, err)
	}
}

// NotFound renders the not-found page with status 404, excluded from indexing.
func (rr Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	resolver := webi18n.FromContext(httpx.RequestContext(r))
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	rr.Write(w, r, Page{
		Meta: seo.PageMeta{
			Title:       resolver.Translate(webi18n.KeyMetaNotFoundTitle),
			Description: resolver.Translate(webi18n.KeyMetaNotFoundDescription),
			Path:        path,
			NoIndex:     true,
		},
		StatusCode: http.StatusNotFound,
		Body:       webtemplates.NotFound(),
	})
}

func (rr Renderer) logf(format string, args ...any) {
	if rr.Logger != nil {
		rr.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
