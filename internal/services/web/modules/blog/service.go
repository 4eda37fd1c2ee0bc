package blog

import (
	"github.com/fromvivianmusic/fvm-web/internal/services/web/content"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/seo"
)

type service struct {
	posts *content.Blog
}

func newService(posts *content.Blog) service {
	return service{posts: posts}
}

func (s service) list() []content.Post {
	return s.posts.Posts()
}

func (s service) post(slug string) (content.Post, bool) {
	return s.posts.Post(slug)
}

func (service) indexMeta(resolver *webi18n.Resolver) seo.PageMeta {
	return seo.PageMeta{
		Title:       resolver.Translate(webi18n.KeyMetaBlogTitle),
		Description: resolver.Translate(webi18n.KeyMetaBlogDescription),
		Path:        routepath.Blog,
	}
}

func (service) postMeta(resolver *webi18n.Resolver, post content.Post) seo.PageMeta {
	lang := resolver.Language()
	return seo.PageMeta{
		Title:       post.Title.Get(lang),
		Description: post.Summary.Get(lang),
		Path:        routepath.BlogPost(post.Slug),
	}
}
