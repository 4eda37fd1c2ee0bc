package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	platformi18n "github.com/fromvivianmusic/fvm-web/internal/platform/i18n"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// PostDateLayout is the front matter date format.
const PostDateLayout = "2006-01-02"

//go:embed posts/*/*.md
var embeddedPostsFS embed.FS

// Post is one blog article in both site languages.
type Post struct {
	Slug     string
	Date     time.Time
	Title    Text
	Summary  Text
	Category Text
	// Body holds rendered HTML per language.
	Body Text
}

// Blog is the immutable set of posts loaded at startup.
type Blog struct {
	posts  []Post
	bySlug map[string]int
}

type postFrontMatter struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Category string `yaml:"category"`
	Date     string `yaml:"date"`
	Slug     string `yaml:"slug"`
}

type postVariant struct {
	meta postFrontMatter
	date time.Time
	html string
}

// LoadBlog loads the posts embedded in this package.
func LoadBlog() (*Blog, error) {
	return LoadBlogFromFS(embeddedPostsFS)
}

// LoadBlogFromFS loads posts laid out as posts/<lang>/<slug>.md.
//
// Every slug must be written in every supported language and carry the same
// date in each.
func LoadBlogFromFS(postsFS fs.FS) (*Blog, error) {
	paths, err := fs.Glob(postsFS, "posts/*/*.md")
	if err != nil {
		return nil, fmt.Errorf("glob blog posts: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no blog posts found")
	}
	sort.Strings(paths)

	markdown := newMarkdown()
	variants := map[string]map[platformi18n.Language]postVariant{}
	for _, p := range paths {
		lang, ok := platformi18n.ParseLanguage(path.Base(path.Dir(p)))
		if !ok {
			return nil, fmt.Errorf("blog post %s: unsupported language directory", p)
		}
		data, err := fs.ReadFile(postsFS, p)
		if err != nil {
			return nil, fmt.Errorf("read blog post %s: %w", p, err)
		}
		variant, err := parsePost(markdown, data)
		if err != nil {
			return nil, fmt.Errorf("blog post %s: %w", p, err)
		}
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); variant.meta.Slug != want {
			return nil, fmt.Errorf("blog post %s: slug %q must match file name %q", p, variant.meta.Slug, want)
		}
		if variants[variant.meta.Slug] == nil {
			variants[variant.meta.Slug] = map[platformi18n.Language]postVariant{}
		}
		variants[variant.meta.Slug][lang] = variant
	}

	blog := &Blog{bySlug: map[string]int{}}
	for slug, byLang := range variants {
		post, err := mergeVariants(slug, byLang)
		if err != nil {
			return nil, err
		}
		blog.posts = append(blog.posts, post)
	}
	sort.Slice(blog.posts, func(i, j int) bool {
		if !blog.posts[i].Date.Equal(blog.posts[j].Date) {
			return blog.posts[i].Date.After(blog.posts[j].Date)
		}
		return blog.posts[i].Slug < blog.posts[j].Slug
	})
	for i, post := range blog.posts {
		blog.bySlug[post.Slug] = i
	}
	return blog, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
}

func parsePost(markdown goldmark.Markdown, data []byte) (postVariant, error) {
	var meta postFrontMatter
	body, err := frontmatter.MustParse(bytes.NewReader(data), &meta)
	if err != nil {
		return postVariant{}, fmt.Errorf("parse front matter: %w", err)
	}
	meta.Slug = strings.TrimSpace(meta.Slug)
	if meta.Slug == "" {
		return postVariant{}, errors.New("slug is required")
	}
	if strings.TrimSpace(meta.Title) == "" {
		return postVariant{}, errors.New("title is required")
	}
	date, err := time.Parse(PostDateLayout, strings.TrimSpace(meta.Date))
	if err != nil {
		return postVariant{}, fmt.Errorf("parse date %q: %w", meta.Date, err)
	}
	var rendered bytes.Buffer
	if err := markdown.Convert(body, &rendered); err != nil {
		return postVariant{}, fmt.Errorf("render markdown: %w", err)
	}
	return postVariant{meta: meta, date: date, html: rendered.String()}, nil
}

func mergeVariants(slug string, byLang map[platformi18n.Language]postVariant) (Post, error) {
	ko, ok := byLang[platformi18n.Korean]
	if !ok {
		return Post{}, fmt.Errorf("blog post %q: missing in language %q", slug, platformi18n.Korean)
	}
	en, ok := byLang[platformi18n.English]
	if !ok {
		return Post{}, fmt.Errorf("blog post %q: missing in language %q", slug, platformi18n.English)
	}
	if !ko.date.Equal(en.date) {
		return Post{}, fmt.Errorf("blog post %q: date differs between languages", slug)
	}
	return Post{
		Slug:     slug,
		Date:     ko.date,
		Title:    Text{KO: ko.meta.Title, EN: en.meta.Title},
		Summary:  Text{KO: ko.meta.Summary, EN: en.meta.Summary},
		Category: Text{KO: ko.meta.Category, EN: en.meta.Category},
		Body:     Text{KO: ko.html, EN: en.html},
	}, nil
}

// Posts returns every post, newest first.
func (b *Blog) Posts() []Post {
	if b == nil {
		return nil
	}
	out := make([]Post, len(b.posts))
	copy(out, b.posts)
	return out
}

// Post returns the post with slug.
func (b *Blog) Post(slug string) (Post, bool) {
	if b == nil {
		return Post{}, false
	}
	i, ok := b.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return b.posts[i], true
}

// DisplayDate formats a post date the way the blog list shows it.
func (p Post) DisplayDate() string {
	return p.Date.Format("2006.01.02")
}
