package routepath

import (
	"strings"
	"testing"
)

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if ServicesKids != "/services/kids" {
		t.Fatalf("ServicesKids = %q", ServicesKids)
	}
	if BlogPostPattern != "/blog/{slug}" {
		t.Fatalf("BlogPostPattern = %q", BlogPostPattern)
	}
	if Sitemap != "/sitemap.xml" {
		t.Fatalf("Sitemap = %q", Sitemap)
	}
	if Robots != "/robots.txt" {
		t.Fatalf("Robots = %q", Robots)
	}
	if !strings.HasPrefix(Stylesheet, StaticPrefix) {
		t.Fatalf("Stylesheet = %q, want under %q", Stylesheet, StaticPrefix)
	}
}

func TestPagesTable(t *testing.T) {
	t.Parallel()

	want := []string{
		"/", "/services", "/services/private", "/services/online", "/services/group",
		"/services/global", "/services/kids", "/curriculum", "/instructors",
		"/reviews", "/blog", "/contact",
	}
	got := Pages()
	if len(got) != len(want) {
		t.Fatalf("len(Pages()) = %d, want %d", len(got), len(want))
	}
	names := map[string]struct{}{}
	for i, page := range got {
		if page.Path != want[i] {
			t.Fatalf("Pages()[%d].Path = %q, want %q", i, page.Path, want[i])
		}
		if !IsPage(page.Path) {
			t.Fatalf("IsPage(%q) = false", page.Path)
		}
		if _, dup := names[page.Name]; dup {
			t.Fatalf("duplicate page name %q", page.Name)
		}
		names[page.Name] = struct{}{}
	}

	got[0].Path = "/mutated"
	if Pages()[0].Path != Root {
		t.Fatal("Pages() exposed internal table")
	}
}

func TestIsPageRejectsUnknownPaths(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/does-not-exist", "/services/", "/blog/warm-up", ""} {
		if IsPage(path) {
			t.Fatalf("IsPage(%q) = true", path)
		}
	}
}

func TestBlogPostEscapesSlug(t *testing.T) {
	t.Parallel()

	if got := BlogPost(" warm-up "); got != "/blog/warm-up" {
		t.Fatalf("BlogPost() = %q", got)
	}
	if got := BlogPost("a/b"); got != "/blog/a%2Fb" {
		t.Fatalf("BlogPost() = %q", got)
	}
}
