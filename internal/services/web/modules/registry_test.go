package modules

import (
	"strings"
	"testing"
)

func TestDefaultModulesIncludeEverySiteArea(t *testing.T) {
	t.Parallel()

	got := DefaultModules(Dependencies{})
	want := []string{"pages", "blog", "crawl", "assets"}
	if len(got) != len(want) {
		t.Fatalf("module count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Fatalf("module[%d] id = %q, want %q", i, got[i].ID(), id)
		}
	}
}

func TestDefaultModulesHaveUniqueRoutes(t *testing.T) {
	t.Parallel()

	seen := map[string]string{}
	for _, feature := range DefaultModules(Dependencies{}) {
		mount, err := feature.Mount()
		if err != nil {
			t.Fatalf("mount %q: %v", feature.ID(), err)
		}
		if mount.Handler == nil {
			t.Fatalf("module %q mounted without handler", feature.ID())
		}
		routes := append([]string{}, mount.Paths...)
		if mount.Prefix != "" {
			if !strings.HasSuffix(mount.Prefix, "/") {
				t.Fatalf("module %q prefix %q must end with /", feature.ID(), mount.Prefix)
			}
			routes = append(routes, mount.Prefix)
		}
		for _, route := range routes {
			if previous, ok := seen[route]; ok {
				t.Fatalf("route %q claimed by %q and %q", route, previous, feature.ID())
			}
			seen[route] = feature.ID()
		}
	}
}
