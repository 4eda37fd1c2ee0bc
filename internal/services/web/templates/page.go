package templates

import (
	"strings"

	"github.com/fromvivianmusic/fvm-web/internal/services/shared/i18nhttp"
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	CurrentPath  string
	CurrentQuery string
}

// LanguageOptions lists the header language switcher entries for the current URL.
func (p PageContext) LanguageOptions(active webi18n.Language) []i18nhttp.LanguageOption {
	return i18nhttp.BuildLanguageOptions(active, p.path(), p.CurrentQuery)
}

// IsActive reports whether target is the current section of the site.
func (p PageContext) IsActive(target string) bool {
	current := p.path()
	if target == routepath.Root {
		return current == routepath.Root
	}
	return current == target || strings.HasPrefix(current, target+"/")
}

func (p PageContext) path() string {
	path := strings.TrimSpace(p.CurrentPath)
	if path == "" {
		return routepath.Root
	}
	return path
}

type navLink struct {
	path string
	key  webi18n.Key
}

var navLinks = []navLink{
	{path: routepath.Root, key: webi18n.KeyNavHome},
	{path: routepath.Services, key: webi18n.KeyNavServices},
	{path: routepath.Curriculum, key: webi18n.KeyNavCurriculum},
	{path: routepath.Instructors, key: webi18n.KeyNavInstructors},
	{path: routepath.Reviews, key: webi18n.KeyNavReviews},
	{path: routepath.Blog, key: webi18n.KeyNavBlog},
	{path: routepath.Contact, key: webi18n.KeyNavContact},
}

var philosophy = []struct {
	title webi18n.Key
	desc  webi18n.Key
}{
	{title: webi18n.KeyPhilosophyCurriculumTitle, desc: webi18n.KeyPhilosophyCurriculumDesc},
	{title: webi18n.KeyPhilosophyInstructorsTitle, desc: webi18n.KeyPhilosophyInstructorsDesc},
	{title: webi18n.KeyPhilosophySystemTitle, desc: webi18n.KeyPhilosophySystemDesc},
}
