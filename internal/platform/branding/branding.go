// Package branding holds the fixed identity of the site.
package branding

const (
	// AppName is the short brand used as the page title suffix.
	AppName = "FVM"
	// SiteName is the full brand shown in social previews and structured data.
	SiteName = "FVM - From Vivian Music"
	// DefaultSiteURL is the production origin used for canonical links.
	DefaultSiteURL = "https://www.fromvivianmusic.com"
	// KakaoChannelURL is the single consultation channel every CTA opens.
	KakaoChannelURL = "https://pf.kakao.com/_WvSxjxj"
	// OpenGraphImagePath is the default social preview image on the site origin.
	OpenGraphImagePath = "/open-graph.png"
	// CopyrightYear is printed in the footer.
	CopyrightYear = 2024
)

// SocialProfiles lists the public profiles linked from structured data.
var SocialProfiles = []string{
	"https://www.instagram.com/from.vivian.music",
	"https://youtube.com/@from.vivian",
	"https://m.blog.naver.com/vivian_artistt",
}
