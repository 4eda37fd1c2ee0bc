package seo

import (
	"encoding/json"

	"github.com/fromvivianmusic/fvm-web/internal/platform/branding"
)

const schemaContext = "https://schema.org"

const (
	organizationDescription  = "체계적인 커리큘럼과 전문 강사진이 함께하는 프리미엄 보컬 교육 브랜드"
	localBusinessDescription = "프리미엄 보컬 교육 브랜드 - 1:1 프라이빗, 온라인, 그룹, 글로벌, 키즈 보컬 레슨"
	priceRange               = "$$"
	addressCountry           = "KR"
)

type organization struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
	SameAs      []string `json:"sameAs"`
}

type postalAddress struct {
	Type           string `json:"@type"`
	AddressCountry string `json:"addressCountry"`
}

type localBusiness struct {
	Context     string        `json:"@context"`
	Type        []string      `json:"@type"`
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	PriceRange  string        `json:"priceRange"`
	Address     postalAddress `json:"address"`
	SameAs      []string      `json:"sameAs"`
}

type webSite struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type webPage struct {
	Context     string  `json:"@context"`
	Type        string  `json:"@type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	IsPartOf    webSite `json:"isPartOf"`
}

// structuredData returns the JSON-LD documents for a page: the organization
// and local business blocks on the home page, then the page block.
func (p Publisher) structuredData(siteURL string, path string, title string, description string, canonical string) []string {
	documents := make([]any, 0, 3)
	if path == "/" {
		documents = append(documents, organizationDocument(siteURL), localBusinessDocument(siteURL))
	}
	documents = append(documents, webPage{
		Context:     schemaContext,
		Type:        "WebPage",
		Name:        title,
		Description: description,
		URL:         canonical,
		IsPartOf: webSite{
			Type: "WebSite",
			Name: branding.SiteName,
			URL:  siteURL,
		},
	})

	out := make([]string, 0, len(documents))
	for _, document := range documents {
		encoded, err := json.Marshal(document)
		if err != nil {
			p.logger().Printf("structured data dropped path=%s err=%v", path, err)
			continue
		}
		out = append(out, string(encoded))
	}
	return out
}

func organizationDocument(siteURL string) organization {
	sameAs := make([]string, 0, len(branding.SocialProfiles)+1)
	sameAs = append(sameAs, branding.SocialProfiles...)
	sameAs = append(sameAs, branding.KakaoChannelURL)
	return organization{
		Context:     schemaContext,
		Type:        "Organization",
		Name:        branding.SiteName,
		URL:         siteURL,
		Logo:        siteURL + "/favicon.ico",
		Description: organizationDescription,
		SameAs:      sameAs,
	}
}

func localBusinessDocument(siteURL string) localBusiness {
	return localBusiness{
		Context:     schemaContext,
		Type:        []string{"LocalBusiness", "EducationalOrganization"},
		Name:        branding.SiteName,
		URL:         siteURL,
		Description: localBusinessDescription,
		Image:       siteURL + branding.OpenGraphImagePath,
		PriceRange:  priceRange,
		Address: postalAddress{
			Type:           "PostalAddress",
			AddressCountry: addressCountry,
		},
		SameAs: append([]string(nil), branding.SocialProfiles...),
	}
}
