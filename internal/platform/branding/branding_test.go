package branding

import (
	"strings"
	"testing"
)

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "FVM" {
		t.Fatalf("AppName = %q, want %q", AppName, "FVM")
	}
}

func TestSiteURLHasNoTrailingSlash(t *testing.T) {
	if strings.HasSuffix(DefaultSiteURL, "/") {
		t.Fatalf("DefaultSiteURL = %q, want no trailing slash", DefaultSiteURL)
	}
	if !strings.HasPrefix(DefaultSiteURL, "https://") {
		t.Fatalf("DefaultSiteURL = %q, want https origin", DefaultSiteURL)
	}
}

func TestKakaoChannelURL(t *testing.T) {
	if !strings.HasPrefix(KakaoChannelURL, "https://pf.kakao.com/") {
		t.Fatalf("KakaoChannelURL = %q, want kakao channel", KakaoChannelURL)
	}
}
