package useragent

import (
	"regexp"
	"testing"
)

const (
	firefoxUA = "Mozilla/5.0 (X11; Linux x86_64; rv:91.0) Gecko/20100101 Firefox/91.0"
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	edgeUA    = "Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/46.0.2486.0 Safari/537.36 Edge/13.10586"
	safariUA  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.1 Safari/605.1.15"
)

func TestExtractVersion(t *testing.T) {
	re := regexp.MustCompile(`Firefox/(\d+)\.`)

	v, ok := ExtractVersion("Firefox/91.0", re, 1)
	if !ok || v != 91 {
		t.Fatalf("got (%d, %v), want (91, true)", v, ok)
	}

	if _, ok := ExtractVersion("randomtext", re, 1); ok {
		t.Fatal("expected absent for non-matching text")
	}

	// Group index beyond the match's capture count is absent, not a panic.
	if _, ok := ExtractVersion("Firefox/91.0", re, 2); ok {
		t.Fatal("expected absent for out-of-range group")
	}

	// Non-numeric capture resolves to absent.
	alpha := regexp.MustCompile(`Build/(\w+)`)
	if _, ok := ExtractVersion("Build/beta", alpha, 1); ok {
		t.Fatal("expected absent for non-numeric capture")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		env     *Environment
		browser string
		version int
	}{
		{
			name:    "nil environment",
			env:     nil,
			browser: NotABrowser,
			version: VersionAbsent,
		},
		{
			name:    "no navigator",
			env:     &Environment{},
			browser: NotABrowser,
			version: VersionAbsent,
		},
		{
			name: "firefox",
			env: &Environment{Navigator: &Navigator{
				UserAgent:       firefoxUA,
				MozGetUserMedia: true,
			}},
			browser: Firefox,
			version: 91,
		},
		{
			name: "chrome",
			env: &Environment{Navigator: &Navigator{
				UserAgent:          chromeUA,
				WebkitGetUserMedia: true,
			}},
			browser: Chrome,
			version: 120,
		},
		{
			name: "chromium",
			env: &Environment{Navigator: &Navigator{
				UserAgent:          "Mozilla/5.0 AppleWebKit/537.36 Chromium/98.0.4758.102 Safari/537.36",
				WebkitGetUserMedia: true,
			}},
			browser: Chrome,
			version: 98,
		},
		{
			name: "edge",
			env: &Environment{Navigator: &Navigator{
				UserAgent:    edgeUA,
				MediaDevices: true,
			}},
			browser: Edge,
			version: 10586,
		},
		{
			name: "safari",
			env: &Environment{
				Navigator:      &Navigator{UserAgent: safariUA},
				PeerConnection: true,
			},
			browser: Safari,
			version: 605,
		},
		{
			name: "safari user agent without peer connection support",
			env: &Environment{
				Navigator: &Navigator{UserAgent: safariUA},
			},
			browser: NotSupported,
			version: VersionAbsent,
		},
		{
			name: "unrecognized runtime",
			env: &Environment{Navigator: &Navigator{
				UserAgent: "curl/8.4.0",
			}},
			browser: NotSupported,
			version: VersionAbsent,
		},
		{
			name: "firefox marker missing version token",
			env: &Environment{Navigator: &Navigator{
				UserAgent:       "SomeEmbedder/1.0",
				MozGetUserMedia: true,
			}},
			browser: Firefox,
			version: VersionAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.env)
			if got.Browser != tt.browser || got.Version != tt.version {
				t.Fatalf("Detect() = %+v, want {%s %d}", got, tt.browser, tt.version)
			}
		})
	}
}

// The moz marker must win over every other marker: check order is fixed.
func TestDetectOrder(t *testing.T) {
	env := &Environment{
		Navigator: &Navigator{
			UserAgent:          firefoxUA,
			MozGetUserMedia:    true,
			WebkitGetUserMedia: true,
			MediaDevices:       true,
		},
		PeerConnection: true,
	}
	if got := Detect(env); got.Browser != Firefox {
		t.Fatalf("got %q, want firefox first", got.Browser)
	}
}

func TestCapabilities(t *testing.T) {
	chrome71 := Identity{Browser: Chrome, Version: 71}
	chrome72 := Identity{Browser: Chrome, Version: 72}
	firefox := Identity{Browser: Firefox, Version: 91}
	safari := Identity{Browser: Safari, Version: 605}
	notBrowser := Identity{Browser: NotABrowser, Version: VersionAbsent}

	if !chrome72.SupportsUnifiedPlan() || chrome71.SupportsUnifiedPlan() {
		t.Fatal("chrome unified-plan cutover should be 72")
	}
	if !firefox.SupportsUnifiedPlan() || !safari.SupportsUnifiedPlan() {
		t.Fatal("firefox and safari always negotiate unified-plan")
	}
	if !chrome71.NeedsTrackEventShim() || chrome72.NeedsTrackEventShim() {
		t.Fatal("pre-72 chrome needs the track event shim")
	}
	if !safari.NeedsTrackEventShim() {
		t.Fatal("safari needs the track event shim")
	}
	if notBrowser.IsBrowser() {
		t.Fatal("sentinel identities are not browsers")
	}
	if notBrowser.AtLeast(0) {
		t.Fatal("absent version never satisfies AtLeast")
	}
}
