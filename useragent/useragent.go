// Package useragent identifies the browser/runtime a peer is running in from
// its user-agent string and capability markers, so callers can branch
// per-vendor workarounds off a single detection result instead of sniffing
// the environment themselves.
package useragent

import (
	"regexp"
	"strconv"
)

// Browser identifiers returned by Detect. The two sentinel strings are
// deliberate values, not errors: an absent navigator and an unrecognized
// vendor are both normal outcomes callers are expected to handle.
const (
	Firefox = "firefox"
	Chrome  = "chrome"
	Edge    = "edge"
	Safari  = "safari"

	NotABrowser  = "Not a browser."
	NotSupported = "Not a supported browser."
)

// VersionAbsent is the Identity.Version value when no version could be
// extracted from the user-agent string.
const VersionAbsent = -1

// Navigator mirrors the navigator-like object a client reports: its
// user-agent string and the vendor capability markers detection keys on.
type Navigator struct {
	UserAgent string `json:"user_agent"`

	// Vendor-prefixed getUserMedia markers. Firefox exposes the moz-
	// prefixed form, Chromium-family browsers the webkit- prefixed one.
	MozGetUserMedia    bool `json:"moz_get_user_media"`
	WebkitGetUserMedia bool `json:"webkit_get_user_media"`

	// MediaDevices reports whether the standard mediaDevices surface
	// exists. Legacy Edge exposes this without either prefixed marker.
	MediaDevices bool `json:"media_devices"`
}

// Environment is the runtime context detection operates on. It is built
// explicitly by the caller (typically from a client hello or a reported
// snapshot) — Detect never consults process globals.
type Environment struct {
	// Navigator is nil when the runtime is not a browser at all.
	Navigator *Navigator `json:"navigator"`

	// PeerConnection reports whether the runtime exposes a peer-connection
	// constructor. Safari is recognized by this marker plus its WebKit UA
	// token, since it ships neither prefixed getUserMedia form.
	PeerConnection bool `json:"peer_connection"`
}

// Identity is the detection result: a browser identifier constant and a
// major version, VersionAbsent when the version could not be parsed.
type Identity struct {
	Browser string `json:"browser"`
	Version int    `json:"version"`
}

var (
	firefoxRe = regexp.MustCompile(`Firefox/(\d+)\.`)
	chromeRe  = regexp.MustCompile(`Chrom(e|ium)/(\d+)\.`)
	edgeRe    = regexp.MustCompile(`Edge/(\d+).(\d+)$`)
	webkitRe  = regexp.MustCompile(`AppleWebKit/(\d+)\.`)
)

// ExtractVersion applies re to s and parses capture group `group` (1-based)
// as a base-10 integer. ok is false when s does not match, when the match
// has fewer groups than requested, or when the captured text is not numeric.
func ExtractVersion(s string, re *regexp.Regexp, group int) (version int, ok bool) {
	m := re.FindStringSubmatch(s)
	if m == nil || len(m) <= group {
		return 0, false
	}
	n, err := strconv.Atoi(m[group])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Detect classifies env into an Identity. The check order matters and is
// fixed: Firefox, then Chromium-family, then legacy Edge, then Safari —
// Edge and Safari both carry WebKit/Chrome tokens in their user-agent
// strings, so the more specific markers must win first.
func Detect(env *Environment) Identity {
	if env == nil || env.Navigator == nil {
		return Identity{Browser: NotABrowser, Version: VersionAbsent}
	}

	nav := env.Navigator
	ua := nav.UserAgent

	switch {
	case nav.MozGetUserMedia:
		return identity(Firefox, ua, firefoxRe, 1)
	case nav.WebkitGetUserMedia:
		return identity(Chrome, ua, chromeRe, 2)
	case nav.MediaDevices && edgeRe.MatchString(ua):
		return identity(Edge, ua, edgeRe, 2)
	case env.PeerConnection && webkitRe.MatchString(ua):
		return identity(Safari, ua, webkitRe, 1)
	default:
		return Identity{Browser: NotSupported, Version: VersionAbsent}
	}
}

func identity(browser, ua string, re *regexp.Regexp, group int) Identity {
	v, ok := ExtractVersion(ua, re, group)
	if !ok {
		v = VersionAbsent
	}
	return Identity{Browser: browser, Version: v}
}
