package useragent

import "strings"

func (id Identity) IsFirefox() bool { return strings.EqualFold(id.Browser, Firefox) }
func (id Identity) IsChrome() bool  { return strings.EqualFold(id.Browser, Chrome) }
func (id Identity) IsEdge() bool    { return strings.EqualFold(id.Browser, Edge) }
func (id Identity) IsSafari() bool  { return strings.EqualFold(id.Browser, Safari) }

// IsBrowser reports whether detection identified a supported browser at all.
func (id Identity) IsBrowser() bool {
	return id.IsFirefox() || id.IsChrome() || id.IsEdge() || id.IsSafari()
}

// AtLeast reports whether the detected version is known and >= min.
func (id Identity) AtLeast(min int) bool {
	return id.Version != VersionAbsent && id.Version >= min
}

// SupportsUnifiedPlan reports whether the client negotiates unified-plan SDP
// by default. Chrome switched at 72, Firefox and Safari always did; legacy
// Edge never does.
func (id Identity) SupportsUnifiedPlan() bool {
	switch {
	case id.IsFirefox(), id.IsSafari():
		return true
	case id.IsChrome():
		return id.AtLeast(72)
	default:
		return false
	}
}

// SupportsTrackEvent reports whether the client fires standard track
// events (as opposed to the removed addstream form). Everything current
// does; Chrome gained it at 56, legacy Edge never did.
func (id Identity) SupportsTrackEvent() bool {
	switch {
	case id.IsFirefox(), id.IsSafari():
		return true
	case id.IsChrome():
		return id.AtLeast(56)
	default:
		return false
	}
}

// NeedsTrackEventShim reports whether deliveries for the "track" event
// should be rewritten before reaching application callbacks. Safari and
// pre-72 Chrome deliver payloads missing the transceiver/streams fields.
func (id Identity) NeedsTrackEventShim() bool {
	if id.IsSafari() {
		return true
	}
	return id.IsChrome() && !id.AtLeast(72)
}
