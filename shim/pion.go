package shim

import (
	"sync"

	"github.com/pion/webrtc/v4"
)

// Event names understood by PeerConnectionTarget, matching the conventional
// peer-connection event vocabulary.
const (
	EventTrack                    = "track"
	EventICECandidate             = "icecandidate"
	EventConnectionStateChange    = "connectionstatechange"
	EventICEConnectionStateChange = "iceconnectionstatechange"
	EventSignalingStateChange     = "signalingstatechange"
	EventDataChannel              = "datachannel"
	EventNegotiationNeeded        = "negotiationneeded"
)

// TrackEvent is the payload delivered for "track".
type TrackEvent struct {
	Track    *webrtc.TrackRemote
	Receiver *webrtc.RTPReceiver
}

// ICECandidateEvent is the payload delivered for "icecandidate". Candidate
// is nil on end-of-candidates, as on the wire.
type ICECandidateEvent struct {
	Candidate *webrtc.ICECandidate
}

// ConnectionStateEvent is the payload delivered for "connectionstatechange".
type ConnectionStateEvent struct {
	State webrtc.PeerConnectionState
}

// ICEConnectionStateEvent is the payload delivered for
// "iceconnectionstatechange".
type ICEConnectionStateEvent struct {
	State webrtc.ICEConnectionState
}

// SignalingStateEvent is the payload delivered for "signalingstatechange".
type SignalingStateEvent struct {
	State webrtc.SignalingState
}

// DataChannelEvent is the payload delivered for "datachannel".
type DataChannelEvent struct {
	Channel *webrtc.DataChannel
}

// NegotiationNeededEvent is the payload delivered for "negotiationneeded".
type NegotiationNeededEvent struct{}

// PeerConnectionTarget adapts a pion PeerConnection to the EventTarget
// interface. Pion exposes one callback slot per event; the adapter installs
// a single dispatching callback per event name on first registration and
// fans deliveries out to every registered listener, so multi-listener
// registration and removal-by-identity both work.
type PeerConnectionTarget struct {
	pc *webrtc.PeerConnection

	mu        sync.Mutex
	listeners map[string][]Listener
	bound     map[string]bool
}

// NewPeerConnectionTarget wraps pc. The adapter claims pc's On* callback
// slots lazily, one per event name, the first time a listener for that name
// is added; callers must not set those slots themselves afterwards.
func NewPeerConnectionTarget(pc *webrtc.PeerConnection) *PeerConnectionTarget {
	return &PeerConnectionTarget{
		pc:        pc,
		listeners: make(map[string][]Listener),
		bound:     make(map[string]bool),
	}
}

// PeerConnection returns the underlying pion connection.
func (t *PeerConnectionTarget) PeerConnection() *webrtc.PeerConnection { return t.pc }

// AddEventListener registers l for the named event. Unknown event names and
// nil listeners are ignored. Duplicate registrations of the same listener
// are collapsed to one.
func (t *PeerConnectionTarget) AddEventListener(event string, l Listener) {
	if l == nil {
		return
	}
	t.mu.Lock()
	for _, existing := range t.listeners[event] {
		if existing == l {
			t.mu.Unlock()
			return
		}
	}
	t.listeners[event] = append(t.listeners[event], l)
	needBind := !t.bound[event]
	if needBind {
		t.bound[event] = true
	}
	t.mu.Unlock()

	if needBind {
		t.bind(event)
	}
}

// RemoveEventListener unregisters l from the named event. Listeners are
// matched by identity; unknown listeners are ignored.
func (t *PeerConnectionTarget) RemoveEventListener(event string, l Listener) {
	t.mu.Lock()
	ls := t.listeners[event]
	for i, existing := range ls {
		if existing == l {
			t.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			break
		}
	}
	t.mu.Unlock()
}

// dispatch delivers evt to a snapshot of the current listeners for event.
func (t *PeerConnectionTarget) dispatch(event string, evt any) {
	t.mu.Lock()
	snapshot := make([]Listener, len(t.listeners[event]))
	copy(snapshot, t.listeners[event])
	t.mu.Unlock()

	for _, l := range snapshot {
		l.HandleEvent(evt)
	}
}

// bind installs the pion callback that feeds dispatch for one event name.
func (t *PeerConnectionTarget) bind(event string) {
	switch event {
	case EventTrack:
		t.pc.OnTrack(func(track *webrtc.TrackRemote, receiver *webrtc.RTPReceiver) {
			t.dispatch(EventTrack, TrackEvent{Track: track, Receiver: receiver})
		})
	case EventICECandidate:
		t.pc.OnICECandidate(func(c *webrtc.ICECandidate) {
			t.dispatch(EventICECandidate, ICECandidateEvent{Candidate: c})
		})
	case EventConnectionStateChange:
		t.pc.OnConnectionStateChange(func(s webrtc.PeerConnectionState) {
			t.dispatch(EventConnectionStateChange, ConnectionStateEvent{State: s})
		})
	case EventICEConnectionStateChange:
		t.pc.OnICEConnectionStateChange(func(s webrtc.ICEConnectionState) {
			t.dispatch(EventICEConnectionStateChange, ICEConnectionStateEvent{State: s})
		})
	case EventSignalingStateChange:
		t.pc.OnSignalingStateChange(func(s webrtc.SignalingState) {
			t.dispatch(EventSignalingStateChange, SignalingStateEvent{State: s})
		})
	case EventDataChannel:
		t.pc.OnDataChannel(func(dc *webrtc.DataChannel) {
			t.dispatch(EventDataChannel, DataChannelEvent{Channel: dc})
		})
	case EventNegotiationNeeded:
		t.pc.OnNegotiationNeeded(func() {
			t.dispatch(EventNegotiationNeeded, NegotiationNeededEvent{})
		})
	}
}
