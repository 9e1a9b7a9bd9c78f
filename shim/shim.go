// Package shim normalizes event delivery on peer-connection-like objects.
// Vendors disagree on the exact shape of event payloads; Wrap layers a
// decorator over an event target so that one named event's payloads run
// through a transform before reaching application callbacks, while every
// other event passes through untouched.
//
// The decorator never mutates the target it wraps. Each Wrapped instance
// owns its own listener bookkeeping, so wrapping is composable and two
// wrapped views of the same target stay independent.
package shim

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/petervdpas/rtcshim/internal/util"
	"github.com/petervdpas/rtcshim/logx"
	"github.com/petervdpas/rtcshim/useragent"
)

// Listener receives delivered events. Implementations used with
// RemoveEventListener must be comparable (pointer receivers are); use
// ListenerFunc to adapt a plain function.
type Listener interface {
	HandleEvent(evt any)
}

type funcListener struct {
	fn func(any)
}

func (f *funcListener) HandleEvent(evt any) { f.fn(evt) }

// ListenerFunc adapts fn into a Listener. The returned value is a distinct
// pointer each call: keep it if you intend to remove the registration later,
// exactly as with function identity on a browser event target.
func ListenerFunc(fn func(any)) Listener {
	return &funcListener{fn: fn}
}

// EventTarget is the registration surface of a peer-connection-like object.
type EventTarget interface {
	AddEventListener(event string, l Listener)
	RemoveEventListener(event string, l Listener)
}

// Transform rewrites a raw event payload before delivery.
type Transform func(evt any) any

// historySize bounds the per-instance buffer of recently delivered events
// kept for debugging.
const historySize = 16

// Wrapped decorates an EventTarget so payloads for one event name are
// transformed before delivery. It satisfies EventTarget itself, so wrapping
// composes.
type Wrapped struct {
	id        string
	inner     EventTarget
	event     string
	transform Transform
	log       *logx.Logger

	mu sync.Mutex
	// handlers maps each application listener to the wrapped listener that
	// was actually registered with the inner target. At most one entry per
	// distinct application listener.
	handlers map[Listener]Listener
	// current is the single-handler slot (the "on<event>" property).
	current Listener

	history *util.Ring[any]
}

// Wrap returns a decorated view of target whose deliveries for event run
// through tr first. When env reports no peer-connection support there is
// nothing to normalize and target is returned unchanged. log may be nil.
func Wrap(env *useragent.Environment, target EventTarget, event string, tr Transform, log *logx.Logger) EventTarget {
	if env == nil || !env.PeerConnection {
		return target
	}
	return NewWrapped(target, event, tr, log)
}

// NewWrapped builds the decorator unconditionally. Most callers want Wrap.
// A nil transform delivers payloads unchanged.
func NewWrapped(target EventTarget, event string, tr Transform, log *logx.Logger) *Wrapped {
	if tr == nil {
		tr = func(evt any) any { return evt }
	}
	return &Wrapped{
		id:        uuid.NewString(),
		inner:     target,
		event:     event,
		transform: tr,
		log:       log,
		handlers:  make(map[Listener]Listener),
		history:   util.NewRing[any](historySize),
	}
}

// ID returns the instance id used in log lines.
func (w *Wrapped) ID() string { return w.id }

// Event returns the event name this decorator transforms.
func (w *Wrapped) Event() string { return w.event }

// AddEventListener registers l for event. Registrations for the wrapped
// event name are replaced by a transforming listener; all other event names
// pass straight through to the inner target. Re-adding a listener already
// registered for the wrapped event is a no-op.
func (w *Wrapped) AddEventListener(event string, l Listener) {
	if event != w.event || l == nil {
		w.inner.AddEventListener(event, l)
		return
	}

	w.mu.Lock()
	if _, exists := w.handlers[l]; exists {
		w.mu.Unlock()
		return
	}
	wl := ListenerFunc(func(evt any) {
		out := w.transform(evt)
		w.history.Push(out)
		l.HandleEvent(out)
	})
	w.handlers[l] = wl
	w.mu.Unlock()

	w.logf("listener added for %q", event)
	w.inner.AddEventListener(event, wl)
}

// RemoveEventListener unregisters l. For the wrapped event name the
// decorator looks up the transforming listener it registered on l's behalf
// and removes that from the inner target; unknown listeners and other event
// names pass through unmodified.
func (w *Wrapped) RemoveEventListener(event string, l Listener) {
	if event != w.event {
		w.inner.RemoveEventListener(event, l)
		return
	}

	w.mu.Lock()
	wl, ok := w.handlers[l]
	if ok {
		delete(w.handlers, l)
	}
	w.mu.Unlock()

	if !ok {
		w.inner.RemoveEventListener(event, l)
		return
	}
	w.logf("listener removed for %q", event)
	w.inner.RemoveEventListener(event, wl)
}

// Handler returns the current single-handler for the wrapped event, nil when
// none is set.
func (w *Wrapped) Handler() Listener {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// SetHandler installs l as the single handler for the wrapped event,
// unregistering any previously installed handler first so at most one
// single-handler registration is ever active. Passing nil just clears the
// slot.
func (w *Wrapped) SetHandler(l Listener) {
	w.mu.Lock()
	prev := w.current
	w.current = l
	w.mu.Unlock()

	if prev != nil {
		w.RemoveEventListener(w.event, prev)
	}
	if l != nil {
		w.AddEventListener(w.event, l)
	}
}

// RecentEvents returns the most recently delivered (transformed) payloads,
// oldest first. Debugging aid only; contents are whatever the transform
// produced.
func (w *Wrapped) RecentEvents() []any {
	return w.history.Items()
}

func (w *Wrapped) logf(format string, args ...any) {
	if w.log == nil {
		return
	}
	w.log.Log("SHIM ["+w.id+"]:", fmt.Sprintf(format, args...))
}
