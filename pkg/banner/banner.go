package banner

import (
	"sync"
	"time"

	"github.com/dmitrymomot/localekit/pkg/locale"
)

// State of the confirmation banner.
type State string

const (
	StateHidden    State = "hidden"
	StateShown     State = "shown"
	StateDismissed State = "dismissed"
)

// Event that can dismiss a shown banner.
type Event string

const (
	// EventTimeout fires from the auto-dismiss timer.
	EventTimeout Event = "timeout"
	// EventClose is the explicit close button.
	EventClose Event = "close"
	// EventKeepLanguage confirms the inferred locale and persists it.
	EventKeepLanguage Event = "keep_language"
	// EventSwitchDefault persists the default locale and navigates there.
	EventSwitchDefault Event = "switch_default"
	// EventEscape is the Escape key while the banner is shown.
	EventEscape Event = "escape"
)

// defaultAutoDismiss is how long an untouched banner stays up.
const defaultAutoDismiss = 10 * time.Second

// Session is the browsing-session-scoped banner state, threaded explicitly
// so the at-most-once-per-session guarantee survives page navigations.
type Session struct {
	Shown bool
}

// Machine is the banner lifecycle: Hidden → Shown → Dismissed, with
// Dismissed terminal for the session. A machine built for the default locale
// is inert and stays Hidden forever.
type Machine struct {
	mu      sync.Mutex
	state   State
	session *Session
	locale  locale.Locale
	timer   *time.Timer

	autoDismiss     time.Duration
	writePreference func(locale.Locale)
	navigate        func(locale.Locale)
}

// Option configures a Machine.
type Option func(*Machine)

// WithAutoDismiss overrides the 10-second auto-dismiss window.
func WithAutoDismiss(d time.Duration) Option {
	return func(m *Machine) {
		if d > 0 {
			m.autoDismiss = d
		}
	}
}

// WithPreferenceWriter registers the callback that persists a confirmed
// locale choice (the preference cookie write).
func WithPreferenceWriter(fn func(locale.Locale)) Option {
	return func(m *Machine) { m.writePreference = fn }
}

// WithNavigator registers the callback invoked when the visitor switches to
// the default locale.
func WithNavigator(fn func(locale.Locale)) Option {
	return func(m *Machine) { m.navigate = fn }
}

// New returns a Hidden machine for the given session and page locale.
func New(session *Session, current locale.Locale, opts ...Option) *Machine {
	if session == nil {
		session = &Session{}
	}
	m := &Machine{
		state:       StateHidden,
		session:     session,
		locale:      current,
		autoDismiss: defaultAutoDismiss,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Mount attempts the Hidden → Shown transition and reports whether it fired.
// The guard requires a non-default locale, the auto-redirect marker, and a
// session that has not shown the banner yet. On firing it consumes the
// session's one showing and starts the auto-dismiss timer.
func (m *Machine) Mount(markerPresent bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateHidden {
		return false
	}
	if m.locale.IsDefault() || !markerPresent || m.session.Shown {
		return false
	}

	m.session.Shown = true
	m.state = StateShown
	m.timer = time.AfterFunc(m.autoDismiss, func() { m.Fire(EventTimeout) })
	return true
}

// Fire applies a dismissal event. Only a Shown banner reacts; every event in
// the alphabet leads to Dismissed. KeepLanguage persists the current locale,
// SwitchDefault persists the default locale and navigates to it.
func (m *Machine) Fire(event Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateShown {
		return false
	}

	switch event {
	case EventKeepLanguage:
		if m.writePreference != nil {
			m.writePreference(m.locale)
		}
	case EventSwitchDefault:
		if m.writePreference != nil {
			m.writePreference(locale.Default)
		}
		if m.navigate != nil {
			m.navigate(locale.Default)
		}
	case EventTimeout, EventClose, EventEscape:
	default:
		return false
	}

	m.dismissLocked()
	return true
}

// Unmount cancels the timer on component teardown without changing state.
// A cancelled timer has no observable effect; the auto-dismiss simply never
// fires.
func (m *Machine) Unmount() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

func (m *Machine) dismissLocked() {
	m.stopTimerLocked()
	m.state = StateDismissed
}

func (m *Machine) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
