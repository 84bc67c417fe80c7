// ABOUTME: Single-slot transient notice channel with timestamp-based expiry
// ABOUTME: Clock is injectable so tests control time instead of real timers

package console

import (
	"fmt"
	"time"
)

// DefaultNoticeTTL is how long a notice stays visible without operator
// action.
const DefaultNoticeTTL = 5 * time.Second

// Clock supplies the current time. The console injects a controllable
// clock in tests; everything else uses the system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NoticeKind distinguishes success from error notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is one transient message with its expiry deadline.
type Notice struct {
	Kind      NoticeKind
	Message   string
	ExpiresAt time.Time
}

// Notices is the single-slot notification channel. Posting a new notice
// replaces any pending one; a notice self-clears once its deadline passes,
// independent of further operator action.
type Notices struct {
	clock   Clock
	ttl     time.Duration
	current *Notice
}

// NewNotices creates the channel. A nil clock uses the system clock; a
// zero ttl uses DefaultNoticeTTL.
func NewNotices(clock Clock, ttl time.Duration) *Notices {
	if clock == nil {
		clock = systemClock{}
	}
	if ttl == 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notices{clock: clock, ttl: ttl}
}

// Success posts a success notice, replacing any pending notice.
func (n *Notices) Success(format string, args ...any) {
	n.post(NoticeSuccess, fmt.Sprintf(format, args...))
}

// Error posts an error notice, replacing any pending notice.
func (n *Notices) Error(format string, args ...any) {
	n.post(NoticeError, fmt.Sprintf(format, args...))
}

func (n *Notices) post(kind NoticeKind, message string) {
	n.current = &Notice{
		Kind:      kind,
		Message:   message,
		ExpiresAt: n.clock.Now().Add(n.ttl),
	}
}

// Current returns the pending notice, or nil when none is pending or the
// pending one has expired.
func (n *Notices) Current() *Notice {
	if n.current == nil {
		return nil
	}
	if !n.clock.Now().Before(n.current.ExpiresAt) {
		n.current = nil
		return nil
	}
	return n.current
}

// Clear dismisses the pending notice immediately.
func (n *Notices) Clear() {
	n.current = nil
}
