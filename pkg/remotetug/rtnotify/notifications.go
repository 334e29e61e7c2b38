// Package rtnotify keeps short-lived user notifications.
package rtnotify

import (
	"time"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

const (
	DefaultCapacity = 5
	DefaultTTL      = 5 * time.Second
)

type Notification struct {
	ID       uint64
	Message  string
	Severity Severity
	Created  time.Time
	TTL      time.Duration
}

type Option func(l *List)

func WithCapacity(capacity int) Option {
	return func(l *List) {
		if capacity > 0 {
			l.capacity = capacity
		}
	}
}

func WithTTL(ttl time.Duration) Option {
	return func(l *List) {
		l.ttl = ttl
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling expiry.
func WithAfterFunc(afterFunc func(d time.Duration, f func())) Option {
	return func(l *List) {
		l.afterFunc = afterFunc
	}
}

// WithPoster sets how expiry callbacks get back onto the owning goroutine.
func WithPoster(post func(func())) Option {
	return func(l *List) {
		l.post = post
	}
}

// WithOnChange registers a callback run after every add or removal.
func WithOnChange(onChange func()) Option {
	return func(l *List) {
		l.onChange = onChange
	}
}

func WithClock(now func() time.Time) Option {
	return func(l *List) {
		l.now = now
	}
}

// List is a bounded, insertion-ordered set of notifications.
// It is meant to be used from a single goroutine; expiry is posted back
// through the poster.
type List struct {
	items     []Notification
	lastID    uint64
	capacity  int
	ttl       time.Duration
	afterFunc func(d time.Duration, f func())
	post      func(func())
	onChange  func()
	now       func() time.Time
}

func New(o ...Option) *List {
	l := &List{
		capacity: DefaultCapacity,
		ttl:      DefaultTTL,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		post: func(f func()) { f() },
		now:  time.Now,
	}
	for _, opt := range o {
		opt(l)
	}
	return l
}

// Add appends a notification, evicting the oldest ones above capacity.
func (l *List) Add(severity Severity, message string) Notification {
	l.lastID++
	n := Notification{
		ID:       l.lastID,
		Message:  message,
		Severity: severity,
		Created:  l.now(),
		TTL:      l.ttl,
	}
	l.items = append(l.items, n)
	if over := len(l.items) - l.capacity; over > 0 {
		l.items = append(l.items[:0:0], l.items[over:]...)
	}
	if l.ttl > 0 {
		id := n.ID
		l.afterFunc(l.ttl, func() {
			l.post(func() {
				l.Remove(id)
			})
		})
	}
	l.changed()
	return n
}

func (l *List) Info(message string) Notification {
	return l.Add(SeverityInfo, message)
}

func (l *List) Success(message string) Notification {
	return l.Add(SeveritySuccess, message)
}

func (l *List) Warning(message string) Notification {
	return l.Add(SeverityWarning, message)
}

func (l *List) Error(message string) Notification {
	return l.Add(SeverityError, message)
}

// Remove drops the notification with the given id. Removing an unknown or
// already expired id is a no-op and reports false.
func (l *List) Remove(id uint64) bool {
	for i, n := range l.items {
		if n.ID == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			l.changed()
			return true
		}
	}
	return false
}

// Items returns a copy, oldest first.
func (l *List) Items() []Notification {
	items := make([]Notification, len(l.items))
	copy(items, l.items)
	return items
}

func (l *List) Len() int {
	return len(l.items)
}

func (l *List) changed() {
	if l.onChange != nil {
		l.onChange()
	}
}
