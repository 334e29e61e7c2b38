package rtnotify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeScheduler struct {
	scheduled []func()
	delays    []time.Duration
}

func (s *fakeScheduler) afterFunc(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.scheduled = append(s.scheduled, f)
}

func messages(l *List) (result []string) {
	for _, n := range l.Items() {
		result = append(result, n.Message)
	}
	return
}

func TestList_Add(t *testing.T) {
	scheduler := &fakeScheduler{}
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var changes int
	l := New(
		WithAfterFunc(scheduler.afterFunc),
		WithClock(func() time.Time { return created }),
		WithOnChange(func() { changes++ }),
	)

	n := l.Success("Refreshed")
	assert.Equal(t, uint64(1), n.ID)
	assert.Equal(t, SeveritySuccess, n.Severity)
	assert.Equal(t, created, n.Created)
	assert.Equal(t, DefaultTTL, n.TTL)
	assert.Equal(t, []time.Duration{5 * time.Second}, scheduler.delays)
	assert.Equal(t, 1, changes)

	l.Error("Delete failed: HTTP 404: Not Found")
	assert.Equal(t, []string{"Refreshed", "Delete failed: HTTP 404: Not Found"}, messages(l))
}

func TestList_Capacity(t *testing.T) {
	scheduler := &fakeScheduler{}
	l := New(WithAfterFunc(scheduler.afterFunc), WithCapacity(3))
	for _, m := range []string{"1", "2", "3", "4", "5"} {
		l.Info(m)
	}
	assert.Equal(t, []string{"3", "4", "5"}, messages(l))

	// Expiry of an evicted notification leaves the survivors alone.
	scheduler.scheduled[0]()
	assert.Equal(t, 3, l.Len())
}

func TestList_ExpiryIsKeyedById(t *testing.T) {
	scheduler := &fakeScheduler{}
	var posted int
	l := New(WithAfterFunc(scheduler.afterFunc), WithPoster(func(f func()) {
		posted++
		f()
	}))
	l.Info("first")
	l.Warning("second")
	l.Info("third")

	scheduler.scheduled[1]()
	assert.Equal(t, []string{"first", "third"}, messages(l))
	assert.Equal(t, 1, posted)

	scheduler.scheduled[1]()
	assert.Equal(t, []string{"first", "third"}, messages(l))

	scheduler.scheduled[0]()
	scheduler.scheduled[2]()
	assert.Equal(t, 0, l.Len())
}

func TestList_Remove(t *testing.T) {
	l := New(WithTTL(0))
	n := l.Info("x")
	assert.True(t, l.Remove(n.ID))
	assert.False(t, l.Remove(n.ID))
}

func TestList_ItemsIsACopy(t *testing.T) {
	l := New(WithTTL(0))
	l.Info("x")
	items := l.Items()
	items[0].Message = "changed"
	assert.Equal(t, "x", l.Items()[0].Message)
}

func TestList_RealTimer(t *testing.T) {
	done := make(chan struct{})
	l := New(WithTTL(time.Millisecond), WithPoster(func(f func()) {
		f()
		close(done)
	}))
	l.Info("gone soon")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification did not expire")
	}
	assert.Equal(t, 0, l.Len())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "success", SeveritySuccess.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
