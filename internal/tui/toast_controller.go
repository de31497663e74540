package tui

import (
	"slices"
	"time"

	"github.com/colonyops/artview/internal/core/notify"
)

const (
	defaultToastTTL   = 5 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 50
)

// toast is one visible notification. Repeats of the same group key are
// folded into it and counted.
type toast struct {
	notification notify.Notification
	remaining    time.Duration
	repeats      int
}

// ToastController owns the visible toast stack, oldest first. Repeated
// notifications, such as retries of a page that keeps failing, refresh a
// single toast instead of stacking copies.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push shows n. If a toast with the same group key is visible it is moved
// to the bottom with its TTL reset and its repeat count bumped. The stack
// keeps at most defaultMaxToasts entries, evicting the oldest.
func (c *ToastController) Push(n notify.Notification) {
	t := toast{notification: n, remaining: defaultToastTTL, repeats: 1}

	key := n.GroupKey()
	if i := slices.IndexFunc(c.toasts, func(t toast) bool { return t.notification.GroupKey() == key }); i >= 0 {
		t.repeats = c.toasts[i].repeats + 1
		c.toasts = slices.Delete(c.toasts, i, i+1)
	}

	c.toasts = append(c.toasts, t)
	if over := len(c.toasts) - defaultMaxToasts; over > 0 {
		c.toasts = slices.Delete(c.toasts, 0, over)
	}
}

// Tick ages every toast by d and drops the expired ones.
func (c *ToastController) Tick(d time.Duration) {
	c.toasts = slices.DeleteFunc(c.toasts, func(t toast) bool {
		return t.remaining <= d
	})
	for i := range c.toasts {
		c.toasts[i].remaining -= d
	}
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if n := len(c.toasts); n > 0 {
		c.toasts = c.toasts[:n-1]
	}
}

func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the visible toasts, oldest first.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}

// Ticking reports whether a tick is scheduled.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
