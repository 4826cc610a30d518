package backend

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/atomicstack/popup-settings/internal/settings"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSettings Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// DefaultMinReadGap bounds how often the settings file is stat'ed and read,
// however often notifications arrive.
const DefaultMinReadGap = 250 * time.Millisecond

// Mode names how a watcher learns about changes.
type Mode string

const (
	// ModeNotify polls on a timer and also wakes on filesystem notifications.
	ModeNotify Mode = "fsnotify"
	// ModePolling relies on the timer alone.
	ModePolling Mode = "polling"
)

// Option customises a Watcher.
type Option func(*Watcher)

// WithMinReadGap sets the minimum time between two reads of the settings
// file. Zero or less disables the gap.
func WithMinReadGap(gap time.Duration) Option {
	return func(w *Watcher) {
		w.gate.gap = gap
	}
}

// Watcher polls the settings file at a fixed interval and publishes an event
// whenever its modification time changes. Filesystem notifications for the
// file, when available, trigger an early poll.
type Watcher struct {
	path     string
	interval time.Duration
	gate     readGate
	mode     Mode

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wake   <-chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls path every interval.
func NewWatcher(path string, interval time.Duration, opts ...Option) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		gate:     readGate{gap: DefaultMinReadGap},
		mode:     ModePolling,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wake = w.startNotifier()
	if w.wake != nil {
		w.mode = ModeNotify
	}
	w.startSettingsPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current read
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// Mode reports whether notifications are in use.
func (w *Watcher) Mode() Mode {
	return w.mode
}

// ProbeMode reports the mode a watcher for path would run in, without
// starting one.
func ProbeMode(path string) Mode {
	notifier, err := newNotifier(path)
	if err != nil {
		return ModePolling
	}
	notifier.Close()
	return ModeNotify
}

// readGate spaces out reads of the settings file. It is used by the poller
// goroutine only.
type readGate struct {
	gap  time.Duration
	last time.Time
}

// wait blocks until gap has passed since the previous read, then records
// the new read. It returns false if ctx ends first.
func (g *readGate) wait(ctx context.Context) bool {
	if g.gap > 0 && !g.last.IsZero() {
		if delay := time.Until(g.last.Add(g.gap)); delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return false
			case <-timer.C:
			}
		}
	}
	g.last = time.Now()
	return true
}

func (w *Watcher) startSettingsPoller() {
	var (
		seen    bool
		lastMod time.Time
	)
	w.wg.Add(1)
	go w.poll(KindSettings, func(ctx context.Context) (interface{}, bool, error) {
		if !w.gate.wait(ctx) {
			return nil, false, nil
		}
		mod, err := modTime(w.path)
		if err != nil {
			return nil, true, err
		}
		if seen && mod.Equal(lastMod) {
			return nil, false, nil
		}
		values, err := settings.Load(w.path)
		if err != nil {
			return nil, true, err
		}
		seen = true
		lastMod = mod
		return values, true, nil
	})
}

// poll runs fetch immediately and then on every tick. fetch reports whether
// the result is worth emitting.
func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-w.wake:
			if !emit() {
				return
			}
		}
	}
}

// startNotifier watches the settings file's directory, since saves replace
// the file by rename. It returns nil when notifications are unavailable,
// leaving the ticker as the only trigger.
func (w *Watcher) startNotifier() <-chan struct{} {
	notifier, err := newNotifier(w.path)
	if err != nil {
		return nil
	}
	wake := make(chan struct{}, 1)
	target := filepath.Clean(w.path)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer notifier.Close()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-notifier.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != target {
					continue
				}
				select {
				case wake <- struct{}{}:
				default:
				}
			case _, ok := <-notifier.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return wake
}

func newNotifier(path string) (*fsnotify.Watcher, error) {
	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := notifier.Add(filepath.Dir(path)); err != nil {
		notifier.Close()
		return nil, err
	}
	return notifier, nil
}

// modTime returns the zero time for a missing file so that creating it
// later counts as a change.
func modTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
