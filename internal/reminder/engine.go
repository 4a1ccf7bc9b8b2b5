// Package reminder runs the background polling loop that turns stored tasks
// into due, upcoming and overdue notifications.
package reminder

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"teamtasker/internal/log"
	"teamtasker/internal/model"
	"teamtasker/internal/store"
	"teamtasker/internal/tasktext"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Bucket is one classification window evaluated per tick.
type Bucket string

const (
	BucketToday    Bucket = "TODAY"
	BucketTomorrow Bucket = "TMR"
	BucketOverdue  Bucket = "OVD"
)

// Notification is an emitted reminder event. Delivery is fire and forget;
// the engine never waits for acknowledgment.
type Notification struct {
	Bucket   Bucket
	Day      model.DayKey
	TaskID   string
	Title    string
	Message  string
	Severity Severity
	At       time.Time
}

const (
	DefaultInterval = time.Second
	DefaultBuffer   = 64
)

// Engine scans the store once per tick and emits each (bucket, day, task)
// identity at most once for the process lifetime. The seen set is never
// pruned; task IDs are stable across edits, so an edited task does not
// re-remind within the same bucket and day.
type Engine struct {
	store    *store.Store
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	seen    map[string]struct{}
	started bool
	stopped bool

	out     chan Notification
	stopCh  chan struct{}
	doneCh  chan struct{}
	dropped uint64
}

type Option func(*Engine)

// WithInterval overrides the tick period. Anything at or under a minute is
// fine since reminder granularity is time of day.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithClock injects the wall clock reading, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func WithBuffer(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.out = make(chan Notification, size)
		}
	}
}

func NewEngine(st *store.Store, opts ...Option) *Engine {
	e := &Engine{
		store:    st,
		interval: DefaultInterval,
		now:      time.Now,
		seen:     make(map[string]struct{}),
		out:      make(chan Notification, DefaultBuffer),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) C() <-chan Notification {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	go e.loop()
}

// Stop cancels the loop and waits for the current tick to finish.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.tick()
		case <-e.stopCh:
			return
		}
	}
}

// tick runs one scan. A failure inside classification is isolated here so
// the loop self-heals on the next tick.
func (e *Engine) tick() {
	defer func() {
		if r := recover(); r != nil {
			log.Error("reminder tick failed", fmt.Errorf("%v", r))
		}
	}()
	now := e.now()
	today := model.DayKeyFor(now)
	tomorrow := today.AddDays(1)
	yesterday := today.AddDays(-1)

	snap := e.store.Snapshot(today, tomorrow, yesterday)

	for _, task := range snap[today] {
		if task.Done {
			continue
		}
		severity := SeverityInfo
		if IsPastDue(task, today, now) {
			severity = SeverityWarning
		}
		e.emitOnce(Notification{
			Bucket:   BucketToday,
			Day:      today,
			TaskID:   task.ID,
			Title:    "Task Due Today",
			Message:  task.Title,
			Severity: severity,
			At:       now,
		})
	}
	for _, task := range snap[tomorrow] {
		e.emitOnce(Notification{
			Bucket:   BucketTomorrow,
			Day:      tomorrow,
			TaskID:   task.ID,
			Title:    "Upcoming Task (Tomorrow)",
			Message:  tasktext.Encode(task.Title, task.Start, task.End, task.Description),
			Severity: SeverityInfo,
			At:       now,
		})
	}
	for _, task := range snap[yesterday] {
		if task.Done {
			continue
		}
		e.emitOnce(Notification{
			Bucket:   BucketOverdue,
			Day:      yesterday,
			TaskID:   task.ID,
			Title:    "Task Overdue",
			Message:  task.Title,
			Severity: SeverityWarning,
			At:       now,
		})
	}
}

func (e *Engine) emitOnce(n Notification) {
	key := string(n.Bucket) + "|" + string(n.Day) + "|" + n.TaskID
	e.mu.Lock()
	if _, ok := e.seen[key]; ok {
		e.mu.Unlock()
		return
	}
	e.seen[key] = struct{}{}
	e.mu.Unlock()

	select {
	case e.out <- n:
	default:
		atomic.AddUint64(&e.dropped, 1)
		log.Debug("notification dropped", "bucket", string(n.Bucket), "task", n.TaskID)
	}
}
