package reminder

import (
	"testing"
	"time"

	"teamtasker/internal/model"
	"teamtasker/internal/store"
)

func fixedClock() func() time.Time {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
	return func() time.Time { return now }
}

func waitNotification(t *testing.T, ch <-chan Notification, timeout time.Duration) Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for notification")
		return Notification{}
	}
}

func expectSilence(t *testing.T, ch <-chan Notification, d time.Duration) {
	t.Helper()
	select {
	case n := <-ch:
		t.Fatalf("unexpected notification: %+v", n)
	case <-time.After(d):
	}
}

func TestEngineEmitsAllThreeBuckets(t *testing.T) {
	st := store.New()
	today := model.DayKey("2026-03-10")
	st.Add(today, model.NewTask("due today", "", "09:00", "09:30"))
	st.Add(today.AddDays(1), model.NewTask("upcoming", "write agenda", "11:00", "12:00"))
	st.Add(today.AddDays(-1), model.NewTask("missed", "", "15:00", "16:00"))

	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	defer engine.Stop()

	got := make(map[Bucket]Notification, 3)
	for i := 0; i < 3; i++ {
		n := waitNotification(t, engine.C(), time.Second)
		got[n.Bucket] = n
	}

	todayN, ok := got[BucketToday]
	if !ok {
		t.Fatal("missing TODAY notification")
	}
	if todayN.Title != "Task Due Today" || todayN.Message != "due today" {
		t.Fatalf("unexpected TODAY notification: %+v", todayN)
	}
	if todayN.Severity != SeverityWarning {
		t.Fatalf("end 09:00 at 10:00 should escalate to warning, got %s", todayN.Severity)
	}

	tmr, ok := got[BucketTomorrow]
	if !ok {
		t.Fatal("missing TMR notification")
	}
	if tmr.Title != "Upcoming Task (Tomorrow)" {
		t.Fatalf("unexpected TMR title: %q", tmr.Title)
	}
	if tmr.Message != "📌 upcoming (11:00-12:00): write agenda" {
		t.Fatalf("TMR must carry the raw encoded text, got %q", tmr.Message)
	}

	ovd, ok := got[BucketOverdue]
	if !ok {
		t.Fatal("missing OVD notification")
	}
	if ovd.Title != "Task Overdue" || ovd.Message != "missed" || ovd.Severity != SeverityWarning {
		t.Fatalf("unexpected OVD notification: %+v", ovd)
	}

	// Many more ticks pass; nothing re-emits.
	expectSilence(t, engine.C(), 50*time.Millisecond)
}

func TestEngineEmitsOncePerTaskAcrossTicks(t *testing.T) {
	st := store.New()
	today := model.DayKey("2026-03-10")
	task := model.NewTask("one shot", "", "09:59", "09:59")
	st.Add(today, task)

	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	defer engine.Stop()

	first := waitNotification(t, engine.C(), time.Second)
	if first.TaskID != task.ID || first.Bucket != BucketToday {
		t.Fatalf("unexpected notification: %+v", first)
	}
	expectSilence(t, engine.C(), 50*time.Millisecond)
}

func TestEngineDedupSurvivesTextEdit(t *testing.T) {
	st := store.New()
	today := model.DayKey("2026-03-10")
	task := model.NewTask("original", "", "08:00", "08:30")
	st.Add(today, task)

	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	defer engine.Stop()

	waitNotification(t, engine.C(), time.Second)

	// Editing the text keeps the id, so the dedup identity holds.
	task.Title = "edited"
	if err := st.Update(today, task); err != nil {
		t.Fatalf("update: %v", err)
	}
	expectSilence(t, engine.C(), 50*time.Millisecond)
}

func TestEngineSkipsDoneExceptTomorrow(t *testing.T) {
	st := store.New()
	today := model.DayKey("2026-03-10")

	doneToday := model.NewTask("done today", "", "09:00", "09:30")
	doneToday.Done = true
	st.Add(today, doneToday)

	doneYesterday := model.NewTask("done yesterday", "", "09:00", "09:30")
	doneYesterday.Done = true
	st.Add(today.AddDays(-1), doneYesterday)

	doneTomorrow := model.NewTask("done tomorrow", "", "09:00", "09:30")
	doneTomorrow.Done = true
	st.Add(today.AddDays(1), doneTomorrow)

	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	defer engine.Stop()

	n := waitNotification(t, engine.C(), time.Second)
	if n.Bucket != BucketTomorrow || n.TaskID != doneTomorrow.ID {
		t.Fatalf("expected only the tomorrow task, got %+v", n)
	}
	expectSilence(t, engine.C(), 50*time.Millisecond)
}

func TestEngineDeliveredNotificationIsFinal(t *testing.T) {
	st := store.New()
	today := model.DayKey("2026-03-10")
	yesterday := today.AddDays(-1)
	task := model.NewTask("late", "", "09:00", "09:30")
	st.Add(yesterday, task)

	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	defer engine.Stop()

	n := waitNotification(t, engine.C(), time.Second)
	if n.Bucket != BucketOverdue {
		t.Fatalf("expected OVD, got %+v", n)
	}

	// Marking done afterwards neither retracts nor re-emits. The store
	// still reports current done state for display.
	if err := st.Toggle(yesterday, task.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	expectSilence(t, engine.C(), 50*time.Millisecond)
	if got := st.Tasks(yesterday); !got[0].Done {
		t.Fatal("store should reflect done state")
	}
}

func TestEnginePicksUpLateAdditions(t *testing.T) {
	st := store.New()
	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	defer engine.Stop()

	expectSilence(t, engine.C(), 30*time.Millisecond)

	task := model.NewTask("added later", "", "09:58", "09:59")
	st.Add("2026-03-10", task)

	n := waitNotification(t, engine.C(), time.Second)
	if n.TaskID != task.ID || n.Bucket != BucketToday {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestEngineDropsWhenConsumerIsSlow(t *testing.T) {
	st := store.New()
	today := model.DayKey("2026-03-10")
	for i := 0; i < 10; i++ {
		st.Add(today, model.NewTask("burst", "", "09:00", "09:30"))
	}

	engine := NewEngine(st, WithInterval(5*time.Millisecond), WithClock(fixedClock()), WithBuffer(1))
	engine.Start()
	defer engine.Stop()

	time.Sleep(100 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped notifications, got %d", engine.Dropped())
	}
}

func TestEngineStopClosesChannel(t *testing.T) {
	engine := NewEngine(store.New(), WithInterval(5*time.Millisecond), WithClock(fixedClock()))
	engine.Start()
	engine.Stop()

	if _, ok := <-engine.C(); ok {
		t.Fatal("expected closed channel after Stop")
	}
	// Stop twice is fine.
	engine.Stop()
}
