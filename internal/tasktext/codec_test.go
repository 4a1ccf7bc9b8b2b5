package tasktext

import "testing"

func TestEncode(t *testing.T) {
	got := Encode("Ship report", "09:00", "10:30", "finalize draft")
	want := "📌 Ship report (09:00-10:30): finalize draft"
	if got != want {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "📌 Ship report (09:00-10:30): finalize draft", "Ship report"},
		{"legacy clock marker", "⏰ Standup (09:30-09:45): blockers", "Standup"},
		{"legacy pin marker", "📍 Errand", "Errand"},
		{"legacy bullet", "• Buy milk (18:00-18:15): on the way home", "Buy milk"},
		{"no range", "📌 Just a title", "Just a title"},
		{"no marker", "plain text line", "plain text line"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Title(tc.in); got != tc.want {
				t.Fatalf("Title(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTimeRange(t *testing.T) {
	start, end, ok := TimeRange("📌 Ship report (09:00-10:30): finalize draft")
	if !ok {
		t.Fatal("expected time range")
	}
	if start != "09:00" || end != "10:30" {
		t.Fatalf("unexpected range: %q-%q", start, end)
	}
}

func TestTimeRangeMissingDelimiters(t *testing.T) {
	cases := []string{
		"📌 No range at all",
		"📌 Open only (09:00",
		"📌 No dash (0900): x",
		"📌 No close (09:00-10:30: x",
	}
	for _, in := range cases {
		if _, _, ok := TimeRange(in); ok {
			t.Fatalf("expected no range for %q", in)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	text := Encode("Ship report", "09:00", "10:30", "finalize draft")
	if got := Title(text); got != "Ship report" {
		t.Fatalf("title round trip: %q", got)
	}
	start, end, ok := TimeRange(text)
	if !ok || start != "09:00" || end != "10:30" {
		t.Fatalf("range round trip: %q-%q ok=%v", start, end, ok)
	}
}
