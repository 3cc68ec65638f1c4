package extractor_test

import (
	"testing"
	"time"

	"ess-chatbot/internal/extractor"
	"ess-chatbot/pkg/datemath"
)

func newExtractor(t *testing.T) *extractor.Extractor {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	// Tuesday, June 10, 2025
	fixed := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	return extractor.New(parser, extractor.WithClock(func() time.Time { return fixed }))
}

func TestExtract(t *testing.T) {
	e := newExtractor(t)

	t.Run("Date And Duration", func(t *testing.T) {
		got := e.Extract("apply for leave on January 15 for 3 days")
		if got.Date == nil {
			t.Fatalf("expected a date")
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
		if got.DurationDays != 3 {
			t.Errorf("duration got %d, want 3", got.DurationDays)
		}
	})

	t.Run("All Absent Defaults", func(t *testing.T) {
		got := e.Extract("I need leave")
		if got.Date != nil {
			t.Errorf("expected absent date, got %v", got.Date)
		}
		if got.DurationDays != extractor.DefaultDurationDays {
			t.Errorf("duration got %d, want default %d", got.DurationDays, extractor.DefaultDurationDays)
		}
		if got.LeaveType != "" {
			t.Errorf("expected absent leave type, got %q", got.LeaveType)
		}
	})

	t.Run("Day Before Month", func(t *testing.T) {
		got := e.Extract("I will be out on 15 january")
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if got.Date == nil || !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
	})

	t.Run("ISO Date With Explicit Year", func(t *testing.T) {
		got := e.Extract("book leave for 2026-03-02")
		want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		if got.Date == nil || !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
	})

	t.Run("Slash Date Without Year Uses Current Year", func(t *testing.T) {
		got := e.Extract("leave on 15/1 please")
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		if got.Date == nil || !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
	})

	t.Run("Relative Date", func(t *testing.T) {
		got := e.Extract("I want leave tomorrow")
		want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
		if got.Date == nil || !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
	})

	t.Run("In N Days", func(t *testing.T) {
		got := e.Extract("I need leave in 3 days")
		want := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
		if got.Date == nil || !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
	})

	t.Run("Next Weekday", func(t *testing.T) {
		got := e.Extract("apply for leave next monday")
		// Base clock is Tuesday 2025-06-10.
		want := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		if got.Date == nil || !got.Date.Equal(want) {
			t.Errorf("date got %v, want %v", got.Date, want)
		}
	})

	t.Run("Impossible Date Is Absent", func(t *testing.T) {
		got := e.Extract("leave on 30 february")
		if got.Date != nil {
			t.Errorf("expected absent date for impossible calendar day, got %v", got.Date)
		}
	})

	t.Run("Weeks Convert To Days", func(t *testing.T) {
		got := e.Extract("need time off for 2 weeks")
		if got.DurationDays != 14 {
			t.Errorf("duration got %d, want 14", got.DurationDays)
		}
	})

	t.Run("Leave Type Synonyms", func(t *testing.T) {
		cases := map[string]string{
			"I am feeling unwell":          "sick",
			"apply sick leave":             "sick",
			"need a casual day off":        "casual",
			"annual vacation next month":   "earned",
			"maternity leave application":  "maternity",
			"leave without pay for a week": "unpaid",
			"urgent family matter":         "emergency",
		}
		for query, want := range cases {
			if got := e.Extract(query).LeaveType; got != want {
				t.Errorf("query %q: leave type got %q, want %q", query, got, want)
			}
		}
	})

	t.Run("Ill Does Not Match Inside Will", func(t *testing.T) {
		got := e.Extract("I will be in the office")
		if got.LeaveType != "" {
			t.Errorf("expected absent leave type, got %q", got.LeaveType)
		}
	})

	t.Run("Phone Number Normalized", func(t *testing.T) {
		cases := map[string]string{
			"update my phone to 9876543210":       "+91-9876543210",
			"new number +91 98765 43210":          "+91-9876543210",
			"change contact to 98765-43210":       "+91-9876543210",
			"my number is 1234567890":             "", // must start with 6-9
			"update my phone number when you can": "",
		}
		for query, want := range cases {
			if got := e.Extract(query).PhoneNumber; got != want {
				t.Errorf("query %q: phone got %q, want %q", query, got, want)
			}
		}
	})

	t.Run("Month Mentions Deduplicated", func(t *testing.T) {
		got := e.Extract("payslips for jan and January and march")
		if len(got.Months) != 2 || got.Months[0] != "january" || got.Months[1] != "march" {
			t.Errorf("months got %v, want [january march]", got.Months)
		}
	})

	t.Run("Never Fails On Garbage", func(t *testing.T) {
		for _, query := range []string{"", "   ", "!!!", "99/99/9999 for -3 days"} {
			got := e.Extract(query)
			if got.DurationDays < 1 {
				t.Errorf("query %q: duration must stay positive, got %d", query, got.DurationDays)
			}
		}
	})
}
