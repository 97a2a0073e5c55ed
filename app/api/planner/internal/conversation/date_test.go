package conversation_test

import (
	"testing"
	"time"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

// 2026-09-01 is a Tuesday.
var tuesday = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestExtractDateTodayBothLanguages(t *testing.T) {
	en := conversation.ExtractDate("let's go today", tuesday)
	es := conversation.ExtractDate("vamos hoy", tuesday)
	if en != es {
		t.Fatalf("today/hoy disagree: %q vs %q", en, es)
	}
	if en != "2026-09-01" {
		t.Errorf("today = %q, want 2026-09-01", en)
	}
}

func TestExtractDateTomorrow(t *testing.T) {
	if got := conversation.ExtractDate("tomorrow evening", tuesday); got != "2026-09-02" {
		t.Errorf("tomorrow = %q, want 2026-09-02", got)
	}
	if got := conversation.ExtractDate("mañana", tuesday); got != "2026-09-02" {
		t.Errorf("mañana = %q, want 2026-09-02", got)
	}
}

func TestExtractDateMorningIsNotTomorrow(t *testing.T) {
	// "en la mañana" is a time of day, not a date.
	if got := conversation.ExtractDate("en la mañana", tuesday); got != "" {
		t.Errorf("en la mañana = %q, want empty", got)
	}
}

func TestExtractDateNamedWeekday(t *testing.T) {
	// Tuesday -> this Saturday is 4 days out, next Saturday 11.
	if got := conversation.ExtractDate("this saturday", tuesday); got != "2026-09-05" {
		t.Errorf("this saturday = %q, want 2026-09-05", got)
	}
	if got := conversation.ExtractDate("next saturday", tuesday); got != "2026-09-12" {
		t.Errorf("next saturday = %q, want 2026-09-12", got)
	}

	saturday := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	if got := conversation.ExtractDate("this saturday", saturday); got != "2026-09-12" {
		t.Errorf("this saturday on a saturday = %q, want 2026-09-12", got)
	}
	if got := conversation.ExtractDate("next saturday", saturday); got != "2026-09-19" {
		t.Errorf("next saturday on a saturday = %q, want 2026-09-19", got)
	}
}

func TestExtractDateSlashFormat(t *testing.T) {
	if got := conversation.ExtractDate("on 12/25", tuesday); got != "2026-12-25" {
		t.Errorf("12/25 = %q, want 2026-12-25", got)
	}
	if got := conversation.ExtractDate("on 12/25/27", tuesday); got != "2027-12-25" {
		t.Errorf("12/25/27 = %q, want 2027-12-25", got)
	}
}

func TestResolveDateKeyword(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"chips.today", "2026-09-01"},
		{"hoy", "2026-09-01"},
		{"chips.tomorrow", "2026-09-02"},
		{"weekend", "2026-09-05"},
		{"2026-12-25", "2026-12-25"},
		// Unparseable answers fall back to today.
		{"whenever really", "2026-09-01"},
	}
	for _, c := range cases {
		if got := conversation.ResolveDateKeyword(c.message, tuesday); got != c.want {
			t.Errorf("ResolveDateKeyword(%q) = %q, want %q", c.message, got, c.want)
		}
	}
}

func TestResolveDateKeywordWeekendOnSaturday(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)
	if got := conversation.ResolveDateKeyword("fin de semana", saturday); got != "2026-09-12" {
		t.Errorf("weekend on a saturday = %q, want 2026-09-12", got)
	}
}
