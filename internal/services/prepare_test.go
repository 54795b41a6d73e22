package services

import (
	"errors"
	"testing"

	"devevent/internal/domain"
)

func validInput() domain.EventInput {
	return domain.EventInput{
		Title:       "Next.js Conf 2025",
		Description: "The conference for Next.js developers",
		Overview:    "Talks, workshops and networking",
		Image:       "https://cdn.example.com/events/nextjs.png",
		Venue:       "Moscone Center",
		Location:    "San Francisco, CA",
		Date:        "2025-11-15",
		Time:        "09:00",
		Mode:        "offline",
		Audience:    "Developers",
		Organizer:   "Vercel",
		Agenda:      []string{"Keynote", "Workshops"},
		Tags:        []string{"nextjs", "react"},
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Next.js Conf 2025", "next-js-conf-2025"},
		{"  React Summit  ", "react-summit"},
		{"AI & ML Conference", "ai-ml-conference"},
		{"!!!", ""},
		{"--hello--world--", "hello-world"},
		{"ALLCAPS", "allcaps"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	titles := []string{"Next.js Conf 2025", "Web3 Hackathon!", "DevOps Days (2026)"}
	for _, title := range titles {
		first := Slugify(title)
		for i := 0; i < 5; i++ {
			if got := Slugify(title); got != first {
				t.Fatalf("Slugify(%q) not deterministic: %q vs %q", title, first, got)
			}
		}
	}
}

func TestPrepareEvent_DerivesSlug(t *testing.T) {
	in := validInput()
	event, err := PrepareEvent(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Slug != "next-js-conf-2025" {
		t.Errorf("expected derived slug %q, got %q", "next-js-conf-2025", event.Slug)
	}
}

func TestPrepareEvent_KeepsExplicitSlug(t *testing.T) {
	in := validInput()
	in.Slug = "My-Custom-Slug"
	event, err := PrepareEvent(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Slug != "my-custom-slug" {
		t.Errorf("expected slug %q, got %q", "my-custom-slug", event.Slug)
	}
}

func TestPrepareEvent_PunctuationTitleReportsMissingSlug(t *testing.T) {
	in := validInput()
	in.Title = "!!!"
	_, err := PrepareEvent(in)
	var missing *domain.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "slug" {
		t.Errorf("expected missing field %q, got %q", "slug", missing.Field)
	}
}

func TestPrepareEvent_MissingFieldOrder(t *testing.T) {
	// Both overview and venue are empty; overview comes first in the fixed order.
	in := validInput()
	in.Overview = ""
	in.Venue = "   "
	_, err := PrepareEvent(in)
	var missing *domain.MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "overview" {
		t.Errorf("expected missing field %q, got %q", "overview", missing.Field)
	}
}

func TestPrepareEvent_EmptyAgendaAndTags(t *testing.T) {
	in := validInput()
	in.Agenda = []string{"  ", ""}
	_, err := PrepareEvent(in)
	var missing *domain.MissingFieldError
	if !errors.As(err, &missing) || missing.Field != "agenda" {
		t.Fatalf("expected MissingFieldError for agenda, got %v", err)
	}

	in = validInput()
	in.Tags = nil
	_, err = PrepareEvent(in)
	if !errors.As(err, &missing) || missing.Field != "tags" {
		t.Fatalf("expected MissingFieldError for tags, got %v", err)
	}
}

func TestPrepareEvent_DateNormalization(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		want    string
		wantErr error
	}{
		{"iso passthrough", "2025-11-15", "2025-11-15", nil},
		{"rfc3339", "2025-11-15T09:00:00Z", "2025-11-15", nil},
		{"slash", "2025/11/15", "2025-11-15", nil},
		{"long form", "November 15, 2025", "2025-11-15", nil},
		{"short form", "Nov 15, 2025", "2025-11-15", nil},
		{"out of range", "2025-13-45", "", domain.ErrInvalidDate},
		{"garbage", "not-a-date", "", domain.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			in.Date = tt.date
			event, err := PrepareEvent(in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if event.Date != tt.want {
				t.Errorf("expected date %q, got %q", tt.want, event.Date)
			}
		})
	}
}

func TestPrepareEvent_TimeValidation(t *testing.T) {
	tests := []struct {
		time    string
		wantErr bool
	}{
		{"09:00", false},
		{"23:59", false},
		{"00:00", false},
		{"25:61", true},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"0900", true},
	}
	for _, tt := range tests {
		in := validInput()
		in.Time = tt.time
		event, err := PrepareEvent(in)
		if tt.wantErr {
			if !errors.Is(err, domain.ErrInvalidTime) {
				t.Errorf("time %q: expected ErrInvalidTime, got %v", tt.time, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("time %q: unexpected error: %v", tt.time, err)
			continue
		}
		if event.Time != tt.time {
			t.Errorf("time %q must be accepted unchanged, got %q", tt.time, event.Time)
		}
	}
}

func TestPrepareEvent_ModeValidation(t *testing.T) {
	for _, mode := range []string{"online", "offline", "hybrid", "Online", " HYBRID "} {
		in := validInput()
		in.Mode = mode
		if _, err := PrepareEvent(in); err != nil {
			t.Errorf("mode %q: unexpected error: %v", mode, err)
		}
	}
	in := validInput()
	in.Mode = "in-person"
	if _, err := PrepareEvent(in); !errors.Is(err, domain.ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}

func TestPrepareEvent_DedupesTagsPreservingOrder(t *testing.T) {
	in := validInput()
	in.Tags = []string{"go", " react ", "go", "react", "cloud"}
	event, err := PrepareEvent(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"go", "react", "cloud"}
	if len(event.Tags) != len(want) {
		t.Fatalf("expected tags %v, got %v", want, event.Tags)
	}
	for i := range want {
		if event.Tags[i] != want[i] {
			t.Fatalf("expected tags %v, got %v", want, event.Tags)
		}
	}
}

func TestPrepareEvent_TrimsScalars(t *testing.T) {
	in := validInput()
	in.Title = "  Next.js Conf 2025  "
	in.Venue = " Moscone Center "
	event, err := PrepareEvent(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Title != "Next.js Conf 2025" {
		t.Errorf("title not trimmed: %q", event.Title)
	}
	if event.Venue != "Moscone Center" {
		t.Errorf("venue not trimmed: %q", event.Venue)
	}
}
