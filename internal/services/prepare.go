package services

import (
	"regexp"
	"strings"
	"time"

	"devevent/internal/domain"
)

// timeRegex matches 24-hour HH:MM (hours 00-23, minutes 00-59).
var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// slugSeparatorRuns matches every run of characters outside [a-z0-9].
var slugSeparatorRuns = regexp.MustCompile(`[^a-z0-9]+`)

// dateLayouts are the accepted input formats for the event date. The first
// layout that parses wins and the value is rewritten to canonical YYYY-MM-DD.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// requiredFields fixes the order in which completeness is checked.
var requiredFields = []string{
	"title", "slug", "description", "overview", "image", "venue", "location",
	"date", "time", "mode", "audience", "organizer", "agenda", "tags",
}

// Slugify derives a URL-safe slug from a title: lowercase, every run of
// characters outside [a-z0-9] replaced with a single hyphen, leading and
// trailing hyphens trimmed. Deterministic; a title of only punctuation
// yields the empty string.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugSeparatorRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// NormalizeDate parses raw as a calendar date and rewrites it to YYYY-MM-DD.
// Returns domain.ErrInvalidDate when no accepted layout matches.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", domain.ErrInvalidDate
}

// PrepareEvent validates and canonicalizes raw event fields into an Event
// ready for persistence. It has no side effects; storing the result (and
// enforcing slug uniqueness) is the caller's responsibility.
//
// Rules, in order: scalars are trimmed; the slug is derived from the title
// when absent; every required field must be non-empty (first offender wins);
// the date is normalized to YYYY-MM-DD; the time must already be 24-hour
// HH:MM; the mode must be one of online, offline, hybrid.
func PrepareEvent(in domain.EventInput) (*domain.Event, error) {
	e := &domain.Event{
		Title:       strings.TrimSpace(in.Title),
		Slug:        strings.TrimSpace(in.Slug),
		Description: strings.TrimSpace(in.Description),
		Overview:    strings.TrimSpace(in.Overview),
		Image:       strings.TrimSpace(in.Image),
		Venue:       strings.TrimSpace(in.Venue),
		Location:    strings.TrimSpace(in.Location),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Mode:        strings.ToLower(strings.TrimSpace(in.Mode)),
		Audience:    strings.TrimSpace(in.Audience),
		Organizer:   strings.TrimSpace(in.Organizer),
		Agenda:      cleanList(in.Agenda),
		Tags:        dedupeList(in.Tags),
	}

	if e.Slug == "" && e.Title != "" {
		e.Slug = Slugify(e.Title)
	} else {
		e.Slug = strings.ToLower(e.Slug)
	}

	for _, field := range requiredFields {
		if emptyField(e, field) {
			return nil, &domain.MissingFieldError{Field: field}
		}
	}

	date, err := NormalizeDate(e.Date)
	if err != nil {
		return nil, err
	}
	e.Date = date

	if !timeRegex.MatchString(e.Time) {
		return nil, domain.ErrInvalidTime
	}

	switch e.Mode {
	case domain.ModeOnline, domain.ModeOffline, domain.ModeHybrid:
	default:
		return nil, domain.ErrInvalidMode
	}

	return e, nil
}

func emptyField(e *domain.Event, field string) bool {
	switch field {
	case "title":
		return e.Title == ""
	case "slug":
		return e.Slug == ""
	case "description":
		return e.Description == ""
	case "overview":
		return e.Overview == ""
	case "image":
		return e.Image == ""
	case "venue":
		return e.Venue == ""
	case "location":
		return e.Location == ""
	case "date":
		return e.Date == ""
	case "time":
		return e.Time == ""
	case "mode":
		return e.Mode == ""
	case "audience":
		return e.Audience == ""
	case "organizer":
		return e.Organizer == ""
	case "agenda":
		return len(e.Agenda) == 0
	case "tags":
		return len(e.Tags) == 0
	}
	return false
}

// cleanList trims items and drops empties, preserving order.
func cleanList(items []string) []string {
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}

// dedupeList trims items, drops empties and duplicates, preserving the
// insertion order of first occurrences.
func dedupeList(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
