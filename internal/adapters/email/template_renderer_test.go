package email

import (
	"strings"
	"testing"

	"devevent/internal/domain"
)

func TestTemplateRenderer_BookingConfirmation(t *testing.T) {
	renderer := NewTemplateRenderer()
	data := domain.BookingConfirmationEmailData{
		Email:         "dev@example.com",
		EventTitle:    "Go Conf 2025",
		EventDate:     "2025-11-15",
		EventTime:     "09:00",
		EventVenue:    "Convention Center",
		EventLocation: "Berlin, Germany",
		EventMode:     "offline",
	}

	subject, htmlBody, textBody, err := renderer.Render("booking_confirmation", data)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(subject, "Go Conf 2025") {
		t.Errorf("subject missing event title: %q", subject)
	}
	for _, want := range []string{"Go Conf 2025", "2025-11-15", "09:00", "Convention Center"} {
		if !strings.Contains(htmlBody, want) {
			t.Errorf("html body missing %q", want)
		}
		if !strings.Contains(textBody, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	renderer := NewTemplateRenderer()
	if _, _, _, err := renderer.Render("does_not_exist", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
