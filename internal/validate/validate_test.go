package validate_test

import (
	"testing"
	"time"

	"event-board-api/internal/model"
	"event-board-api/internal/validate"
)

var now = time.Date(2025, time.June, 15, 18, 30, 0, 0, time.UTC)

func newValidator(t *testing.T) *validate.Validator {
	t.Helper()
	v, err := validate.New(validate.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func validEvent() model.Event {
	return model.Event{
		Name:           "GopherCon",
		Date:           "20-06-2025",
		Time:           "09:30",
		Venue:          "Hall A",
		OrganizerName:  "Ada",
		OrganizerPhone: "0123456789",
		OrganizerEmail: "ada@example.com",
	}
}

func TestEventAccepted(t *testing.T) {
	v := newValidator(t)
	if res := v.Event(validEvent()); !res.Accepted {
		t.Fatalf("expected accepted, got %q", res.Reason)
	}
}

func TestEventRejections(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name   string
		edit   func(*model.Event)
		reason string
	}{
		{"empty name", func(e *model.Event) { e.Name = "" }, validate.MsgEventNameRequired},
		{"empty date", func(e *model.Event) { e.Date = "" }, validate.MsgDateRequired},
		{"empty time", func(e *model.Event) { e.Time = "" }, validate.MsgTimeRequired},
		{"empty venue", func(e *model.Event) { e.Venue = "" }, validate.MsgVenueRequired},
		{"empty organizer", func(e *model.Event) { e.OrganizerName = "" }, validate.MsgOrganizerNameRequired},
		{"empty phone", func(e *model.Event) { e.OrganizerPhone = "" }, validate.MsgOrganizerPhoneRequired},
		{"empty email", func(e *model.Event) { e.OrganizerEmail = "" }, validate.MsgOrganizerEmailRequired},
		{"iso date", func(e *model.Event) { e.Date = "2025-06-20" }, validate.MsgDateFormat},
		{"short year", func(e *model.Event) { e.Date = "20-06-25" }, validate.MsgDateFormat},
		{"feb 31", func(e *model.Event) { e.Date = "31-02-2025" }, validate.MsgDateInvalid},
		{"month 13", func(e *model.Event) { e.Date = "01-13-2025" }, validate.MsgDateInvalid},
		{"yesterday", func(e *model.Event) { e.Date = "14-06-2025" }, validate.MsgDatePast},
		{"24:00", func(e *model.Event) { e.Time = "24:00" }, validate.MsgTimeFormat},
		{"missing leading zero", func(e *model.Event) { e.Time = "9:30" }, validate.MsgTimeFormat},
		{"minute 60", func(e *model.Event) { e.Time = "10:60" }, validate.MsgTimeFormat},
		{"email without tld", func(e *model.Event) { e.OrganizerEmail = "ada@example" }, validate.MsgEmailFormat},
		{"email one letter tld", func(e *model.Event) { e.OrganizerEmail = "ada@example.c" }, validate.MsgEmailFormat},
		{"phone too short", func(e *model.Event) { e.OrganizerPhone = "12345" }, validate.MsgPhoneFormat},
		{"phone too long", func(e *model.Event) { e.OrganizerPhone = "12345678901234567" }, validate.MsgPhoneFormat},
		{"phone with plus", func(e *model.Event) { e.OrganizerPhone = "+1234567890" }, validate.MsgPhoneFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.edit(&e)
			res := v.Event(e)
			if res.Accepted {
				t.Fatal("expected rejection")
			}
			if res.Reason != tt.reason {
				t.Errorf("reason: got %q, want %q", res.Reason, tt.reason)
			}
		})
	}
}

func TestEventBoundariesAccepted(t *testing.T) {
	v := newValidator(t)

	tests := []struct {
		name string
		edit func(*model.Event)
	}{
		{"today", func(e *model.Event) { e.Date = "15-06-2025" }},
		{"leap day", func(e *model.Event) { e.Date = "29-02-2028" }},
		{"23:59", func(e *model.Event) { e.Time = "23:59" }},
		{"00:00", func(e *model.Event) { e.Time = "00:00" }},
		{"10 digit phone", func(e *model.Event) { e.OrganizerPhone = "1234567890" }},
		{"15 digit phone", func(e *model.Event) { e.OrganizerPhone = "123456789012345" }},
		{"email with plus", func(e *model.Event) { e.OrganizerEmail = "first.last+tag@mail.example.org" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.edit(&e)
			if res := v.Event(e); !res.Accepted {
				t.Errorf("expected accepted, got %q", res.Reason)
			}
		})
	}
}

// an empty name wins over every later failure
func TestEventFailFast(t *testing.T) {
	v := newValidator(t)
	res := v.Event(model.Event{Date: "bad", Time: "bad", OrganizerEmail: "bad", OrganizerPhone: "1"})
	if res.Reason != validate.MsgEventNameRequired {
		t.Errorf("got %q", res.Reason)
	}

	e := validEvent()
	e.Date = "31-02-2025"
	e.Time = "25:00"
	if res := v.Event(e); res.Reason != validate.MsgDateInvalid {
		t.Errorf("date should be reported before time, got %q", res.Reason)
	}
}

func TestRegistration(t *testing.T) {
	v := newValidator(t)
	events := []model.Event{{Name: "GopherCon"}, {Name: "RustConf"}}

	ok := model.Registration{UserName: "Bob", UserEmail: "bob@example.com", UserPhone: "0987654321", EventName: "GopherCon"}
	if res := v.Registration(ok, events); !res.Accepted {
		t.Fatalf("expected accepted, got %q", res.Reason)
	}

	tests := []struct {
		name   string
		edit   func(*model.Registration)
		reason string
	}{
		{"empty name", func(r *model.Registration) { r.UserName = "" }, validate.MsgUserNameRequired},
		{"empty email", func(r *model.Registration) { r.UserEmail = "" }, validate.MsgUserEmailRequired},
		{"empty phone", func(r *model.Registration) { r.UserPhone = "" }, validate.MsgUserPhoneRequired},
		{"empty event", func(r *model.Registration) { r.EventName = "" }, validate.MsgEventNameRequired},
		{"bad email", func(r *model.Registration) { r.UserEmail = "bob at example.com" }, validate.MsgEmailFormat},
		{"bad phone", func(r *model.Registration) { r.UserPhone = "098-765-4321" }, validate.MsgPhoneFormat},
		{"unknown event", func(r *model.Registration) { r.EventName = "PyCon" }, validate.MsgEventNotFound},
		{"case mismatch", func(r *model.Registration) { r.EventName = "gophercon" }, validate.MsgEventNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ok
			tt.edit(&r)
			res := v.Registration(r, events)
			if res.Accepted {
				t.Fatal("expected rejection")
			}
			if res.Reason != tt.reason {
				t.Errorf("reason: got %q, want %q", res.Reason, tt.reason)
			}
		})
	}
}

func TestRegistrationNoEvents(t *testing.T) {
	v := newValidator(t)
	r := model.Registration{UserName: "Bob", UserEmail: "bob@example.com", UserPhone: "0987654321", EventName: "GopherCon"}
	if res := v.Registration(r, nil); res.Reason != validate.MsgEventNotFound {
		t.Errorf("got %q", res.Reason)
	}
}
