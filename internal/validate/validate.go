// Package validate holds the submission and registration rules. Checks run in a
// fixed order and stop at the first failure; nothing here touches storage.
package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"event-board-api/internal/model"
)

// DateLayout is the DD-MM-YYYY layout event dates are submitted in.
const DateLayout = "02-01-2006"

// Rejection reasons.
const (
	MsgEventNameRequired      = "Enter the event name!"
	MsgDateRequired           = "Enter the date!"
	MsgTimeRequired           = "Enter the time!"
	MsgVenueRequired          = "Enter venue!"
	MsgOrganizerNameRequired  = "Enter organizer name!"
	MsgOrganizerPhoneRequired = "Enter organizer phone number!"
	MsgOrganizerEmailRequired = "Enter organizer email!"

	MsgDateFormat  = "Invalid date format! Use DD-MM-YYYY."
	MsgDateInvalid = "Invalid date! Ensure it is a real date."
	MsgDatePast    = "Event date must be today or in the future!"
	MsgTimeFormat  = "Invalid time format! Use HH:MM (24-hour format)."
	MsgEmailFormat = "Invalid email format! Please enter a valid email (e.g., example@mail.com)."
	MsgPhoneFormat = "Invalid phone number! Enter only digits (10-15 digits allowed)."

	MsgUserNameRequired  = "Enter your name!"
	MsgUserEmailRequired = "Enter your email!"
	MsgUserPhoneRequired = "Enter your phone number!"
	MsgEventNotFound     = "Event does not exist! Please enter a valid event."
)

var (
	datePattern  = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{4}$`)
	timePattern  = regexp.MustCompile(`^(?:[01][0-9]|2[0-3]):[0-5][0-9]$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
)

// Result is the outcome of a validation: accepted, or rejected with a reason.
type Result struct {
	Accepted bool
	Reason   string
}

func Accept() Result { return Result{Accepted: true} }

func Reject(reason string) Result { return Result{Reason: reason} }

type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

type Option func(*Validator)

// WithClock replaces time.Now for the "no past events" rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

func New(opts ...Option) (*Validator, error) {
	vd := &Validator{v: validator.New(), now: time.Now}
	for _, o := range opts {
		o(vd)
	}

	rules := map[string]validator.Func{
		"event_date":    matches(datePattern),
		"calendar_date": calendarDate,
		"not_past":      vd.notPast,
		"clock_24h":     matches(timePattern),
		"contact_email": matches(emailPattern),
		"phone_digits":  matches(phonePattern),
	}
	for tag, fn := range rules {
		if err := vd.v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return vd, nil
}

type rule struct {
	value  string
	tag    string
	reason string
}

// first returns the reason of the first rule that fails.
func (vd *Validator) first(rules []rule) Result {
	for _, r := range rules {
		if err := vd.v.Var(r.value, r.tag); err != nil {
			return Reject(r.reason)
		}
	}
	return Accept()
}

// Event checks an event submission.
func (vd *Validator) Event(e model.Event) Result {
	return vd.first([]rule{
		{e.Name, "required", MsgEventNameRequired},
		{e.Date, "required", MsgDateRequired},
		{e.Time, "required", MsgTimeRequired},
		{e.Venue, "required", MsgVenueRequired},
		{e.OrganizerName, "required", MsgOrganizerNameRequired},
		{e.OrganizerPhone, "required", MsgOrganizerPhoneRequired},
		{e.OrganizerEmail, "required", MsgOrganizerEmailRequired},
		{e.Date, "event_date", MsgDateFormat},
		{e.Date, "calendar_date", MsgDateInvalid},
		{e.Date, "not_past", MsgDatePast},
		{e.Time, "clock_24h", MsgTimeFormat},
		{e.OrganizerEmail, "contact_email", MsgEmailFormat},
		{e.OrganizerPhone, "phone_digits", MsgPhoneFormat},
	})
}

// RegistrationFields runs every registration check except the event lookup.
func (vd *Validator) RegistrationFields(r model.Registration) Result {
	return vd.first([]rule{
		{r.UserName, "required", MsgUserNameRequired},
		{r.UserEmail, "required", MsgUserEmailRequired},
		{r.UserPhone, "required", MsgUserPhoneRequired},
		{r.EventName, "required", MsgEventNameRequired},
		{r.UserEmail, "contact_email", MsgEmailFormat},
		{r.UserPhone, "phone_digits", MsgPhoneFormat},
	})
}

// Registration checks a registration against the currently approved events.
func (vd *Validator) Registration(r model.Registration, events []model.Event) Result {
	if res := vd.RegistrationFields(r); !res.Accepted {
		return res
	}
	return EventListed(r.EventName, events)
}

// EventListed reports whether name exactly matches an approved event's name.
func EventListed(name string, events []model.Event) Result {
	for _, e := range events {
		if e.Name == name {
			return Accept()
		}
	}
	return Reject(MsgEventNotFound)
}

func (vd *Validator) notPast(fl validator.FieldLevel) bool {
	now := vd.now()
	d, ok := parseDate(fl.Field().String(), now.Location())
	if !ok {
		return false
	}
	y, m, day := now.Date()
	return !d.Before(time.Date(y, m, day, 0, 0, 0, 0, now.Location()))
}

func calendarDate(fl validator.FieldLevel) bool {
	_, ok := parseDate(fl.Field().String(), time.UTC)
	return ok
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil || t.Year() < 1 {
		return time.Time{}, false
	}
	return t, true
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}
