package model

// Event is an approved, publicly listed event. Name is the key registrations refer to.
type Event struct {
	Name           string
	Date           string // DD-MM-YYYY
	Time           string // HH:MM, 24h
	Venue          string
	OrganizerName  string
	OrganizerPhone string
	OrganizerEmail string
}

// PendingEvent is a submitted event awaiting an admin decision.
type PendingEvent Event

// IndexedPendingEvent pairs a pending event with its position in the pending
// table at the time it was listed.
type IndexedPendingEvent struct {
	Index int
	Event PendingEvent
}

type Registration struct {
	UserName  string
	UserEmail string
	UserPhone string
	EventName string
}

// column counts of the persisted rows
const (
	EventColumns        = 7
	RegistrationColumns = 4
)

func (e Event) Row() []string {
	return []string{e.Name, e.Date, e.Time, e.Venue, e.OrganizerName, e.OrganizerPhone, e.OrganizerEmail}
}

func (p PendingEvent) Row() []string { return Event(p).Row() }

// EventFromRow decodes a persisted row. Short rows leave the missing fields empty.
func EventFromRow(row []string) Event {
	row = pad(row, EventColumns)
	return Event{
		Name:           row[0],
		Date:           row[1],
		Time:           row[2],
		Venue:          row[3],
		OrganizerName:  row[4],
		OrganizerPhone: row[5],
		OrganizerEmail: row[6],
	}
}

func PendingEventFromRow(row []string) PendingEvent { return PendingEvent(EventFromRow(row)) }

func (r Registration) Row() []string {
	return []string{r.UserName, r.UserEmail, r.UserPhone, r.EventName}
}

func RegistrationFromRow(row []string) Registration {
	row = pad(row, RegistrationColumns)
	return Registration{
		UserName:  row[0],
		UserEmail: row[1],
		UserPhone: row[2],
		EventName: row[3],
	}
}

func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
