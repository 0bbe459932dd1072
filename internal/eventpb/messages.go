package eventpb

import "google.golang.org/protobuf/encoding/protowire"

type Event struct {
	Name           string // 1
	Date           string // 2
	Time           string // 3
	Venue          string // 4
	OrganizerName  string // 5
	OrganizerPhone string // 6
	OrganizerEmail string // 7
}

func (m *Event) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Date)
	b = appendString(b, 3, m.Time)
	b = appendString(b, 4, m.Venue)
	b = appendString(b, 5, m.OrganizerName)
	b = appendString(b, 6, m.OrganizerPhone)
	b = appendString(b, 7, m.OrganizerEmail)
	return b
}

func (m *Event) UnmarshalWire(b []byte) error {
	*m = Event{}
	fields := map[protowire.Number]*string{
		1: &m.Name, 2: &m.Date, 3: &m.Time, 4: &m.Venue,
		5: &m.OrganizerName, 6: &m.OrganizerPhone, 7: &m.OrganizerEmail,
	}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if dst, ok := fields[num]; ok {
			return consumeString(typ, b, dst)
		}
		return 0, nil
	})
}

type Registration struct {
	UserName  string // 1
	UserEmail string // 2
	UserPhone string // 3
	EventName string // 4
}

func (m *Registration) MarshalWire() []byte {
	var b []byte
	b = appendString(b, 1, m.UserName)
	b = appendString(b, 2, m.UserEmail)
	b = appendString(b, 3, m.UserPhone)
	b = appendString(b, 4, m.EventName)
	return b
}

func (m *Registration) UnmarshalWire(b []byte) error {
	*m = Registration{}
	fields := map[protowire.Number]*string{
		1: &m.UserName, 2: &m.UserEmail, 3: &m.UserPhone, 4: &m.EventName,
	}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if dst, ok := fields[num]; ok {
			return consumeString(typ, b, dst)
		}
		return 0, nil
	})
}

type PendingEvent struct {
	Index int64  // 1
	Event *Event // 2
}

func (m *PendingEvent) MarshalWire() []byte {
	var b []byte
	b = appendVarint(b, 1, m.Index)
	if m.Event != nil {
		b = appendMessage(b, 2, m.Event)
	}
	return b
}

func (m *PendingEvent) UnmarshalWire(b []byte) error {
	*m = PendingEvent{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeVarint(typ, b, &m.Index)
		case 2:
			m.Event = new(Event)
			return consumeMessage(typ, b, m.Event)
		}
		return 0, nil
	})
}

// StatusReply carries the human-readable outcome of a mutating call.
type StatusReply struct {
	Message string // 1
}

func (m *StatusReply) MarshalWire() []byte { return appendString(nil, 1, m.Message) }

func (m *StatusReply) UnmarshalWire(b []byte) error {
	*m = StatusReply{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Message)
		}
		return 0, nil
	})
}

type SubmitEventRequest struct {
	Event *Event // 1
}

func (m *SubmitEventRequest) MarshalWire() []byte {
	if m.Event == nil {
		return nil
	}
	return appendMessage(nil, 1, m.Event)
}

func (m *SubmitEventRequest) UnmarshalWire(b []byte) error {
	*m = SubmitEventRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			m.Event = new(Event)
			return consumeMessage(typ, b, m.Event)
		}
		return 0, nil
	})
}

type ListEventsRequest struct{}

func (m *ListEventsRequest) MarshalWire() []byte { return nil }

func (m *ListEventsRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type ListEventsResponse struct {
	Events []*Event // 1
}

func (m *ListEventsResponse) MarshalWire() []byte {
	var b []byte
	for _, e := range m.Events {
		b = appendMessage(b, 1, e)
	}
	return b
}

func (m *ListEventsResponse) UnmarshalWire(b []byte) error {
	*m = ListEventsResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		e := new(Event)
		n, err := consumeMessage(typ, b, e)
		m.Events = append(m.Events, e)
		return n, err
	})
}

type ListPendingEventsRequest struct{}

func (m *ListPendingEventsRequest) MarshalWire() []byte { return nil }

func (m *ListPendingEventsRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type ListPendingEventsResponse struct {
	Pending []*PendingEvent // 1
}

func (m *ListPendingEventsResponse) MarshalWire() []byte {
	var b []byte
	for _, p := range m.Pending {
		b = appendMessage(b, 1, p)
	}
	return b
}

func (m *ListPendingEventsResponse) UnmarshalWire(b []byte) error {
	*m = ListPendingEventsResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		p := new(PendingEvent)
		n, err := consumeMessage(typ, b, p)
		m.Pending = append(m.Pending, p)
		return n, err
	})
}

type ApproveEventsRequest struct {
	Indices []int64 // 1, packed
}

func (m *ApproveEventsRequest) MarshalWire() []byte {
	if len(m.Indices) == 0 {
		return nil
	}
	var packed []byte
	for _, i := range m.Indices {
		packed = protowire.AppendVarint(packed, uint64(i))
	}
	b := protowire.AppendTag(nil, 1, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// UnmarshalWire accepts both packed and unpacked encodings.
func (m *ApproveEventsRequest) UnmarshalWire(b []byte) error {
	*m = ApproveEventsRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		switch typ {
		case protowire.VarintType:
			var v int64
			n, err := consumeVarint(typ, b, &v)
			m.Indices = append(m.Indices, v)
			return n, err
		case protowire.BytesType:
			packed, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			for len(packed) > 0 {
				v, k := protowire.ConsumeVarint(packed)
				if k < 0 {
					return 0, protowire.ParseError(k)
				}
				m.Indices = append(m.Indices, int64(v))
				packed = packed[k:]
			}
			return n, nil
		}
		return 0, errWireType
	})
}

type RegisterForEventRequest struct {
	Registration *Registration // 1
}

func (m *RegisterForEventRequest) MarshalWire() []byte {
	if m.Registration == nil {
		return nil
	}
	return appendMessage(nil, 1, m.Registration)
}

func (m *RegisterForEventRequest) UnmarshalWire(b []byte) error {
	*m = RegisterForEventRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			m.Registration = new(Registration)
			return consumeMessage(typ, b, m.Registration)
		}
		return 0, nil
	})
}

type ListRegistrationsRequest struct{}

func (m *ListRegistrationsRequest) MarshalWire() []byte { return nil }

func (m *ListRegistrationsRequest) UnmarshalWire(b []byte) error { return walk(b, skipAll) }

type ListRegistrationsResponse struct {
	Registrations []*Registration // 1
}

func (m *ListRegistrationsResponse) MarshalWire() []byte {
	var b []byte
	for _, r := range m.Registrations {
		b = appendMessage(b, 1, r)
	}
	return b
}

func (m *ListRegistrationsResponse) UnmarshalWire(b []byte) error {
	*m = ListRegistrationsResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return 0, nil
		}
		r := new(Registration)
		n, err := consumeMessage(typ, b, r)
		m.Registrations = append(m.Registrations, r)
		return n, err
	})
}

type LoginRequest struct {
	Id       string // 1
	Password string // 2
}

func (m *LoginRequest) MarshalWire() []byte {
	b := appendString(nil, 1, m.Id)
	return appendString(b, 2, m.Password)
}

func (m *LoginRequest) UnmarshalWire(b []byte) error {
	*m = LoginRequest{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &m.Id)
		case 2:
			return consumeString(typ, b, &m.Password)
		}
		return 0, nil
	})
}

type LoginResponse struct {
	Token string // 1
}

func (m *LoginResponse) MarshalWire() []byte { return appendString(nil, 1, m.Token) }

func (m *LoginResponse) UnmarshalWire(b []byte) error {
	*m = LoginResponse{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(typ, b, &m.Token)
		}
		return 0, nil
	})
}

func skipAll(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil }
