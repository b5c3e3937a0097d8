package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// EventType is the closed set of funnel event kinds.
type EventType string

const (
	EventPageView     EventType = "page_view"
	EventRegistration EventType = "registration"
	EventPlayStart    EventType = "play_start"
	EventPlayProgress EventType = "play_progress"
	EventCTAClick     EventType = "cta_click"
	EventCallBooked   EventType = "call_booked"
	EventSale         EventType = "sale"
)

// EventTypes lists every valid event type in funnel order.
var EventTypes = []EventType{
	EventPageView,
	EventRegistration,
	EventPlayStart,
	EventPlayProgress,
	EventCTAClick,
	EventCallBooked,
	EventSale,
}

// ErrUnknownEventType is returned when decoding a type outside EventTypes.
var ErrUnknownEventType = errors.New("unknown event type")

// MaxWatchTime is the longest watch time a play_progress event may report.
const MaxWatchTime = 24 * time.Hour

// Event is one immutable row of the append-only funnel log. CampaignID and
// VariationSetID are copied from the visitor when the event is written.
type Event struct {
	ID             int64
	VisitorID      int64
	CampaignID     int64
	VariationSetID int64
	Payload        Payload
	CreatedAt      time.Time
}

// Type returns the event type carried by the payload.
func (e Event) Type() EventType {
	if e.Payload == nil {
		return ""
	}
	return e.Payload.EventType()
}

// Payload is implemented by the per-type event bodies below. The unexported
// method keeps the set closed to this package.
type Payload interface {
	EventType() EventType
	payload()
}

type PageView struct{}

type Registration struct{}

type PlayStart struct{}

// PlayProgress reports how far into the presentation the viewer is.
type PlayProgress struct {
	WatchTimeMs int64 `json:"watchTimeMs"`
}

type CTAClick struct{}

type CallBooked struct{}

// Sale records a purchase attributed to the visitor.
type Sale struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (PageView) EventType() EventType     { return EventPageView }
func (Registration) EventType() EventType { return EventRegistration }
func (PlayStart) EventType() EventType    { return EventPlayStart }
func (PlayProgress) EventType() EventType { return EventPlayProgress }
func (CTAClick) EventType() EventType     { return EventCTAClick }
func (CallBooked) EventType() EventType   { return EventCallBooked }
func (Sale) EventType() EventType         { return EventSale }

func (PageView) payload()     {}
func (Registration) payload() {}
func (PlayStart) payload()    {}
func (PlayProgress) payload() {}
func (CTAClick) payload()     {}
func (CallBooked) payload()   {}
func (Sale) payload()         {}

// ParseEventType validates s against the closed set of event types.
func ParseEventType(s string) (EventType, error) {
	for _, t := range EventTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
}

// DecodePayload builds the typed payload for t from its JSON form. An empty
// or null body decodes to the zero payload. Payload-less types ignore the
// body.
func DecodePayload(t EventType, raw json.RawMessage) (Payload, error) {
	empty := len(raw) == 0 || string(raw) == "null"
	switch t {
	case EventPageView:
		return PageView{}, nil
	case EventRegistration:
		return Registration{}, nil
	case EventPlayStart:
		return PlayStart{}, nil
	case EventCTAClick:
		return CTAClick{}, nil
	case EventCallBooked:
		return CallBooked{}, nil
	case EventPlayProgress:
		var p PlayProgress
		if !empty {
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, fmt.Errorf("decode %s payload: %w", t, err)
			}
		}
		if p.WatchTimeMs < 0 || p.WatchTimeMs > MaxWatchTime.Milliseconds() {
			return nil, fmt.Errorf("decode %s payload: watchTimeMs %d out of range [0, %d]",
				t, p.WatchTimeMs, MaxWatchTime.Milliseconds())
		}
		return p, nil
	case EventSale:
		var s Sale
		if !empty {
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("decode %s payload: %w", t, err)
			}
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, t)
	}
}

// EncodePayload returns the JSON stored alongside the event, or nil for
// payload-less types.
func EncodePayload(p Payload) (json.RawMessage, error) {
	switch v := p.(type) {
	case PlayProgress, Sale:
		return json.Marshal(v)
	case nil:
		return nil, errors.New("nil payload")
	default:
		return nil, nil
	}
}
