package realtime

import (
	"motionklub/internal/domain"
	"motionklub/internal/views"
)

const (
	TypeSubscribe       = "subscribe"
	TypeUnsubscribe     = "unsubscribe"
	TypePing            = "ping"
	TypeSubscribed      = "subscribed"
	TypeUnsubscribed    = "unsubscribed"
	TypePong            = "pong"
	TypeCapacityChanged = "capacity_changed"
	TypeError           = "error"
)

// ClientMessage is what browsers send over the socket.
type ClientMessage struct {
	Type    string `json:"type"`
	EventID int64  `json:"event_id,omitempty"`
}

type CapacityPayload struct {
	Capacity domain.Capacity      `json:"capacity"`
	Status   views.CapacityStatus `json:"status"`
	Label    string               `json:"label"`
	Bookable bool                 `json:"bookable"`
}

type ServerMessage struct {
	Type         string           `json:"type"`
	EventID      int64            `json:"event_id,omitempty"`
	Payload      *CapacityPayload `json:"payload,omitempty"`
	ErrorCode    string           `json:"code,omitempty"`
	ErrorMessage string           `json:"message,omitempty"`
}

func NewCapacityEvent(eventID int64, c domain.Capacity) *ServerMessage {
	return &ServerMessage{
		Type:    TypeCapacityChanged,
		EventID: eventID,
		Payload: &CapacityPayload{
			Capacity: c,
			Status:   views.ClassifyCapacity(c),
			Label:    views.CapacityLabel(c),
			Bookable: views.Bookable(c),
		},
	}
}

func NewErrorEvent(code, message string) *ServerMessage {
	return &ServerMessage{Type: TypeError, ErrorCode: code, ErrorMessage: message}
}
