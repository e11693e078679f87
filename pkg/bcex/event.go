package bcex

import (
	"bytes"
	"errors"
	"strconv"
)

// Event indicates the purpose of an inbound frame within its channel.
type Event uint8

const (
	EventSubscribed Event = iota
	EventUnsubscribed
	EventSnapshot
	EventUpdated
	EventRejected

	eventSubscribedStr   = "subscribed"
	eventUnsubscribedStr = "unsubscribed"
	eventSnapshotStr     = "snapshot"
	eventUpdatedStr      = "updated"
	eventRejectedStr     = "rejected"
)

var (
	eventSubscribedByte   = []byte(`"subscribed"`)
	eventUnsubscribedByte = []byte(`"unsubscribed"`)
	eventSnapshotByte     = []byte(`"snapshot"`)
	eventUpdatedByte      = []byte(`"updated"`)
	eventRejectedByte     = []byte(`"rejected"`)
)

func (ev Event) String() string {
	switch ev {
	case EventSubscribed:
		return eventSubscribedStr
	case EventUnsubscribed:
		return eventUnsubscribedStr
	case EventSnapshot:
		return eventSnapshotStr
	case EventUpdated:
		return eventUpdatedStr
	case EventRejected:
		return eventRejectedStr
	}
	panic("invalid event string conversion" + strconv.Itoa(int(ev)))
}

func (ev Event) MarshalJSON() ([]byte, error) {
	switch ev {
	case EventSubscribed:
		return eventSubscribedByte, nil
	case EventUnsubscribed:
		return eventUnsubscribedByte, nil
	case EventSnapshot:
		return eventSnapshotByte, nil
	case EventUpdated:
		return eventUpdatedByte, nil
	case EventRejected:
		return eventRejectedByte, nil
	}
	return nil, errors.New("invalid event json conversion: " + strconv.Itoa(int(ev)))
}

func (ev *Event) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, eventSubscribedByte) {
		*ev = EventSubscribed
		return nil
	}
	if bytes.Equal(data, eventUnsubscribedByte) {
		*ev = EventUnsubscribed
		return nil
	}
	if bytes.Equal(data, eventSnapshotByte) {
		*ev = EventSnapshot
		return nil
	}
	if bytes.Equal(data, eventUpdatedByte) {
		*ev = EventUpdated
		return nil
	}
	if bytes.Equal(data, eventRejectedByte) {
		*ev = EventRejected
		return nil
	}

	return errors.New("unsupported event: " + string(data))
}

func EventStrToType(value string) (Event, error) {
	switch value {
	case eventSubscribedStr:
		return EventSubscribed, nil
	case eventUnsubscribedStr:
		return EventUnsubscribed, nil
	case eventSnapshotStr:
		return EventSnapshot, nil
	case eventUpdatedStr:
		return EventUpdated, nil
	case eventRejectedStr:
		return EventRejected, nil
	}
	return 0, errors.New("unsupported event: " + value)
}
