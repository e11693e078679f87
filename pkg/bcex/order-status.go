package bcex

import (
	"bytes"
	"errors"
	"strconv"
)

type OrderStatus uint8

const (
	OrderStatusPending OrderStatus = iota
	OrderStatusOpen
	OrderStatusRejected
	OrderStatusCancelled
	OrderStatusFilled
	OrderStatusExpired

	orderStatusPendingStr   = "pending"
	orderStatusOpenStr      = "open"
	orderStatusRejectedStr  = "rejected"
	orderStatusCancelledStr = "cancelled"
	orderStatusFilledStr    = "filled"
	orderStatusExpiredStr   = "expired"
)

var (
	orderStatusPendingByte   = []byte(`"pending"`)
	orderStatusOpenByte      = []byte(`"open"`)
	orderStatusRejectedByte  = []byte(`"rejected"`)
	orderStatusCancelledByte = []byte(`"cancelled"`)
	orderStatusFilledByte    = []byte(`"filled"`)
	orderStatusExpiredByte   = []byte(`"expired"`)
)

// IsTerminal reports whether no further updates are expected for the order.
func (os OrderStatus) IsTerminal() bool {
	switch os {
	case OrderStatusRejected, OrderStatusCancelled, OrderStatusFilled, OrderStatusExpired:
		return true
	case OrderStatusPending, OrderStatusOpen:
		return false
	}
	panic("invalid order status terminal check" + strconv.Itoa(int(os)))
}

func (os OrderStatus) String() string {
	switch os {
	case OrderStatusPending:
		return orderStatusPendingStr
	case OrderStatusOpen:
		return orderStatusOpenStr
	case OrderStatusRejected:
		return orderStatusRejectedStr
	case OrderStatusCancelled:
		return orderStatusCancelledStr
	case OrderStatusFilled:
		return orderStatusFilledStr
	case OrderStatusExpired:
		return orderStatusExpiredStr
	}
	panic("invalid order status string conversion" + strconv.Itoa(int(os)))
}

func (os OrderStatus) MarshalJSON() ([]byte, error) {
	switch os {
	case OrderStatusPending:
		return orderStatusPendingByte, nil
	case OrderStatusOpen:
		return orderStatusOpenByte, nil
	case OrderStatusRejected:
		return orderStatusRejectedByte, nil
	case OrderStatusCancelled:
		return orderStatusCancelledByte, nil
	case OrderStatusFilled:
		return orderStatusFilledByte, nil
	case OrderStatusExpired:
		return orderStatusExpiredByte, nil
	}
	return nil, errors.New("invalid order status json conversion: " + strconv.Itoa(int(os)))
}

func (os *OrderStatus) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, orderStatusPendingByte) {
		*os = OrderStatusPending
		return nil
	}
	if bytes.Equal(data, orderStatusOpenByte) {
		*os = OrderStatusOpen
		return nil
	}
	if bytes.Equal(data, orderStatusRejectedByte) {
		*os = OrderStatusRejected
		return nil
	}
	if bytes.Equal(data, orderStatusCancelledByte) {
		*os = OrderStatusCancelled
		return nil
	}
	if bytes.Equal(data, orderStatusFilledByte) {
		*os = OrderStatusFilled
		return nil
	}
	if bytes.Equal(data, orderStatusExpiredByte) {
		*os = OrderStatusExpired
		return nil
	}

	return errors.New("unsupported order status: " + string(data))
}

func OrderStatusStrToType(value string) (OrderStatus, error) {
	switch value {
	case orderStatusPendingStr:
		return OrderStatusPending, nil
	case orderStatusOpenStr:
		return OrderStatusOpen, nil
	case orderStatusRejectedStr:
		return OrderStatusRejected, nil
	case orderStatusCancelledStr:
		return OrderStatusCancelled, nil
	case orderStatusFilledStr:
		return OrderStatusFilled, nil
	case orderStatusExpiredStr:
		return OrderStatusExpired, nil
	}
	return 0, errors.New("unsupported order status: " + value)
}
