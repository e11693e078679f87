package bcex

import (
	"bytes"
	"errors"
	"strconv"
)

// Action is the outbound request verb on the trading channel.
type Action uint8

const (
	ActionPlaceOrder Action = iota
	ActionCancelOrder
	ActionBulkCancel

	actionPlaceOrderStr  = "NewOrderSingle"
	actionCancelOrderStr = "CancelOrderRequest"
	actionBulkCancelStr  = "BulkCancelOrderRequest"
)

var (
	actionPlaceOrderByte  = []byte(`"NewOrderSingle"`)
	actionCancelOrderByte = []byte(`"CancelOrderRequest"`)
	actionBulkCancelByte  = []byte(`"BulkCancelOrderRequest"`)
)

func (a Action) String() string {
	switch a {
	case ActionPlaceOrder:
		return actionPlaceOrderStr
	case ActionCancelOrder:
		return actionCancelOrderStr
	case ActionBulkCancel:
		return actionBulkCancelStr
	}
	panic("invalid action string conversion" + strconv.Itoa(int(a)))
}

func (a Action) MarshalJSON() ([]byte, error) {
	switch a {
	case ActionPlaceOrder:
		return actionPlaceOrderByte, nil
	case ActionCancelOrder:
		return actionCancelOrderByte, nil
	case ActionBulkCancel:
		return actionBulkCancelByte, nil
	}
	return nil, errors.New("invalid action json conversion: " + strconv.Itoa(int(a)))
}

func (a *Action) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, actionPlaceOrderByte) {
		*a = ActionPlaceOrder
		return nil
	}

	if bytes.Equal(data, actionCancelOrderByte) {
		*a = ActionCancelOrder
		return nil
	}

	if bytes.Equal(data, actionBulkCancelByte) {
		*a = ActionBulkCancel
		return nil
	}

	return errors.New("unsupported action: " + string(data))
}
