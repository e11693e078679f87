package bcex

import (
	"bytes"
	"errors"
	"strconv"
)

// OrderType is the outbound order kind. OrderTypeCancel is a kind of its own:
// combined with the bulk-cancel sentinel order id it maps to the bulk-cancel
// wire action instead of a single cancel.
type OrderType uint8

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
	OrderTypeStop
	OrderTypeStopLimit
	OrderTypeCancel

	orderTypeMarketStr    = "market"
	orderTypeLimitStr     = "limit"
	orderTypeStopStr      = "stop"
	orderTypeStopLimitStr = "stopLimit"
	orderTypeCancelStr    = "cancel"
)

var (
	orderTypeMarketByte    = []byte(`"market"`)
	orderTypeLimitByte     = []byte(`"limit"`)
	orderTypeStopByte      = []byte(`"stop"`)
	orderTypeStopLimitByte = []byte(`"stopLimit"`)
	orderTypeCancelByte    = []byte(`"cancel"`)
)

// HasPrice reports whether the wire payload carries a limit price for the kind.
func (ot OrderType) HasPrice() bool {
	return ot == OrderTypeLimit || ot == OrderTypeStopLimit
}

// HasStopPrice reports whether the wire payload carries a stop trigger price.
func (ot OrderType) HasStopPrice() bool {
	return ot == OrderTypeStop || ot == OrderTypeStopLimit
}

func (ot OrderType) String() string {
	switch ot {
	case OrderTypeMarket:
		return orderTypeMarketStr
	case OrderTypeLimit:
		return orderTypeLimitStr
	case OrderTypeStop:
		return orderTypeStopStr
	case OrderTypeStopLimit:
		return orderTypeStopLimitStr
	case OrderTypeCancel:
		return orderTypeCancelStr
	}
	panic("invalid order type string conversion" + strconv.Itoa(int(ot)))
}

func (ot OrderType) MarshalJSON() ([]byte, error) {
	switch ot {
	case OrderTypeMarket:
		return orderTypeMarketByte, nil
	case OrderTypeLimit:
		return orderTypeLimitByte, nil
	case OrderTypeStop:
		return orderTypeStopByte, nil
	case OrderTypeStopLimit:
		return orderTypeStopLimitByte, nil
	case OrderTypeCancel:
		return orderTypeCancelByte, nil
	}
	return nil, errors.New("invalid order type json conversion: " + strconv.Itoa(int(ot)))
}

func (ot *OrderType) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, orderTypeMarketByte) {
		*ot = OrderTypeMarket
		return nil
	}

	if bytes.Equal(data, orderTypeLimitByte) {
		*ot = OrderTypeLimit
		return nil
	}

	if bytes.Equal(data, orderTypeStopByte) {
		*ot = OrderTypeStop
		return nil
	}

	if bytes.Equal(data, orderTypeStopLimitByte) {
		*ot = OrderTypeStopLimit
		return nil
	}

	if bytes.Equal(data, orderTypeCancelByte) {
		*ot = OrderTypeCancel
		return nil
	}

	return errors.New("unsupported order type: " + string(data))
}

func OrderTypeStrToType(value string) (OrderType, error) {
	switch value {
	case orderTypeMarketStr:
		return OrderTypeMarket, nil
	case orderTypeLimitStr:
		return OrderTypeLimit, nil
	case orderTypeStopStr:
		return OrderTypeStop, nil
	case orderTypeStopLimitStr:
		return OrderTypeStopLimit, nil
	case orderTypeCancelStr:
		return OrderTypeCancel, nil
	}
	return 0, errors.New("unsupported order type: " + value)
}
