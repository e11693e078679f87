package bcex

import "github.com/pkg/errors"

var (
	// ErrConnectTimeout is returned when the websocket transport did not
	// report an established connection within the bounded connect wait.
	ErrConnectTimeout = errors.New("could not connect to websocket in time")

	// ErrAuthTimeout is returned when authentication was not confirmed by the
	// venue within the bounded auth wait.
	ErrAuthTimeout = errors.New("could not authenticate connection in time")

	// ErrNotSubscribed is returned when an order targets a symbol the client
	// is not locally subscribed to.
	ErrNotSubscribed = errors.New("order symbol is not in the subscribed set")

	// ErrNotConnected is returned when sending before Connect or after Exit.
	ErrNotConnected = errors.New("websocket is not connected")
)

// InvalidOrderError reports a field-presence violation detected when an order
// is constructed, before anything reaches the wire.
type InvalidOrderError struct {
	OrderType OrderType
	Field     string
	Reason    string
}

func (e *InvalidOrderError) Error() string {
	return "invalid " + e.OrderType.String() + " order: field " + e.Field + " " + e.Reason
}

func missingField(ot OrderType, field string) *InvalidOrderError {
	return &InvalidOrderError{OrderType: ot, Field: field, Reason: "is required"}
}

func forbiddenField(ot OrderType, field string) *InvalidOrderError {
	return &InvalidOrderError{OrderType: ot, Field: field, Reason: "is not allowed"}
}
