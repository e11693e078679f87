package bcex

import (
	"bytes"
	"errors"
	"strconv"
)

type TimeInForce uint8

const (
	TimeInForceGTC TimeInForce = iota // good till cancel. cancel only by user request or full fill
	TimeInForceIOC                    // immediate or cancel. can be partially filled, remainder expires
	TimeInForceFOK                    // fill or kill. fully filled or expired
	TimeInForceGTD                    // good till date. automatically expired on a specified date

	timeInForceGTCstr = "GTC"
	timeInForceIOCstr = "IOC"
	timeInForceFOKstr = "FOK"
	timeInForceGTDstr = "GTD"
)

var (
	timeInForceGTCbytes = []byte(`"GTC"`)
	timeInForceIOCbytes = []byte(`"IOC"`)
	timeInForceFOKbytes = []byte(`"FOK"`)
	timeInForceGTDbytes = []byte(`"GTD"`)
)

func (tif TimeInForce) String() string {
	switch tif {
	case TimeInForceGTC:
		return timeInForceGTCstr
	case TimeInForceIOC:
		return timeInForceIOCstr
	case TimeInForceFOK:
		return timeInForceFOKstr
	case TimeInForceGTD:
		return timeInForceGTDstr
	}
	panic("invalid timeInForce string conversion" + strconv.Itoa(int(tif)))
}

func (tif TimeInForce) MarshalJSON() ([]byte, error) {
	switch tif {
	case TimeInForceGTC:
		return timeInForceGTCbytes, nil
	case TimeInForceIOC:
		return timeInForceIOCbytes, nil
	case TimeInForceFOK:
		return timeInForceFOKbytes, nil
	case TimeInForceGTD:
		return timeInForceGTDbytes, nil
	}
	return nil, errors.New("invalid timeInForce json conversion: " + strconv.Itoa(int(tif)))
}

func (tif *TimeInForce) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, timeInForceGTCbytes) {
		*tif = TimeInForceGTC
		return nil
	}

	if bytes.Equal(data, timeInForceIOCbytes) {
		*tif = TimeInForceIOC
		return nil
	}

	if bytes.Equal(data, timeInForceFOKbytes) {
		*tif = TimeInForceFOK
		return nil
	}

	if bytes.Equal(data, timeInForceGTDbytes) {
		*tif = TimeInForceGTD
		return nil
	}

	return errors.New("unsupported timeInForce: " + string(data))
}

func TimeInForceStrToType(value string) (TimeInForce, error) {
	switch value {
	case timeInForceGTCstr:
		return TimeInForceGTC, nil
	case timeInForceIOCstr:
		return TimeInForceIOC, nil
	case timeInForceFOKstr:
		return TimeInForceFOK, nil
	case timeInForceGTDstr:
		return TimeInForceGTD, nil
	}
	return 0, errors.New("unsupported timeInForce: " + value)
}
