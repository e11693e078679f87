package bcex

import (
	"errors"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

// Candle is one OHLCV bar from the prices channel. The wire format is a
// six-element array: [timestamp, open, high, low, close, volume].
type Candle struct {
	Timestamp int64
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
	Volume    decimal.Decimal
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var parts []decimal.Decimal
	if err := jsoniter.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 6 {
		return errors.New("unsupported candle array length: " + strconv.Itoa(len(parts)))
	}
	c.Timestamp = parts[0].IntPart()
	c.Open = parts[1]
	c.High = parts[2]
	c.Low = parts[3]
	c.Close = parts[4]
	c.Volume = parts[5]
	return nil
}

func (c Candle) equal(other Candle) bool {
	return c.Timestamp == other.Timestamp &&
		c.Open.Equal(other.Open) &&
		c.High.Equal(other.High) &&
		c.Low.Equal(other.Low) &&
		c.Close.Equal(other.Close) &&
		c.Volume.Equal(other.Volume)
}
