package bcex

import (
	"bytes"
	"errors"
	"strconv"
)

// Channel names a stream of one message category on the exchange websocket.
type Channel uint8

const (
	ChannelHeartbeat Channel = iota
	ChannelL2
	ChannelL3
	ChannelPrices
	ChannelSymbols
	ChannelTicker
	ChannelTrades
	ChannelAuth
	ChannelBalances
	ChannelTrading

	channelHeartbeatStr = "heartbeat"
	channelL2Str        = "l2"
	channelL3Str        = "l3"
	channelPricesStr    = "prices"
	channelSymbolsStr   = "symbols"
	channelTickerStr    = "ticker"
	channelTradesStr    = "trades"
	channelAuthStr      = "auth"
	channelBalancesStr  = "balances"
	channelTradingStr   = "trading"
)

var (
	channelHeartbeatByte = []byte(`"heartbeat"`)
	channelL2Byte        = []byte(`"l2"`)
	channelL3Byte        = []byte(`"l3"`)
	channelPricesByte    = []byte(`"prices"`)
	channelSymbolsByte   = []byte(`"symbols"`)
	channelTickerByte    = []byte(`"ticker"`)
	channelTradesByte    = []byte(`"trades"`)
	channelAuthByte      = []byte(`"auth"`)
	channelBalancesByte  = []byte(`"balances"`)
	channelTradingByte   = []byte(`"trading"`)
)

// AllChannels lists every channel the exchange offers.
var AllChannels = []Channel{
	ChannelHeartbeat,
	ChannelL2,
	ChannelL3,
	ChannelPrices,
	ChannelSymbols,
	ChannelTicker,
	ChannelTrades,
	ChannelAuth,
	ChannelBalances,
	ChannelTrading,
}

// PublicChannels do not require authentication.
var PublicChannels = []Channel{
	ChannelHeartbeat,
	ChannelTicker,
	ChannelPrices,
	ChannelTrades,
	ChannelL2,
	ChannelL3,
	ChannelSymbols,
}

// PrivateChannels require an authenticated connection.
var PrivateChannels = []Channel{
	ChannelAuth,
	ChannelBalances,
	ChannelTrading,
}

// IsSymbolSpecific reports whether subscriptions and status for the channel
// are tracked per instrument rather than once per connection.
func (ch Channel) IsSymbolSpecific() bool {
	switch ch {
	case ChannelAuth, ChannelHeartbeat, ChannelTrading, ChannelBalances:
		return false
	case ChannelL2, ChannelL3, ChannelPrices, ChannelSymbols, ChannelTicker, ChannelTrades:
		return true
	}
	panic("invalid channel symbol specific check" + strconv.Itoa(int(ch)))
}

// IsPublic reports whether the channel can be subscribed without authentication.
func (ch Channel) IsPublic() bool {
	switch ch {
	case ChannelHeartbeat, ChannelL2, ChannelL3, ChannelPrices, ChannelSymbols, ChannelTicker, ChannelTrades:
		return true
	case ChannelAuth, ChannelBalances, ChannelTrading:
		return false
	}
	panic("invalid channel public check" + strconv.Itoa(int(ch)))
}

func (ch Channel) String() string {
	switch ch {
	case ChannelHeartbeat:
		return channelHeartbeatStr
	case ChannelL2:
		return channelL2Str
	case ChannelL3:
		return channelL3Str
	case ChannelPrices:
		return channelPricesStr
	case ChannelSymbols:
		return channelSymbolsStr
	case ChannelTicker:
		return channelTickerStr
	case ChannelTrades:
		return channelTradesStr
	case ChannelAuth:
		return channelAuthStr
	case ChannelBalances:
		return channelBalancesStr
	case ChannelTrading:
		return channelTradingStr
	}
	panic("invalid channel string conversion" + strconv.Itoa(int(ch)))
}

func (ch Channel) MarshalJSON() ([]byte, error) {
	switch ch {
	case ChannelHeartbeat:
		return channelHeartbeatByte, nil
	case ChannelL2:
		return channelL2Byte, nil
	case ChannelL3:
		return channelL3Byte, nil
	case ChannelPrices:
		return channelPricesByte, nil
	case ChannelSymbols:
		return channelSymbolsByte, nil
	case ChannelTicker:
		return channelTickerByte, nil
	case ChannelTrades:
		return channelTradesByte, nil
	case ChannelAuth:
		return channelAuthByte, nil
	case ChannelBalances:
		return channelBalancesByte, nil
	case ChannelTrading:
		return channelTradingByte, nil
	}
	return nil, errors.New("invalid channel json conversion: " + strconv.Itoa(int(ch)))
}

func (ch *Channel) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, channelHeartbeatByte) {
		*ch = ChannelHeartbeat
		return nil
	}
	if bytes.Equal(data, channelL2Byte) {
		*ch = ChannelL2
		return nil
	}
	if bytes.Equal(data, channelL3Byte) {
		*ch = ChannelL3
		return nil
	}
	if bytes.Equal(data, channelPricesByte) {
		*ch = ChannelPrices
		return nil
	}
	if bytes.Equal(data, channelSymbolsByte) {
		*ch = ChannelSymbols
		return nil
	}
	if bytes.Equal(data, channelTickerByte) {
		*ch = ChannelTicker
		return nil
	}
	if bytes.Equal(data, channelTradesByte) {
		*ch = ChannelTrades
		return nil
	}
	if bytes.Equal(data, channelAuthByte) {
		*ch = ChannelAuth
		return nil
	}
	if bytes.Equal(data, channelBalancesByte) {
		*ch = ChannelBalances
		return nil
	}
	if bytes.Equal(data, channelTradingByte) {
		*ch = ChannelTrading
		return nil
	}

	return errors.New("unsupported channel: " + string(data))
}

func ChannelStrToType(value string) (Channel, error) {
	switch value {
	case channelHeartbeatStr:
		return ChannelHeartbeat, nil
	case channelL2Str:
		return ChannelL2, nil
	case channelL3Str:
		return ChannelL3, nil
	case channelPricesStr:
		return ChannelPrices, nil
	case channelSymbolsStr:
		return ChannelSymbols, nil
	case channelTickerStr:
		return ChannelTicker, nil
	case channelTradesStr:
		return ChannelTrades, nil
	case channelAuthStr:
		return ChannelAuth, nil
	case channelBalancesStr:
		return ChannelBalances, nil
	case channelTradingStr:
		return ChannelTrading, nil
	}
	return 0, errors.New("unsupported channel: " + value)
}
