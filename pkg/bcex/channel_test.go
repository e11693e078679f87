package bcex_test

import (
	"encoding/json"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/simon-bc/bcex/pkg/bcex"
	"gotest.tools/assert"
)

type testFrameChannel struct {
	Channel bcex.Channel `json:"channel"`
}

func TestChannel_MarshalJSON(t *testing.T) {
	val, err := json.Marshal(&testFrameChannel{bcex.ChannelHeartbeat})
	assert.NilError(t, err)
	assert.Equal(t, string(val), `{"channel":"heartbeat"}`, "std json heartbeat")

	val, err = jsoniter.Marshal(&testFrameChannel{bcex.ChannelTrading})
	assert.NilError(t, err)
	assert.Equal(t, string(val), `{"channel":"trading"}`, "jsoniter json trading")

	_, err = json.Marshal(&testFrameChannel{bcex.Channel(200)})
	assert.ErrorContains(t, err, "invalid channel json conversion: 200")
}

func TestChannel_UnmarshalJSON(t *testing.T) {
	var obj testFrameChannel

	err := json.Unmarshal([]byte(`{"channel":"l2"}`), &obj)
	assert.NilError(t, err)
	assert.Equal(t, obj.Channel, bcex.ChannelL2, "std json l2")

	err = jsoniter.Unmarshal([]byte(`{"channel":"balances"}`), &obj)
	assert.NilError(t, err)
	assert.Equal(t, obj.Channel, bcex.ChannelBalances, "jsoniter json balances")

	err = json.Unmarshal([]byte(`{"channel":"l4"}`), &obj)
	assert.Error(t, err, `unsupported channel: "l4"`)
}

func TestChannel_StrToType(t *testing.T) {
	for _, ch := range bcex.AllChannels {
		parsed, err := bcex.ChannelStrToType(ch.String())
		assert.NilError(t, err)
		assert.Equal(t, parsed, ch)
	}

	_, err := bcex.ChannelStrToType("orders")
	assert.Error(t, err, "unsupported channel: orders")
}

func TestChannel_IsSymbolSpecific(t *testing.T) {
	perSymbol := map[bcex.Channel]bool{
		bcex.ChannelHeartbeat: false,
		bcex.ChannelAuth:      false,
		bcex.ChannelTrading:   false,
		bcex.ChannelBalances:  false,
		bcex.ChannelL2:        true,
		bcex.ChannelL3:        true,
		bcex.ChannelPrices:    true,
		bcex.ChannelSymbols:   true,
		bcex.ChannelTicker:    true,
		bcex.ChannelTrades:    true,
	}
	for ch, expect := range perSymbol {
		assert.Equal(t, ch.IsSymbolSpecific(), expect, ch.String())
	}
}

func TestChannel_IsPublic(t *testing.T) {
	for _, ch := range bcex.PublicChannels {
		assert.Check(t, ch.IsPublic(), ch.String())
	}
	for _, ch := range bcex.PrivateChannels {
		assert.Check(t, !ch.IsPublic(), ch.String())
	}
}

func TestChannel_String(t *testing.T) {
	assert.Equal(t, bcex.ChannelPrices.String(), "prices")
	assert.Equal(t, bcex.ChannelAuth.String(), "auth")

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("not recovered")
		}
	}()
	_ = bcex.Channel(99).String()
	t.Errorf("The code did not panic")
}
