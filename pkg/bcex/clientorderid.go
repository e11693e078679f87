package bcex

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
)

// clientOrderIDSuffix tags orders placed by this client on the venue.
const clientOrderIDSuffix = "_bcexgo"

// ClientOrderID is the client-generated correlation id echoed back on every
// trading-channel update for the order.
type ClientOrderID [20]byte

func (co ClientOrderID) String() string {
	indexEmpty := bytes.IndexByte(co[:], 0)
	if indexEmpty > 0 {
		return string(co[:indexEmpty])
	}
	return string(co[:])
}

func ClientOrderIDStrToType(val string) (ClientOrderID, error) {
	result := [20]byte{}
	if len(val) > 20 {
		return result, errors.New("too long clientOrderId: " + val)
	}
	copy(result[:], val)
	return result, nil
}

// ClientOrderIDGenerate returns a fresh correlation id: ten random hex
// characters plus the client suffix.
func ClientOrderIDGenerate() ClientOrderID {
	result := [20]byte{}
	b := make([]byte, 5)
	_, err := rand.Read(b)
	if err != nil {
		panic(errors.New("fail get random for generate client order id: " + err.Error()))
	}
	hex.Encode(result[:], b)
	copy(result[10:], clientOrderIDSuffix)
	return result
}

// ClientOrderIDGenerateFast builds a deterministic id from an integer.
// Intended for tests and benchmarks.
func ClientOrderIDGenerateFast(id int) ClientOrderID {
	result := [20]byte{}
	copy(result[:], strconv.Itoa(id))
	return result
}

func (co ClientOrderID) MarshalJSON() ([]byte, error) {
	indexEmpty := bytes.IndexByte(co[:], 0)
	if indexEmpty == -1 {
		indexEmpty = len(co)
	}
	if indexEmpty == 0 {
		return nil, errors.New("fail marshal empty clientOrderId")
	}
	result := make([]byte, indexEmpty+2)
	result[0] = '"'
	copy(result[1:], co[:])
	result[indexEmpty+1] = '"'

	return result, nil
}

func (co *ClientOrderID) UnmarshalJSON(data []byte) error {
	if len(data) < 3 {
		return errors.New("too small length of clientOrderId: " + string(data))
	}
	if len(data) > 22 {
		return errors.New("too long clientOrderId: " + string(data))
	}
	copy(co[:], data[1:len(data)-1])
	return nil
}
