package bcex

import (
	"strconv"
	"sync"
)

// ChannelStatus tracks one subscription through its lifecycle.
type ChannelStatus uint8

const (
	ChannelStatusUnsubscribed ChannelStatus = iota
	ChannelStatusWaitingConfirmation
	ChannelStatusSubscribed
	ChannelStatusRejected

	channelStatusUnsubscribedStr        = "unsubscribed"
	channelStatusWaitingConfirmationStr = "waiting_confirmation"
	channelStatusSubscribedStr          = "subscribed"
	channelStatusRejectedStr            = "rejected"
)

func (st ChannelStatus) String() string {
	switch st {
	case ChannelStatusUnsubscribed:
		return channelStatusUnsubscribedStr
	case ChannelStatusWaitingConfirmation:
		return channelStatusWaitingConfirmationStr
	case ChannelStatusSubscribed:
		return channelStatusSubscribedStr
	case ChannelStatusRejected:
		return channelStatusRejectedStr
	}
	panic("invalid channel status string conversion" + strconv.Itoa(int(st)))
}

// channelStatusStore keeps subscription status per channel, and per symbol for
// symbol-specific channels. Every (channel, symbol) slot is created eagerly at
// construction so updates never branch on key absence. The single receive loop
// writes; application goroutines read.
type channelStatusStore struct {
	mx      sync.RWMutex
	global  map[Channel]ChannelStatus
	perSymb map[Channel]map[string]ChannelStatus
}

func newChannelStatusStore(symbols []string) *channelStatusStore {
	store := &channelStatusStore{}
	store.init(symbols)
	return store
}

func (s *channelStatusStore) init(symbols []string) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.global = make(map[Channel]ChannelStatus)
	s.perSymb = make(map[Channel]map[string]ChannelStatus)
	for _, ch := range AllChannels {
		if ch.IsSymbolSpecific() {
			statuses := make(map[string]ChannelStatus, len(symbols))
			for _, symbol := range symbols {
				statuses[symbol] = ChannelStatusUnsubscribed
			}
			s.perSymb[ch] = statuses
		} else {
			s.global[ch] = ChannelStatusUnsubscribed
		}
	}
}

// get returns the status for the channel. symbol is ignored for channels that
// are not symbol-specific; an unknown symbol reads as unsubscribed.
func (s *channelStatusStore) get(ch Channel, symbol string) ChannelStatus {
	s.mx.RLock()
	defer s.mx.RUnlock()
	if ch.IsSymbolSpecific() {
		return s.perSymb[ch][symbol]
	}
	return s.global[ch]
}

func (s *channelStatusStore) set(ch Channel, symbol string, status ChannelStatus) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if ch.IsSymbolSpecific() {
		s.perSymb[ch][symbol] = status
	} else {
		s.global[ch] = status
	}
}

// reset drops every subscription back to unsubscribed. Used after an abnormal
// close: there is no session resumption, a reconnect re-subscribes from scratch.
func (s *channelStatusStore) reset() {
	s.mx.Lock()
	defer s.mx.Unlock()
	for ch := range s.global {
		s.global[ch] = ChannelStatusUnsubscribed
	}
	for _, statuses := range s.perSymb {
		for symbol := range statuses {
			statuses[symbol] = ChannelStatusUnsubscribed
		}
	}
}
