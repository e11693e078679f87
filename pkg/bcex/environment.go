package bcex

import (
	"errors"
	"strconv"
)

// Environment selects the venue endpoint. Production is reachable with a
// regular API key; staging access has to be requested from support.
type Environment uint8

const (
	EnvironmentProduction Environment = iota
	EnvironmentStaging

	environmentProductionStr = "production"
	environmentStagingStr    = "staging"
)

func (env Environment) String() string {
	switch env {
	case EnvironmentProduction:
		return environmentProductionStr
	case EnvironmentStaging:
		return environmentStagingStr
	}
	panic("invalid environment string conversion" + strconv.Itoa(int(env)))
}

// WebsocketURL returns the websocket endpoint for the environment.
func (env Environment) WebsocketURL() string {
	switch env {
	case EnvironmentProduction:
		return "wss://ws.prod.blockchain.info/mercury-gateway/v1/ws"
	case EnvironmentStaging:
		return "wss://ws.staging.blockchain.info/mercury-gateway/v1/ws"
	}
	panic("invalid environment websocket url" + strconv.Itoa(int(env)))
}

// OriginURL returns the origin header value the gateway expects on handshake.
func (env Environment) OriginURL() string {
	switch env {
	case EnvironmentProduction:
		return "https://exchange.blockchain.com"
	case EnvironmentStaging:
		return "https://pit.staging.blockchain.info"
	}
	panic("invalid environment origin url" + strconv.Itoa(int(env)))
}

func EnvironmentStrToType(value string) (Environment, error) {
	switch value {
	case environmentProductionStr:
		return EnvironmentProduction, nil
	case environmentStagingStr:
		return EnvironmentStaging, nil
	}
	return 0, errors.New("unsupported environment: " + value)
}
