package navigation

import (
	"errors"

	"github.com/katalvlaran/mapnav/bfs"
	"github.com/katalvlaran/mapnav/core"
	"github.com/katalvlaran/mapnav/dijkstra"
	"github.com/katalvlaran/mapnav/gateway"
)

// Sentinel errors raised by the assembler itself.
var (
	// ErrInvalidInput indicates an empty identifier in the Request.
	ErrInvalidInput = errors.New("navigation: invalid input")

	// ErrGatewayNotFound indicates a chain hop without a usable gateway.
	ErrGatewayNotFound = errors.New("navigation: gateway not found")
)

// Classify maps any error produced during assembly to an ErrorKind.
// nil maps to the empty kind; anything unrecognised, including context
// cancellation, is KindInternal.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrGatewayNotFound), errors.Is(err, gateway.ErrNoUsableGateway):
		return KindGatewayNotFound
	case errors.Is(err, core.ErrMapNotFound), errors.Is(err, bfs.ErrMapNotFound):
		return KindMapNotFound
	case errors.Is(err, dijkstra.ErrNodeNotFound):
		return KindNodeNotFound
	case errors.Is(err, dijkstra.ErrNoPath):
		return KindNoPathFound
	case errors.Is(err, bfs.ErrNoRoute):
		return KindNoRouteBetweenMaps
	}
	return KindInternal
}
