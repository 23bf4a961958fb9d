package transport

import "github.com/goodnatureofminers/blockinsight7000-chainview/internal/chainview/view"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainView is the query side of the chain view served over the transports.
	ChainView interface {
		LiveFrame() view.Frame
		ActiveFrame() view.Frame
		StepBack() view.Frame
		StepForward() view.Frame
		Stats() view.Stats
	}
)
