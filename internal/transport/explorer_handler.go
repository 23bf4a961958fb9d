// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	view ChainView
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(view ChainView) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{view: view}
}

// Health reports server health along with a summary of the chain view.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	stats := h.view.Stats()
	mode := "live"
	if stats.HistoryDepth > 0 {
		mode = fmt.Sprintf("%d back", stats.HistoryDepth)
	}
	return &blockinsight7000v1.HealthResponse{
		Status: blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("tracking %d blocks up to #%d, %d/%d snapshots, %s",
			stats.Tracked, stats.LiveMaxNumber, stats.Snapshots, stats.Capacity, mode),
	}, nil
}
