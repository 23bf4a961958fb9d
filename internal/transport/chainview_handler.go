package transport

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ChainViewHandler serves the chain view as JSON for the presentation layer.
type ChainViewHandler struct {
	view   ChainView
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewChainViewHandler registers the /api/v1 routes.
func NewChainViewHandler(view ChainView, logger *zap.Logger) *ChainViewHandler {
	h := &ChainViewHandler{
		view:   view,
		logger: logger.Named("chainview_http"),
		mux:    http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /api/v1/blocks/live", h.liveBlocks)
	h.mux.HandleFunc("GET /api/v1/blocks/active", h.activeBlocks)
	h.mux.HandleFunc("GET /api/v1/history", h.history)
	h.mux.HandleFunc("POST /api/v1/history/back", h.stepBack)
	h.mux.HandleFunc("POST /api/v1/history/forward", h.stepForward)
	return h
}

func (h *ChainViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *ChainViewHandler) liveBlocks(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.view.LiveFrame())
}

func (h *ChainViewHandler) activeBlocks(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.view.ActiveFrame())
}

func (h *ChainViewHandler) history(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.view.Stats())
}

func (h *ChainViewHandler) stepBack(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.view.StepBack())
}

func (h *ChainViewHandler) stepForward(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.view.StepForward())
}

func (h *ChainViewHandler) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
