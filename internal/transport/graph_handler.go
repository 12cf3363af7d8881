// Package transport exposes HTTP handlers.
package transport

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/graph"
	"go.uber.org/zap"
)

// ContentTypeDOT is the media type of Graphviz documents.
const ContentTypeDOT = "text/vnd.graphviz; charset=utf-8"

// HeaderHighestBlock carries the synced height the served graph was built from.
const HeaderHighestBlock = "X-Highest-Block"

type snapshot struct {
	dot          []byte
	highestBlock uint64
}

// GraphHandler serves the latest published graph. It doubles as a publisher for the builder.
type GraphHandler struct {
	latest atomic.Pointer[snapshot]
	logger *zap.Logger
}

// NewGraphHandler returns a GraphHandler with nothing to serve yet.
func NewGraphHandler(logger *zap.Logger) *GraphHandler {
	return &GraphHandler{logger: logger}
}

func (h *GraphHandler) Name() string {
	return "http"
}

// Publish swaps in the rendering of g.
func (h *GraphHandler) Publish(ctx context.Context, g *graph.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.latest.Store(&snapshot{dot: []byte(g.DOT()), highestBlock: g.HighestBlock()})
	return nil
}

func (h *GraphHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	snap := h.latest.Load()
	if snap == nil {
		http.Error(w, "graph not built yet", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", ContentTypeDOT)
	w.Header().Set("Content-Length", strconv.Itoa(len(snap.dot)))
	w.Header().Set(HeaderHighestBlock, strconv.FormatUint(snap.highestBlock, 10))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(snap.dot); err != nil {
		h.logger.Warn("graph response not written", zap.Error(err))
	}
}
