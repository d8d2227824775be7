package handler

import (
	"database/sql"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/meetingagent/todo-service/pkg/httpcontext"
)

// HealthHandler reports whether the storage handle is reachable.
type HealthHandler struct {
	baseHandler
	db *sql.DB
}

func NewHealthHandler(db *sql.DB, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		db:          db,
	}
}

func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.db.PingContext(stdCtx); err != nil {
		h.logger.Error("health check failed", zap.Error(err))
		h.respondJSON(ctx, http.StatusServiceUnavailable, map[string]string{"status": "down"})
		return
	}
	h.respondJSON(ctx, http.StatusOK, map[string]string{"status": "ok"})
}
