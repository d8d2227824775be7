package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/meetingagent/todo-service/pkg/httpcontext"
	"github.com/meetingagent/todo-service/usecase"
)

// DispatchHandler exposes the operation dispatcher over HTTP. The transport
// stays deliberately dumb: every dispatched call answers 200 with the uniform
// result payload, failures included.
type DispatchHandler struct {
	baseHandler
	dispatcher *usecase.Dispatcher
}

func NewDispatchHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *DispatchHandler {
	return &DispatchHandler{
		baseHandler: newBaseHandler(adapter, logger),
		dispatcher:  dispatcher,
	}
}

// Call handles POST /api/v1/operations/{name}.
func (h *DispatchHandler) Call(ctx *fasthttp.RequestCtx) {
	name, _ := ctx.UserValue("name").(string)

	args := map[string]interface{}{}
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, map[string]string{
				"error": "request body must be a JSON object",
			})
			return
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondJSON(ctx, http.StatusOK, h.dispatcher.Dispatch(stdCtx, name, args))
}

// List handles GET /api/v1/operations.
func (h *DispatchHandler) List(ctx *fasthttp.RequestCtx) {
	type opInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	ops := h.dispatcher.Operations()
	infos := make([]opInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, opInfo{Name: op.Name, Description: op.Description})
	}
	h.respondJSON(ctx, http.StatusOK, infos)
}
