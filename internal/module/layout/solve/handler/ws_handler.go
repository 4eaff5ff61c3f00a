package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"layoutdss/internal/module/layout/solve/dto"
	"layoutdss/internal/module/layout/solve/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler streams solve passes over a websocket: the client sends
// one solve request, the server answers with a "pass" frame per cascade
// pass followed by a single "result" frame, then closes.
type WebSocketHandler struct {
	service service.Service
	logger  *zap.Logger
}

// NewWebSocketHandler creates a new solve stream handler
func NewWebSocketHandler(service service.Service, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the solve stream route
func (h *WebSocketHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/v1/layout/solve/stream", h.handleStream)
}

// handleStream godoc
// @Summary Stream a segment layout solve
// @Description WebSocket endpoint; send one solve request, receive one frame per solver pass followed by the final result
// @Tags layout
// @Router /api/v1/layout/solve/stream [get]
func (h *WebSocketHandler) handleStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade solve stream connection", zap.Error(err))
		return
	}
	defer conn.Close()

	var req dto.SolveRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.writeClose(conn, websocket.CloseInvalidFramePayloadData, "invalid solve request")
		return
	}

	// The stream always carries the trace; cache hits would skip the passes.
	req.IncludeTrace = true
	req.UseCache = false

	output, err := h.service.Solve(c.Request.Context(), &req)
	if err != nil {
		h.writeClose(conn, websocket.CloseInvalidFramePayloadData, err.Error())
		return
	}

	for i := range output.Trace {
		frame := dto.StreamFrame{Type: "pass", Pass: &output.Trace[i]}
		if err := conn.WriteJSON(frame); err != nil {
			h.logger.Warn("Solve stream write failed", zap.Error(err))
			return
		}
	}

	// The result frame repeats the final segments without the trace, which
	// the client already received pass by pass.
	final := *output
	final.Trace = nil
	if err := conn.WriteJSON(dto.StreamFrame{Type: "result", Result: &final}); err != nil {
		h.logger.Warn("Solve stream result write failed", zap.Error(err))
		return
	}

	h.writeClose(conn, websocket.CloseNormalClosure, "")
}

func (h *WebSocketHandler) writeClose(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
		h.logger.Debug("Solve stream close write failed", zap.Error(err))
	}
}
