package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"simplexdss/internal/module/simplex/dto"
	simplexservice "simplexdss/internal/module/simplex/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const wsWriteTimeout = 10 * time.Second

// wsFrame is one message of the solve stream: every tableau is sent as a
// "tabla" frame in temporal order, followed by a single "resultado" frame.
type wsFrame struct {
	Type     string             `json:"type"`
	Tabla    *dto.TableSnapshot `json:"tabla,omitempty"`
	Status   string             `json:"status,omitempty"`
	Solucion *dto.SolutionBody  `json:"solucion,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// WebSocketHandler streams solve traces over a websocket connection.
type WebSocketHandler struct {
	solver simplexservice.Service
	logger *zap.Logger
}

// NewWebSocketHandler creates a new websocket handler.
func NewWebSocketHandler(solver simplexservice.Service, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		solver: solver,
		logger: logger,
	}
}

// RegisterRoutes registers websocket routes.
func (h *WebSocketHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/simplex/ws", h.SolveStream)
}

// SolveStream godoc
// @Summary Stream the tableau trace of a solve over a websocket
// @Description The client sends one SimplexRequest as a text frame; the server answers with a "tabla" frame per iteration and a final "resultado" frame, then closes
// @Tags simplex
// @Router /simplex/ws [get]
func (h *WebSocketHandler) SolveStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Failed to upgrade websocket connection", zap.Error(err))
		return
	}
	defer conn.Close()

	var req dto.SimplexRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.writeFrame(conn, wsFrame{Type: "error", Error: "Datos inválidos: " + err.Error()})
		return
	}

	resp, err := h.solver.SolveTabular(c.Request.Context(), &req)
	if err != nil {
		h.writeFrame(conn, wsFrame{Type: "error", Error: err.Error()})
		return
	}

	for i := range resp.Tablas {
		if !h.writeFrame(conn, wsFrame{Type: "tabla", Tabla: &resp.Tablas[i]}) {
			return
		}
	}

	h.writeFrame(conn, wsFrame{
		Type:     "resultado",
		Status:   resp.Status,
		Solucion: resp.Solucion,
	})

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(wsWriteTimeout))
}

func (h *WebSocketHandler) writeFrame(conn *websocket.Conn, frame wsFrame) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteJSON(frame); err != nil {
		h.logger.Debug("Websocket write failed", zap.Error(err))
		return false
	}
	return true
}
