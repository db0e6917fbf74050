package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	simplexservice "simplexdss/internal/module/simplex/service"
)

func TestSolveStream(t *testing.T) {
	gin.SetMode(gin.TestMode)

	solver := simplexservice.NewService(simplexservice.NoopCache{}, zap.NewNop())
	h := NewWebSocketHandler(solver, zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/simplex/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(solveBody()))

	tablas := 0
	for {
		var frame wsFrame
		require.NoError(t, conn.ReadJSON(&frame))

		switch frame.Type {
		case "tabla":
			require.NotNil(t, frame.Tabla)
			tablas++
		case "resultado":
			assert.Equal(t, "optimo", frame.Status)
			require.NotNil(t, frame.Solucion)
			assert.InDelta(t, 36.0, frame.Solucion.ValorOptimo, 1e-3)
			assert.Greater(t, tablas, 0)
			return
		default:
			t.Fatalf("unexpected frame type %q", frame.Type)
		}
	}
}

func TestSolveStream_BadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	solver := simplexservice.NewService(simplexservice.NoopCache{}, zap.NewNop())
	h := NewWebSocketHandler(solver, zap.NewNop())

	router := gin.New()
	h.RegisterRoutes(router)

	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/simplex/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))

	var frame wsFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "error", frame.Type)
	assert.NotEmpty(t, frame.Error)
}
