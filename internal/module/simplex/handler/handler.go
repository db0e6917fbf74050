package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	historydto "simplexdss/internal/module/history/dto"
	historyservice "simplexdss/internal/module/history/service"
	"simplexdss/internal/module/simplex/domain"
	"simplexdss/internal/module/simplex/dto"
	"simplexdss/internal/module/simplex/plot"
	simplexservice "simplexdss/internal/module/simplex/service"
	"simplexdss/internal/shared"
)

// Handler handles simplex solver HTTP requests.
type Handler struct {
	solver  simplexservice.Service
	plotter simplexservice.PlotService
	history historyservice.Service
	logger  *zap.Logger
}

// NewHandler creates a new simplex handler.
func NewHandler(
	solver simplexservice.Service,
	plotter simplexservice.PlotService,
	history historyservice.Service,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		solver:  solver,
		plotter: plotter,
		history: history,
		logger:  logger,
	}
}

// RegisterRoutes registers simplex solver routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	simplex := router.Group("/simplex")
	{
		simplex.POST("/solve-tabular", h.SolveTabular)
		simplex.POST("/solve-batch", h.SolveBatch)
		simplex.POST("/generate-graph", h.GenerateGraph)
		simplex.POST("/generate-graph-html", h.GenerateGraphHTML)
	}
}

// SolveTabular godoc
// @Summary Solve an LP with the tabular two-phase simplex method
// @Description Returns the terminal status, every intermediate tableau and, for optimal problems, the labelled solution
// @Tags simplex
// @Accept json
// @Produce json
// @Param input body dto.SimplexRequest true "LP problem"
// @Success 200 {object} dto.SolveResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 422 {object} shared.ErrorResponse
// @Failure 500 {object} shared.ErrorResponse
// @Router /simplex/solve-tabular [post]
func (h *Handler) SolveTabular(c *gin.Context) {
	var req dto.SimplexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	resp, err := h.solver.SolveTabular(c.Request.Context(), &req)
	if err != nil {
		h.solveError(c, err)
		return
	}

	h.recordSolve(c, &req, resp)

	c.JSON(http.StatusOK, resp)
}

// SolveBatch godoc
// @Summary Solve several independent LPs in one request
// @Tags simplex
// @Accept json
// @Produce json
// @Param input body dto.BatchSolveRequest true "LP problems"
// @Success 200 {object} dto.BatchSolveResponse
// @Failure 400 {object} shared.ErrorResponse
// @Failure 422 {object} shared.ErrorResponse
// @Router /simplex/solve-batch [post]
func (h *Handler) SolveBatch(c *gin.Context) {
	var req dto.BatchSolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}

	resp, err := h.solver.SolveBatch(c.Request.Context(), &req)
	if err != nil {
		h.solveError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GenerateGraph godoc
// @Summary Render the constraint graph of a two-variable LP as a PNG file
// @Tags simplex
// @Accept json
// @Produce png
// @Param input body dto.SimplexRequest true "LP problem (exactly 2 variables)"
// @Success 200 {file} file
// @Failure 400 {object} shared.ErrorResponse
// @Router /simplex/generate-graph [post]
func (h *Handler) GenerateGraph(c *gin.Context) {
	var req dto.GraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}
	if len(req.C) != 2 {
		shared.RespondWithError(c, http.StatusBadRequest,
			"El gráfico solo puede generarse para problemas con exactamente 2 variables.")
		return
	}

	path, err := h.plotter.GenerateGraphFile(c.Request.Context(), &req)
	if err != nil {
		h.solveError(c, err)
		return
	}
	// The file only has to survive this response; the cleanup worker
	// sweeps anything an aborted request leaves behind.
	defer func() {
		if err := os.Remove(path); err != nil {
			h.logger.Warn("Failed to remove graph file", zap.String("path", path), zap.Error(err))
		}
	}()

	c.FileAttachment(path, "graph.png")
}

// GenerateGraphHTML godoc
// @Summary Render the constraint graph of a two-variable LP as an HTML page
// @Tags simplex
// @Accept json
// @Produce html
// @Param input body dto.SimplexRequest true "LP problem (exactly 2 variables)"
// @Success 200 {string} string
// @Failure 400 {object} shared.ErrorResponse
// @Router /simplex/generate-graph-html [post]
func (h *Handler) GenerateGraphHTML(c *gin.Context) {
	var req dto.GraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindingError(c, err)
		return
	}
	if len(req.C) != 2 {
		shared.RespondWithError(c, http.StatusBadRequest,
			"Solo se puede graficar con exactamente 2 variables.")
		return
	}

	png, err := h.plotter.GenerateGraphPNG(c.Request.Context(), &req)
	if err != nil {
		h.solveError(c, err)
		return
	}

	b64 := base64.StdEncoding.EncodeToString(png)
	html := fmt.Sprintf(`<html><head><title>Gráfico Simplex</title></head>
<body style="font-family: Arial;">
<h2>Gráfico de Restricciones y Función Objetivo</h2>
<img src="data:image/png;base64,%s" alt="Grafico Simplex" style="max-width:100%%;height:auto;border:1px solid #ccc;" />
</body></html>`, b64)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// recordSolve persists a finished solve. History failures never affect the
// response.
func (h *Handler) recordSolve(c *gin.Context, req *dto.SimplexRequest, resp *dto.SolveResponse) {
	if h.history == nil {
		return
	}

	rawReq, err := json.Marshal(req)
	if err != nil {
		h.logger.Warn("Failed to encode solve request for history", zap.Error(err))
		return
	}
	rawResp, err := json.Marshal(resp)
	if err != nil {
		h.logger.Warn("Failed to encode solve result for history", zap.Error(err))
		return
	}

	entry := &historydto.CreateRecordInput{
		Status:     resp.Status,
		Iterations: len(resp.Tablas),
		Request:    rawReq,
		Result:     rawResp,
	}
	if resp.Solucion != nil {
		v := resp.Solucion.ValorOptimo
		entry.OptimalValue = &v
	}

	if err := h.history.Record(c.Request.Context(), entry); err != nil {
		h.logger.Warn("Failed to record solve in history", zap.Error(err))
	}
}

// bindingError distinguishes schema violations (422) from malformed
// payloads (400).
func (h *Handler) bindingError(c *gin.Context, err error) {
	h.logger.Warn("Failed to bind simplex request",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		shared.RespondWithError(c, http.StatusUnprocessableEntity,
			"Datos de entrada inválidos. Verifica el formato del JSON.")
		return
	}
	shared.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
}

// solveError maps engine validation failures to 400 and everything else to
// the shared error translator.
func (h *Handler) solveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDimensionMismatch):
		shared.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
	case errors.Is(err, plot.ErrNotTwoVariables):
		shared.RespondWithError(c, http.StatusBadRequest,
			"El gráfico solo puede generarse para problemas con exactamente 2 variables.")
	default:
		h.logger.Error("Solve failed", zap.Error(err))
		shared.HandleError(c, err)
	}
}
