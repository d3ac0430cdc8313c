package handler

import (
	"errors"
	"net/http"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type analyzeRequest struct {
	Address string       `json:"address"`
	Chain   domain.Chain `json:"chain"`
}

// Analyze godoc
// @Summary      Full analysis run for one token
// @Description  Fetches market data and derives every analysis record in a single call. A newer run for a different address supersedes an in-flight one.
// @Tags         crypto
// @Accept       json
// @Produce      json
// @Param        request  body  analyzeRequest  true  "Target token"
// @Success      200  {object}  service.Report
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze")
	defer span.End()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token address"})
		return
	}
	chain := req.Chain
	if chain == "" {
		chain = domain.ChainSolana
	}
	if !chain.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported chain"})
		return
	}
	span.SetAttributes(
		attribute.String("token.address", req.Address),
		attribute.String("token.chain", string(chain)),
	)

	report, err := h.analyzer.Analyze(ctx, req.Address, chain)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrSuperseded) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
