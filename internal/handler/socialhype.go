package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// SocialHype godoc
// @Summary      Twitter and reddit hype metrics
// @Description  Returns combined twitter/reddit activity metrics for a token
// @Tags         social
// @Produce      json
// @Param        symbol   query  string  true  "Token symbol"
// @Param        address  query  string  true  "Token contract address"
// @Success      200  {object}  social.HypeData
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/social-hype [get]
func (h *Handler) SocialHype(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.social-hype")
	defer span.End()

	symbol := c.Query("symbol")
	address := c.Query("address")
	if symbol == "" || address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing symbol or address"})
		return
	}
	span.SetAttributes(attribute.String("token.symbol", symbol))

	data, err := h.analytics.Hype(ctx, symbol, address)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch social data"})
		return
	}
	c.JSON(http.StatusOK, data)
}
