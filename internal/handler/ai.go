package handler

import (
	"net/http"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/narrator"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type aiRequest struct {
	Action              string                  `json:"action"`
	Agent               domain.AgentKind        `json:"agent"`
	Context             narrator.InsightContext `json:"context"`
	UserMessage         string                  `json:"userMessage"`
	TokenContext        *domain.TokenContext    `json:"tokenContext"`
	ConversationHistory []domain.ChatMessage    `json:"conversationHistory"`
}

// AI godoc
// @Summary      Agent insight and chat dispatch
// @Description  Dispatches generateAgentInsight or chatWithDobby. Both actions always succeed; LLM trouble degrades to deterministic fallback text.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request  body  aiRequest  true  "Action request"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /api/ai [post]
func (h *Handler) AI(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.ai")
	defer span.End()

	var req aiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}
	span.SetAttributes(attribute.String("ai.action", req.Action))

	switch req.Action {
	case "generateAgentInsight":
		agent := req.Agent
		if !agent.IsValid() {
			agent = domain.AgentData
		}
		insight := h.narrator.GenerateInsight(ctx, agent, req.Context)
		c.JSON(http.StatusOK, gin.H{"insight": insight})

	case "chatWithDobby":
		reply := h.narrator.Chat(ctx, req.UserMessage, req.TokenContext, req.ConversationHistory)
		c.JSON(http.StatusOK, gin.H{"response": reply})

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}
