package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/analysis"
	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type cryptoRequest struct {
	Action    string                `json:"action"`
	Address   string                `json:"address"`
	Chain     domain.Chain          `json:"chain"`
	TokenData *domain.TokenData     `json:"tokenData"`
	Sentiment *domain.SentimentData `json:"sentiment"`
	TokenName string                `json:"tokenName"`
}

var errMissingTokenData = errors.New("tokenData is required for this action")

// Crypto godoc
// @Summary      Token data and analysis dispatch
// @Description  Dispatches one of the token analysis actions (fetchTokenData, analyzeSentiment, analyzeTechnical, assessRisk, fetchWhaleActivity, analyzeSocialHype, checkLiquidityLock, scanContractSecurity, calculateExitStrategy, findSimilarTokens, predictPrice)
// @Tags         crypto
// @Accept       json
// @Produce      json
// @Param        request  body  cryptoRequest  true  "Action request"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/crypto [post]
func (h *Handler) Crypto(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.crypto")
	defer span.End()

	var req cryptoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}
	span.SetAttributes(
		attribute.String("crypto.action", req.Action),
		attribute.String("token.address", req.Address),
	)

	chain := req.Chain
	if chain == "" {
		chain = domain.ChainSolana
	}

	var (
		result any
		err    error
	)
	switch req.Action {
	case "fetchTokenData":
		result, err = h.tokens.FetchToken(ctx, req.Address, chain)

	case "analyzeSentiment":
		result = analysis.SimulateSentiment(req.Address)

	case "analyzeTechnical":
		if req.TokenData == nil {
			err = errMissingTokenData
			break
		}
		result = analysis.AnalyzeTechnical(req.TokenData)

	case "assessRisk":
		if req.TokenData == nil {
			err = errMissingTokenData
			break
		}
		result = analysis.AssessRisk(req.TokenData)

	case "fetchWhaleActivity":
		result = analysis.SimulateWhaleActivity(req.Address, time.Now())

	case "analyzeSocialHype":
		result, err = h.social.Analyze(ctx, req.Address, req.TokenName)

	case "checkLiquidityLock":
		result = h.liquidityLock(c, &req, chain)

	case "scanContractSecurity":
		report, scanErr := h.security.FetchTokenSecurity(ctx, req.Address, chain)
		if scanErr != nil || report == nil {
			result = analysis.FallbackSecurity()
		} else {
			result = analysis.ScoreSecurity(report)
		}

	case "calculateExitStrategy":
		if req.TokenData == nil {
			err = errMissingTokenData
			break
		}
		result = analysis.CalculateExitStrategy(req.TokenData)

	case "findSimilarTokens":
		if req.TokenData == nil {
			err = errMissingTokenData
			break
		}
		result = analysis.SimulateSimilarTokens(req.TokenData)

	case "predictPrice":
		if req.TokenData == nil {
			err = errMissingTokenData
			break
		}
		result = analysis.PredictPrice(req.TokenData, req.Sentiment)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
		return
	}

	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// liquidityLock infers lock status from supplied token data, fetching
// the record first when the caller only sent an address. A failed fetch
// degrades to the unavailable record rather than an error.
func (h *Handler) liquidityLock(c *gin.Context, req *cryptoRequest, chain domain.Chain) *domain.LiquidityLock {
	token := req.TokenData
	if token == nil {
		fetched, err := h.tokens.FetchToken(c.Request.Context(), req.Address, chain)
		if err != nil {
			return analysis.UnavailableLiquidityLock()
		}
		token = fetched
	}
	return analysis.InferLiquidityLock(token)
}
