package narrator

import (
	"context"
	"fmt"

	"github.com/Kyozuro111/ROMA-Memetrace/internal/domain"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	fireworksBaseURL = "https://api.fireworks.ai/inference/v1"

	DefaultInsightModel = "llama-3.3-70b-versatile"
	DefaultChatModel    = "accounts/sentientfoundation/models/dobby-unhinged-llama-3-3-70b-new"
)

// LLMClient abstracts the chat completions API for testability. Groq
// and Fireworks both speak the OpenAI wire protocol, so one interface
// covers both endpoints.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error)
}

// InsightContext carries the already-derived numbers an agent narrates.
// Raw provider payloads never reach the narrator.
type InsightContext struct {
	Price          float64  `json:"price,omitempty"`
	MarketCap      float64  `json:"marketCap,omitempty"`
	Volume24h      float64  `json:"volume24h,omitempty"`
	Liquidity      float64  `json:"liquidity,omitempty"`
	Mentions       int      `json:"mentions,omitempty"`
	Score          float64  `json:"score,omitempty"`
	PriceChange24h float64  `json:"priceChange24h,omitempty"`
	Trend          string   `json:"trend,omitempty"`
	VolumeTrend    string   `json:"volumeTrend,omitempty"`
	RugPullRisk    float64  `json:"rugPullRisk,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}

// Narrator turns derived records into short natural-language
// commentary. Every call succeeds: if the hosted model is unreachable
// the narrator falls back to a deterministic template assembled from
// the same inputs.
type Narrator struct {
	tracer       trace.Tracer
	log          zerolog.Logger
	insightLLM   LLMClient
	chatLLM      LLMClient
	insightModel string
	chatModel    string
	maxHistory   int
}

func New(tracer trace.Tracer, log zerolog.Logger, insightLLM, chatLLM LLMClient, insightModel, chatModel string) *Narrator {
	if insightModel == "" {
		insightModel = DefaultInsightModel
	}
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	return &Narrator{
		tracer:       tracer,
		log:          log,
		insightLLM:   insightLLM,
		chatLLM:      chatLLM,
		insightModel: insightModel,
		chatModel:    chatModel,
		maxHistory:   6,
	}
}

// NewGroqClient returns an LLMClient against the Groq OpenAI-compatible
// endpoint, or nil when no key is configured.
func NewGroqClient(apiKey string) LLMClient {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(groqBaseURL))
	return &openaiClient{client: client}
}

// NewFireworksClient returns an LLMClient against the Fireworks
// inference endpoint, or nil when no key is configured.
func NewFireworksClient(apiKey string) LLMClient {
	if apiKey == "" {
		return nil
	}
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(fireworksBaseURL))
	return &openaiClient{client: client}
}

// GenerateInsight narrates one agent's view of the derived data in 1-2
// sentences. It never fails; LLM trouble degrades to the template text.
func (n *Narrator) GenerateInsight(ctx context.Context, agent domain.AgentKind, ic InsightContext) string {
	ctx, span := n.tracer.Start(ctx, "narrator.generate-insight")
	defer span.End()
	span.SetAttributes(attribute.String("narrator.agent", string(agent)))

	if n.insightLLM == nil {
		return FallbackInsight(agent, ic)
	}

	completion, err := n.insightLLM.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model: n.insightModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(agentSystemPrompt(agent)),
			openai.UserMessage(agentPrompt(agent, ic)),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(200),
	})
	if err != nil || len(completion.Choices) == 0 {
		span.RecordError(err)
		n.log.Debug().Err(err).Str("agent", string(agent)).Msg("insight LLM unavailable, using fallback")
		return FallbackInsight(agent, ic)
	}

	return completion.Choices[0].Message.Content
}

// Chat answers a free-form question with the full analysis context in
// the system instruction plus the last turns of history. The canned
// apology covers every failure mode.
func (n *Narrator) Chat(ctx context.Context, userMessage string, tokenCtx *domain.TokenContext, history []domain.ChatMessage) string {
	ctx, span := n.tracer.Start(ctx, "narrator.chat")
	defer span.End()
	span.SetAttributes(attribute.Int("narrator.history_len", len(history)))

	if n.chatLLM == nil {
		return ChatFallbackReply
	}

	if len(history) > n.maxHistory {
		history = history[len(history)-n.maxHistory:]
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(chatSystemPrompt(tokenCtx)))
	for _, msg := range history {
		switch msg.Role {
		case "user":
			messages = append(messages, openai.UserMessage(msg.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		}
	}
	messages = append(messages, openai.UserMessage(userMessage))

	completion, err := n.chatLLM.CreateChatCompletion(ctx, openai.ChatCompletionNewParams{
		Model:       n.chatModel,
		Messages:    messages,
		Temperature: openai.Float(0.9),
		MaxTokens:   openai.Int(300),
	})
	if err != nil || len(completion.Choices) == 0 {
		span.RecordError(err)
		n.log.Debug().Err(err).Msg("chat LLM unavailable, using canned reply")
		return ChatFallbackReply
	}

	return completion.Choices[0].Message.Content
}

type openaiClient struct {
	client openai.Client
}

func (c *openaiClient) CreateChatCompletion(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, error) {
	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	return completion, nil
}
