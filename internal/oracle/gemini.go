package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/jwebster45206/resentcalc/pkg/state"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const DefaultModel = "gemini-2.5-flash"

// generateFunc sends one system prompt and user input and returns raw text.
type generateFunc func(ctx context.Context, system, input string) (string, error)

// GeminiOracle answers through the Gemini API with a JSON response schema.
type GeminiOracle struct {
	client     *genai.Client
	modelName  string
	prompts    *Prompts
	logger     *slog.Logger
	maxRetries int
	backoff    time.Duration
	generate   generateFunc
}

// Ensure GeminiOracle implements Oracle
var _ Oracle = (*GeminiOracle)(nil)

// NewGeminiOracle connects to Gemini with apiKey.
func NewGeminiOracle(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (*GeminiOracle, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	prompts, err := LoadPrompts()
	if err != nil {
		client.Close()
		return nil, err
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	g := &GeminiOracle{
		client:     client,
		modelName:  modelName,
		prompts:    prompts,
		logger:     logger,
		maxRetries: 1,
		backoff:    500 * time.Millisecond,
	}
	g.generate = g.generateContent
	return g, nil
}

func (g *GeminiOracle) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// responseSchema pins the model to {result, comment, mood}.
func responseSchema() *genai.Schema {
	moods := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		moods = append(moods, string(m))
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"result": {
				Type:        genai.TypeString,
				Description: "The result of the math, or a short summary of a text answer.",
			},
			"comment": {
				Type:        genai.TypeString,
				Description: "The calculator's reaction.",
			},
			"mood": {
				Type:        genai.TypeString,
				Enum:        moods,
				Description: "Emotional state.",
			},
		},
		Required: []string{"result", "comment", "mood"},
	}
}

func (g *GeminiOracle) generateContent(ctx context.Context, system, input string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(input))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content returned from gemini")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response type from gemini")
	}
	return string(text), nil
}

// Calculate never returns an error: rate limits and outages become
// in-character fallback responses.
func (g *GeminiOracle) Calculate(ctx context.Context, req Request) (*Response, error) {
	system, err := g.prompts.SystemPrompt(req)
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		text, err := g.generate(ctx, system, "Input: "+req.Expression)
		if err == nil {
			var resp *Response
			resp, err = parseResponse(text)
			if err == nil {
				return enforce(resp, req.ForcedMood), nil
			}
		}

		g.logger.Warn("Gemini calculation failed", "attempt", attempt+1, "error", err)
		if isRateLimited(err) {
			return enforce(RateLimited(), mood.None), nil
		}
		if attempt >= g.maxRetries {
			return Failure(), nil
		}

		select {
		case <-ctx.Done():
			return Failure(), nil
		case <-time.After(g.backoff * time.Duration(attempt+1)):
		}
	}
}

// Greeting asks the model for a boot line and falls back to the local one.
func (g *GeminiOracle) Greeting(ctx context.Context, hostility int, day state.Day) (*Response, error) {
	system, err := g.prompts.GreetingPrompt(Request{Hostility: hostility, Day: day})
	if err != nil {
		return DefaultGreeting(day), nil
	}
	text, err := g.generate(ctx, system, "Boot complete.")
	if err != nil {
		g.logger.Warn("Gemini greeting failed", "day", day.String(), "error", err)
		return DefaultGreeting(day), nil
	}
	resp, err := parseResponse(text)
	if err != nil || strings.TrimSpace(resp.Comment) == "" {
		return DefaultGreeting(day), nil
	}
	resp.Result = ""
	return enforce(resp, mood.None), nil
}

// parseResponse decodes model output, tolerating markdown fences.
func parseResponse(text string) (*Response, error) {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil, errors.New("empty response from gemini")
	}

	var resp Response
	if err := json.Unmarshal([]byte(clean), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse gemini response: %w", err)
	}
	return &resp, nil
}

// isRateLimited recognizes quota errors from either transport.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return true
	}
	if status.Code(err) == codes.ResourceExhausted {
		return true
	}
	return strings.Contains(err.Error(), "429")
}
