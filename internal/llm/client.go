// Package llm is the completion gateway: one text-generation call per
// AI-backed stage, with the structured output validated before anything is
// persisted. The gateway never retries; callers may safely resubmit because
// no state is written before a successful generation.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Gateway is the completion capability consumed by the screening services.
type Gateway interface {
	Generate(ctx context.Context, system, prompt string, temperature float64, expectJSON bool) (string, error)
}

// GenerationError covers every gateway failure kind: network, timeout,
// provider error, or output that fails schema validation. All are equivalent
// to the caller.
type GenerationError struct {
	Detail string
	Cause  error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Detail, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s", e.Detail)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Client is the production Gateway on top of a Gemini model.
type Client struct {
	model   llms.Model
	timeout time.Duration
}

// NewClient builds the Gemini-backed gateway. The timeout bounds every
// individual generation call.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{model: llm, timeout: timeout}, nil
}

// Generate performs one completion call. The candidate-row lock is never held
// across this call: callers compute first, then apply inside a short
// transaction.
func (c *Client) Generate(ctx context.Context, system, prompt string, temperature float64, expectJSON bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{}
	if system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	opts := []llms.CallOption{llms.WithTemperature(temperature)}
	if expectJSON {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := c.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", &GenerationError{Detail: "completion call failed", Cause: err}
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", &GenerationError{Detail: "empty completion response"}
	}
	return resp.Choices[0].Content, nil
}

// MaxPromptTokens bounds interpolated free text (resumes, transcripts) so a
// single oversized submission cannot blow the model's context window.
const MaxPromptTokens = 6000

// TruncateTokens trims text to at most max tokens of the cl100k_base
// encoding. Falls back to a byte cut if the encoding is unavailable.
func TruncateTokens(text string, max int) string {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		if len(text) > max*4 {
			return text[:max*4]
		}
		return text
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= max {
		return text
	}
	return enc.Decode(tokens[:max])
}
