package ollama

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"

	"github.com/sagarhutagi/ai-code-doctor/internal/llm"
)

// Config holds the fixed upstream settings, read once at startup.
type Config struct {
	// Host is the base URL of the Ollama server, e.g. http://localhost:11434.
	Host string
	// GenerateTimeout bounds one generation call.
	GenerateTimeout time.Duration
	// ListTimeout bounds one model-listing call.
	ListTimeout time.Duration
}

type Client struct {
	client          *api.Client
	generateTimeout time.Duration
	listTimeout     time.Duration
	logger          *zerolog.Logger
}

func NewClient(cfg Config, logger *zerolog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", cfg.Host, err)
	}

	logger.Info().
		Str("host", cfg.Host).
		Dur("generate_timeout", cfg.GenerateTimeout).
		Msg("Ollama client initialized")

	return &Client{
		client:          api.NewClient(base, http.DefaultClient),
		generateTimeout: cfg.GenerateTimeout,
		listTimeout:     cfg.ListTimeout,
		logger:          logger,
	}, nil
}

// Generate issues one non-streaming call and blocks for the full answer.
// A single attempt: retrying is left to the caller.
func (c *Client) Generate(ctx context.Context, request llm.GenerateRequest) (*llm.GenerateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.generateTimeout)
	defer cancel()

	stream := false
	req := &api.GenerateRequest{
		Model:  request.Model,
		Prompt: request.Prompt,
		Stream: &stream,
	}

	var text strings.Builder
	err := c.client.Generate(ctx, req, func(gr api.GenerateResponse) error {
		text.WriteString(gr.Response)
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	answer := strings.TrimSpace(text.String())
	if answer == "" {
		return nil, llm.ErrEmptyAnswer
	}

	return &llm.GenerateResult{Answer: answer}, nil
}

// ListModels queries the upstream tags endpoint. No caching: every call
// re-queries the server.
func (c *Client) ListModels(ctx context.Context) ([]llm.ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.listTimeout)
	defer cancel()

	resp, err := c.client.List(ctx)
	if err != nil {
		return nil, classify(err)
	}

	models := make([]llm.ModelInfo, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, llm.ModelInfo{
			Name:       m.Name,
			SizeBytes:  m.Size,
			ModifiedAt: m.ModifiedAt,
		})
	}
	return models, nil
}

// classify maps a transport or upstream failure to one of the llm failure
// classes. Order matters: a timed-out dial would otherwise also satisfy
// the generic transport checks below it.
func classify(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Errorf("%w: %s", llm.ErrUpstream, statusErr.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", llm.ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", llm.ErrTimeout, err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
	}

	// Anything else at this point is a failure to reach or converse with
	// the server (DNS, reset, closed connection).
	return fmt.Errorf("%w: %v", llm.ErrUnavailable, err)
}
