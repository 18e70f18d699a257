package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/sagarhutagi/ai-code-doctor/internal/api/middleware"
	"github.com/sagarhutagi/ai-code-doctor/internal/catalog"
	"github.com/sagarhutagi/ai-code-doctor/internal/config"
	"github.com/sagarhutagi/ai-code-doctor/internal/llm"
	"github.com/sagarhutagi/ai-code-doctor/internal/metrics"
	"github.com/sagarhutagi/ai-code-doctor/internal/models"
	"github.com/sagarhutagi/ai-code-doctor/internal/prompt"
	"github.com/sagarhutagi/ai-code-doctor/internal/upload"
)

// maxMultipartMemory bounds the in-memory part of multipart parsing;
// larger bodies spill to temp files which are cleaned per request.
const maxMultipartMemory = 32 << 20

type Handler struct {
	client         llm.Client
	catalog        *catalog.Catalog
	actions        *config.ActionsConfig
	defaultModel   string
	maxUploadBytes int64
	logger         *zerolog.Logger
}

func NewHandler(client llm.Client, cat *catalog.Catalog, actions *config.ActionsConfig, defaultModel string, maxUploadBytes int64, logger *zerolog.Logger) *Handler {
	return &Handler{
		client:         client,
		catalog:        cat,
		actions:        actions,
		defaultModel:   defaultModel,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// GET /
func (h *Handler) Status(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, models.StatusResponse{
		Status:  "ok",
		Message: "Backend is running.",
		Usage:   "POST /ask",
	})
}

// GET /models
// Returns: ModelsResponse, configured default model first.
func (h *Handler) Models(req *restful.Request, resp *restful.Response) {
	descriptors, err := h.catalog.List(req.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Model listing failed")
		h.writeUpstreamError(resp, err)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, models.ModelsResponse{
		Default: h.defaultModel,
		Models:  descriptors,
	})
}

// GET /actions
func (h *Handler) Actions(req *restful.Request, resp *restful.Response) {
	actions := make([]models.Action, 0, len(h.actions.Actions))
	for _, a := range h.actions.Actions {
		actions = append(actions, models.Action{
			Name:   a.Name,
			Label:  a.Label,
			Prompt: a.Prompt,
		})
	}
	resp.WriteHeaderAndEntity(http.StatusOK, models.ActionsResponse{
		Default: h.actions.Default,
		Actions: actions,
	})
}

// POST /ask
// Multipart fields: file (bytes), question (text, optional), model (text,
// optional). One outbound call per request; the result or error is passed
// through unchanged.
func (h *Handler) Ask(req *restful.Request, resp *restful.Response) {
	r := req.Request
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse multipart form")
		middleware.HandleError(resp, errors.New("expected a multipart form"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		metrics.IncRejectedUpload("no_filename")
		middleware.HandleError(resp, errors.New("missing 'file' field"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploaded, err := upload.Read(file, header.Filename, h.maxUploadBytes)
	if err != nil {
		h.writeUploadError(resp, err)
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	if question == "" {
		question = h.actions.DefaultPrompt()
	}
	model := strings.TrimSpace(r.FormValue("model"))
	if model == "" {
		model = h.defaultModel
	}

	h.logger.Info().
		Str("filename", uploaded.Name).
		Int("bytes", uploaded.Size).
		Str("model", model).
		Msg("Forwarding ask request")

	metrics.IncGenerationRequest(model)
	start := time.Now()

	result, err := h.client.Generate(r.Context(), llm.GenerateRequest{
		Model:  model,
		Prompt: prompt.Build(uploaded.Name, uploaded.Text, question),
	})

	metrics.ObserveGenerationDuration(time.Since(start))

	if err != nil {
		h.logger.Error().Err(err).Str("model", model).Msg("Generation failed")
		h.writeUpstreamError(resp, err)
		return
	}

	h.logger.Info().
		Str("model", model).
		Dur("duration", time.Since(start)).
		Int("answer_chars", len(result.Answer)).
		Msg("Generation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, models.AskResponse{
		Model:    model,
		Question: question,
		Filename: uploaded.Name,
		Answer:   result.Answer,
	})
}

// writeUploadError maps validation failures to 4xx. All of these reject
// the request before any outbound call is attempted.
func (h *Handler) writeUploadError(resp *restful.Response, err error) {
	code := http.StatusBadRequest
	reason := "empty"
	switch {
	case errors.Is(err, upload.ErrNoFilename):
		reason = "no_filename"
	case errors.Is(err, upload.ErrTooLarge):
		code = http.StatusRequestEntityTooLarge
		reason = "too_large"
	case errors.Is(err, upload.ErrNotText):
		reason = "not_text"
	}
	metrics.IncRejectedUpload(reason)
	middleware.HandleError(resp, err, code)
}

// writeUpstreamError maps the llm failure classes to the proxy's 5xx
// contract: unreachable → 503, timeout → 504, upstream status or empty
// answer → 502.
func (h *Handler) writeUpstreamError(resp *restful.Response, err error) {
	var code int
	var kind string
	switch {
	case errors.Is(err, llm.ErrTimeout):
		code, kind = http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, llm.ErrUpstream):
		code, kind = http.StatusBadGateway, "upstream"
	case errors.Is(err, llm.ErrEmptyAnswer):
		code, kind = http.StatusBadGateway, "empty"
	case errors.Is(err, llm.ErrUnavailable):
		code, kind = http.StatusServiceUnavailable, "unavailable"
	default:
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}
	metrics.IncUpstreamFailure(kind)
	middleware.HandleError(resp, err, code)
}
