// Package apiclient talks to the external SocksFlow REST API. It implements
// the collaborator contracts in internal/domain/service.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"socksflow/config"
	domainerrors "socksflow/internal/domain/errors"
	"socksflow/internal/errors"

	"go.uber.org/fx"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// Client is a JSON-over-HTTP client for the SocksFlow API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for Client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates an API client from configuration.
func NewClient(params Params) *Client {
	cfg := params.Config.API

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

// request describes one API call.
type request struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
}

// errorBody is the FastAPI error shape. Detail is either a string or a list of
// validation problems.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type validationProblem struct {
	Msg string `json:"msg"`
}

// do performs req and decodes a 2xx body into out (when non-nil). Non-2xx
// answers become *domainerrors.APIError; transport failures wrap ErrUpstreamUnavailable.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(payload)
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("API request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Any("error", err),
		)

		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "%s %s: %v", req.method, req.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		c.logger.Debug("API request rejected",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.Int("status", resp.StatusCode),
			slog.String("detail", apiErr.Details()),
		)

		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "decode %s %s: %v", req.method, req.path, err)
	}

	return nil
}

func decodeError(resp *http.Response) *domainerrors.APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return domainerrors.NewAPIError(resp.StatusCode, "")
	}

	return domainerrors.NewAPIError(resp.StatusCode, detailMessage(body))
}

func detailMessage(body errorBody) string {
	if len(body.Detail) == 0 {
		return strings.TrimSpace(body.Message)
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var problems []validationProblem
	if err := json.Unmarshal(body.Detail, &problems); err == nil {
		msgs := make([]string, 0, len(problems))
		for _, p := range problems {
			if m := strings.TrimSpace(p.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}

		return strings.Join(msgs, "; ")
	}

	return ""
}
