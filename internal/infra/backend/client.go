// Package backend talks to the dashboard API over HTTP.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"painel/config"
	deliverycontext "painel/internal/delivery/context"
	"painel/internal/domain/entity"
	domainerrors "painel/internal/domain/errors"
	"painel/internal/domain/service"
	"painel/internal/usecase"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

var (
	_ service.AuthGateway      = (*Client)(nil)
	_ service.DirectoryGateway = (*Client)(nil)
	_ service.PeopleGateway    = (*Client)(nil)
	_ service.AccountGateway   = (*Client)(nil)
)

// Client implements the backend gateways. Every call carries the headers of the current
// session binding.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    usecase.HeaderComposer
	logger     *slog.Logger
}

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
}

// NewClient creates a client for cfg.Backend.BaseURL.
func NewClient(cfg *config.Config, headers usecase.HeaderComposer, logger *slog.Logger) (*Client, error) {
	if cfg.Backend == nil || cfg.Backend.BaseURL == "" {
		return nil, errors.New("backend.baseUrl is not configured")
	}

	base, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid backend.baseUrl")
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("backend.baseUrl must be http or https, got %q", base.Scheme)
	}

	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		headers:    headers,
		logger:     logger,
	}, nil
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// request describes one API call.
type request struct {
	method        string
	path          string
	query         url.Values
	body          any
	authenticated bool
	// tenant replaces the tenant header of the session binding when set.
	tenant entity.TenantID
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	return u.String()
}

// do sends req and decodes the data member of the envelope into out. A nil out discards it.
func (c *Client) do(ctx context.Context, req request, out any) error {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.endpoint(req.path, req.query), body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	httpReq.Header = c.headers.Compose(ctx, req.authenticated)
	if tenantHeader := c.headers.TenantHeader(); !req.tenant.IsZero() && httpReq.Header.Get(tenantHeader) != req.tenant.String() {
		// a token is only ever sent to the tenant that issued it
		httpReq.Header.Del("Authorization")
		httpReq.Header.Set(tenantHeader, req.tenant.String())
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.method, req.path)
	}
	defer resp.Body.Close()

	c.log(ctx).Debug("Backend call",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.WithStack(decodeError(resp))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", req.method, req.path)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return errors.Errorf("%s %s response has no data", req.method, req.path)
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "failed to decode response data")
}

// decodeError turns a non-2xx answer into a RemoteError, falling back to the status text when
// the body is not an error envelope.
func decodeError(resp *http.Response) *domainerrors.RemoteError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil && env.Error.Message != "" {
		return domainerrors.NewRemoteError(resp.StatusCode, env.Error.Code, env.Error.Message, detailString(env.Error.Details))
	}

	message := http.StatusText(resp.StatusCode)
	if message == "" {
		message = "HTTP " + strconv.Itoa(resp.StatusCode)
	}

	return domainerrors.NewRemoteError(resp.StatusCode, "", message, strings.TrimSpace(string(raw)))
}

func detailString(details any) string {
	switch d := details.(type) {
	case nil:
		return ""
	case string:
		return d
	default:
		encoded, err := json.Marshal(d)
		if err != nil {
			return ""
		}

		return string(encoded)
	}
}

func listQuery(query entity.ListQuery) url.Values {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	return values
}
