package gateway

// Package gateway is the single outbound channel to the remote API. It
// attaches the bearer credential to every request, classifies every
// failure into exactly one user-facing notification, and forces a
// session reset on authentication failures.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	apperrors "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/errors"
	"github.com/Mohamed-Esmat/fms-upskilling-guide/internal/ports"
)

// requestIDHeader correlates client calls in server logs.
const requestIDHeader = "X-Request-Id"

// maxErrorBody caps how much of a failure response is read for
// classification.
const maxErrorBody = 1 << 20

// ClientOptions groups dependencies for Client.
type ClientOptions struct {
	// BaseURL is the API root, e.g. "https://upskilling-egypt.com:3006/api/v1".
	BaseURL string
	// HTTPClient is the underlying transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client
	// Tokens supplies the bearer credential per request.
	Tokens oauth2.TokenSource
	// Notifier receives the single failure notification per failed call.
	Notifier ports.Notifier
	// Navigator supplies the current path and performs the 401 redirect.
	Navigator ports.Navigator
	// Sessions is cleared by the 401 handler.
	Sessions ports.SessionInvalidator
	Logger   *slog.Logger
}

// Client is the HTTP gateway. Failure handling policy lives here and
// nowhere else; callers receive typed errors and must not re-notify.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    oauth2.TokenSource
	notifier  ports.Notifier
	navigator ports.Navigator
	sessions  ports.SessionInvalidator
	logger    *slog.Logger

	loginPath string
}

// NewClient constructs the gateway.
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("token source is required")
	}
	if opts.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if opts.Navigator == nil {
		return nil, errors.New("navigator is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session invalidator is required")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		http:      httpClient,
		tokens:    opts.Tokens,
		notifier:  opts.Notifier,
		navigator: opts.Navigator,
		sessions:  opts.Sessions,
		logger:    logger,
		loginPath: "/login",
	}, nil
}

// callConfig carries per-call overrides.
type callConfig struct {
	token string
	query url.Values
}

// CallOption customizes a single gateway call.
type CallOption func(*callConfig)

// WithToken overrides the bearer credential for one call. Used during
// login completion, when the token exists but has not been committed
// to the session yet.
func WithToken(token string) CallOption {
	return func(c *callConfig) { c.token = token }
}

// WithQuery attaches query parameters.
func WithQuery(query url.Values) CallOption {
	return func(c *callConfig) { c.query = query }
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out, opts...)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...CallOption) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out, opts...)
}

// PostForm issues a POST with a multipart body and decodes the
// response into out.
func (c *Client) PostForm(ctx context.Context, path string, form *Form, out any, opts ...CallOption) error {
	return c.doForm(ctx, http.MethodPost, path, form, out, opts...)
}

// PutForm issues a PUT with a multipart body and decodes the response
// into out.
func (c *Client) PutForm(ctx context.Context, path string, form *Form, out any, opts ...CallOption) error {
	return c.doForm(ctx, http.MethodPut, path, form, out, opts...)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, opts ...CallOption) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperrors.Wrapf(err, apperrors.ErrCodeUnknown, "encode %s %s request", method, path)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json", out, opts...)
}

func (c *Client) doForm(ctx context.Context, method, path string, form *Form, out any, opts ...CallOption) error {
	body, contentType, err := form.build()
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnknown, "encode %s %s form", method, path)
	}
	return c.do(ctx, method, path, body, contentType, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any, opts ...CallOption) error {
	cfg := callConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(cfg.query) > 0 {
		target += "?" + cfg.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnknown, "build %s %s request", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if err := c.attachBearer(req, cfg.token); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUnknown, "read bearer token")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// No response at all: generic fallback path, single notification.
		c.notifier.Error(apperrors.FallbackMessage)
		c.logger.WarnContext(ctx, "api transport failure",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return apperrors.Wrap(err, apperrors.ErrCodeUnavailable, apperrors.FallbackMessage)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			if errors.Is(err, io.EOF) {
				return nil // Empty success body.
			}
			return apperrors.Wrapf(err, apperrors.ErrCodeUnknown, "decode %s %s response", method, path)
		}
		return nil
	}

	return c.classify(ctx, method, path, resp)
}

// attachBearer sets the Authorization header from the per-call
// override or the token source. An empty token sends the request
// unauthenticated; no format validation is performed.
func (c *Client) attachBearer(req *http.Request, override string) error {
	if override != "" {
		(&oauth2.Token{AccessToken: override, TokenType: "Bearer"}).SetAuthHeader(req)
		return nil
	}
	tok, err := c.tokens.Token()
	if err != nil {
		return err
	}
	if tok.AccessToken != "" {
		tok.SetAuthHeader(req)
	}
	return nil
}

// classify maps a failure response onto an error code and exactly one
// notification, applying the 401 session-reset contract.
func (c *Client) classify(ctx context.Context, method, path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	parsed := apperrors.ParseAPIError(body)
	message := parsed.FormatMessage()
	status := resp.StatusCode

	c.logger.WarnContext(ctx, "api call failed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)

	var appErr *apperrors.AppError
	switch status {
	case http.StatusUnauthorized:
		appErr = c.handleUnauthorized(ctx, message)
	case http.StatusForbidden:
		msg := "Access Denied. You do not have permission to perform this action."
		c.notifier.Error(msg)
		appErr = apperrors.New(apperrors.ErrCodeForbidden, msg)
	case http.StatusNotFound:
		msg := "Resource not found."
		c.notifier.Error(msg)
		appErr = apperrors.New(apperrors.ErrCodeNotFound, msg)
	case http.StatusConflict:
		c.notifier.Error(message)
		appErr = apperrors.New(apperrors.ErrCodeConflict, message)
	case http.StatusBadRequest:
		c.notifier.Error(message)
		appErr = apperrors.New(apperrors.ErrCodeValidation, message)
	case http.StatusInternalServerError:
		if parsed != nil && parsed.Code() == apperrors.MailFailureCode {
			msg := "Email service is temporarily unavailable. Please try again later."
			c.notifier.Error(msg)
			appErr = apperrors.New(apperrors.ErrCodeMailService, msg)
		} else {
			msg := "Server error. Please try again later."
			c.notifier.Error(msg)
			appErr = apperrors.New(apperrors.ErrCodeInternal, msg)
		}
	default:
		c.notifier.Error(message)
		appErr = apperrors.New(apperrors.ErrCodeUnknown, message)
	}

	return appErr.WithStatus(status)
}

// handleUnauthorized implements the 401 contract: off the login page,
// wipe the session, hard-redirect to login and notify once; on the
// login page there is nothing to clear, so only the server's message
// is shown. Repeated 401s while already on login therefore degrade to
// notifications, never a redirect loop.
func (c *Client) handleUnauthorized(ctx context.Context, message string) *apperrors.AppError {
	if c.navigator.CurrentPath() != c.loginPath {
		if err := c.sessions.Logout(ctx); err != nil {
			c.logger.ErrorContext(ctx, "session reset failed", slog.Any("error", err))
		}
		c.navigator.Force(c.loginPath)
		msg := "Session expired. Please login again."
		c.notifier.Error(msg)
		return apperrors.New(apperrors.ErrCodeUnauthorized, msg)
	}

	c.notifier.Error(message)
	return apperrors.New(apperrors.ErrCodeUnauthorized, message)
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }
