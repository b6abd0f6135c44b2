// Package gateway wraps the four remote operations the user directory
// exposes: list, create, update and delete over a JSONPlaceholder-style
// /users resource.
//
// The gateway is wire-level: it deals in models.APIUser and leaves the
// mapping to application records to the caller. It carries no retry
// logic; any transport or status failure surfaces verbatim as a
// *TransportError.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go/pkg/constants"
	"github.com/userdesk/userdesk.go/pkg/models"
)

// TransportError reports a remote call that failed in flight or came
// back with a non-success status.
type TransportError struct {
	// Op is the gateway operation that failed: list, create, update or delete.
	Op string
	// Status is the HTTP status text; empty for network-level failures.
	Status string
	// Err is the underlying error; nil for status failures.
	Err error
}

func (e *TransportError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("failed to %s users: %s", e.Op, e.Status)
	}
	return fmt.Sprintf("failed to %s users: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Gateway is an HTTP client for the remote user directory.
type Gateway struct {
	// BaseURL is the collaborator's base URL, without a trailing slash.
	BaseURL string

	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a Gateway for the given base URL with a default timeout.
func New(baseURL string) *Gateway {
	return &Gateway{
		BaseURL: baseURL,
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
		logger: zerolog.Nop(),
	}
}

func (g *Gateway) SetTimeout(timeout time.Duration) *Gateway {
	g.httpClient.Timeout = timeout
	return g
}

func (g *Gateway) SetHTTPClient(client *http.Client) *Gateway {
	g.httpClient = client
	return g
}

func (g *Gateway) SetLogger(logger zerolog.Logger) *Gateway {
	g.logger = logger
	return g
}

// List fetches every user the collaborator knows about.
func (g *Gateway) List(ctx context.Context) ([]models.APIUser, error) {
	body, err := g.request(ctx, "list", http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}

	var users []models.APIUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, &TransportError{Op: "list", Err: err}
	}
	return users, nil
}

// Create posts a new user and returns the collaborator's echo. The
// echoed id is not durable across calls; callers must synthesize a
// locally unique one.
func (g *Gateway) Create(ctx context.Context, user models.APIUser) (models.APIUser, error) {
	body, err := g.request(ctx, "create", http.MethodPost, "/users", user)
	if err != nil {
		return models.APIUser{}, err
	}

	var created models.APIUser
	if err := json.Unmarshal(body, &created); err != nil {
		return models.APIUser{}, &TransportError{Op: "create", Err: err}
	}
	return created, nil
}

// Update puts the full wire record for id and returns the echo. The echo
// reflects the request, not what a durable store would have applied.
func (g *Gateway) Update(ctx context.Context, id int, user models.APIUser) (models.APIUser, error) {
	body, err := g.request(ctx, "update", http.MethodPut, fmt.Sprintf("/users/%d", id), user)
	if err != nil {
		return models.APIUser{}, err
	}

	var updated models.APIUser
	if err := json.Unmarshal(body, &updated); err != nil {
		return models.APIUser{}, &TransportError{Op: "update", Err: err}
	}
	return updated, nil
}

// Delete removes the user with the given id on the remote side. Only the
// status matters; any response body is discarded.
func (g *Gateway) Delete(ctx context.Context, id int) error {
	_, err := g.request(ctx, "delete", http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}

func (g *Gateway) request(ctx context.Context, op, method, endpoint string, payload any) ([]byte, error) {
	if g.BaseURL == "" {
		return nil, constants.ErrNoEndpoint
	}

	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, &TransportError{Op: op, Err: err}
		}
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.BaseURL+endpoint, reqBody)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error().Err(err).Str("op", op).Msg("remote call failed")
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		g.logger.Debug().Str("op", op).Int("status", resp.StatusCode).Msg("remote call ok")
		return respBytes, nil
	}

	status := http.StatusText(resp.StatusCode)
	g.logger.Error().Str("op", op).Str("status", status).Msg("remote call rejected")
	return nil, &TransportError{Op: op, Status: status}
}
