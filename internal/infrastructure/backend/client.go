package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase/interfaces"
)

const defaultTimeout = 15 * time.Second

type ctxKey struct{}

// WithAccessToken stores the caller's bearer token for backend requests made with ctx.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

func AccessTokenFrom(ctx context.Context) string {
	tok, _ := ctx.Value(ctxKey{}).(string)
	return tok
}

// Client talks to the external sales REST backend.
//
// It does not retry: a failed request surfaces to the caller, which decides how
// to present it.
type Client struct {
	baseURL *url.URL
	http    *http.Client
}

var _ interfaces.ISalesAPI = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", baseURL)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{baseURL: u, http: &http.Client{Timeout: timeout}}, nil
}

// NewClientFromEnv reads BACKEND_BASE_URL (default http://localhost:3000) and
// BACKEND_TIMEOUT (Go duration, default 15s).
func NewClientFromEnv() (*Client, error) {
	timeout := defaultTimeout
	if raw := strings.TrimSpace(os.Getenv("BACKEND_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse BACKEND_TIMEOUT: %w", err)
		}
		timeout = d
	}
	return NewClient(getenvDefault("BACKEND_BASE_URL", "http://localhost:3000"), timeout)
}

func (c *Client) Login(ctx context.Context, email, password string) (entities.AuthTokens, error) {
	var out entities.AuthTokens
	err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, map[string]string{"email": email, "password": password}, &out)
	return out, err
}

func (c *Client) Roles(ctx context.Context) ([]entities.Role, error) {
	page, err := getPage[entities.Role](ctx, c, "/api/users/roles", nil)
	return page.Items, err
}

func (c *Client) ActiveProjects(ctx context.Context) ([]entities.Project, error) {
	page, err := getPage[entities.Project](ctx, c, "/api/sales/projects/actives", nil)
	return page.Items, err
}

func (c *Client) Stages(ctx context.Context, projectID string) ([]entities.Stage, error) {
	page, err := getPage[entities.Stage](ctx, c, "/api/sales/stages/"+url.PathEscape(projectID), nil)
	return page.Items, err
}

func (c *Client) Blocks(ctx context.Context, stageID string) ([]entities.Block, error) {
	page, err := getPage[entities.Block](ctx, c, "/api/sales/blocks/"+url.PathEscape(stageID), nil)
	return page.Items, err
}

func (c *Client) Lots(ctx context.Context, projectID, blockID string, params entities.ListParams) (entities.Page[entities.Lot], error) {
	q := params.Values()
	if blockID != "" {
		q.Set("blockId", blockID)
	}
	return getPage[entities.Lot](ctx, c, "/api/sales/projects/lots/"+url.PathEscape(projectID), q)
}

func (c *Client) Leads(ctx context.Context, params entities.ListParams) (entities.Page[entities.Lead], error) {
	return getPage[entities.Lead](ctx, c, "/api/leads", params.Values())
}

func (c *Client) Lead(ctx context.Context, id string) (entities.Lead, error) {
	var out entities.Lead
	err := c.do(ctx, http.MethodGet, "/api/leads/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

// ClientByDocument returns nil without error when no client exists for the document.
func (c *Client) ClientByDocument(ctx context.Context, document string) (*entities.Client, error) {
	var out entities.Client
	err := c.do(ctx, http.MethodGet, "/api/clients/document/"+url.PathEscape(document), nil, nil, &out)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if out.ID == 0 {
		return nil, nil
	}
	return &out, nil
}

func (c *Client) ActiveParticipants(ctx context.Context, t entities.ParticipantType) ([]entities.Participant, error) {
	q := url.Values{}
	q.Set("type", string(t))
	page, err := getPage[entities.Participant](ctx, c, "/api/participants/all/actives", q)
	return page.Items, err
}

func (c *Client) Sale(ctx context.Context, saleID string) (entities.Sale, error) {
	var out entities.Sale
	err := c.do(ctx, http.MethodGet, "/api/sales/"+url.PathEscape(saleID), nil, nil, &out)
	return out, err
}

func (c *Client) CreateSale(ctx context.Context, req entities.CreateSaleRequest) (entities.Sale, error) {
	var out entities.Sale
	err := c.do(ctx, http.MethodPost, "/api/sales", nil, req, &out)
	return out, err
}

func (c *Client) AssignParticipant(ctx context.Context, saleID, field, participantID string) error {
	return c.do(ctx, http.MethodPatch, "/api/sales/"+url.PathEscape(saleID)+"/participants", nil, map[string]string{field: participantID}, nil)
}

func (c *Client) SalePayments(ctx context.Context, saleID string) ([]entities.Payment, error) {
	page, err := getPage[entities.Payment](ctx, c, "/api/sales/"+url.PathEscape(saleID)+"/payments", nil)
	return page.Items, err
}

func (c *Client) RegisterOnlinePayment(ctx context.Context, saleID, paymentID string, metadata map[string]any) (entities.Payment, error) {
	var out entities.Payment
	path := "/api/sales/" + url.PathEscape(saleID) + "/payments/" + url.PathEscape(paymentID) + "/online"
	err := c.do(ctx, http.MethodPost, path, nil, map[string]any{"metadata": metadata}, &out)
	return out, err
}

func getPage[T any](ctx context.Context, c *Client, path string, q url.Values) (entities.Page[T], error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, q, nil, &raw); err != nil {
		return entities.Page[T]{}, err
	}
	page, err := decodePage[T](raw)
	if err != nil {
		return entities.Page[T]{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body any, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := AccessTokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	log := logger.For("backend.client")
	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("method", method).Str("path", path).Msg("request failed without response")
		return fmt.Errorf("%w: %s %s: %v", ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrBackendUnavailable, path, err)
	}
	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Dur("took", time.Since(started)).Msg("request done")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: parseErrorMessage(respBody, resp.StatusCode), Path: path}
	}
	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], respBody...)
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
