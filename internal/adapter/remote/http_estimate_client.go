package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/kaosom/zipquote/internal/domain/entities"
	"github.com/kaosom/zipquote/internal/usecase/interfaces"
	"github.com/kaosom/zipquote/pkg"
)

const defaultTimeout = 15 * time.Second

// TokenSource returns the bearer token of the signed-in user.
type TokenSource func(ctx context.Context) (string, error)

// HTTPEstimateClient is the device-side remote store: it talks to the zipquote
// API, which scopes every call to the account behind the bearer token.
type HTTPEstimateClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

var _ interfaces.IRemoteEstimateStore = (*HTTPEstimateClient)(nil)

// NewHTTPEstimateClient builds a client for baseURL (for example
// https://api.zipquote.app). A nil httpClient gets a 15s timeout.
func NewHTTPEstimateClient(baseURL string, httpClient *http.Client, token TokenSource) (*HTTPEstimateClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("remote api base url is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid remote api base url: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPEstimateClient{baseURL: baseURL, http: httpClient, token: token}, nil
}

func (c *HTTPEstimateClient) FetchAll(ctx context.Context, userID string) ([]entities.Estimate, error) {
	mustUserID(userID)

	var list []entities.Estimate
	status, body, err := c.do(ctx, http.MethodGet, "/v1/estimates", nil)
	if err != nil {
		return nil, entities.NewRemoteError(entities.RemoteUnreachable, "fetch_all", err)
	}
	if err := statusError("fetch_all", status, body); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, entities.NewRemoteError(entities.RemoteServerFault, "fetch_all", fmt.Errorf("decode response: %w", err))
	}
	if list == nil {
		list = []entities.Estimate{}
	}
	for i := range list {
		if !list[i].HasConsistentTotals() {
			list[i].Recompute()
		}
	}
	return list, nil
}

func (c *HTTPEstimateClient) Upsert(ctx context.Context, userID string, e entities.Estimate) error {
	mustUserID(userID)

	payload, err := json.Marshal(e)
	if err != nil {
		return entities.NewRemoteError(entities.RemoteServerFault, "upsert", err)
	}
	status, body, err := c.do(ctx, http.MethodPost, "/v1/estimates", payload)
	if err != nil {
		return entities.NewRemoteError(entities.RemoteUnreachable, "upsert", err)
	}
	if status == http.StatusPaymentRequired {
		return fmt.Errorf("%w: %s", entities.ErrFreeQuotaExceeded, errorMessage(body))
	}
	return statusError("upsert", status, body)
}

// DeleteByID treats 404 as success.
func (c *HTTPEstimateClient) DeleteByID(ctx context.Context, userID string, id string) error {
	mustUserID(userID)

	status, body, err := c.do(ctx, http.MethodDelete, "/v1/estimates/"+url.PathEscape(id), nil)
	if err != nil {
		return entities.NewRemoteError(entities.RemoteUnreachable, "delete", err)
	}
	if status == http.StatusNotFound {
		return nil
	}
	return statusError("delete", status, body)
}

func (c *HTTPEstimateClient) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		token, err := c.token(ctx)
		if err != nil {
			// no token is answered like a rejected one
			return http.StatusUnauthorized, nil, nil
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func statusError(op string, status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusBadRequest:
		// the API refused the payload itself; repeating the call cannot succeed
		return fmt.Errorf("%s: %w: %s", op, entities.ErrInvalidEstimate, errorMessage(body))
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return entities.NewRemoteError(entities.RemoteUnauthorized, op, fmt.Errorf("status %d: %s", status, errorMessage(body)))
	default:
		return entities.NewRemoteError(entities.RemoteServerFault, op, fmt.Errorf("status %d: %s", status, errorMessage(body)))
	}
}

func errorMessage(body []byte) string {
	var he struct {
		pkg.HTTPError
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &he); err == nil && he.Message != "" {
		if len(he.Fields) == 0 {
			return he.Message
		}
		keys := make([]string, 0, len(he.Fields))
		for k := range he.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+"="+he.Fields[k])
		}
		return he.Message + " (" + strings.Join(parts, ", ") + ")"
	}
	return strings.TrimSpace(string(body))
}

func mustUserID(userID string) {
	if userID == "" {
		panic("remote estimate client called without a user id")
	}
}
