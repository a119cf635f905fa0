package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/messages"
)

// HTTPClient implements Service over the service's JSON HTTP API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	logger     *log.Logger
}

type NewHTTPClientOptions struct {
	BaseURL string
	// Timeout bounds each request. Zero disables it.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger
}

func NewHTTPClient(opts NewHTTPClientOptions) *HTTPClient {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    opts.Timeout,
		logger:     logger.WithComponent("network"),
	}
}

func (c *HTTPClient) State(ctx context.Context) (*types.Snapshot, error) {
	snapshot := &types.Snapshot{}
	if err := c.do(ctx, http.MethodGet, StatePath, nil, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (c *HTTPClient) Move(ctx context.Context, column int) (*types.MoveResult, error) {
	result := &types.MoveResult{}
	if err := c.do(ctx, http.MethodPost, MovePath, &messages.MoveRequest{Column: &column}, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) Reset(ctx context.Context) (*types.Snapshot, error) {
	snapshot := &types.Snapshot{}
	if err := c.do(ctx, http.MethodPost, ResetPath, nil, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Trace("%s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to send %s %s: %v", method, path, err)
		return &ErrTransport{Message: fmt.Sprintf("failed to reach server: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ErrTransport{Status: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errResp := &messages.ErrorResponse{}
		message := statusFallback(resp.StatusCode)
		if err := json.Unmarshal(respBody, errResp); err == nil && errResp.Error != "" {
			message = errResp.Error
		}
		c.logger.Warn("%s %s returned %d: %s", method, path, resp.StatusCode, message)
		return &ErrTransport{Status: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &ErrTransport{Status: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	return nil
}
