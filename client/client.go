// Package client is a thin HTTP client for the taskpad REST API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"taskpad/domain"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 4 * 1024 * 1024 // 4 MiB
)

// Client talks to a taskpad API server. The zero value is not usable; create
// one with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// APIError is a non-success response from the server. Message carries the
// server-provided text when the body had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ListTasks fetches the full task collection.
func (c *Client) ListTasks(ctx context.Context) ([]domain.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tasks", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var tasks []domain.Task
	dec := sonic.ConfigStd.NewDecoder(io.LimitReader(resp.Body, maxResponseSize))
	if err := dec.Decode(&tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask posts a new task draft and returns the created resource.
func (c *Client) CreateTask(ctx context.Context, draft domain.TaskDraft) (domain.Task, error) {
	payload, err := sonic.Marshal(draft)
	if err != nil {
		return domain.Task{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tasks", bytes.NewReader(payload))
	if err != nil {
		return domain.Task{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Task{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Task{}, errorFromResponse(resp)
	}

	var created domain.Task
	dec := sonic.ConfigStd.NewDecoder(io.LimitReader(resp.Body, maxResponseSize))
	if err := dec.Decode(&created); err != nil {
		return domain.Task{}, err
	}
	return created, nil
}

// DeleteTask removes a task by id. Success or failure is signaled by HTTP
// status alone.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/tasks/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

// errorFromResponse builds an APIError, surfacing the server's message field
// when the body carries one.
func errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if err := sonic.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
	}
	return apiErr
}
