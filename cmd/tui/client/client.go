package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Varun5711/taskhub/internal/models"
	usermodel "github.com/Varun5711/taskhub/internal/models/user"
)

// Client talks to the task service HTTP API. SetToken must be called after
// login before any task calls.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("%s", apiErr.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Signup(name, email, password string) (*usermodel.AuthResponse, error) {
	var resp usermodel.AuthResponse
	err := c.do(http.MethodPost, "/api/auth/signup", usermodel.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Login(email, password string) (*usermodel.AuthResponse, error) {
	var resp usermodel.AuthResponse
	err := c.do(http.MethodPost, "/api/auth/login", usermodel.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListTasks(search, status string) ([]*models.Task, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	if status != "" {
		query.Set("status", status)
	}

	path := "/api/tasks"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp models.ListTasksResponse
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (c *Client) CreateTask(title, description string) (*models.Task, error) {
	var resp models.TaskResponse
	err := c.do(http.MethodPost, "/api/tasks", models.CreateTaskRequest{
		Title:       title,
		Description: description,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Task, nil
}

func (c *Client) UpdateTask(id string, req models.UpdateTaskRequest) (*models.Task, error) {
	var resp models.TaskResponse
	if err := c.do(http.MethodPut, "/api/tasks/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Task, nil
}

func (c *Client) DeleteTask(id string) error {
	return c.do(http.MethodDelete, "/api/tasks/"+id, nil, nil)
}

// Stats mirrors the response of GET /api/tasks/stats.
type Stats struct {
	Created     uint64 `json:"created"`
	Updated     uint64 `json:"updated"`
	Deleted     uint64 `json:"deleted"`
	Last24Hours uint64 `json:"last_24_hours"`
	Last7Days   uint64 `json:"last_7_days"`
}

func (c *Client) GetStats() (*Stats, error) {
	var stats Stats
	if err := c.do(http.MethodGet, "/api/tasks/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
