package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a small HTTP/JSON client for the admin endpoints. Token is set
// once after Login and attached to every request.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(host string, port int) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("http://%s:%d", host, port),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type Stats struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalTests       int64   `json:"totalTests"`
	AverageBandScore float64 `json:"averageBandScore"`
}

type UserRow struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) do(method, path string, body any, dest any) error {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s", e.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if dest != nil {
		return json.Unmarshal(raw, dest)
	}
	return nil
}

func (c *Client) Login(username, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	creds := map[string]string{"username": username, "password": password}
	if err := c.do(http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return err
	}
	c.Token = resp.Token
	return nil
}

func (c *Client) Stats() (Stats, error) {
	var s Stats
	err := c.do(http.MethodGet, "/api/admin/stats", nil, &s)
	return s, err
}

func (c *Client) Users() ([]UserRow, error) {
	var users []UserRow
	err := c.do(http.MethodGet, "/api/admin/users", nil, &users)
	return users, err
}

func (c *Client) DeleteUser(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}
