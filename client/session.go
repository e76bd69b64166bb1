// Package client is a small API client mirroring what the web front-end does:
// it keeps the token cookie in a jar and re-fetches session state on every
// call instead of caching it, so authorization state is always fresh.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    *User           `json:"user,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
	}, nil
}

func (c *Client) postJSON(path string, payload any) (*envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Post(c.baseURL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(path string) (*envelope, error) {
	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account; the auth cookie lands in the jar.
func (c *Client) Register(name, email, password string) error {
	out, err := c.postJSON("/api/register", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("register failed: %s", out.Message)
	}
	return nil
}

// Login authenticates and stores the auth cookie in the jar.
func (c *Client) Login(email, password string) error {
	out, err := c.postJSON("/api/login", map[string]string{
		"email": email, "password": password,
	})
	if err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("login failed: %s", out.Message)
	}
	return nil
}

// GetSession returns the current user, or nil when not authenticated.
func (c *Client) GetSession() (*User, error) {
	out, err := c.getJSON("/api/session")
	if err != nil {
		return nil, err
	}
	if !out.Success {
		return nil, nil
	}
	return out.User, nil
}

func (c *Client) IsAuthenticated() (bool, error) {
	user, err := c.GetSession()
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Logout clears the cookie server-side; the jar picks up the deletion.
func (c *Client) Logout() error {
	out, err := c.postJSON("/api/logout", struct{}{})
	if err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("logout failed: %s", out.Message)
	}
	return nil
}

// HasCompletedProfile reports whether onboarding finished. A "no profile"
// answer is a normal false, not an error.
func (c *Client) HasCompletedProfile() (bool, error) {
	out, err := c.getJSON("/api/profile/get")
	if err != nil {
		return false, err
	}
	return out.Success, nil
}
