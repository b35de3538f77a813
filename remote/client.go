// ABOUTME: HTTP client for the remote wardrobe service
// ABOUTME: Clothing list/create/update/delete plus device-identity user endpoints
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/harperreed/closet/models"
)

var ErrNotFound = fmt.Errorf("remote: not found")

// Client talks JSON over HTTP to the wardrobe service. The base URL points
// at the API root (e.g. http://localhost:5000/api) and comes from
// configuration.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient wraps httpClient for the service at baseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}
}

// createClothingBody is the create/update payload: the full item plus the
// owning user reference. The server must upsert idempotently by clientId.
type createClothingBody struct {
	models.Clothing
	User string `json:"user"`
}

// ListClothing returns every clothing item stored remotely for a user.
func (c *Client) ListClothing(ctx context.Context, userID string) ([]models.Clothing, error) {
	var out []models.Clothing
	if err := c.do(ctx, http.MethodGet, "/clothing/user/"+url.PathEscape(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateClothing creates an item remotely, keyed by its clientId.
func (c *Client) CreateClothing(ctx context.Context, userID string, item models.Clothing) error {
	return c.do(ctx, http.MethodPost, "/clothing/", createClothingBody{Clothing: item, User: userID}, nil)
}

// UpdateClothing overwrites the remote record matching the item's clientId.
func (c *Client) UpdateClothing(ctx context.Context, userID, clientID string, item models.Clothing) error {
	path := "/clothing/user/" + url.PathEscape(userID) + "/" + url.PathEscape(clientID)
	return c.do(ctx, http.MethodPut, path, createClothingBody{Clothing: item, User: userID}, nil)
}

// DeleteClothing removes the remote record with the given clientId.
func (c *Client) DeleteClothing(ctx context.Context, userID, clientID string) error {
	path := "/clothing/user/" + url.PathEscape(userID) + "/" + url.PathEscape(clientID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetUser looks a user up by device ID. Returns ErrNotFound when no user
// exists for the device yet.
func (c *Client) GetUser(ctx context.Context, deviceID string) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(deviceID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser registers a new user for the device ID.
func (c *Client) CreateUser(ctx context.Context, deviceID string) (*models.User, error) {
	body := map[string]string{"deviceId": deviceID}
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/user/create", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	var eb struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&eb)
	msg := eb.Error
	if msg == "" {
		msg = eb.Message
	}
	if strings.TrimSpace(msg) != "" {
		return fmt.Errorf("remote %d: %s", resp.StatusCode, msg)
	}
	return fmt.Errorf("remote status %d", resp.StatusCode)
}
