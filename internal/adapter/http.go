package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
	"github.com/go-resty/resty/v2"
)

const accessTokenCookie = "accessToken"

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
// address may omit the scheme, in which case http is assumed. A zero
// timeout disables the per-request deadline.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpAPIClient{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient].
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient].
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignIn implements [APIClient]. It POSTs req to /api/signin and keeps the
// session token from the response.
func (h *httpAPIClient) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	var result models.SignInResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/signin")
	if err != nil {
		return models.User{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if err = h.storeSessionToken(resp); err != nil {
		return models.User{}, fmt.Errorf("signin: %w", err)
	}

	return result.Data, nil
}

// Login implements [APIClient]. It POSTs req to /api/login and keeps the
// session token from the response.
func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if err = h.storeSessionToken(resp); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	return result.Message, nil
}

// Logout implements [APIClient]. The local token is dropped only when the
// server accepted the request.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// Me implements [APIClient].
func (h *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	var result models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.Me, nil
}

// ToggleFollow implements [APIClient]. It PUTs /api/user/follow/{id}.
func (h *httpAPIClient) ToggleFollow(ctx context.Context, targetID string) (string, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", targetID).
		SetResult(&result).
		Put("/api/user/follow/{id}")
	if err != nil {
		return "", fmt.Errorf("follow request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}

// GetUser implements [APIClient].
func (h *httpAPIClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Get("/api/user/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// SearchUsers implements [APIClient]. query is escaped into the path.
func (h *httpAPIClient) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	var result models.UsersResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("query", query).
		SetResult(&result).
		Get("/api/users/search/{query}")
	if err != nil {
		return nil, fmt.Errorf("search users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Users, nil
}

// ListUsers implements [APIClient].
func (h *httpAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var result models.UsersResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Users, nil
}

// UpdateProfile implements [APIClient]. It sends a multipart form with the
// optional "text" and "media" parts to PUT /api/update-profile.
func (h *httpAPIClient) UpdateProfile(ctx context.Context, bio *string, fileName string, media io.Reader) (models.User, error) {
	var result models.UserResponse

	req := h.authedRequest(ctx).
		SetResult(&result).
		SetMultipartFormData(map[string]string{})
	if bio != nil {
		req.SetMultipartFormData(map[string]string{"text": *bio})
	}
	if media != nil {
		req.SetMultipartField("media", filepath.Base(fileName), mediaContentType(fileName), media)
	}

	resp, err := req.Put("/api/update-profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Version implements [APIClient].
func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// storeSessionToken keeps the token from the Authorization header, falling
// back to the access token cookie.
func (h *httpAPIClient) storeSessionToken(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err == nil {
		h.SetToken(token)
		return nil
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == accessTokenCookie && cookie.Value != "" {
			h.SetToken(cookie.Value)
			return nil
		}
	}

	h.logger.Warn().Int("status", resp.StatusCode()).Msg("response carries no session token")
	return ErrNoToken
}

func mediaContentType(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
