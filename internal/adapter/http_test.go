// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIiOiIxIn0.signature"

// newTestAdapter creates an httpAPIClient pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpAPIClient {
	t.Helper()

	a, err := NewHTTPAPIClient(serverURL, 0, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAPIClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host and port", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "trailing slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "surrounding spaces", raw: "  http://127.0.0.1:8080 ", want: "http://127.0.0.1:8080"},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAPIClient_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAPIClient("", 0, logger.Nop())
	assert.Error(t, err)
}

// ── SignIn ──────────────────────────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/signin", r.URL.Path)

		var req models.SignInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.UserName)

		w.Header().Set("Authorization", "Bearer "+testToken)
		writeJSON(t, w, http.StatusCreated, models.SignInResponse{
			Message: "User Created Successfully !",
			Data:    models.User{ID: id, UserName: req.UserName, Email: req.Email},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SignIn(context.Background(), models.SignInRequest{UserName: "alice", Email: "a@x.io", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, testToken, a.Token())
}

func TestSignIn_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{
			Message: "user already exists",
			Error:   "user already exists",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{UserName: "alice", Email: "a@x.io", Password: "pw"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "user already exists")
	assert.Empty(t, a.Token())
}

func TestSignIn_NoTokenInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusCreated, models.SignInResponse{Message: "ok"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SignIn(context.Background(), models.SignInRequest{UserName: "alice", Email: "a@x.io", Password: "pw"})

	assert.ErrorIs(t, err, ErrNoToken)
}

// ── Login / Logout ──────────────────────────────────────────────────────────

func TestLogin_TokenFromCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		http.SetCookie(w, &http.Cookie{Name: accessTokenCookie, Value: testToken, Path: "/"})
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "User Login Successfully ! Welcome alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	msg, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "User Login Successfully ! Welcome alice", msg)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{
			Message: "invalid credentials",
			Error:   "invalid credentials",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@x.io", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.MessageResponse{Message: "User Logout Successfully !"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	require.NoError(t, a.Logout(context.Background()))
	assert.Empty(t, a.Token())
}

func TestLogout_FailureKeepsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Message: "Internal Server Error"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	err := a.Logout(context.Background())
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Equal(t, testToken, a.Token())
}

// ── Users ───────────────────────────────────────────────────────────────────

func TestToggleFollow_Success(t *testing.T) {
	target := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/follow/"+target.String(), r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.MessageResponse{Message: "Followed bob"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	msg, err := a.ToggleFollow(context.Background(), target.String())
	require.NoError(t, err)
	assert.Equal(t, "Followed bob", msg)
}

func TestToggleFollow_SelfFollow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{
			Message: "you cannot follow yourself",
			Error:   "you cannot follow yourself",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ToggleFollow(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestGetUser_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "user not found", Error: "user not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetUser(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchUsers_EscapesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/search/al ice", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.UsersResponse{
			Message: "Search User Successfully !",
			Users:   []models.User{{UserName: "al ice"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	users, err := a.SearchUsers(context.Background(), "al ice")

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "al ice", users[0].UserName)
}

func TestListUsers_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadGateway, models.ErrorResponse{Message: "upstream service failed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListUsers(context.Background())

	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream service failed")
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestUpdateProfile_SendsMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "hello", r.FormValue("text"))

		file, header, err := r.FormFile("media")
		require.NoError(t, err)
		defer file.Close()
		body, _ := io.ReadAll(file)

		assert.Equal(t, "avatar.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", string(body))

		writeJSON(t, w, http.StatusCreated, models.UserResponse{
			Message: "Profile Updated Successfully !",
			User:    models.User{Bio: "hello", ProfilePic: "https://cdn/x.png"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(testToken)

	bio := "hello"
	got, err := a.UpdateProfile(context.Background(), &bio, "/tmp/avatar.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "hello", got.Bio)
	assert.Equal(t, "https://cdn/x.png", got.ProfilePic)
}

func TestUpdateProfile_BioOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		_, ok := r.MultipartForm.Value["text"]
		assert.True(t, ok)
		_, _, err := r.FormFile("media")
		assert.ErrorIs(t, err, http.ErrMissingFile)

		writeJSON(t, w, http.StatusCreated, models.UserResponse{User: models.User{Bio: ""}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	empty := ""
	_, err := a.UpdateProfile(context.Background(), &empty, "", nil)
	require.NoError(t, err)
}

// ── Version / errors ────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	v, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", v)
}

func TestErrorDetail(t *testing.T) {
	assert.Equal(t, "target is missing", errorDetail([]byte(`{"message":"bad","error":"target is missing"}`)))
	assert.Equal(t, "Internal Server Error", errorDetail([]byte(`{"message":"Internal Server Error"}`)))
	assert.Equal(t, "plain text", errorDetail([]byte("  plain text\n")))
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
