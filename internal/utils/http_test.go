package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/socialix/models"
)

func TestWriteJSON_Envelopes(t *testing.T) {
	tests := []struct {
		name   string
		data   any
		status int
		want   string
	}{
		{name: "users list", data: models.UsersResponse{Message: "ok", Users: []models.User{}}, status: http.StatusOK},
		{name: "error envelope", data: models.ErrorResponse{Error: "user not found"}, status: http.StatusNotFound},
		{name: "plain map", data: map[string]string{"status": "ok"}, status: http.StatusOK, want: `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if n != w.Body.Len() {
				t.Errorf("expected %d bytes reported, got %d", w.Body.Len(), n)
			}
			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
			}

			want := tt.want
			if want == "" {
				raw, _ := json.Marshal(tt.data)
				want = string(raw)
			}
			if w.Body.String() != want {
				t.Errorf("expected body %s, got %s", want, w.Body.String())
			}
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteMessage(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteMessage(w, "Followed bob", http.StatusCreated)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if w.Body.String() != `{"message":"Followed bob"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_UserHidesSecrets(t *testing.T) {
	w := httptest.NewRecorder()
	user := models.User{UserName: "alice", PasswordHash: "$2a$10$hash", PublicID: "SocialixWebApp/Profiles/x"}

	_, err := WriteJSON(w, user, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	body := w.Body.String()
	if strings.Contains(body, "$2a$10$hash") || strings.Contains(body, "SocialixWebApp/Profiles/x") {
		t.Errorf("expected secrets to be omitted, got %s", body)
	}
}
