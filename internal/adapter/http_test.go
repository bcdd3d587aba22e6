// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/user-admin/internal/config"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds a postgRESTAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *postgRESTAdapter {
	t.Helper()

	a, err := NewPostgRESTAdapter(config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second}, nil, logger.Nop())
	require.NoError(t, err)
	return a.(*postgRESTAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── NewPostgRESTAdapter ──────────────────────────────────────────────────────

func TestNewPostgRESTAdapter_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://"} {
		_, err := NewPostgRESTAdapter(config.Adapter{BaseURL: raw}, nil, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidBaseURL, "base url %q", raw)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"http://localhost:3000", "http://localhost:3000"},
		{"http://localhost:3000/", "http://localhost:3000"},
		{"localhost:3000", "http://localhost:3000"},
		{" https://api.example.com/v1/ ", "https://api.example.com/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ListUsers ────────────────────────────────────────────────────────────────

func TestListUsers_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		writeJSON(t, w, http.StatusOK, `[
			{"id":2,"email":"b@x.io","name":"B","created_at":"2024-01-02"},
			{"id":1,"email":"a@x.io","name":"A","created_at":"2024-01-01","extra":true}
		]`)
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].IDValue())
	assert.Equal(t, "b@x.io", users[0].Email)
	assert.Equal(t, "2024-01-02", users[0].CreatedAt)
	assert.Equal(t, int64(1), users[1].IDValue())
}

func TestListUsers_ServiceUnavailable_ReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	users, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestListUsers_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"not":"an array"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListUsers(context.Background())

	assert.Error(t, err)
}

func TestListUsers_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.ListUsers(context.Background())

	assert.Error(t, err)
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestGetUser_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "eq.42", r.URL.Query().Get("id"))

		writeJSON(t, w, http.StatusOK, `[{"id":42,"email":"a@b.com","name":"A"}]`)
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 42)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(42), user.IDValue())
	assert.Equal(t, "a@b.com", user.Email)
}

func TestGetUser_EmptyArray_ReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUser_NotFoundStatus_ReturnsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"message":"no such table"}`)
	}))
	defer srv.Close()

	user, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, user)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success_NoLocation(t *testing.T) {
	var locationCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rpc/register_user":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"email": "a@b.com", "password": "12345678", "name": "A"}, body)

			writeJSON(t, w, http.StatusCreated, `{"id":7,"email":"a@b.com","name":"A"}`)
		case "/rpc/add_location":
			locationCalls.Add(1)
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{
		Email:    "a@b.com",
		Name:     "A",
		Password: "12345678",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.IDValue())
	assert.Equal(t, "a@b.com", created.Email)
	assert.Equal(t, "A", created.Name)
	assert.Zero(t, locationCalls.Load())
}

func TestCreateUser_EmptyPasswordIsSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "", body["password"])

		writeJSON(t, w, http.StatusOK, `{"id":1,"email":"a@b.com","name":"A"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{Email: "a@b.com", Name: "A"})

	require.NoError(t, err)
}

func TestCreateUser_ArrayAnswer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `[{"id":9,"email":"a@b.com","name":"A"}]`)
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{Email: "a@b.com", Name: "A"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), created.IDValue())
}

func TestCreateUser_WithLocation_SavesLocation(t *testing.T) {
	var location map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rpc/register_user":
			writeJSON(t, w, http.StatusCreated, `{"id":7,"email":"a@b.com","name":"A"}`)
		case "/rpc/add_location":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&location))
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{
		Email:    "a@b.com",
		Name:     "A",
		Password: "12345678",
		Location: &models.Coordinates{Latitude: 10, Longitude: 20},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"user_id": float64(7), "latitude": float64(10), "longitude": float64(20)}, location)
}

func TestCreateUser_LocationFailure_DoesNotFailCreation(t *testing.T) {
	var locationCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rpc/register_user":
			writeJSON(t, w, http.StatusCreated, `{"id":7,"email":"a@b.com","name":"A"}`)
		case "/rpc/add_location":
			locationCalls.Add(1)
			writeJSON(t, w, http.StatusInternalServerError, `{"message":"boom"}`)
		}
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{
		Email:    "a@b.com",
		Name:     "A",
		Password: "12345678",
		Location: &models.Coordinates{Latitude: 10.0, Longitude: 20.0},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.IDValue())
	assert.Equal(t, int32(1), locationCalls.Load())
}

func TestCreateUser_ZeroCoordinate_SkipsLocation(t *testing.T) {
	var locationCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rpc/add_location" {
			locationCalls.Add(1)
		}
		writeJSON(t, w, http.StatusCreated, `{"id":7,"email":"a@b.com","name":"A"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{
		Email:    "a@b.com",
		Name:     "A",
		Location: &models.Coordinates{Latitude: 0, Longitude: 20},
	})

	require.NoError(t, err)
	assert.Zero(t, locationCalls.Load())
}

func TestCreateUser_CreatedWithoutID_SkipsLocation(t *testing.T) {
	var locationCalls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/rpc/add_location" {
			locationCalls.Add(1)
		}
		writeJSON(t, w, http.StatusOK, `{"email":"a@b.com","name":"A"}`)
	}))
	defer srv.Close()

	created, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{
		Email:    "a@b.com",
		Name:     "A",
		Location: &models.Coordinates{Latitude: 1, Longitude: 2},
	})

	require.NoError(t, err)
	assert.False(t, created.HasID())
	assert.Zero(t, locationCalls.Load())
}

func TestCreateUser_Rejected_MessageFromJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, `{"message":"duplicate email"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{Email: "a@b.com", Name: "A"})

	var creationErr *CreationError
	require.True(t, errors.As(err, &creationErr))
	assert.Equal(t, "duplicate email", creationErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, creationErr.StatusCode)
	assert.Equal(t, "failed to create user: duplicate email", err.Error())
}

func TestCreateUser_Rejected_RawText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{Email: "a@b.com", Name: "A"})

	var creationErr *CreationError
	require.ErrorAs(t, err, &creationErr)
	assert.Equal(t, "upstream down", creationErr.Message)
}

func TestCreateUser_Rejected_JSONWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, `{"code":"23505"}`)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateUser(context.Background(), models.NewUser{Email: "a@b.com", Name: "A"})

	var creationErr *CreationError
	require.ErrorAs(t, err, &creationErr)
	assert.Equal(t, `{"code":"23505"}`, creationErr.Message)
}

func TestCreateUser_TransportError_IsNotCreationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.CreateUser(context.Background(), models.NewUser{Email: "a@b.com", Name: "A"})

	require.Error(t, err)
	var creationErr *CreationError
	assert.False(t, errors.As(err, &creationErr))
}

// ── AddUserLocation ──────────────────────────────────────────────────────────

func TestAddUserLocation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rpc/add_location", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AddUserLocation(context.Background(), 3, models.Coordinates{Latitude: 1, Longitude: 2})

	assert.NoError(t, err)
}

func TestAddUserLocation_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AddUserLocation(context.Background(), 3, models.Coordinates{Latitude: 1, Longitude: 2})

	require.ErrorIs(t, err, ErrLocationNotSaved)
	assert.Contains(t, err.Error(), "500")
}

func TestAddUserLocation_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	err := a.AddUserLocation(context.Background(), 3, models.Coordinates{Latitude: 1, Longitude: 2})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocationNotSaved)
}

// ── Metrics ──────────────────────────────────────────────────────────────────

func TestMetrics_CountsByOperationAndStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	a, err := NewPostgRESTAdapter(config.Adapter{BaseURL: srv.URL}, metrics, logger.Nop())
	require.NoError(t, err)

	_, _ = a.ListUsers(context.Background())
	_, _ = a.ListUsers(context.Background())

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.requests.WithLabelValues(opListUsers, "503")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.duration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(opListUsers, nil, errors.New("boom"), time.Now())
	})
}

func TestExtractErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string message", `{"message":"duplicate email"}`, "duplicate email"},
		{"non-string message", `{"message":42}`, "42"},
		{"no message", `{"hint":"x"}`, `{"hint":"x"}`},
		{"array body", `["a"]`, `["a"]`},
		{"plain text", "oops", "oops"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractErrorMessage([]byte(tt.body)))
		})
	}
}
