package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvarik/fitness-go/fitness"
)

func newTestHandler(t *testing.T, opts ...fitness.Option) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newServer(fitness.NewCatalog(opts...), logger, false).routes(nil)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := do(t, newTestHandler(t), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleConstants(t *testing.T) {
	rec := do(t, newTestHandler(t), http.MethodGet, "/v1/constants", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got struct {
		Platform         string         `json:"Platform"`
		PermissionKind   map[string]int `json:"PermissionKind"`
		PermissionAccess map[string]int `json:"PermissionAccess"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "healthkit", got.Platform)
	assert.Equal(t, 6, got.PermissionKind["HeartRate"])
	assert.Equal(t, 1, got.PermissionAccess["Write"])
}

func TestHandleKind(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		target string
		want   kindResponse
	}{
		{
			target: "/v1/kinds/0",
			want: kindResponse{Kind: 0, Name: "Step", Identifier: "HKQuantityTypeIdentifierStepCount",
				Class: "quantity", Writable: true},
		},
		{
			target: "/v1/kinds/HEART_RATE",
			want: kindResponse{Kind: 6, Name: "HeartRate", Identifier: "HKQuantityTypeIdentifierHeartRate",
				Class: "quantity", Writable: true},
		},
		{
			target: "/v1/kinds/Activity",
			want: kindResponse{Kind: 4, Name: "Activity", Identifier: "HKActivitySummaryTypeIdentifier",
				Class: "activity_summary", Writable: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var got kindResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandleKind_NotFound(t *testing.T) {
	h := newTestHandler(t)

	for _, target := range []string{"/v1/kinds/42", "/v1/kinds/-1", "/v1/kinds/Sleep"} {
		rec := do(t, h, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "unsupported permission kind", target)
	}
}

func TestHandleKind_GoogleFitWorkout(t *testing.T) {
	h := newTestHandler(t, fitness.WithPlatform(fitness.GoogleFit))

	rec := do(t, h, http.MethodGet, "/v1/kinds/Workout", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "googlefit")
}

func TestHandleTypeSets(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/v1/typesets",
		`[{"kind":0},{"kind":0,"access":1},{"kind":4},{"kind":5,"access":1}]`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.JSONEq(t, `{
		"read": ["HKQuantityTypeIdentifierStepCount", "HKActivitySummaryTypeIdentifier"],
		"write": ["HKQuantityTypeIdentifierStepCount", "HKWorkoutTypeIdentifier"]
	}`, rec.Body.String())
}

func TestHandleTypeSets_EmptyRequest(t *testing.T) {
	rec := do(t, newTestHandler(t), http.MethodPost, "/v1/typesets", `[]`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"read":[],"write":[]}`, rec.Body.String())
}

func TestHandleTypeSets_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `[{"kind":`, http.StatusBadRequest},
		{"null body", `null`, http.StatusBadRequest},
		{"object body", `{"kind":0}`, http.StatusBadRequest},
		{"missing kind", `[{"access":0}]`, http.StatusBadRequest},
		{"unknown access", `[{"kind":0,"access":3}]`, http.StatusUnprocessableEntity},
		{"unknown kind", `[{"kind":99}]`, http.StatusUnprocessableEntity},
		{"read-only write", `[{"kind":4,"access":1}]`, http.StatusUnprocessableEntity},
	}

	h := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/typesets", tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleTypeSets_BodyTooLarge(t *testing.T) {
	body := "[" + strings.Repeat(" ", maxRequestBody) + "]"

	rec := do(t, newTestHandler(t), http.MethodPost, "/v1/typesets", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"request body too large"}`, rec.Body.String())
}

func TestHandleTypeSets_BaseVersionRejectsHeartRate(t *testing.T) {
	h := newTestHandler(t, fitness.WithVersion(fitness.VersionBase))

	rec := do(t, h, http.MethodPost, "/v1/typesets", `[{"kind":6}]`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestHandler(t), http.MethodGet, "/v1/typesets", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
