package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ngmaloney/ecowatch-terminal/internal/analysis"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseURL = server.URL
	client := NewHTTPClient(opts)
	client.retryInterval = time.Millisecond
	t.Cleanup(client.CloseIdleConnections)
	return client
}

func TestNewHTTPClient_Defaults(t *testing.T) {
	client := NewHTTPClient(Options{})

	if client.baseURL != "http://localhost:8000" {
		t.Errorf("baseURL = %s, want http://localhost:8000", client.baseURL)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
	if client.maxRetries != 0 {
		t.Errorf("maxRetries = %d, want 0", client.maxRetries)
	}
}

func TestHTTPClient_AnalyzeZone(t *testing.T) {
	payload := analysis.Payload{
		Coordinates:  analysis.LatLng{Lat: -17.0639, Lng: 15.7342},
		Radius:       5,
		Period:       analysis.Period{Start: "2025-04-04", End: "2025-10-04"},
		LocationName: "Ondjiva",
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analyze-zone", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var got map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]any{"lat": -17.0639, "lng": 15.7342}, got["coordinates"])
		assert.Equal(t, 5.0, got["radius"])
		assert.Equal(t, map[string]any{"start": "2025-04-04", "end": "2025-10-04"}, got["period"])
		assert.Equal(t, "Ondjiva", got["locationName"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"completed","ndvi_mean":0.42}`))
	}, Options{})

	result, err := client.AnalyzeZone(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "completed", result["status"])
	assert.Equal(t, 0.42, result["ndvi_mean"])
}

func TestHTTPClient_AnalyzeFillsSensors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)

		var got AnalyzeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, DefaultSensors, got.Sensors)
		assert.Equal(t, 10.0, got.BufferKm)
		assert.True(t, got.GraceAnalysis)

		w.Write([]byte(`{}`))
	}, Options{})

	_, err := client.Analyze(context.Background(), AnalyzeRequest{
		Lon: 15.7, Lat: -17.0, BufferKm: 10, Start: "2025-01-01", End: "2025-06-01", GraceAnalysis: true,
	})
	require.NoError(t, err)
}

func TestHTTPClient_RetriesTransientErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retries   int
		wantCalls int32
		wantErr   bool
	}{
		{"server error recovers", http.StatusServiceUnavailable, 3, 3, false},
		{"rate limited recovers", http.StatusTooManyRequests, 3, 3, false},
		{"retries exhausted", http.StatusInternalServerError, 1, 2, true},
		{"bad request is permanent", http.StatusBadRequest, 3, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				// Fail the first two attempts
				if n := calls.Add(1); n <= 2 || tt.status == http.StatusBadRequest {
					http.Error(w, "unavailable", tt.status)
					return
				}
				w.Write([]byte(`{"status":"ok"}`))
			}, Options{Retries: tt.retries})

			_, err := client.AnalyzeZone(context.Background(), analysis.Payload{Radius: 1})
			if tt.wantErr {
				require.Error(t, err)
				var se *StatusError
				require.True(t, errors.As(err, &se), "error should be a StatusError, got %v", err)
				assert.Equal(t, tt.status, se.Code)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestHTTPClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, Options{BreakerFailures: 2, BreakerOpen: time.Minute})

	for i := 0; i < 2; i++ {
		_, err := client.AnalyzeZone(context.Background(), analysis.Payload{})
		require.Error(t, err)
	}

	_, err := client.AnalyzeZone(context.Background(), analysis.Payload{})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), calls.Load(), "open breaker should not reach the server")
}

func TestHTTPClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}, Options{BreakerFailures: 1})

	for i := 0; i < 3; i++ {
		_, err := client.AnalyzeZone(context.Background(), analysis.Payload{})
		var se *StatusError
		require.True(t, errors.As(err, &se))
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{Retries: 5})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.AnalyzeZone(ctx, analysis.Payload{})
	assert.Error(t, err)
}

func TestRequestFromPayload(t *testing.T) {
	req := RequestFromPayload(analysis.Payload{
		Coordinates: analysis.LatLng{Lat: -18.75, Lng: 22.05},
		Radius:      15,
		Period:      analysis.Period{Start: "2025-01-01", End: "2025-07-01"},
	})

	assert.Equal(t, AnalyzeRequest{
		Lon: 22.05, Lat: -18.75, BufferKm: 15,
		Start: "2025-01-01", End: "2025-07-01",
		Sensors:              DefaultSensors,
		GraceAnalysis:        true,
		IncludeMLPredictions: true,
	}, req)
}
