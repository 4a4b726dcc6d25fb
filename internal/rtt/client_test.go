package rtt_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/railscout/railscout/internal/provider/resilience"
	"github.com/railscout/railscout/internal/rtt"
	"github.com/railscout/railscout/internal/telemetry"
)

func newTestClient(baseURL string) *rtt.Client {
	return rtt.NewClient(rtt.ClientConfig{
		Username:   "rttapi_test",
		Password:   "****",
		BaseURL:    baseURL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("rtt-test")),
		Logger:     zerolog.Nop(),
	})
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, "rtt", newTestClient("").Name())
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/search/PAD/2024/03/01", r.URL.Path)
		assert.Equal(t, "0930", r.URL.Query().Get("from"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rttapi_test", user)
		assert.Equal(t, "****", pass)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		resp := map[string]interface{}{
			"location": map[string]string{"name": "London Paddington", "crs": "PAD"},
			"services": []map[string]interface{}{
				{
					"serviceUid": "W72419",
					"atocCode":   "GW",
					"locationDetail": map[string]interface{}{
						"crs":                 "PAD",
						"description":         "London Paddington",
						"gbttBookedDeparture": "0932",
						"realtimeDeparture":   "0935",
						"platform":            "9",
						"platformConfirmed":   true,
						"destination": []map[string]string{
							{"description": "Bristol Temple Meads"},
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).Search(context.Background(), "PAD", "", "2024/03/01", "0930")
	require.NoError(t, err)

	require.NotNil(t, data.Location)
	assert.Equal(t, "London Paddington", data.Location.Name)
	require.Len(t, data.Services, 1)

	svc := data.Services[0]
	assert.Equal(t, "W72419", svc.ServiceUID)
	require.NotNil(t, svc.LocationDetail)
	assert.Equal(t, "0932", svc.LocationDetail.BookedDeparture)
	assert.Equal(t, "0935", svc.LocationDetail.RealtimeDeparture)
	assert.Equal(t, []string{"Bristol Temple Meads"}, svc.Destinations())
	assert.Equal(t, []string{"Unknown"}, svc.Origins())
}

func TestClient_Search_DestinationFilterPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/search/PAD/to/BRI/2024/03/01", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"services": []interface{}{}})
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).Search(context.Background(), "PAD", "BRI", "2024/03/01", "")
	require.NoError(t, err)
	assert.Empty(t, data.Services)
}

func TestClient_Service(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/service/W72419/2024/03/01", r.URL.Path)

		resp := map[string]interface{}{
			"serviceUid":        "W72419",
			"atocName":          "Great Western Railway",
			"trainIdentity":     "1A09",
			"realtimeActivated": true,
			"origin":            []map[string]string{{"description": "London Paddington"}},
			"destination":       []map[string]string{{"description": "Bristol Temple Meads"}},
			"locations": []map[string]interface{}{
				{
					"crs":                     "PAD",
					"description":             "London Paddington",
					"gbttBookedDeparture":     "0932",
					"realtimeDeparture":       "0932",
					"realtimeDepartureActual": true,
				},
				{
					"crs":               "RDG",
					"description":       "Reading",
					"gbttBookedArrival": "0958",
					"realtimeArrival":   "1003",
					"serviceLocation":   "APPR_STAT",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).Service(context.Background(), "W72419", "2024/03/01")
	require.NoError(t, err)

	assert.Equal(t, "W72419", data.ServiceUID)
	assert.True(t, data.RealtimeActivated)
	assert.Equal(t, []string{"London Paddington"}, data.Origins())
	require.Len(t, data.Locations, 2)
	assert.True(t, data.Locations[0].RealtimeDepartureActual)
	assert.Equal(t, "APPR_STAT", data.Locations[1].ServiceLocation)

	stop := data.StopAt("rdg")
	require.NotNil(t, stop)
	assert.Equal(t, "Reading", stop.Description)
	assert.Nil(t, data.StopAt("KGX"))
}

func TestClient_RecordsProviderMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	t.Cleanup(func() { otel.SetMeterProvider(prev) })

	pm, err := telemetry.NewProviderMetrics()
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"services": []interface{}{}})
	}))
	defer server.Close()

	client := rtt.NewClient(rtt.ClientConfig{
		Username:   "rttapi_test",
		Password:   "****",
		BaseURL:    server.URL,
		HTTPClient: resilience.NewClient(resilience.DefaultClientConfig("rtt-test")),
		Metrics:    pm,
		Logger:     zerolog.Nop(),
	})

	_, err = client.Search(context.Background(), "PAD", "", "2024/03/01", "")
	require.NoError(t, err)
	_, err = client.Service(context.Background(), "W72419", "2024/03/01")
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	ops := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "provider.request.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, ok := dp.Attributes.Value(attribute.Key("provider.operation"))
				require.True(t, ok)
				ops[op.AsString()] += dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{"search": 1, "service": 1}, ops)
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(t *testing.T, err error)
	}{
		{"not found", http.StatusNotFound, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, rtt.ErrNotFound)
		}},
		{"auth failed", http.StatusUnauthorized, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, rtt.ErrAuthFailed)
		}},
		{"forbidden", http.StatusForbidden, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, rtt.ErrForbidden)
		}},
		{"server error", http.StatusBadGateway, func(t *testing.T, err error) {
			var serr *rtt.StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, http.StatusBadGateway, serr.Code)
			assert.Contains(t, serr.Error(), "server error")
		}},
		{"other error", http.StatusTeapot, func(t *testing.T, err error) {
			var serr *rtt.StatusError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, http.StatusTeapot, serr.Code)
			assert.Contains(t, serr.Error(), "unexpected status")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := rtt.NewClient(rtt.ClientConfig{
				Username: "rttapi_test",
				Password: "****",
				BaseURL:  server.URL,
				HTTPClient: resilience.NewClient(resilience.ClientConfig{
					Name:            "rtt-test",
					MaxRetries:      1,
					InitialInterval: 1,
					MaxInterval:     1,
				}),
				Logger: zerolog.Nop(),
			})

			_, err := client.Search(context.Background(), "PAD", "", "2024/03/01", "")
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
