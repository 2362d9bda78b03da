//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportPayload = `{
	"location": "Templo 5",
	"year": 2024,
	"days": [
		{"date": "2024-06-01", "weekday": "Sábado", "tmax": 30.1, "tmin": 18.0,
		 "precip_mm": 0.0, "wind_kmh": 11.3, "cloud_pct": 50, "condition": "Clear"}
	]
}`

func postExport(t *testing.T, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(
		context.Background(), http.MethodPost, testServerURL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestExportFlow(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		wantPrefix []byte
	}{
		{name: "pdf", path: "/api/export/pdf", wantPrefix: []byte("%PDF")},
		{name: "csv", path: "/api/export/csv", wantPrefix: []byte("Fecha")},
		{name: "xlsx", path: "/api/export/xlsx", wantPrefix: []byte("PK")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postExport(t, tc.path, exportPayload)
			defer func(body io.ReadCloser) {
				assert.NoError(t, body.Close())
			}(resp.Body)

			require.Equal(t, http.StatusOK, resp.StatusCode)

			disposition := resp.Header.Get("Content-Disposition")
			assert.Contains(t, disposition, "attachment")
			assert.Contains(t, disposition, "Clima_Templo 5_")
			assert.Contains(t, disposition, "."+tc.name)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(body, tc.wantPrefix))
		})
	}
}

func TestExportFlow_MalformedBody(t *testing.T) {
	resp := postExport(t, "/api/export/csv", `{"location": `)
	defer func(body io.ReadCloser) {
		assert.NoError(t, body.Close())
	}(resp.Body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
