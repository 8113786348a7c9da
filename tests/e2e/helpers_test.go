//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/vocab-catalog/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-catalog/internal/adapter/postgres/testhelper"
	pgvocab "github.com/heartmarshall/vocab-catalog/internal/adapter/postgres/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/app"
	"github.com/heartmarshall/vocab-catalog/internal/config"
	"github.com/heartmarshall/vocab-catalog/internal/service/vocabulary"
	"github.com/heartmarshall/vocab-catalog/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Repo   *pgvocab.Repo
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper). ttl is the document TTL.
func setupTestServer(t *testing.T, ttl time.Duration) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	repo := pgvocab.New(pool, postgres.NewTxManager(pool), pgvocab.WithTTL(ttl))
	svc := vocabulary.NewService(logger, repo)

	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Store:  config.StoreConfig{Driver: config.DriverPostgres, DocumentTTL: ttl},
		CORS:   config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PATCH,OPTIONS"},
	}

	handler, stop := app.NewHandler(cfg, logger, svc, []rest.Check{{Name: "store", Target: pool}})
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Repo: repo}
}

// do sends a JSON request and returns the status code and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

// decodeDTO unmarshals a vocabulary response body.
func decodeDTO(t *testing.T, data []byte) rest.VocabularyDTO {
	t.Helper()
	var dto rest.VocabularyDTO
	require.NoError(t, json.Unmarshal(data, &dto), string(data))
	return dto
}

func ptr[T any](v T) *T { return &v }
