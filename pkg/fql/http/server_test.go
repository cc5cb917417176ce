package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sllt/fql/pkg/fql/config"
	"github.com/sllt/fql/pkg/fql/logging"
	"github.com/sllt/fql/pkg/fql/metrics"
	"github.com/sllt/fql/pkg/fql/qb"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	return port
}

func TestServer_Run(t *testing.T) {
	httpPort, metricsPort := freePort(t), freePort(t)

	logger := logging.New(logging.INFO, io.Discard, io.Discard)
	cfg := config.NewMockConfig(map[string]string{
		"HTTP_PORT":    strconv.Itoa(httpPort),
		"METRICS_PORT": strconv.Itoa(metricsPort),
	})

	srv, err := NewServer(cfg, qb.Default(), logger, metrics.NewMetricsManager(logger))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Run(ctx) }()

	get := func(port int, path string) int {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d%s", port, path))
		if err != nil {
			return 0
		}
		defer resp.Body.Close()

		return resp.StatusCode
	}

	require.Eventually(t, func() bool {
		return get(httpPort, "/tables") == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, http.StatusOK, get(metricsPort, "/metrics"))

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunPortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)

	defer l.Close()

	logger := logging.New(logging.INFO, io.Discard, io.Discard)
	cfg := config.NewMockConfig(map[string]string{
		"HTTP_PORT":    strconv.Itoa(l.Addr().(*net.TCPAddr).Port),
		"METRICS_PORT": strconv.Itoa(freePort(t)),
	})

	srv, err := NewServer(cfg, qb.Default(), logger, metrics.NewMetricsManager(logger))
	require.NoError(t, err)

	err = srv.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
