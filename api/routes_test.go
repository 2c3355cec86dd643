package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/recon-server/internal/operator"
	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/service"
)

func newTestRest(t *testing.T) (*Rest, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	return &Rest{
		Logger:  logger,
		Port:    "0",
		Service: service.NewService(recon.NewMockTransactionSource(t), operator.NewMockProcessor(t), logger),
	}, hook
}

func TestHandler_RoutesSessionAPI(t *testing.T) {
	rest, hook := newTestRest(t)
	srv := httptest.NewServer(rest.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/sessions", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Handler.create-session.Complete", hook.LastEntry().Message)
}

func TestHandler_ServesOpenAPI(t *testing.T) {
	rest, _ := newTestRest(t)
	srv := httptest.NewServer(rest.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/openapi.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServe_StopsOnCancel(t *testing.T) {
	rest, _ := newTestRest(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- rest.Serve(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
