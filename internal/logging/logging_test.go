package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, SetupLogging("debug").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("loud").Level)
}

func TestLogData_Log(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("sessionID", "abc")
	logData.AddTiming("fetch")()
	logData.Log().Info("done")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc", entry.Data["sessionID"])
	assert.Contains(t, entry.Data, "fetch")
}

func TestGetLogData(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
	assert.NotNil(t, GetLogData(context.Background()))
}

func TestLoggingWrapper(t *testing.T) {
	logger, hook := test.NewNullLogger()

	ok := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})
	ok(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, "Handler.Status.Complete", hook.LastEntry().Message)

	failing := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("boom")
	})
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, "Handler.Status.Error", hook.LastEntry().Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

type pingOutput struct {
	Body struct {
		Pong bool `json:"pong"`
	}
}

func TestHumaMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(HumaMiddleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		GetLogData(ctx).AddData("seen", true)
		out := &pingOutput{}
		out.Body.Pong = true
		return out, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Handler.ping.Complete", entry.Message)
	assert.Equal(t, true, entry.Data["seen"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}
