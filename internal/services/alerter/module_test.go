package alerter

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	alerterAdapter "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/adapters/secondary/alerter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAlert_WithoutClientOnlyLogs(t *testing.T) {
	var out bytes.Buffer
	svc := New(nil, slog.New(slog.NewTextHandler(&out, nil)))

	require.NoError(t, svc.SendAlert(context.Background(), "positions-updater failed"))
	assert.Contains(t, out.String(), "positions-updater failed")
}

func TestSendAlert_DelegatesToClient(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"chat not found"}`))
	}))
	defer srv.Close()

	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	client := alerterAdapter.NewClient(&alerterAdapter.Config{Enabled: true, BotToken: "t", ChatID: 1, APIBaseURL: srv.URL}, log)
	svc := New(client, log)

	err := svc.SendAlert(context.Background(), "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
	assert.Equal(t, 1, calls)
}
