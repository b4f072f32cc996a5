package notify_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/book-expert/logger"

	"github.com/book-expert/ocr-clean/internal/notify"
)

func runServer(t *testing.T) (*server.Server, string) {
	t.Helper()

	opts := &server.Options{Port: -1, StoreDir: t.TempDir()}

	natsServer, err := server.NewServer(opts)
	require.NoError(t, err)

	natsServer.Start()

	if !natsServer.ReadyForConnections(4 * time.Second) {
		t.Fatal("nats server did not start")
	}

	return natsServer, natsServer.ClientURL()
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.New(t.TempDir(), "test.log")
	require.NoError(t, err)

	return log
}

func TestConnect_EmptyURLIsNoOp(t *testing.T) {
	t.Parallel()

	n, err := notify.Connect("", "", newTestLogger(t))
	require.NoError(t, err)
	require.Nil(t, n)

	n.Publish(notify.BatchCompletedEvent{RunID: "ignored"})
	n.Close()
}

func TestConnect_UnreachableURLReturnsError(t *testing.T) {
	t.Parallel()

	_, err := notify.Connect("nats://127.0.0.1:1", "", newTestLogger(t))
	require.Error(t, err)
}

func TestPublish_DeliversBatchCompletedEvent(t *testing.T) {
	t.Parallel()

	natsServer, url := runServer(t)
	t.Cleanup(natsServer.Shutdown)

	sub, err := nats.Connect(url)
	require.NoError(t, err)
	t.Cleanup(sub.Close)

	msgCh := make(chan *nats.Msg, 1)
	subscription, err := sub.ChanSubscribe(notify.Subject, msgCh)
	require.NoError(t, err)
	t.Cleanup(func() { _ = subscription.Unsubscribe() })

	n, err := notify.Connect(url, "", newTestLogger(t))
	require.NoError(t, err)
	require.NotNil(t, n)
	t.Cleanup(n.Close)

	event := notify.BatchCompletedEvent{
		RunID:          "run-1",
		FilesProcessed: 10,
		FilesModified:  4,
	}
	n.Publish(event)

	select {
	case msg := <-msgCh:
		var got notify.BatchCompletedEvent

		require.NoError(t, json.Unmarshal(msg.Data, &got))
		require.Equal(t, "run-1", got.RunID)
		require.Equal(t, int64(10), got.FilesProcessed)
	case <-time.After(2 * time.Second):
		t.Fatal("did not receive published event")
	}
}

func TestPublish_NilNotifierIsNoOp(t *testing.T) {
	t.Parallel()

	var n *notify.Notifier

	n.Publish(notify.BatchCompletedEvent{})
	n.Close()
}
