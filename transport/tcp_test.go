package transport

import (
	"bufio"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		panic("unreachable")
	}
}

func Test_Server_Replays_Socket_Life_As_Core_Events(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connected := make(chan string, 1)
	messaged := make(chan string, 1)
	disconnected := make(chan string, 1)

	handler := mocks.NewMockIHandler(ctrl)
	handler.EXPECT().HandleConnect(gomock.Any()).DoAndReturn(func(id string) error {
		connected <- id
		return nil
	})
	handler.EXPECT().HandleMessage(gomock.Any(), "hello").DoAndReturn(func(id, text string) error {
		messaged <- text
		return nil
	})
	handler.EXPECT().HandleDisconnect(gomock.Any()).Do(func(id string) {
		disconnected <- id
	})

	registry := NewRegistry()
	server := NewServer(handler, registry, observability.NewChatMetrics(), slog.Default())
	req.NoError(server.Listen("127.0.0.1:0"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveDone := make(chan error, 1)
	go func() { serveDone <- server.Serve(ctx) }()

	conn, err := net.Dial("tcp", server.Addr().String())
	req.NoError(err)

	connectionID := recv(t, connected)

	_, err = fmt.Fprint(conn, "hello\r\n")
	req.NoError(err)
	req.Equal("hello", recv(t, messaged))

	// Outbound path: the registry resolves the id back to the socket.
	req.NoError(registry.Send(connectionID, []byte("welcome")))
	line, err := bufio.NewReader(conn).ReadString('\n')
	req.NoError(err)
	req.Equal("welcome\n", line)

	req.NoError(conn.Close())
	req.Equal(connectionID, recv(t, disconnected))

	cancel()
	req.NoError(recv(t, serveDone))
}

func Test_Registry_Reports_Unknown_Connections_As_Closed(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	err := registry.Send("never-seen", []byte("hi"))
	req.ErrorIs(err, errors.ErrConnectionClosed)
}
