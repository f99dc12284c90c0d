package e2e

import (
	"bufio"
	"chat-relay/delivery"
	"chat-relay/directory"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/services"
	"chat-relay/transport"
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// ChatSuite boots the full router (badger, directory, delivery, handler,
// TCP server) and drives it with real client sockets.
type ChatSuite struct {
	suite.Suite
	Config Config

	addr      string
	cancel    context.CancelFunc
	serveDone chan error
}

func TestChatSuite(t *testing.T) {
	suite.Run(t, new(ChatSuite))
}

func (s *ChatSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	log := slog.Default()
	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	store := repositories.NewBadgerRecordStore(db, s.Config.RecordTTL, log)
	dir := directory.NewDirectory(store, log)
	registry := transport.NewRegistry()
	sender := delivery.NewSender(registry, dir, log)
	moderator, err := moderation.NewModerator([]string{"troll"}, '*')
	s.Require().NoError(err)
	handler := services.NewHandler(dir, sender, moderator, log)
	server := transport.NewServer(handler, registry, observability.NewChatMetrics(), log)

	s.Require().NoError(server.Listen("127.0.0.1:0"))
	s.addr = server.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.serveDone = make(chan error, 1)
	go func() { s.serveDone <- server.Serve(ctx) }()
}

func (s *ChatSuite) TearDownSuite() {
	s.cancel()
	select {
	case err := <-s.serveDone:
		s.Require().NoError(err)
	case <-time.After(s.Config.ReadTimeout):
		s.T().Fatal("server did not stop in time")
	}
}

// step prints a colorized scenario header in the test log.
func (s *ChatSuite) step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

type client struct {
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
}

func (s *ChatSuite) dial() *client {
	conn, err := net.Dial("tcp", s.addr)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return &client{conn: conn, reader: bufio.NewReader(conn), timeout: s.Config.ReadTimeout}
}

func (c *client) send(s *ChatSuite, line string) {
	_, err := fmt.Fprintln(c.conn, line)
	s.Require().NoError(err)
}

func (c *client) readLine(s *ChatSuite) string {
	s.Require().NoError(c.conn.SetReadDeadline(time.Now().Add(c.timeout)))
	line, err := c.reader.ReadString('\n')
	s.Require().NoError(err)
	return line[:len(line)-1]
}

func (s *ChatSuite) TestFullChatScenario() {
	s.step("login")
	alice := s.dial()
	alice.send(s, "alice")
	s.Require().Equal("Using nickname: alice", alice.readLine(s))
	s.Require().Contains(alice.readLine(s), "/help")

	bob := s.dial()
	bob.send(s, "bob")
	s.Require().Equal("Using nickname: bob", bob.readLine(s))
	s.Require().Contains(bob.readLine(s), "/help")

	s.step("join")
	alice.send(s, "/join lobby")
	s.Require().Equal(`Joined chat room "lobby"`, alice.readLine(s))
	bob.send(s, "/join lobby")
	s.Require().Equal(`Joined chat room "lobby"`, bob.readLine(s))

	s.step("member listing")
	alice.send(s, "/ls")
	listing := []string{alice.readLine(s), alice.readLine(s)}
	s.Require().ElementsMatch([]string{"alice", "bob"}, listing)

	s.step("room text with self-echo")
	alice.send(s, "hi")
	s.Require().Equal("alice: hi", alice.readLine(s))
	s.Require().Equal("alice: hi", bob.readLine(s))

	s.step("moderated text")
	bob.send(s, "what a troll")
	s.Require().Equal("bob: what a *****", alice.readLine(s))
	s.Require().Equal("bob: what a *****", bob.readLine(s))

	s.step("rename notice excludes the renamer")
	alice.send(s, "/nick alicia")
	s.Require().Equal("Nickname is: alicia", alice.readLine(s))
	s.Require().Equal("alice is now known as alicia.", bob.readLine(s))

	s.step("quit notice reaches the remaining member")
	alice.send(s, "/quit")
	s.Require().Equal(`Left chat room "lobby"`, alice.readLine(s))
	s.Require().Equal("alicia left room.", bob.readLine(s))

	s.step("disconnect cleans the room up")
	s.Require().NoError(alice.conn.Close())
	bob.send(s, "/ls")
	s.Require().Equal("bob", bob.readLine(s))
}
