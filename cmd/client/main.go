package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:9000"`
	Colours       bool   `env:"CHAT_COLOURS,default=true"`
}

func main() {
	code, err := run(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the TCP client lifecycle: dial, print everything the server
// pushes, forward every stdin line. The first line you type becomes your
// nickname; /help lists the commands.
func run(stdin io.Reader) (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := net.Dial("tcp", config.ServerAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer conn.Close()

	header := fmt.Sprintf(">>> Connected to %s. Pick a nickname to start (Ctrl+C to quit).", config.ServerAddress)
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	// Reception loop: one line from the server is one message.
	received := make(chan struct{})
	go func() {
		defer close(received)
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			line := scanner.Text()
			if config.Colours {
				line = colorize(line)
			}
			fmt.Println(line)
		}
	}()

	// Emission loop: forward stdin lines until EOF or shutdown.
	input := make(chan string)
	go func() {
		defer close(input)
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			input <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Bye.")
			return exitOK, nil
		case <-received:
			return exitRuntime, fmt.Errorf("server closed the connection")
		case line, ok := <-input:
			if !ok {
				return exitOK, nil
			}
			if _, err := fmt.Fprintln(conn, line); err != nil {
				return exitRuntime, fmt.Errorf("send failed: %w", err)
			}
		}
	}
}

// colorize highlights chat text ("nick: message") against service replies.
func colorize(line string) string {
	if name, _, ok := strings.Cut(line, ": "); ok && !strings.Contains(name, " ") {
		return color.FgCyan.Render(line)
	}
	return color.FgGray.Render(line)
}
