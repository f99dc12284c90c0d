//go:generate go run go.uber.org/mock/mockgen -source=handler.go -destination=../mocks/mock_handler.go -package=mocks
// Package services implements the message-handling core: a per-message state
// machine over the stored connection record. There is no in-memory session
// state; every inbound frame re-reads the record, so handlers can run
// concurrently under a request-per-invocation model.
package services

import (
	"chat-relay/delivery"
	"chat-relay/directory"
	"chat-relay/domain"
	"chat-relay/moderation"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

// IHandler is the produced surface of the core: three event handlers, wired
// by the host transport, and nothing else.
type IHandler interface {
	HandleConnect(id string) error
	HandleDisconnect(id string)
	HandleMessage(id, text string) error
}

type Handler struct {
	directory directory.IDirectory
	sender    delivery.ISender
	moderator moderation.Moderator
	log       *slog.Logger
}

func NewHandler(dir directory.IDirectory, sender delivery.ISender, moderator moderation.Moderator, log *slog.Logger) Handler {
	return Handler{directory: dir, sender: sender, moderator: moderator, log: log}
}

// commandKind enumerates the fixed command table. Dispatch stays O(1) via the
// name lookup below; the enum keeps handlers a closed set.
type commandKind int

const (
	cmdHelp commandKind = iota
	cmdNick
	cmdJoin
	cmdRoom
	cmdQuit
	cmdList
)

var commandTable = map[string]commandKind{
	"help": cmdHelp,
	"nick": cmdNick,
	"join": cmdJoin,
	"room": cmdRoom,
	"quit": cmdQuit,
	"ls":   cmdList,
}

const commandMarker = "/"

var helpText = strings.Join([]string{
	"Commands available:",
	"    /help",
	"          Show this message",
	"    /join {chat_room_name}",
	"          Join the chat room named {chat_room_name}",
	"    /nick {nickname}",
	"          Change your name to {nickname}. Without {nickname}, print your current name",
	"    /room",
	"          Print the name of your current room",
	"    /ls",
	"          If you are in a room, list everyone in it. Otherwise, list all rooms",
	"    /quit",
	"          Leave the current room",
	"",
	"Messages that do not start with " + commandMarker + " are sent to everyone in your room",
}, "\n")

// HandleConnect registers the connection with an empty identity.
func (h Handler) HandleConnect(id string) error {
	return h.directory.CreateConnection(id)
}

// HandleDisconnect removes every trace of the connection, best-effort.
func (h Handler) HandleDisconnect(id string) {
	h.directory.DeleteConnection(id)
}

// HandleMessage classifies the inbound frame from the stored record alone:
// a connection without a username is still logging in, anything else is an
// active session. Store failures fail the whole event; redelivery, if any,
// belongs to the host transport.
func (h Handler) HandleMessage(id, text string) error {
	record, err := h.directory.Record(id)
	if err != nil {
		return err
	}
	if !record.LoggedIn() {
		return h.handleLogin(id, text)
	}
	return h.handleSession(id, text, record)
}

// handleLogin treats the first message on a connection as the desired
// nickname. No uniqueness or charset validation is performed (known gap).
func (h Handler) handleLogin(id, text string) error {
	if err := h.directory.SetUsername(id, "", text); err != nil {
		return err
	}
	h.sender.Send(id, "Using nickname: "+text+"\nType /help for list of commands.")
	return nil
}

func (h Handler) handleSession(id, text string, record domain.ConnectionRecord) error {
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, commandMarker) {
		return h.handleCommand(id, strings.TrimPrefix(text, commandMarker), record)
	}
	return h.handleText(id, text, record)
}

func (h Handler) handleCommand(id, body string, record domain.ConnectionRecord) error {
	fields := strings.Fields(body)
	name := ""
	var args []string
	if len(fields) > 0 {
		name = strings.ToLower(fields[0])
		args = fields[1:]
	}
	kind, ok := commandTable[name]
	if !ok {
		// Not a fault: the sender gets a plain reply and the event
		// completes normally.
		h.sender.Send(id, "Unknown command: "+name)
		return nil
	}
	switch kind {
	case cmdHelp:
		h.sender.Send(id, helpText)
		return nil
	case cmdNick:
		return h.nick(id, args, record)
	case cmdJoin:
		return h.join(id, args, record)
	case cmdRoom:
		h.room(id, record)
		return nil
	case cmdQuit:
		return h.quit(id, record)
	case cmdList:
		return h.list(id, record)
	}
	return nil
}

// handleText broadcasts plain text to the sender's room, sender included.
// The rename notice below excludes the sender instead; the asymmetry is
// deliberate and matches long-standing behavior.
func (h Handler) handleText(id, text string, record domain.ConnectionRecord) error {
	if !record.InRoom() {
		h.sender.Send(id, "Cannot send message if not in chatroom.")
		return nil
	}
	members, err := h.directory.ConnectionIDsByRoom(record.Room)
	if err != nil {
		return err
	}
	sanitized, masked := h.moderator.Sanitize(text)
	if masked {
		h.log.Info("Broadcast masked",
			"connection_id", id,
			"room", record.Room,
			"lang", moderation.Language(text))
	}
	h.sender.Broadcast(members, record.Username+": "+sanitized)
	return nil
}

func (h Handler) nick(id string, args []string, record domain.ConnectionRecord) error {
	if len(args) == 0 {
		h.sender.Send(id, "Current nickname: "+record.Username)
		return nil
	}
	nick := args[0]
	if err := h.directory.SetUsername(id, record.Username, nick); err != nil {
		return err
	}
	h.sender.Send(id, "Nickname is: "+nick)
	if !record.InRoom() {
		return nil
	}
	members, err := h.directory.ConnectionIDsByRoom(record.Room)
	if err != nil {
		return err
	}
	h.sender.Broadcast(lo.Without(members, id), record.Username+" is now known as "+nick+".")
	return nil
}

func (h Handler) join(id string, args []string, record domain.ConnectionRecord) error {
	if len(args) == 0 {
		h.sender.Send(id, "Usage: /join {room_name}")
		return nil
	}
	room := args[0]
	// Leave the current room first; at most one membership row may exist.
	if err := h.quit(id, record); err != nil {
		return err
	}
	if err := h.directory.SetRoom(id, room); err != nil {
		return err
	}
	h.sender.Send(id, `Joined chat room "`+room+`"`)
	return nil
}

func (h Handler) room(id string, record domain.ConnectionRecord) {
	if record.InRoom() {
		h.sender.Send(id, record.Room)
		return
	}
	h.sender.Send(id, "Not currently in a room. Type /join {room_name} to do so.")
}

// quit leaves the current room, confirming to the sender and notifying the
// remaining members. Membership is removed before the fan-out list is
// resolved, so the sender is already absent from it. Silent no-op when not
// in a room.
func (h Handler) quit(id string, record domain.ConnectionRecord) error {
	if !record.InRoom() {
		return nil
	}
	if err := h.directory.RemoveRoom(id, record.Room); err != nil {
		return err
	}
	h.sender.Send(id, `Left chat room "`+record.Room+`"`)
	members, err := h.directory.ConnectionIDsByRoom(record.Room)
	if err != nil {
		return err
	}
	h.sender.Broadcast(members, record.Username+" left room.")
	return nil
}

// list is context sensitive: member nicknames when in a room, room names
// otherwise.
func (h Handler) list(id string, record domain.ConnectionRecord) error {
	if record.InRoom() {
		members, err := h.directory.ConnectionIDsByRoom(record.Room)
		if err != nil {
			return err
		}
		h.sender.Send(id, strings.Join(h.directory.Usernames(members), "\n"))
		return nil
	}
	rooms, err := h.directory.ListRooms()
	if err != nil {
		return err
	}
	h.sender.Send(id, strings.Join(rooms, "\n"))
	return nil
}
