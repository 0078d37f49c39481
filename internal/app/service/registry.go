package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

// CommandName es el conjunto cerrado de comandos que conoce el bot.
type CommandName string

const (
	CmdPing       CommandName = "ping"
	CmdBan        CommandName = "ban"
	CmdKick       CommandName = "kick"
	CmdTimeout    CommandName = "timeout"
	CmdClear      CommandName = "clear"
	CmdServerInfo CommandName = "serverinfo"
	CmdUserInfo   CommandName = "userinfo"
	CmdIPInfo     CommandName = "ipinfo"
	CmdQRCode     CommandName = "qrcode"
	CmdChatSet    CommandName = "chatset"
)

// AllCommands: cada nombre tiene que tener handler al construir el Registry.
var AllCommands = []CommandName{
	CmdPing, CmdBan, CmdKick, CmdTimeout, CmdClear,
	CmdServerInfo, CmdUserInfo, CmdIPInfo, CmdQRCode, CmdChatSet,
}

var (
	ErrCommandNotFound = errors.New("command not found")
	ErrMissingHandler  = errors.New("command without handler")
)

var reCommandName = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

type DuplicateCommandError struct{ Name string }

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q already registered", e.Name)
}

type InvalidCommandNameError struct{ Name string }

func (e *InvalidCommandNameError) Error() string {
	return fmt.Sprintf("invalid command name %q", e.Name)
}

type Handler interface {
	Handle(ctx context.Context, in domain.Interaction) (domain.Reply, error)
}

type HandlerFunc func(ctx context.Context, in domain.Interaction) (domain.Reply, error)

func (f HandlerFunc) Handle(ctx context.Context, in domain.Interaction) (domain.Reply, error) {
	return f(ctx, in)
}

type Entry struct {
	Descriptor domain.Descriptor
	Handler    Handler
}

type Registry struct {
	entries map[CommandName]Entry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[CommandName]Entry{}}
}

// BuildRegistry registra todas las entradas y valida que AllCommands quede cubierto.
func BuildRegistry(entries []Entry) (*Registry, error) {
	r := NewRegistry()
	for _, e := range entries {
		if err := r.Register(e.Descriptor, e.Handler); err != nil {
			return nil, err
		}
	}
	for _, name := range AllCommands {
		if _, ok := r.entries[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHandler, name)
		}
	}
	return r, nil
}

func (r *Registry) Register(d domain.Descriptor, h Handler) error {
	if !reCommandName.MatchString(d.Name) {
		return &InvalidCommandNameError{Name: d.Name}
	}
	if h == nil {
		return fmt.Errorf("%w: %s", ErrMissingHandler, d.Name)
	}
	name := CommandName(d.Name)
	if _, ok := r.entries[name]; ok {
		return &DuplicateCommandError{Name: d.Name}
	}
	r.entries[name] = Entry{Descriptor: d, Handler: h}
	return nil
}

func (r *Registry) Resolve(name string) (Handler, error) {
	e, ok := r.entries[CommandName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	return e.Handler, nil
}

// Descriptors devuelve el catálogo ordenado por nombre, listo para registrarlo en Discord.
func (r *Registry) Descriptors() []domain.Descriptor {
	out := make([]domain.Descriptor, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Descriptor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Len() int { return len(r.entries) }
