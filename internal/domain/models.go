package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrMemberNotFound lo devuelven los puertos de guild cuando el usuario no
// está en la caché de miembros.
var ErrMemberNotFound = errors.New("member not found")

type ParamKind int

const (
	ParamUser ParamKind = iota + 1
	ParamString
	ParamInteger
	ParamChannel
)

func (k ParamKind) String() string {
	switch k {
	case ParamUser:
		return "user"
	case ParamString:
		return "string"
	case ParamInteger:
		return "integer"
	case ParamChannel:
		return "channel"
	}
	return fmt.Sprintf("ParamKind(%d)", int(k))
}

type Param struct {
	Name        string
	Description string
	Kind        ParamKind
	Required    bool
	// Min acota las opciones enteras del lado de Discord; nil = sin cota.
	Min *int64
}

// Descriptor describe un slash command del catálogo. Inmutable después del arranque.
type Descriptor struct {
	Name        string
	Description string
	Params      []Param
	// Permisos por defecto que exige Discord (0 = todos).
	Permissions int64
}

type InteractionType int

const (
	InteractionOther InteractionType = iota
	InteractionCommand
)

type User struct {
	ID  string
	Tag string
	Bot bool
}

// Interaction es una invocación de slash command ya normalizada.
type Interaction struct {
	Type      InteractionType
	Command   string
	GuildID   string
	ChannelID string
	User      User
	// valores por nombre de parámetro: string (user/channel/string) o int64 (integer)
	Options map[string]any
	// usuarios resueltos por Discord para opciones de tipo user
	Users map[string]User
}

func (i Interaction) String(name string) (string, bool) {
	v, ok := i.Options[name].(string)
	return v, ok
}

func (i Interaction) Int(name string) (int64, bool) {
	v, ok := i.Options[name].(int64)
	return v, ok
}

// ResolvedUser devuelve el usuario pasado en la opción name.
func (i Interaction) ResolvedUser(name string) (User, bool) {
	id, ok := i.String(name)
	if !ok || id == "" {
		return User{}, false
	}
	if u, ok := i.Users[id]; ok {
		return u, true
	}
	return User{ID: id, Tag: id}, true
}

type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	Content   string
	Author    User
}

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Reply es la respuesta que produce un handler.
type Reply struct {
	Content   string
	Ephemeral bool
	Files     []File
}

type Member struct {
	GuildID string
	User    User
}

type Guild struct {
	ID          string
	Name        string
	MemberCount int
}

type IPInfo struct {
	Query   string
	Country string
	City    string
	ISP     string
}

type AIChannel struct {
	ChannelID string
	GuildID   string
	AddedBy   string
	AddedAt   time.Time
}
