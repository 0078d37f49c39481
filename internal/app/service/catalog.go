package service

import "github.com/jose-valero/warabi-bot/internal/domain"

func minValue(v int64) *int64 { return &v }

func userParam(desc string) domain.Param {
	return domain.Param{Name: "target", Description: desc, Kind: domain.ParamUser, Required: true}
}

// Catalog es la lista estática de descriptores que se registra en Discord.
var Catalog = map[CommandName]domain.Descriptor{
	CmdPing: {
		Name:        string(CmdPing),
		Description: "Pong!と返します",
	},
	CmdBan: {
		Name:        string(CmdBan),
		Description: "メンバーをBANします",
		Params:      []domain.Param{userParam("BANするユーザー")},
		Permissions: domain.PermBanMembers,
	},
	CmdKick: {
		Name:        string(CmdKick),
		Description: "メンバーをキックします",
		Params:      []domain.Param{userParam("キックするユーザー")},
		Permissions: domain.PermKickMembers,
	},
	CmdTimeout: {
		Name:        string(CmdTimeout),
		Description: "メンバーをタイムアウトします",
		Params: []domain.Param{
			userParam("タイムアウトするユーザー"),
			{Name: "seconds", Description: "秒数", Kind: domain.ParamInteger, Required: true},
		},
		Permissions: domain.PermModerateMembers,
	},
	CmdClear: {
		Name:        string(CmdClear),
		Description: "最近のメッセージを削除します",
		Params: []domain.Param{
			{Name: "amount", Description: "削除する件数", Kind: domain.ParamInteger, Required: true, Min: minValue(1)},
		},
		Permissions: domain.PermManageMessages,
	},
	CmdServerInfo: {
		Name:        string(CmdServerInfo),
		Description: "サーバー情報を表示します",
	},
	CmdUserInfo: {
		Name:        string(CmdUserInfo),
		Description: "ユーザー情報を表示します",
		Params:      []domain.Param{userParam("対象のユーザー")},
	},
	CmdIPInfo: {
		Name:        string(CmdIPInfo),
		Description: "IPアドレスの情報を調べます",
		Params: []domain.Param{
			{Name: "ip", Description: "IPアドレス", Kind: domain.ParamString, Required: true},
		},
	},
	CmdQRCode: {
		Name:        string(CmdQRCode),
		Description: "URLからQRコードを生成します",
		Params: []domain.Param{
			{Name: "url", Description: "QRコードにするURL", Kind: domain.ParamString, Required: true},
		},
	},
	CmdChatSet: {
		Name:        string(CmdChatSet),
		Description: "AIチャットを有効にするチャンネルを設定します",
		Params: []domain.Param{
			{Name: "channel", Description: "対象のチャンネル", Kind: domain.ParamChannel, Required: true},
		},
		Permissions: domain.PermManageChannels,
	},
}

// CatalogDescriptors devuelve el catálogo en el orden de AllCommands.
func CatalogDescriptors() []domain.Descriptor {
	out := make([]domain.Descriptor, 0, len(AllCommands))
	for _, name := range AllCommands {
		out = append(out, Catalog[name])
	}
	return out
}
