package discord

import (
	"bytes"
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

const maxMessageLength = 2000

// truncate corta en runas para no partir caracteres multibyte.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func toFiles(files []domain.File) []*discordgo.File {
	if len(files) == 0 {
		return nil
	}
	out := make([]*discordgo.File, 0, len(files))
	for _, f := range files {
		out = append(out, &discordgo.File{
			Name:        f.Name,
			ContentType: f.ContentType,
			Reader:      bytes.NewReader(f.Data),
		})
	}
	return out
}

// interactionResponder contesta con InteractionRespond; efímero si Reply.Ephemeral.
type interactionResponder struct {
	api API
	ic  *discordgo.Interaction
}

func (r *interactionResponder) Respond(ctx context.Context, rep domain.Reply) error {
	data := &discordgo.InteractionResponseData{
		Content: truncate(rep.Content, maxMessageLength),
		Files:   toFiles(rep.Files),
	}
	if rep.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.api.InteractionRespond(r.ic, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
}

// messageReplier responde citando el mensaje original.
type messageReplier struct {
	api API
	msg *discordgo.Message
}

func (r *messageReplier) Reply(ctx context.Context, content string) error {
	_, err := r.api.ChannelMessageSendComplex(r.msg.ChannelID, &discordgo.MessageSend{
		Content:   truncate(content, maxMessageLength),
		Reference: r.msg.Reference(),
		AllowedMentions: &discordgo.MessageAllowedMentions{
			RepliedUser: true,
		},
	}, discordgo.WithContext(ctx))
	return err
}
