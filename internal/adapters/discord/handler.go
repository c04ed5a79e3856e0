package discord

import (
	"github.com/bwmarrin/discordgo"

	"hackbot/internal/ports/output"
)

// Handler handles Discord interactions and owns the verification dialogues.
type Handler struct {
	verification *VerificationManager
	configs      output.GuildConfigRepository
	translator   output.T
	locale       string
}

// NewHandler creates a Handler.
func NewHandler(
	verification *VerificationManager,
	configs output.GuildConfigRepository,
	translator output.T,
	locale string,
) *Handler {
	return &Handler{
		verification: verification,
		configs:      configs,
		translator:   translator,
		locale:       locale,
	}
}

func (h *Handler) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral},
	})
}
