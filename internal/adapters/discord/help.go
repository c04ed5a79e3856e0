package discord

import (
	"github.com/bwmarrin/discordgo"

	pkgdiscord "hackbot/pkg/discord"
)

func (h *Handler) HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := pkgdiscord.BuildHelpEmbed(
		h.translator.T(h.locale, "help.title", nil),
		h.translator.T(h.locale, "help.description", nil),
		[]string{
			h.translator.T(h.locale, "help.verify", nil),
			h.translator.T(h.locale, "help.setup", nil),
			h.translator.T(h.locale, "help.help", nil),
		},
	)
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
