package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"hackbot/internal/domain/entities"
)

// HandleSetup provisions the verified role, the verification, announcements
// and schedule channels, then persists their IDs as a new config row. The
// config is append-only: re-running setup creates fresh channels and a fresh
// row, and readers pick the most recent one.
func (h *Handler) HandleSetup(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	guildID := i.GuildID

	verifiedRole, err := s.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: "verified"})
	if err != nil {
		log.Printf("❌ Setup: création du rôle verified: %v", err)
		h.respondEphemeral(s, i, h.translator.T(h.locale, "setup.failed", nil))
		return
	}

	channels := make(map[string]*discordgo.Channel, 3)
	for _, name := range []string{"verification", "announcements", "schedule"} {
		ch, err := s.GuildChannelCreate(guildID, name, discordgo.ChannelTypeGuildText)
		if err != nil {
			log.Printf("❌ Setup: création du salon %s: %v", name, err)
			h.respondEphemeral(s, i, h.translator.T(h.locale, "setup.failed", nil))
			return
		}
		channels[name] = ch
	}

	cfg := &entities.GuildConfig{
		ScheduleChannelID:     channels["schedule"].ID,
		AnnouncementChannelID: channels["announcements"].ID,
		VerificationChannelID: channels["verification"].ID,
		VerifiedRoleID:        verifiedRole.ID,
	}
	if err := h.configs.Create(ctx, cfg); err != nil {
		log.Printf("❌ Setup: enregistrement de la configuration: %v", err)
		h.respondEphemeral(s, i, h.translator.T(h.locale, "setup.failed", nil))
		return
	}

	if _, err := s.ChannelMessageSend(channels["verification"].ID, h.translator.T(h.locale, "setup.verify_instructions", nil)); err != nil {
		log.Printf("⚠️ Setup: message d'instructions: %v", err)
	}

	h.respondEphemeral(s, i, h.translator.T(h.locale, "setup.done", nil))
}
