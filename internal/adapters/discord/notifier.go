package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"hackbot/internal/domain/entities"
	"hackbot/internal/ports/output"
	pkgdiscord "hackbot/pkg/discord"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier delivers event reminders to the schedule channel.
type Notifier struct {
	session    *discordgo.Session
	translator output.T
	locale     string
	location   *time.Location
}

// NewNotifier creates a Notifier.
func NewNotifier(session *discordgo.Session, translator output.T, locale string, location *time.Location) *Notifier {
	return &Notifier{
		session:    session,
		translator: translator,
		locale:     locale,
		location:   location,
	}
}

func (n *Notifier) EventStarting(_ context.Context, event entities.Event, channelID string) error {
	embed := pkgdiscord.BuildEventReminderEmbed(event, n.location)
	_, err := n.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: n.translator.T(n.locale, "reminder.starting_soon", nil),
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}
