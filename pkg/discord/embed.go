package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"hackbot/internal/domain/entities"
)

const embedColor = 0x5865F2

// BuildEventReminderEmbed builds the schedule-channel embed for an event
// entering its reminder window: title and body from the event itself, fields
// for the practical details.
func BuildEventReminderEmbed(event entities.Event, loc *time.Location) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       event.Name,
		Description: event.Description,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Location", Value: event.Location, Inline: true},
			{Name: "Start", Value: FormatEventTime(event.Start, loc), Inline: true},
			{Name: "End", Value: FormatEventTime(event.End, loc), Inline: true},
			{Name: "Type", Value: event.Type, Inline: true},
		},
	}
}

// BuildHelpEmbed builds the /help embed from already-localized strings.
func BuildHelpEmbed(title, description string, commands []string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(commands))
	for _, c := range commands {
		fields = append(fields, &discordgo.MessageEmbedField{Value: c, Name: "​", Inline: false})
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       embedColor,
		Fields:      fields,
	}
}
