package entities

import "time"

// GuildConfig holds the channel and role IDs created by the setup command.
// The most recently created row wins when several exist.
type GuildConfig struct {
	ID                    int64
	ScheduleChannelID     string
	AnnouncementChannelID string
	VerificationChannelID string
	VerifiedRoleID        string
	CreatedAt             time.Time
}
