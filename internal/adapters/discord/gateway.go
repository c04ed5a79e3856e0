package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"hackbot/internal/domain"
	"hackbot/internal/ports/output"
)

var (
	_ output.Messenger   = (*Gateway)(nil)
	_ output.RoleManager = (*Gateway)(nil)
)

// Gateway implements the messaging and role ports over a discordgo session.
type Gateway struct {
	session *discordgo.Session
}

// NewGateway creates a Gateway.
func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) SendDM(userID, content string) error {
	ch, err := g.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("create DM channel: %w", err)
	}
	if _, err := g.session.ChannelMessageSend(ch.ID, content); err != nil {
		return fmt.Errorf("send DM: %w", err)
	}
	return nil
}

func (g *Gateway) AddRole(guildID, userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(guildID, userID, roleID); err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	return nil
}

func (g *Gateway) FindRoleByName(guildID, name string) (string, error) {
	roles, err := g.session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("list roles: %w", err)
	}
	for _, role := range roles {
		if role.Name == name {
			return role.ID, nil
		}
	}
	return "", domain.ErrRoleNotFound
}

func (g *Gateway) CreateRole(guildID, name string) (string, error) {
	role, err := g.session.GuildRoleCreate(guildID, &discordgo.RoleParams{Name: name})
	if err != nil {
		return "", fmt.Errorf("create role: %w", err)
	}
	return role.ID, nil
}
