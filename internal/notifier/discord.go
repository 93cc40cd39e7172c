package notifier

import (
	"fmt"
	"log"

	"github.com/badgeboard/badgeboard-api/internal/models"
	"github.com/bwmarrin/discordgo"
)

type Notifier interface {
	NotifyAward(recipient models.User, badge models.Badge, grantedBy models.User, award models.BadgeAward) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyAward(recipient models.User, badge models.Badge, grantedBy models.User, award models.BadgeAward) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	reasonStr := ""
	if award.Reason != "" {
		reasonStr = fmt.Sprintf("\n**Reason:** %s", award.Reason)
	}

	message := fmt.Sprintf("🏅 **Badge Awarded**\n**Recipient:** %s\n**Badge:** %s (%s)\n**Awarded by:** %s\n**Date:** %s%s",
		recipient.Name,
		badge.Name,
		award.BadgeType,
		grantedBy.Name,
		award.AwardedAt,
		reasonStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
