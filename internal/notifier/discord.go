package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/medicare-camp/camp-api/internal/models"
)

type Notifier interface {
	NotifyEnrollment(camp models.Camp, reg models.Registration) error
}

// DiscordNotifier posts a message to the configured channel whenever a
// participant joins a camp. Optional: the server runs without it.
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

func (n *DiscordNotifier) NotifyEnrollment(camp models.Camp, reg models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("🏕️ **New Enrollment**\n**Camp:** %s (%s)\n**Participant:** %s <%s>\n**Participants so far:** %d",
		camp.CampName,
		camp.CampLocation,
		reg.ParticipantName,
		reg.ParticipantEmail,
		camp.ParticipantCount,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	return err
}
