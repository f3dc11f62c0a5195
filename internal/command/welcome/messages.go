// Package welcome implements the welcome/verification configuration commands
// and the message templates shared with the member-join flow.
package welcome

import "fmt"

// DirectMessage is the greeting sent to a newly joined member.
func DirectMessage(guildName string) string {
	return fmt.Sprintf("👋 Welcome to **%s**! Take a look at the rules, grab your roles, "+
		"and feel free to ask questions in the questions forum. We're glad you're here!", guildName)
}

// Announcement is the channel-side greeting for a newly joined member.
func Announcement(userID string) string {
	return fmt.Sprintf("🎉 Everyone welcome <@%s> to the server!", userID)
}
