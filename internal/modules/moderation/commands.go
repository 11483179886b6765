package moderation

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/aiobot/internal/bot"
)

// Commands returns the moderation command definitions for the given prefix.
func Commands(prefix string, h *Handlers) []*bot.Command {
	return []*bot.Command{
		{
			Name:        "kick",
			Description: "Kicks a member from the server.",
			Usage:       "@user [reason]",
			Params:      memberParams(),
			Permission:  discordgo.PermissionKickMembers,
			GuildOnly:   true,
			Messages: map[bot.ErrorKind]string{
				bot.KindMissingPermissions:      "You don't have permission to kick members.",
				bot.KindMissingRequiredArgument: fmt.Sprintf("Please specify a member to kick. Usage: `%skick @user [reason]`", prefix),
			},
			Handler: h.HandleKick,
		},
		{
			Name:        "ban",
			Description: "Bans a member from the server.",
			Usage:       "@user [reason]",
			Params:      memberParams(),
			Permission:  discordgo.PermissionBanMembers,
			GuildOnly:   true,
			Messages: map[bot.ErrorKind]string{
				bot.KindMissingPermissions:      "You don't have permission to ban members.",
				bot.KindMissingRequiredArgument: fmt.Sprintf("Please specify a member to ban. Usage: `%sban @user [reason]`", prefix),
			},
			Handler: h.HandleBan,
		},
		{
			Name:        "timeout",
			Description: "Times out a member for a number of minutes.",
			Usage:       "@user <minutes> [reason]",
			Params: []bot.Param{
				{Name: "member", Kind: bot.ParamMember},
				{Name: "minutes", Kind: bot.ParamInteger, Invalid: "Invalid duration. Please provide minutes as a whole number."},
				{Name: "reason", Kind: bot.ParamRest, Optional: true},
			},
			Permission: discordgo.PermissionModerateMembers,
			GuildOnly:  true,
			Messages: map[bot.ErrorKind]string{
				bot.KindMissingPermissions:      "You don't have permission to timeout members.",
				bot.KindMissingRequiredArgument: fmt.Sprintf("Please specify a member and duration (in minutes). Usage: `%stimeout @user <minutes> [reason]`", prefix),
			},
			Handler: h.HandleTimeout,
		},
	}
}

func memberParams() []bot.Param {
	return []bot.Param{
		{Name: "member", Kind: bot.ParamMember},
		{Name: "reason", Kind: bot.ParamRest, Optional: true},
	}
}
