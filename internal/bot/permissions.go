package bot

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PermissionNames maps the permission bits used by commands to display names.
var PermissionNames = map[int64]string{
	discordgo.PermissionKickMembers:     "Kick Members",
	discordgo.PermissionBanMembers:      "Ban Members",
	discordgo.PermissionAdministrator:   "Administrator",
	discordgo.PermissionManageChannels:  "Manage Channels",
	discordgo.PermissionManageGuild:     "Manage Server",
	discordgo.PermissionAddReactions:    "Add Reactions",
	discordgo.PermissionViewChannel:     "View Channel",
	discordgo.PermissionSendMessages:    "Send Messages",
	discordgo.PermissionManageMessages:  "Manage Messages",
	discordgo.PermissionVoiceConnect:    "Connect",
	discordgo.PermissionVoiceSpeak:      "Speak",
	discordgo.PermissionManageRoles:     "Manage Roles",
	discordgo.PermissionModerateMembers: "Moderate Members",
}

// PermissionString renders a permission bit set as a sorted, comma separated list.
func PermissionString(perms int64) string {
	var names []string
	for p := uint64(perms); p != 0; p &= p - 1 {
		bit := int64(1) << bits.TrailingZeros64(p)
		if name, ok := PermissionNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("0x%x", bit))
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// checkPermissions returns a MissingPermissions error unless userID holds every
// bit of required in channelID. Administrators hold every permission.
func checkPermissions(g Gateway, guildID, userID, channelID string, required int64) error {
	if required == 0 {
		return nil
	}
	if guildID == "" {
		return &CommandError{Kind: KindMissingPermissions, Err: errGuildOnly}
	}

	perms, err := g.UserChannelPermissions(userID, channelID)
	if err != nil {
		return &CommandError{
			Kind: KindMissingPermissions,
			Err:  fmt.Errorf("failed to get user permissions: %w", err),
		}
	}

	if perms&discordgo.PermissionAdministrator != 0 {
		return nil
	}
	if missing := required &^ perms; missing != 0 {
		return &CommandError{
			Kind: KindMissingPermissions,
			Err:  fmt.Errorf("missing %s", PermissionString(missing)),
		}
	}
	return nil
}
