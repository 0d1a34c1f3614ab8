// Package i18n registers scoreboard labels for Basque and English.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyTeamLabel     = "team.label"
	KeyRoundPoints   = "score.points"
	KeyGamePoints    = "score.games"
	KeyCeiling       = "settings.ceiling"
	KeyReset         = "reset.title"
	KeyResetRound    = "reset.round"
	KeyResetGame     = "reset.game"
	KeyRoundComplete = "round.complete"
)

// Basque is the default locale; the scoreboard was first written for it.
var Basque = language.MustParse("eu")

var supportedTags = []language.Tag{
	Basque,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

func init() {
	eu := Basque
	message.SetString(eu, KeyTeamLabel, "%s taldea")
	message.SetString(eu, KeyRoundPoints, "Tantoak")
	message.SetString(eu, KeyGamePoints, "Ustelak")
	message.SetString(eu, KeyCeiling, "Joko-tantoak")
	message.SetString(eu, KeyReset, "Berrezarri")
	message.SetString(eu, KeyResetRound, "Puntuak")
	message.SetString(eu, KeyResetGame, "Ustelak")
	message.SetString(eu, KeyRoundComplete, "%s: %d tanto, ustela eman!")

	en := language.English
	message.SetString(en, KeyTeamLabel, "Team %s")
	message.SetString(en, KeyRoundPoints, "Points")
	message.SetString(en, KeyGamePoints, "Games")
	message.SetString(en, KeyCeiling, "Game points")
	message.SetString(en, KeyReset, "Reset")
	message.SetString(en, KeyResetRound, "Points")
	message.SetString(en, KeyResetGame, "Games")
	message.SetString(en, KeyRoundComplete, "%s reached %d, award the game point!")
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return Basque
}

// ResolveTag picks the closest supported tag for a locale string such as
// "en-US" or "eu". Unparseable or empty input yields Default.
func ResolveTag(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
