// Package view derives what the playmat displays from a scoreboard state.
package view

import (
	"strings"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/i18n"
	"golang.org/x/text/message"
)

// QuarterView is what one quarter of the playmat renders.
type QuarterView struct {
	Quarter    domain.Quarter
	Team       domain.Team
	PointValue int
	Markers    int
	NearSide   bool
}

// TeamView is the per-team score line.
type TeamView struct {
	Team          domain.Team
	Label         string
	Score         int
	GameScore     int
	RoundComplete bool
}

// Board is the full view-model for one state.
type Board struct {
	Quarters [domain.QuarterCount]QuarterView
	Teams    [domain.TeamCount]TeamView
	Ceiling  int
}

// TeamLabel returns the short team name used in labels.
func TeamLabel(team domain.Team) string {
	if team == domain.TeamB {
		return "B"
	}
	return "A"
}

// Build computes the board for state.
func Build(state domain.State) Board {
	board := Board{Ceiling: state.Ceiling}
	for _, q := range domain.Quarters() {
		// Quarters() only yields valid quarters.
		markers, _ := domain.Markers(state, q)
		board.Quarters[q] = QuarterView{
			Quarter:    q,
			Team:       q.Team(),
			PointValue: q.PointValue(),
			Markers:    markers,
			NearSide:   q.IsNearSide(),
		}
	}
	for _, team := range []domain.Team{domain.TeamA, domain.TeamB} {
		board.Teams[team] = TeamView{
			Team:          team,
			Label:         TeamLabel(team),
			Score:         state.Score[team],
			GameScore:     state.GameScore[team],
			RoundComplete: state.RoundComplete(team),
		}
	}
	return board
}

// ResetNotice confirms a reset, e.g. "Berrezarri: Puntuak, Ustelak".
func ResetNotice(p *message.Printer, round, games bool) string {
	if p == nil {
		p = i18n.Printer(i18n.Default())
	}
	var cleared []string
	if round {
		cleared = append(cleared, p.Sprintf(i18n.KeyResetRound))
	}
	if games {
		cleared = append(cleared, p.Sprintf(i18n.KeyResetGame))
	}
	return p.Sprintf(i18n.KeyReset) + ": " + strings.Join(cleared, ", ")
}

// Summary renders state as one localized line, e.g.
// "A taldea: Tantoak 12, Ustelak 1 | B taldea: Tantoak 5, Ustelak 0 | Joko-tantoak 20".
func Summary(p *message.Printer, state domain.State) string {
	if p == nil {
		p = i18n.Printer(i18n.Default())
	}
	board := Build(state)
	parts := make([]string, 0, domain.TeamCount+2)
	for _, team := range board.Teams {
		parts = append(parts, p.Sprintf(i18n.KeyTeamLabel, team.Label)+": "+
			p.Sprintf(i18n.KeyRoundPoints)+" "+p.Sprint(team.Score)+", "+
			p.Sprintf(i18n.KeyGamePoints)+" "+p.Sprint(team.GameScore))
	}
	parts = append(parts, p.Sprintf(i18n.KeyCeiling)+" "+p.Sprint(board.Ceiling))
	if winner, ok := state.RoundWinner(); ok {
		parts = append(parts, p.Sprintf(i18n.KeyRoundComplete, p.Sprintf(i18n.KeyTeamLabel, TeamLabel(winner)), state.Ceiling))
	}
	return strings.Join(parts, " | ")
}
