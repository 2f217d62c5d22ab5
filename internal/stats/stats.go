// Package stats folds per-match stat lines into run-level totals.
package stats

import "valorant-stats/internal/riot"

// Outcome describes how a fetched match contributed to the totals.
type Outcome int

const (
	// CountedWin: participant found, stats added, their team won.
	CountedWin Outcome = iota
	// CountedLoss: participant found, stats added, no win credit.
	CountedLoss
	// PlayerAbsent: the account does not appear in the participant list;
	// the match contributes nothing.
	PlayerAbsent
	// TeamAbsent: participant found but their team id has no team entry.
	// Stats are still added; only win credit is withheld.
	TeamAbsent
)

// Totals accumulates one account's stat lines across a run.
type Totals struct {
	Kills   int
	Deaths  int
	Assists int
	Wins    int

	// Attempted counts detail fetches started; Aggregated counts matches
	// whose stats actually landed in the totals.
	Attempted  int
	Aggregated int

	Matches []MatchLine
}

// MatchLine is one aggregated match, kept for the report table.
type MatchLine struct {
	MatchID     string
	CharacterID string
	Kills       int
	Deaths      int
	Assists     int
	Won         bool
	// TeamFound is false when the participant's team id had no team
	// entry; Won is meaningless in that case.
	TeamFound bool
}

// Attempt records that a match detail fetch was started. The win-rate
// denominator counts attempts, not successes, so a failed fetch still
// weighs against the rate.
func (t *Totals) Attempt() {
	t.Attempted++
}

// Observe folds one fetched match into the totals and reports how it
// contributed. Exactly one participant is selected: the one whose puuid
// matches.
func (t *Totals) Observe(m *riot.Match, puuid string) Outcome {
	var player *riot.Player
	for i := range m.Players {
		if m.Players[i].Puuid == puuid {
			player = &m.Players[i]
			break
		}
	}
	if player == nil {
		return PlayerAbsent
	}

	t.Kills += player.Stats.Kills
	t.Deaths += player.Stats.Deaths
	t.Assists += player.Stats.Assists
	t.Aggregated++

	line := MatchLine{
		MatchID:     m.MatchInfo.MatchID,
		CharacterID: player.CharacterID,
		Kills:       player.Stats.Kills,
		Deaths:      player.Stats.Deaths,
		Assists:     player.Stats.Assists,
	}

	for _, team := range m.Teams {
		if team.TeamID == player.TeamID {
			line.TeamFound = true
			if team.Won {
				t.Wins++
				line.Won = true
				t.Matches = append(t.Matches, line)
				return CountedWin
			}
			t.Matches = append(t.Matches, line)
			return CountedLoss
		}
	}

	t.Matches = append(t.Matches, line)
	return TeamAbsent
}

// KDA is (kills+assists)/deaths with deaths floored at one, so a
// zero-death run reads as a finite ratio instead of dividing by zero.
func (t Totals) KDA() float64 {
	deaths := t.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(t.Kills+t.Assists) / float64(deaths)
}

// WinRate is the percentage of attempted matches won, 0 when nothing
// was attempted.
func (t Totals) WinRate() float64 {
	if t.Attempted == 0 {
		return 0
	}
	return 100 * float64(t.Wins) / float64(t.Attempted)
}
