package stats

import (
	"testing"

	"valorant-stats/internal/riot"
)

const (
	callerPuuid = "puuid-caller"
	otherPuuid  = "puuid-other"
)

// makeMatch builds a minimal match with the caller on teamID and one
// opponent, plus a team entry carrying the win flag.
func makeMatch(matchID, teamID string, won bool, kills, deaths, assists int) *riot.Match {
	return &riot.Match{
		MatchInfo: riot.MatchInfo{MatchID: matchID},
		Players: []riot.Player{
			{Puuid: otherPuuid, TeamID: "Red"},
			{
				Puuid:  callerPuuid,
				TeamID: teamID,
				Stats:  riot.PlayerStats{Kills: kills, Deaths: deaths, Assists: assists},
			},
		},
		Teams: []riot.Team{
			{TeamID: teamID, Won: won},
		},
	}
}

func TestKDAFloorsDeathsAtOne(t *testing.T) {
	var totals Totals
	totals.Attempt()
	if got := totals.Observe(makeMatch("m1", "Blue", false, 3, 0, 2), callerPuuid); got != CountedLoss {
		t.Fatalf("Observe = %v, want CountedLoss", got)
	}

	if got := totals.KDA(); got != 5.00 {
		t.Errorf("KDA = %.2f, want 5.00 (deaths floored at 1)", got)
	}
}

func TestKDADividesByActualDeaths(t *testing.T) {
	var totals Totals
	totals.Attempt()
	totals.Observe(makeMatch("m1", "Blue", true, 10, 4, 2), callerPuuid)

	if got := totals.KDA(); got != 3.0 {
		t.Errorf("KDA = %.2f, want 3.00", got)
	}
}

func TestWinRateUsesAttemptedDenominator(t *testing.T) {
	var totals Totals
	for i := 0; i < 5; i++ {
		totals.Attempt()
	}
	// only 2 of the 5 attempted matches could be aggregated, both wins
	totals.Observe(makeMatch("m1", "Blue", true, 10, 5, 1), callerPuuid)
	totals.Observe(makeMatch("m2", "Blue", true, 7, 3, 4), callerPuuid)

	if got := totals.WinRate(); got != 40.0 {
		t.Errorf("WinRate = %.1f, want 40.0 (denominator is attempts, not aggregated)", got)
	}
}

func TestWinRateZeroAttempts(t *testing.T) {
	var totals Totals
	if got := totals.WinRate(); got != 0 {
		t.Errorf("WinRate = %.1f, want 0", got)
	}
}

func TestObservePlayerAbsent(t *testing.T) {
	var totals Totals
	totals.Attempt()

	m := makeMatch("m1", "Blue", true, 9, 9, 9)
	if got := totals.Observe(m, "puuid-not-in-match"); got != PlayerAbsent {
		t.Fatalf("Observe = %v, want PlayerAbsent", got)
	}

	if totals.Kills != 0 || totals.Deaths != 0 || totals.Assists != 0 || totals.Wins != 0 {
		t.Errorf("absent player mutated totals: %+v", totals)
	}
	if totals.Aggregated != 0 {
		t.Errorf("Aggregated = %d, want 0", totals.Aggregated)
	}
	if totals.Attempted != 1 {
		t.Errorf("Attempted = %d, want 1 (attempt already recorded)", totals.Attempted)
	}
}

func TestObserveTeamAbsentKeepsStatsWithoutWinCredit(t *testing.T) {
	var totals Totals
	totals.Attempt()

	m := makeMatch("m1", "Blue", true, 5, 2, 1)
	m.Teams = nil

	if got := totals.Observe(m, callerPuuid); got != TeamAbsent {
		t.Fatalf("Observe = %v, want TeamAbsent", got)
	}
	if totals.Kills != 5 || totals.Deaths != 2 || totals.Assists != 1 {
		t.Errorf("stats not accumulated: %+v", totals)
	}
	if totals.Wins != 0 {
		t.Errorf("Wins = %d, want 0", totals.Wins)
	}
	if len(totals.Matches) != 1 || totals.Matches[0].TeamFound {
		t.Errorf("match line should be kept with TeamFound=false: %+v", totals.Matches)
	}
}

func TestObserveWinCredit(t *testing.T) {
	var totals Totals
	totals.Attempt()
	totals.Attempt()

	if got := totals.Observe(makeMatch("m1", "Blue", true, 1, 1, 1), callerPuuid); got != CountedWin {
		t.Fatalf("Observe = %v, want CountedWin", got)
	}
	if got := totals.Observe(makeMatch("m2", "Blue", false, 1, 1, 1), callerPuuid); got != CountedLoss {
		t.Fatalf("Observe = %v, want CountedLoss", got)
	}

	if totals.Wins != 1 {
		t.Errorf("Wins = %d, want 1", totals.Wins)
	}
	if got := totals.WinRate(); got != 50.0 {
		t.Errorf("WinRate = %.1f, want 50.0", got)
	}
}

func TestObserveMissingStatFieldsDefaultToZero(t *testing.T) {
	var totals Totals
	totals.Attempt()

	// zero-valued Stats models a response that omitted every stat field
	m := &riot.Match{
		MatchInfo: riot.MatchInfo{MatchID: "m1"},
		Players:   []riot.Player{{Puuid: callerPuuid, TeamID: "Blue"}},
		Teams:     []riot.Team{{TeamID: "Blue", Won: false}},
	}
	if got := totals.Observe(m, callerPuuid); got != CountedLoss {
		t.Fatalf("Observe = %v, want CountedLoss", got)
	}
	if totals.Kills != 0 || totals.Deaths != 0 || totals.Assists != 0 {
		t.Errorf("zero stats expected, got %+v", totals)
	}
	if totals.Aggregated != 1 {
		t.Errorf("Aggregated = %d, want 1", totals.Aggregated)
	}
}
