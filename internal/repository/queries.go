package repository

import (
	"fmt"
	"strings"

	"baseball-stats-backend/internal/database/models"
)

// Query is a SQL statement with named bind parameters (@name). Caller input
// only ever travels through Args; the SQL text is assembled from constants.
type Query struct {
	SQL  string
	Args map[string]interface{}
}

// seasonOf is the season a game belongs to, used to join per-season tables
const seasonOf = "EXTRACT(YEAR FROM g.date)::int"

func eventTypeStrings(types []models.EventType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

// outcomeColumns returns the count columns shared by split and leader reports
func outcomeColumns(alias string) string {
	count := func(cond, column string) string {
		return fmt.Sprintf("\tCOALESCE(SUM(CASE WHEN %s.event_type %s THEN 1 ELSE 0 END), 0) AS %s", alias, cond, column)
	}
	return strings.Join([]string{
		"\tCOUNT(*) AS plate_appearances",
		count("IN @at_bat_events", "at_bats"),
		count("IN @hit_events", "hits"),
		count("= @single", "singles"),
		count("= @double", "doubles"),
		count("= @triple", "triples"),
		count("= @home_run", "home_runs"),
		count("IN @walk_events", "walks"),
		count("= @strikeout", "strikeouts"),
	}, ",\n")
}

func outcomeArgs(args map[string]interface{}) map[string]interface{} {
	args["at_bat_events"] = eventTypeStrings(models.AtBatEventTypes())
	args["hit_events"] = eventTypeStrings(models.HitEventTypes())
	args["walk_events"] = eventTypeStrings(models.WalkEventTypes())
	args["single"] = string(models.EventTypeSingle)
	args["double"] = string(models.EventTypeDouble)
	args["triple"] = string(models.EventTypeTriple)
	args["home_run"] = string(models.EventTypeHomeRun)
	args["strikeout"] = string(models.EventTypeStrikeout)
	return args
}

// roleColumns names the event columns for the subject of a report and the
// opponent, plus the handedness column describing the opponent.
func roleColumns(role Role) (subject, opponent, opponentHand string) {
	if role == RolePitcher {
		return "pitcher", "batter", "bats"
	}
	return "batter", "pitcher", "throws"
}

// ListTeamsQuery lists the distinct team ids and names in the reporting window
func ListTeamsQuery(firstYear, lastYear int) Query {
	return Query{
		SQL: `SELECT DISTINCT team_id, name
FROM team_names
WHERE year BETWEEN @first_year AND @last_year
ORDER BY team_id, name`,
		Args: map[string]interface{}{"first_year": firstYear, "last_year": lastYear},
	}
}

// ResolveTeamQuery finds every team id that carried name inside the window,
// along with the name as it is stored
func ResolveTeamQuery(name string, firstYear, lastYear int) Query {
	return Query{
		SQL: `SELECT DISTINCT team_id, name
FROM team_names
WHERE LOWER(name) = LOWER(@name) AND year BETWEEN @first_year AND @last_year
ORDER BY team_id, name`,
		Args: map[string]interface{}{"name": name, "first_year": firstYear, "last_year": lastYear},
	}
}

// TeamNamesQuery lists the names the given team ids carried in year
func TeamNamesQuery(teamIDs []int, year int) Query {
	return Query{
		SQL: `SELECT DISTINCT name
FROM team_names
WHERE team_id IN @team_ids AND year = @year
ORDER BY name`,
		Args: map[string]interface{}{"team_ids": teamIDs, "year": year},
	}
}

// RosterQuery lists the players on a team's roster in one season
func RosterQuery(teamID, year int) Query {
	return Query{
		SQL: `SELECT p.id, p.first_name, p.last_name, p.birth_country, p.debut_date
FROM players p
JOIN team_members tm ON tm.player_id = p.id
WHERE tm.team_id = @team_id AND tm.year = @year
ORDER BY p.last_name, p.first_name, p.id`,
		Args: map[string]interface{}{"team_id": teamID, "year": year},
	}
}

// TeamWinsQuery counts home and away wins per team id and display name for
// the seasons in [firstYear, lastYear]. Teams without a win report zeros.
func TeamWinsQuery(firstYear, lastYear int) Query {
	return Query{
		SQL: `WITH results AS (
	SELECT g.home_team AS team_id, ` + seasonOf + ` AS season,
		CASE WHEN g.home_score > g.away_score THEN 1 ELSE 0 END AS home_win,
		0 AS away_win
	FROM games g
	UNION ALL
	SELECT g.away_team, ` + seasonOf + `,
		0,
		CASE WHEN g.away_score > g.home_score THEN 1 ELSE 0 END
	FROM games g
)
SELECT tn.team_id, tn.name AS team_name,
	COALESCE(SUM(r.home_win), 0) AS home_wins,
	COALESCE(SUM(r.away_win), 0) AS away_wins,
	COALESCE(SUM(r.home_win + r.away_win), 0) AS total_wins
FROM team_names tn
LEFT JOIN results r ON r.team_id = tn.team_id AND r.season = tn.year
WHERE tn.year BETWEEN @first_year AND @last_year
GROUP BY tn.team_id, tn.name
ORDER BY tn.name, tn.team_id`,
		Args: map[string]interface{}{"first_year": firstYear, "last_year": lastYear},
	}
}

// pairCondition matches games played between the two id sets in either direction
const pairCondition = `((g.home_team IN @team1 AND g.away_team IN @team2)
	OR (g.home_team IN @team2 AND g.away_team IN @team1))`

// GamesBetweenQuery lists every game between two teams on or after From,
// with team names resolved for the season each game was played in.
func GamesBetweenQuery(f MatchupFilter) Query {
	return Query{
		SQL: `SELECT g.id, g.date,
	COALESCE(away.name, '') AS away_team, g.away_score,
	COALESCE(home.name, '') AS home_team, g.home_score
FROM games g
LEFT JOIN team_names home ON home.team_id = g.home_team AND home.year = ` + seasonOf + `
LEFT JOIN team_names away ON away.team_id = g.away_team AND away.year = ` + seasonOf + `
WHERE ` + pairCondition + `
	AND g.date >= @from
ORDER BY g.date ASC, g.id ASC`,
		Args: map[string]interface{}{"team1": f.Team1, "team2": f.Team2, "from": f.From},
	}
}

// SnapshotQuery aggregates wins and runs for each side of a matchup. Venue
// restricts each side to the games it played at home or away.
func SnapshotQuery(f MatchupFilter, venue models.Venue) Query {
	args := map[string]interface{}{"team1": f.Team1, "team2": f.Team2, "from": f.From}

	where := ""
	if venue != models.VenueAll {
		where = "WHERE venue = @venue\n"
		args["venue"] = string(venue)
	}

	return Query{
		SQL: `WITH matchups AS (
	SELECT 1 AS side, 'home' AS venue, g.home_score AS runs, g.away_score AS allowed
	FROM games g
	WHERE g.home_team IN @team1 AND g.away_team IN @team2 AND g.date >= @from
	UNION ALL
	SELECT 1, 'away', g.away_score, g.home_score
	FROM games g
	WHERE g.away_team IN @team1 AND g.home_team IN @team2 AND g.date >= @from
	UNION ALL
	SELECT 2, 'home', g.home_score, g.away_score
	FROM games g
	WHERE g.home_team IN @team2 AND g.away_team IN @team1 AND g.date >= @from
	UNION ALL
	SELECT 2, 'away', g.away_score, g.home_score
	FROM games g
	WHERE g.away_team IN @team2 AND g.home_team IN @team1 AND g.date >= @from
)
SELECT side,
	COUNT(*) AS games,
	SUM(CASE WHEN runs > allowed THEN 1 ELSE 0 END) AS wins,
	SUM(runs) AS total_runs,
	AVG(runs)::float8 AS avg_runs,
	MAX(runs) AS max_runs,
	MIN(runs) AS min_runs
FROM matchups
` + where + `GROUP BY side
ORDER BY side`,
		Args: args,
	}
}

// StandingsQuery ranks teams by wins within a season window. Ties are broken
// by team name, then id.
func StandingsQuery(w SeasonWindow, limit int) Query {
	return Query{
		SQL: `WITH season_games AS (
	SELECT g.home_team, g.away_team, g.home_score, g.away_score
	FROM games g
	WHERE g.date BETWEEN @start AND @end
),
results AS (
	SELECT home_team AS team_id,
		CASE WHEN home_score > away_score THEN 1 ELSE 0 END AS home_win,
		0 AS away_win
	FROM season_games
	UNION ALL
	SELECT away_team, 0, CASE WHEN away_score > home_score THEN 1 ELSE 0 END
	FROM season_games
)
SELECT r.team_id, COALESCE(tn.name, '') AS team_name,
	SUM(r.home_win) AS home_wins,
	SUM(r.away_win) AS away_wins,
	SUM(r.home_win + r.away_win) AS total_wins,
	COUNT(*) - SUM(r.home_win + r.away_win) AS total_losses,
	COUNT(*) AS total_games
FROM results r
LEFT JOIN team_names tn ON tn.team_id = r.team_id AND tn.year = @year
GROUP BY r.team_id, tn.name
ORDER BY total_wins DESC, team_name ASC, r.team_id ASC
LIMIT @limit`,
		Args: map[string]interface{}{"start": w.Start, "end": w.End, "year": w.Year, "limit": limit},
	}
}

// HeadToHeadQuery counts each outcome of the plate appearances between a
// batter and a pitcher.
func HeadToHeadQuery(batterID, pitcherID string) Query {
	return Query{
		SQL: `SELECT e.event_type AS outcome, COUNT(*) AS occurrences
FROM events e
WHERE e.batter = @batter AND e.pitcher = @pitcher
GROUP BY e.event_type
ORDER BY occurrences DESC, outcome ASC`,
		Args: map[string]interface{}{"batter": batterID, "pitcher": pitcherID},
	}
}

// PlayerSplitQuery totals one player's plate appearances in [Start, End),
// optionally restricted to opponents on the given teams (by the roster of the
// game's season) or opponents with the given handedness.
func PlayerSplitQuery(role Role, f SplitFilter) Query {
	subject, opponent, hand := roleColumns(role)
	args := outcomeArgs(map[string]interface{}{
		"player_id": f.PlayerID,
		"start":     f.Start,
		"end":       f.End,
	})

	var sb strings.Builder
	sb.WriteString("SELECT\n")
	sb.WriteString(outcomeColumns("e"))
	sb.WriteString("\nFROM events e\nJOIN games g ON g.id = e.game_id\n")
	if f.OpponentHand != "" {
		sb.WriteString("JOIN players opp ON opp.id = e." + opponent + "\n")
	}
	if len(f.AgainstTeams) > 0 {
		sb.WriteString("JOIN team_members otm ON otm.player_id = e." + opponent + " AND otm.year = " + seasonOf + "\n")
	}
	sb.WriteString("WHERE e." + subject + " = @player_id\n")
	sb.WriteString("\tAND g.date >= @start\n\tAND g.date < @end\n")
	if f.OpponentHand != "" {
		sb.WriteString("\tAND opp." + hand + " = @hand\n")
		args["hand"] = f.OpponentHand
	}
	if len(f.AgainstTeams) > 0 {
		sb.WriteString("\tAND otm.team_id IN @against_teams\n")
		args["against_teams"] = f.AgainstTeams
	}

	return Query{SQL: strings.TrimSuffix(sb.String(), "\n"), Args: args}
}

// LeadersQuery totals every player of the given role against the opposing
// team. Side 1 rows are players of the first team facing the second; side 2
// rows are the reverse. Rows are unranked.
func LeadersQuery(role Role, f LeaderFilter) Query {
	subject, _, _ := roleColumns(role)
	subjectTeam, opponentTeam := "batting_team", "pitching_team"
	having := "HAVING SUM(CASE WHEN m.event_type IN @at_bat_events THEN 1 ELSE 0 END) >= @min_at_bats"
	args := map[string]interface{}{"min_at_bats": f.MinAtBats}
	if role == RolePitcher {
		subjectTeam, opponentTeam = opponentTeam, subjectTeam
		having = "HAVING COUNT(*) > @min_batters_faced"
		args = map[string]interface{}{"min_batters_faced": f.MinBattersFaced}
	}

	all := make([]int, 0, len(f.Team1)+len(f.Team2))
	all = append(all, f.Team1...)
	all = append(all, f.Team2...)
	args["team1"] = f.Team1
	args["team2"] = f.Team2
	args["all_teams"] = all
	args["from"] = f.From
	outcomeArgs(args)

	return Query{
		SQL: `WITH plate_appearances AS (
	SELECT e.batter, e.pitcher, e.event_type,
		pm.team_id AS pitching_team, bm.team_id AS batting_team
	FROM events e
	JOIN games g ON g.id = e.game_id
	JOIN team_members pm ON pm.player_id = e.pitcher AND pm.year = ` + seasonOf + `
	JOIN team_members bm ON bm.player_id = e.batter AND bm.year = ` + seasonOf + `
	WHERE g.date >= @from
		AND pm.team_id IN @all_teams
		AND bm.team_id IN @all_teams
),
matchups AS (
	SELECT 1 AS side, pa.* FROM plate_appearances pa
	WHERE pa.` + subjectTeam + ` IN @team1 AND pa.` + opponentTeam + ` IN @team2
	UNION ALL
	SELECT 2 AS side, pa.* FROM plate_appearances pa
	WHERE pa.` + subjectTeam + ` IN @team2 AND pa.` + opponentTeam + ` IN @team1
)
SELECT m.side, m.` + subject + ` AS player_id, p.first_name, p.last_name,
` + outcomeColumns("m") + `
FROM matchups m
JOIN players p ON p.id = m.` + subject + `
GROUP BY m.side, m.` + subject + `, p.first_name, p.last_name
` + having + `
ORDER BY m.side, p.last_name, p.first_name, m.` + subject,
		Args: args,
	}
}
