// Package standings simulates group-stage tables from one participant's own
// predictions. Official results play no part: every participant gets the
// table their guesses imply.
package standings

import (
	"cmp"
	"slices"

	"github.com/Dosada05/prediction-pool/models"
)

// Win, draw and loss points.
const (
	PointsWin  = 3
	PointsDraw = 1
)

type group struct {
	name     string
	rows     []*models.GroupRow
	byTeam   map[string]*models.GroupRow
	fixtures []models.Match
}

func (g *group) row(team string) *models.GroupRow {
	if r, ok := g.byTeam[team]; ok {
		return r
	}
	r := &models.GroupRow{TeamName: team, Group: g.name}
	g.byTeam[team] = r
	g.rows = append(g.rows, r)
	return r
}

// BuildGroupTables builds one ranked table per group from the group-stage
// matches and a single participant's bets (keyed by match id). Teams appear
// even with no predicted match. Tables are returned in group-name order.
func BuildGroupTables(matches []models.Match, bets map[string]models.PartialScore) []models.GroupTable {
	groups := make(map[string]*group)
	for _, m := range matches {
		if !m.IsGroupStage() {
			continue
		}
		name := m.GroupName()
		g, ok := groups[name]
		if !ok {
			g = &group{name: name, byTeam: make(map[string]*models.GroupRow)}
			groups[name] = g
		}
		g.row(m.TeamA)
		g.row(m.TeamB)
		g.fixtures = append(g.fixtures, m)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)

	tables := make([]models.GroupTable, 0, len(names))
	for _, name := range names {
		g := groups[name]
		for _, m := range g.fixtures {
			s, ok := predicted(bets, m.ID)
			if !ok {
				continue
			}
			record(g.row(m.TeamA), g.row(m.TeamB), s)
		}

		rows := make([]models.GroupRow, len(g.rows))
		for i, r := range g.rows {
			rows[i] = *r
		}
		sortGroup(rows, g.fixtures, bets)
		tables = append(tables, models.GroupTable{Group: name, Rows: rows})
	}
	return tables
}

// predicted returns a usable bet. Negative scores are malformed and treated
// like a missing prediction.
func predicted(bets map[string]models.PartialScore, matchID string) (models.Score, bool) {
	s, ok := bets[matchID].Complete()
	if !ok || s.A < 0 || s.B < 0 {
		return models.Score{}, false
	}
	return s, true
}

func record(a, b *models.GroupRow, s models.Score) {
	a.Played++
	b.Played++
	a.GoalsFor += s.A
	a.GoalsAgainst += s.B
	b.GoalsFor += s.B
	b.GoalsAgainst += s.A
	a.GoalDifference = a.GoalsFor - a.GoalsAgainst
	b.GoalDifference = b.GoalsFor - b.GoalsAgainst

	switch {
	case s.A > s.B:
		a.Points += PointsWin
		a.Won++
		b.Lost++
	case s.B > s.A:
		b.Points += PointsWin
		b.Won++
		a.Lost++
	default:
		a.Points += PointsDraw
		b.Points += PointsDraw
		a.Drawn++
		b.Drawn++
	}
}

// sortGroup ranks by points, then head-to-head, goal difference and goals
// for. Head-to-head only applies when exactly two teams share a points total;
// with three or more level it is skipped. Rows still level after goals for
// keep the order in which their teams first appeared in the fixture list.
func sortGroup(rows []models.GroupRow, fixtures []models.Match, bets map[string]models.PartialScore) {
	level := make(map[int]int, len(rows))
	for _, r := range rows {
		level[r.Points]++
	}

	slices.SortStableFunc(rows, func(a, b models.GroupRow) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if level[a.Points] == 2 {
			if c := headToHead(a.TeamName, b.TeamName, fixtures, bets); c != 0 {
				return c
			}
		}
		if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
			return c
		}
		return cmp.Compare(b.GoalsFor, a.GoalsFor)
	})
}

// headToHead compares two teams on their direct fixture: negative when a won
// it, positive when b did, zero for a draw or no usable prediction. Only the
// first fixture between them is considered.
func headToHead(a, b string, fixtures []models.Match, bets map[string]models.PartialScore) int {
	for _, m := range fixtures {
		if !m.Between(a, b) {
			continue
		}
		s, ok := predicted(bets, m.ID)
		if !ok {
			return 0
		}
		goalsA, goalsB := s.A, s.B
		if m.TeamA != a {
			goalsA, goalsB = s.B, s.A
		}
		return cmp.Compare(goalsB, goalsA)
	}
	return 0
}
