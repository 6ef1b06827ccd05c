package gamedomain

// testCourse is an 18-hole layout exercising every eligibility rule:
// front par-3s {3,5,7}, front par-5s {2,6}, back par-3s {11,14,17},
// back par-5s {13,18}; hardest holes are 4 (front) and 10 (back);
// fours holes are 1 (front) and 12 (back).
func testCourse() Course {
	holes := []CourseHole{
		{HoleNumber: 1, Par: 4, Handicap: 5},
		{HoleNumber: 2, Par: 5, Handicap: 13},
		{HoleNumber: 3, Par: 3, Handicap: 17},
		{HoleNumber: 4, Par: 4, Handicap: 1},
		{HoleNumber: 5, Par: 3, Handicap: 3},
		{HoleNumber: 6, Par: 5, Handicap: 15},
		{HoleNumber: 7, Par: 3, Handicap: 9},
		{HoleNumber: 8, Par: 4, Handicap: 7},
		{HoleNumber: 9, Par: 4, Handicap: 11},
		{HoleNumber: 10, Par: 4, Handicap: 2},
		{HoleNumber: 11, Par: 3, Handicap: 16},
		{HoleNumber: 12, Par: 4, Handicap: 4},
		{HoleNumber: 13, Par: 5, Handicap: 14},
		{HoleNumber: 14, Par: 3, Handicap: 18},
		{HoleNumber: 15, Par: 4, Handicap: 6},
		{HoleNumber: 16, Par: 4, Handicap: 8},
		{HoleNumber: 17, Par: 3, Handicap: 12},
		{HoleNumber: 18, Par: 5, Handicap: 10},
	}

	totalPar := 0
	for _, h := range holes {
		totalPar += h.Par
	}

	return Course{
		ID:       "test-links",
		Name:     "Test Links",
		Holes:    holes,
		TotalPar: totalPar,
	}
}

func testGame(playerIDs ...PlayerID) Game {
	setups := make([]PlayerSetup, 0, len(playerIDs))
	for _, id := range playerIDs {
		setups = append(setups, PlayerSetup{ID: id, Name: string(id)})
	}
	return NewGame("game-1", "2026-04-18", testCourse(), setups)
}

func winner(id PlayerID) *PlayerID {
	return &id
}

func skinsOf(t interface{ Fatalf(string, ...any) }, g Game, id PlayerID) int {
	p, ok := g.Player(id)
	if !ok {
		t.Fatalf("player %s not found", id)
	}
	return p.Skins
}
