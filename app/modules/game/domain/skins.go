package gamedomain

// ComputeSkins recomputes every player's skins total from the full snapshot
// and returns fresh player records with Skins overwritten. All other fields
// pass through unchanged. The function is pure and total: it trusts that
// Normalize already pruned invalid marks and never re-validates them.
func ComputeSkins(players []Player, course Course, sideGames SideGames) []Player {
	totals := make(map[PlayerID]int, len(players))

	for _, hole := range course.Holes {
		scoreHole(players, hole, totals)
	}

	for _, side := range Sides {
		scoreHardestHole(players, course, side, totals)

		if winner, ok := awardedWinner(Par3HolesForSide(course, side), sideGames.ClosestToPin); ok {
			totals[winner]++
		}
		if winner, ok := awardedWinner(Par5HolesForSide(course, side), sideGames.LongestDrive); ok {
			totals[winner]++
		}
	}

	for _, marks := range []MarkMap{
		sideGames.Greenies,
		sideGames.Fivers,
		sideGames.Fours,
		sideGames.Sandies,
		sideGames.DoubleSandies,
		sideGames.LostBalls,
	} {
		for _, holeMarks := range marks {
			for id, marked := range holeMarks {
				if marked {
					totals[id]++
				}
			}
		}
	}

	out := make([]Player, len(players))
	for i, p := range players {
		cp := p
		cp.Holes = append([]HoleScore(nil), p.Holes...)
		cp.Skins = totals[p.ID]
		out[i] = cp
	}
	return out
}

// scoreHole applies the per-hole low-score skin: birdie/eagle bonuses stack
// for every player who beat par, and a strict un-tied low score within par+2
// earns the win bonus.
func scoreHole(players []Player, hole CourseHole, totals map[PlayerID]int) {
	type entry struct {
		id      PlayerID
		strokes int
	}

	var field []entry
	for _, p := range players {
		strokes := strokesOn(p, hole.HoleNumber)
		if strokes > 0 {
			field = append(field, entry{id: p.ID, strokes: strokes})
		}
	}
	if len(field) == 0 {
		return
	}

	min := field[0].strokes
	for _, e := range field[1:] {
		if e.strokes < min {
			min = e.strokes
		}
	}

	atMin := 0
	var winner PlayerID
	for _, e := range field {
		switch {
		case e.strokes <= hole.Par-2:
			totals[e.id] += 2
		case e.strokes == hole.Par-1:
			totals[e.id]++
		}
		if e.strokes == min {
			atMin++
			winner = e.id
		}
	}

	// A tie at the minimum awards nobody.
	if atMin == 1 && min <= hole.Par+2 {
		totals[winner]++
	}
}

// scoreHardestHole awards 1 point to every player who made par or better on
// the side's lowest-handicap hole.
func scoreHardestHole(players []Player, course Course, side Side, totals map[PlayerID]int) {
	hole, ok := HardestHoleForSide(course, side)
	if !ok {
		return
	}
	for _, p := range players {
		strokes := strokesOn(p, hole.HoleNumber)
		if strokes > 0 && strokes <= hole.Par {
			totals[p.ID]++
		}
	}
}

func strokesOn(p Player, holeNumber int) int {
	for _, h := range p.Holes {
		if h.HoleNumber == holeNumber {
			return h.Strokes
		}
	}
	return 0
}
