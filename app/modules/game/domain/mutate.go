package gamedomain

// The mutation operations. Each takes the current snapshot plus arguments
// and returns a brand-new, fully consistent snapshot: the raw change is
// applied, Normalize prunes anything the change invalidated, and ComputeSkins
// rewrites every derived total. Operations that do not apply (an ineligible
// hole, an unknown player) return the input unchanged rather than failing;
// all operations are idempotent because they set target values instead of
// flipping state.

// recompute runs the resolver and calculator passes that close every
// mutation.
func recompute(g Game) Game {
	out := Normalize(g)
	out.Players = ComputeSkins(out.Players, out.Course, out.SideGames)
	for i, p := range out.Players {
		totalScore, totalPutts := 0, 0
		for _, h := range p.Holes {
			totalScore += h.Strokes
			totalPutts += h.Putts
		}
		out.Players[i].TotalScore = totalScore
		out.Players[i].TotalPutts = totalPutts
	}
	return out
}

// Recompute re-derives all dependent state from the raw snapshot. Exposed for
// callers that deserialize a snapshot and want its invariants re-established.
func Recompute(g Game) Game {
	return recompute(g)
}

// RecordScore overwrites one player's strokes and putts on one hole. Unknown
// players or hole numbers leave the game unchanged.
func RecordScore(g Game, playerID PlayerID, holeNumber, strokes, putts int) Game {
	out := g.Clone()
	applied := false
	for i, p := range out.Players {
		if p.ID != playerID {
			continue
		}
		for j, h := range p.Holes {
			if h.HoleNumber == holeNumber {
				out.Players[i].Holes[j].Strokes = strokes
				out.Players[i].Holes[j].Putts = putts
				applied = true
			}
		}
	}
	if !applied {
		return g
	}
	return recompute(out)
}

// SetClosestToPin records a CTP adjudication on a par-3 hole. A nil winner
// is an explicit "no qualifying winner" and leaves later candidates open; a
// non-nil winner closes the side and deletes later decisions.
func SetClosestToPin(g Game, holeNumber int, winner *PlayerID) Game {
	ch, ok := g.Course.Hole(holeNumber)
	if !ok || ch.Par != 3 {
		return g
	}
	if winner != nil {
		if _, known := g.Player(*winner); !known {
			return g
		}
	}
	if sideClosedBefore(Par3HolesForSide(g.Course, sideOf(holeNumber)), g.ClosestToPin, holeNumber) {
		return g
	}

	out := g.Clone()
	out.ClosestToPin[holeNumber] = winner
	if winner != nil {
		pruneLaterDecisions(Par3HolesForSide(out.Course, sideOf(holeNumber)), out.ClosestToPin, holeNumber)
	}
	return recompute(out)
}

// ClearClosestToPin retracts a CTP adjudication entirely, reopening the hole.
func ClearClosestToPin(g Game, holeNumber int) Game {
	if _, decided := g.ClosestToPin[holeNumber]; !decided {
		return g
	}
	out := g.Clone()
	delete(out.ClosestToPin, holeNumber)
	return recompute(out)
}

// SetLongestDrive records an LD adjudication on a par-5 hole, symmetric to
// SetClosestToPin.
func SetLongestDrive(g Game, holeNumber int, winner *PlayerID) Game {
	ch, ok := g.Course.Hole(holeNumber)
	if !ok || ch.Par != 5 {
		return g
	}
	if winner != nil {
		if _, known := g.Player(*winner); !known {
			return g
		}
	}
	if sideClosedBefore(Par5HolesForSide(g.Course, sideOf(holeNumber)), g.LongestDrive, holeNumber) {
		return g
	}

	out := g.Clone()
	out.LongestDrive[holeNumber] = winner
	if winner != nil {
		pruneLaterDecisions(Par5HolesForSide(out.Course, sideOf(holeNumber)), out.LongestDrive, holeNumber)
	}
	return recompute(out)
}

// ClearLongestDrive retracts an LD adjudication entirely.
func ClearLongestDrive(g Game, holeNumber int) Game {
	if _, decided := g.LongestDrive[holeNumber]; !decided {
		return g
	}
	out := g.Clone()
	delete(out.LongestDrive, holeNumber)
	return recompute(out)
}

// SetGreenie sets a greenie mark. Rejected (no-op) unless the hole is in the
// greenie-eligible set derived from the current CTP state.
func SetGreenie(g Game, holeNumber int, playerID PlayerID, marked bool) Game {
	if !containsHole(GreenieHoles(g.Course, g.ClosestToPin), holeNumber) {
		return g
	}
	return setMark(g, func(out *Game) *MarkMap { return &out.Greenies }, holeNumber, playerID, marked)
}

// SetFiver sets a fiver mark on a par-5 hole.
func SetFiver(g Game, holeNumber int, playerID PlayerID, marked bool) Game {
	if !containsHole(FiverHoles(g.Course), holeNumber) {
		return g
	}
	return setMark(g, func(out *Game) *MarkMap { return &out.Fivers }, holeNumber, playerID, marked)
}

// SetFour sets a four mark on the side's designated par-4.
func SetFour(g Game, holeNumber int, playerID PlayerID, marked bool) Game {
	if !containsHole(FourHoles(g.Course), holeNumber) {
		return g
	}
	return setMark(g, func(out *Game) *MarkMap { return &out.Fours }, holeNumber, playerID, marked)
}

// SetSandyHole sets the hole-level sandy toggle. Turning it off cascades:
// Normalize drops the hole's sandy and double-sandy marks.
func SetSandyHole(g Game, holeNumber int, enabled bool) Game {
	if _, ok := g.Course.Hole(holeNumber); !ok {
		return g
	}
	out := g.Clone()
	if enabled {
		out.SandyHoles[holeNumber] = true
	} else {
		delete(out.SandyHoles, holeNumber)
	}
	return recompute(out)
}

// SetLostBallHole sets the hole-level lost-ball toggle, cascading like
// SetSandyHole.
func SetLostBallHole(g Game, holeNumber int, enabled bool) Game {
	if _, ok := g.Course.Hole(holeNumber); !ok {
		return g
	}
	out := g.Clone()
	if enabled {
		out.LostBallHoles[holeNumber] = true
	} else {
		delete(out.LostBallHoles, holeNumber)
	}
	return recompute(out)
}

// SetSandy sets a player's sandy mark. Rejected while the hole toggle is off;
// clearing it also clears the player's double sandy via Normalize.
func SetSandy(g Game, holeNumber int, playerID PlayerID, marked bool) Game {
	if !g.SandyHoles[holeNumber] {
		return g
	}
	return setMark(g, func(out *Game) *MarkMap { return &out.Sandies }, holeNumber, playerID, marked)
}

// SetDoubleSandy sets a player's double-sandy mark. Rejected unless the
// player already holds a sandy on the hole.
func SetDoubleSandy(g Game, holeNumber int, playerID PlayerID, marked bool) Game {
	if !g.Sandies[holeNumber][playerID] {
		return g
	}
	return setMark(g, func(out *Game) *MarkMap { return &out.DoubleSandies }, holeNumber, playerID, marked)
}

// SetLostBall sets a player's lost-ball mark. Rejected while the hole toggle
// is off.
func SetLostBall(g Game, holeNumber int, playerID PlayerID, marked bool) Game {
	if !g.LostBallHoles[holeNumber] {
		return g
	}
	return setMark(g, func(out *Game) *MarkMap { return &out.LostBalls }, holeNumber, playerID, marked)
}

// ChangeCourse replaces the course and resets every score and every side-game
// mark; skins recompute to zero.
func ChangeCourse(g Game, course Course) Game {
	out := g.Clone()
	out.Course = course
	out.TotalHoles = len(course.Holes)
	out.CurrentHole = 1
	out.SideGames = emptySideGames()
	for i := range out.Players {
		out.Players[i].Holes = emptyHoles(course)
	}
	return recompute(out)
}

func setMark(g Game, pick func(*Game) *MarkMap, holeNumber int, playerID PlayerID, marked bool) Game {
	if _, known := g.Player(playerID); !known {
		return g
	}

	out := g.Clone()
	marks := *pick(&out)
	if marked {
		if marks[holeNumber] == nil {
			marks[holeNumber] = map[PlayerID]bool{}
		}
		marks[holeNumber][playerID] = true
	} else if marks[holeNumber] != nil {
		delete(marks[holeNumber], playerID)
		if len(marks[holeNumber]) == 0 {
			delete(marks, holeNumber)
		}
	}
	return recompute(out)
}

// ClosestDecisionOpen reports whether a CTP decision may be recorded on the
// hole: it is a par-3 and no earlier candidate on its side carries a winner.
func ClosestDecisionOpen(g Game, holeNumber int) bool {
	ch, ok := g.Course.Hole(holeNumber)
	if !ok || ch.Par != 3 {
		return false
	}
	return !sideClosedBefore(Par3HolesForSide(g.Course, sideOf(holeNumber)), g.ClosestToPin, holeNumber)
}

// LongestDecisionOpen reports whether an LD decision may be recorded on the
// hole.
func LongestDecisionOpen(g Game, holeNumber int) bool {
	ch, ok := g.Course.Hole(holeNumber)
	if !ok || ch.Par != 5 {
		return false
	}
	return !sideClosedBefore(Par5HolesForSide(g.Course, sideOf(holeNumber)), g.LongestDrive, holeNumber)
}

func sideOf(holeNumber int) Side {
	if SideBack.Contains(holeNumber) {
		return SideBack
	}
	return SideFront
}

// sideClosedBefore reports whether an earlier candidate already carries the
// side's award, which makes every later candidate ineligible for a decision.
func sideClosedBefore(candidates []int, decisions WinnerMap, holeNumber int) bool {
	for _, hole := range candidates {
		if hole >= holeNumber {
			return false
		}
		if decisions[hole] != nil {
			return true
		}
	}
	return false
}

func containsHole(holes []int, holeNumber int) bool {
	for _, h := range holes {
		if h == holeNumber {
			return true
		}
	}
	return false
}
