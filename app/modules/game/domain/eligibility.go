package gamedomain

import (
	"slices"
)

// Eligibility rules for the side games. Everything here is a total function
// of the course layout and the current mark maps; nothing is maintained
// incrementally. Recomputing from scratch on every mutation is what keeps
// retroactive edits (changing hole 3's CTP call after marking greenies on
// hole 7) consistent.

// holesForSide returns the hole numbers on a side matching the par filter,
// ascending. A par of 0 matches every hole.
func holesForSide(course Course, side Side, par int) []int {
	var holes []int
	for _, h := range course.Holes {
		if !side.Contains(h.HoleNumber) {
			continue
		}
		if par != 0 && h.Par != par {
			continue
		}
		holes = append(holes, h.HoleNumber)
	}
	slices.Sort(holes)
	return holes
}

// Par3HolesForSide lists the CTP candidate holes on a side.
func Par3HolesForSide(course Course, side Side) []int {
	return holesForSide(course, side, 3)
}

// Par5HolesForSide lists the LD candidate holes on a side.
func Par5HolesForSide(course Course, side Side) []int {
	return holesForSide(course, side, 5)
}

// awardableHole walks candidates in order and returns the hole currently open
// for adjudication: the first with no recorded decision. Explicit "no winner"
// decisions pass the award along; a recorded winner closes the side.
func awardableHole(candidates []int, decisions WinnerMap) (int, bool) {
	for _, hole := range candidates {
		winner, decided := decisions[hole]
		if !decided {
			return hole, true
		}
		if winner == nil {
			continue
		}
		return 0, false
	}
	return 0, false
}

// AwardableClosestHole returns the par-3 hole on a side currently open for a
// CTP call, if any.
func AwardableClosestHole(course Course, closest WinnerMap, side Side) (int, bool) {
	return awardableHole(Par3HolesForSide(course, side), closest)
}

// AwardableLongestHole returns the par-5 hole on a side currently open for an
// LD call, if any.
func AwardableLongestHole(course Course, longest WinnerMap, side Side) (int, bool) {
	return awardableHole(Par5HolesForSide(course, side), longest)
}

// awardedWinner returns the player holding the live award on a side. Pruning
// guarantees at most one non-nil winner is recorded per side.
func awardedWinner(candidates []int, decisions WinnerMap) (PlayerID, bool) {
	for _, hole := range candidates {
		if winner := decisions[hole]; winner != nil {
			return *winner, true
		}
	}
	return "", false
}

// GreenieHolesForSide derives the par-3 holes on a side eligible for greenie
// marks: everything numerically after the first par-3 carrying a CTP winner.
// No winner on the side means no greenies on the side.
func GreenieHolesForSide(course Course, closest WinnerMap, side Side) []int {
	par3 := Par3HolesForSide(course, side)

	awarded := -1
	for _, hole := range par3 {
		if winner := closest[hole]; winner != nil {
			awarded = hole
			break
		}
	}
	if awarded == -1 {
		return nil
	}

	var eligible []int
	for _, hole := range par3 {
		if hole > awarded {
			eligible = append(eligible, hole)
		}
	}
	return eligible
}

// GreenieHoles derives the full greenie-eligible set, front then back.
func GreenieHoles(course Course, closest WinnerMap) []int {
	return append(
		GreenieHolesForSide(course, closest, SideFront),
		GreenieHolesForSide(course, closest, SideBack)...,
	)
}

// FiverHoles lists the par-5 holes eligible for fiver marks.
func FiverHoles(course Course) []int {
	return append(
		Par5HolesForSide(course, SideFront),
		Par5HolesForSide(course, SideBack)...,
	)
}

// FourHoleForSide picks the single four-eligible hole on a side: the hardest
// par-4 after excluding the side's single hardest hole. Static in the course
// layout.
func FourHoleForSide(course Course, side Side) (int, bool) {
	sideHoles := make([]CourseHole, 0, 9)
	for _, h := range course.Holes {
		if side.Contains(h.HoleNumber) {
			sideHoles = append(sideHoles, h)
		}
	}
	if len(sideHoles) == 0 {
		return 0, false
	}

	hardest := hardestOf(sideHoles)

	best := CourseHole{}
	found := false
	for _, h := range sideHoles {
		if h.Par != 4 || h.HoleNumber == hardest.HoleNumber {
			continue
		}
		if !found || h.Handicap < best.Handicap ||
			(h.Handicap == best.Handicap && h.HoleNumber < best.HoleNumber) {
			best = h
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return best.HoleNumber, true
}

// FourHoles lists the four-eligible holes across both sides.
func FourHoles(course Course) []int {
	var holes []int
	for _, side := range Sides {
		if hole, ok := FourHoleForSide(course, side); ok {
			holes = append(holes, hole)
		}
	}
	return holes
}

// HardestHoleForSide returns the hole with the lowest handicap rank on a
// side. Duplicated ranks are a course data error; the first hole in
// hole-number order wins so the result stays deterministic.
func HardestHoleForSide(course Course, side Side) (CourseHole, bool) {
	sideHoles := make([]CourseHole, 0, 9)
	for _, h := range course.Holes {
		if side.Contains(h.HoleNumber) {
			sideHoles = append(sideHoles, h)
		}
	}
	if len(sideHoles) == 0 {
		return CourseHole{}, false
	}
	return hardestOf(sideHoles), true
}

func hardestOf(holes []CourseHole) CourseHole {
	best := holes[0]
	for _, h := range holes[1:] {
		if h.Handicap < best.Handicap ||
			(h.Handicap == best.Handicap && h.HoleNumber < best.HoleNumber) {
			best = h
		}
	}
	return best
}

// pruneLaterDecisions removes decisions recorded for candidates after
// awardedHole on the same side; those holes become retroactively ineligible
// once the award has moved earlier.
func pruneLaterDecisions(candidates []int, decisions WinnerMap, awardedHole int) {
	for _, hole := range candidates {
		if hole > awardedHole {
			delete(decisions, hole)
		}
	}
}

// filterMarksToHoles keeps only the mark-map entries whose hole is in the
// allowed set: the set-difference form of a cascading delete.
func filterMarksToHoles(marks MarkMap, allowed []int) {
	keep := make(map[int]bool, len(allowed))
	for _, hole := range allowed {
		keep[hole] = true
	}
	for hole := range marks {
		if !keep[hole] {
			delete(marks, hole)
		}
	}
}

// Normalize prunes every mark that the current adjudication state no longer
// supports and drops entries referencing holes outside the course layout.
// It is the one place cascade rules live; every mutation runs it before
// recomputing skins.
func Normalize(g Game) Game {
	out := g.Clone()

	courseHoles := holesForSide(out.Course, SideFront, 0)
	courseHoles = append(courseHoles, holesForSide(out.Course, SideBack, 0)...)
	keepCourse := make(map[int]bool, len(courseHoles))
	for _, hole := range courseHoles {
		keepCourse[hole] = true
	}

	for hole := range out.ClosestToPin {
		if ch, ok := out.Course.Hole(hole); !ok || ch.Par != 3 {
			delete(out.ClosestToPin, hole)
		}
	}
	for hole := range out.LongestDrive {
		if ch, ok := out.Course.Hole(hole); !ok || ch.Par != 5 {
			delete(out.LongestDrive, hole)
		}
	}

	filterMarksToHoles(out.Greenies, GreenieHoles(out.Course, out.ClosestToPin))
	filterMarksToHoles(out.Fivers, FiverHoles(out.Course))
	filterMarksToHoles(out.Fours, FourHoles(out.Course))

	for hole := range out.SandyHoles {
		if !keepCourse[hole] {
			delete(out.SandyHoles, hole)
		}
	}
	for hole := range out.LostBallHoles {
		if !keepCourse[hole] {
			delete(out.LostBallHoles, hole)
		}
	}

	// Sandy and lost-ball marks exist only where the hole-level toggle is on;
	// a double sandy exists only on top of that player's sandy.
	for hole := range out.Sandies {
		if !out.SandyHoles[hole] {
			delete(out.Sandies, hole)
		}
	}
	for hole := range out.DoubleSandies {
		if !out.SandyHoles[hole] {
			delete(out.DoubleSandies, hole)
			continue
		}
		for id := range out.DoubleSandies[hole] {
			if !out.Sandies[hole][id] {
				delete(out.DoubleSandies[hole], id)
			}
		}
	}
	for hole := range out.LostBalls {
		if !out.LostBallHoles[hole] {
			delete(out.LostBalls, hole)
		}
	}

	return out
}
