package gamedomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAwardableClosestHole(t *testing.T) {
	course := testCourse()

	tests := []struct {
		name     string
		closest  WinnerMap
		side     Side
		want     int
		wantOpen bool
	}{
		{
			name:     "no decisions yet opens the first par-3",
			closest:  WinnerMap{},
			side:     SideFront,
			want:     3,
			wantOpen: true,
		},
		{
			name:     "no-winner decision passes the award to the next par-3",
			closest:  WinnerMap{3: nil},
			side:     SideFront,
			want:     5,
			wantOpen: true,
		},
		{
			name:     "all candidates declined leaves nothing awardable",
			closest:  WinnerMap{3: nil, 5: nil, 7: nil},
			side:     SideFront,
			wantOpen: false,
		},
		{
			name:     "a recorded winner closes the side",
			closest:  WinnerMap{3: winner("p1")},
			side:     SideFront,
			wantOpen: false,
		},
		{
			name:     "front decisions do not affect the back",
			closest:  WinnerMap{3: winner("p1")},
			side:     SideBack,
			want:     11,
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, open := AwardableClosestHole(course, tt.closest, tt.side)
			if open != tt.wantOpen {
				t.Fatalf("open = %v, want %v", open, tt.wantOpen)
			}
			if open && got != tt.want {
				t.Fatalf("hole = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAwardableLongestHole(t *testing.T) {
	course := testCourse()

	if hole, open := AwardableLongestHole(course, WinnerMap{}, SideFront); !open || hole != 2 {
		t.Fatalf("expected hole 2 open, got %d open=%v", hole, open)
	}
	if hole, open := AwardableLongestHole(course, WinnerMap{2: nil}, SideFront); !open || hole != 6 {
		t.Fatalf("expected hole 6 open, got %d open=%v", hole, open)
	}
	if _, open := AwardableLongestHole(course, WinnerMap{2: winner("p1")}, SideFront); open {
		t.Fatal("expected side closed after a winner")
	}
	if hole, open := AwardableLongestHole(course, WinnerMap{}, SideBack); !open || hole != 13 {
		t.Fatalf("expected hole 13 open, got %d open=%v", hole, open)
	}
}

func TestGreenieHolesForSide(t *testing.T) {
	course := testCourse()

	tests := []struct {
		name    string
		closest WinnerMap
		side    Side
		want    []int
	}{
		{
			name:    "no winner means no greenies",
			closest: WinnerMap{},
			side:    SideFront,
			want:    nil,
		},
		{
			name:    "declined holes alone do not open greenies",
			closest: WinnerMap{3: nil, 5: nil},
			side:    SideFront,
			want:    nil,
		},
		{
			name:    "winner on the first par-3 opens the rest",
			closest: WinnerMap{3: winner("p1")},
			side:    SideFront,
			want:    []int{5, 7},
		},
		{
			name:    "winner after a declined hole opens only later par-3s",
			closest: WinnerMap{3: nil, 5: winner("p2")},
			side:    SideFront,
			want:    []int{7},
		},
		{
			name:    "winner on the last par-3 opens nothing",
			closest: WinnerMap{3: nil, 5: nil, 7: winner("p1")},
			side:    SideFront,
			want:    nil,
		},
		{
			name:    "back side derives independently",
			closest: WinnerMap{11: winner("p1")},
			side:    SideBack,
			want:    []int{14, 17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreenieHolesForSide(course, tt.closest, tt.side)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("greenie holes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFourHoles(t *testing.T) {
	course := testCourse()

	// Front: hardest is hole 4 (rank 1); hardest remaining par-4 is hole 1
	// (rank 5). Back: hardest is hole 10 (rank 2); hardest remaining par-4 is
	// hole 12 (rank 4).
	if diff := cmp.Diff([]int{1, 12}, FourHoles(course)); diff != "" {
		t.Fatalf("four holes mismatch (-want +got):\n%s", diff)
	}
}

func TestFourHoleForSideWithoutPar4s(t *testing.T) {
	course := Course{Holes: []CourseHole{
		{HoleNumber: 1, Par: 3, Handicap: 1},
		{HoleNumber: 2, Par: 5, Handicap: 2},
	}}
	if _, ok := FourHoleForSide(course, SideFront); ok {
		t.Fatal("expected no four hole on a side without eligible par-4s")
	}
}

func TestHardestHoleForSide(t *testing.T) {
	course := testCourse()

	front, ok := HardestHoleForSide(course, SideFront)
	if !ok || front.HoleNumber != 4 {
		t.Fatalf("front hardest = %d, want 4", front.HoleNumber)
	}
	back, ok := HardestHoleForSide(course, SideBack)
	if !ok || back.HoleNumber != 10 {
		t.Fatalf("back hardest = %d, want 10", back.HoleNumber)
	}
}

func TestHardestHoleForSideDuplicateRanks(t *testing.T) {
	// Duplicated handicap ranks are a course data error; the earlier hole
	// number wins so the bonus stays deterministic.
	course := Course{Holes: []CourseHole{
		{HoleNumber: 1, Par: 4, Handicap: 3},
		{HoleNumber: 2, Par: 4, Handicap: 3},
		{HoleNumber: 3, Par: 4, Handicap: 9},
	}}
	hardest, ok := HardestHoleForSide(course, SideFront)
	if !ok || hardest.HoleNumber != 1 {
		t.Fatalf("hardest = %d, want 1", hardest.HoleNumber)
	}
}

func TestNormalizePrunesGreeniesOutsideEligibleSet(t *testing.T) {
	g := testGame("p1", "p2")
	g.ClosestToPin[3] = winner("p1")
	g.Greenies[5] = map[PlayerID]bool{"p2": true}
	g.Greenies[7] = map[PlayerID]bool{"p1": true}

	// Retract the winner: the eligible set collapses to empty and both marks
	// must be discarded.
	delete(g.ClosestToPin, 3)
	got := Normalize(g)

	if len(got.Greenies) != 0 {
		t.Fatalf("expected all greenie marks pruned, got %v", got.Greenies)
	}
}

func TestNormalizeSandyCascade(t *testing.T) {
	g := testGame("p1", "p2")
	g.SandyHoles[5] = true
	g.Sandies[5] = map[PlayerID]bool{"p1": true, "p2": true}
	g.DoubleSandies[5] = map[PlayerID]bool{"p1": true}

	// Clearing the player's sandy must clear their double sandy too.
	delete(g.Sandies[5], "p1")
	got := Normalize(g)
	if got.DoubleSandies[5]["p1"] {
		t.Fatal("expected double sandy cleared with its sandy")
	}
	if !got.Sandies[5]["p2"] {
		t.Fatal("expected unrelated sandy to survive")
	}

	// Turning the hole toggle off drops everything for the hole.
	delete(g.SandyHoles, 5)
	got = Normalize(g)
	if len(got.Sandies) != 0 || len(got.DoubleSandies) != 0 {
		t.Fatalf("expected hole-level cascade, got sandies=%v doubles=%v", got.Sandies, got.DoubleSandies)
	}
}

func TestNormalizeDropsUnknownHoles(t *testing.T) {
	g := testGame("p1")
	g.ClosestToPin[42] = winner("p1")
	g.LongestDrive[1] = winner("p1") // hole 1 is a par-4, not an LD candidate
	g.Fivers[9] = map[PlayerID]bool{"p1": true}
	g.SandyHoles[99] = true

	got := Normalize(g)
	if len(got.ClosestToPin) != 0 || len(got.LongestDrive) != 0 {
		t.Fatalf("expected invalid adjudications dropped, got ctp=%v ld=%v", got.ClosestToPin, got.LongestDrive)
	}
	if len(got.Fivers) != 0 {
		t.Fatalf("expected fiver on a par-4 dropped, got %v", got.Fivers)
	}
	if len(got.SandyHoles) != 0 {
		t.Fatalf("expected unknown sandy hole dropped, got %v", got.SandyHoles)
	}
}
