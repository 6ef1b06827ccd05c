package gamedomain

// PlayerID identifies a player for the lifetime of a game.
type PlayerID string

// Side is one administrative half of the course. CTP, LD, greenies, fours,
// and the hardest-hole bonus are all run per side.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// Sides lists both sides in play order.
var Sides = []Side{SideFront, SideBack}

// HoleRange returns the inclusive hole-number bounds of a side.
func (s Side) HoleRange() (int, int) {
	if s == SideBack {
		return 10, 18
	}
	return 1, 9
}

// Contains reports whether holeNumber falls on this side.
func (s Side) Contains(holeNumber int) bool {
	start, end := s.HoleRange()
	return holeNumber >= start && holeNumber <= end
}

// CourseHole is one hole of the course layout. Handicap is the difficulty
// rank, 1 = hardest; ranks are assumed to be a permutation of 1..18.
type CourseHole struct {
	HoleNumber  int    `json:"holeNumber"`
	Par         int    `json:"par"`
	Handicap    int    `json:"handicap"`
	Distance    int    `json:"distance,omitempty"`
	Description string `json:"description,omitempty"`
}

// Course is the immutable layout a game is played against.
type Course struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Location      string       `json:"location,omitempty"`
	Holes         []CourseHole `json:"holes"`
	TotalPar      int          `json:"totalPar"`
	TotalDistance int          `json:"totalDistance,omitempty"`
}

// Hole returns the course hole with the given number, or false when the
// number is outside the layout.
func (c Course) Hole(holeNumber int) (CourseHole, bool) {
	for _, h := range c.Holes {
		if h.HoleNumber == holeNumber {
			return h, true
		}
	}
	return CourseHole{}, false
}

// HoleScore is one player's result on one hole. Strokes == 0 means the hole
// has not been played yet. Par and HoleHandicap are copied from the course at
// game creation.
type HoleScore struct {
	HoleNumber   int `json:"holeNumber"`
	Strokes      int `json:"strokes"`
	Putts        int `json:"putts"`
	Par          int `json:"par"`
	HoleHandicap int `json:"holeHandicap"`
}

// PlayerSetup is the input for creating a player at round start.
type PlayerSetup struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Color string   `json:"color,omitempty"`
}

// Player is one competitor. TotalScore, TotalPutts, and Skins are derived and
// recomputed on every mutation.
type Player struct {
	ID         PlayerID    `json:"id"`
	Name       string      `json:"name"`
	Color      string      `json:"color,omitempty"`
	TotalScore int         `json:"totalScore"`
	TotalPutts int         `json:"totalPutts"`
	Skins      int         `json:"skins"`
	Holes      []HoleScore `json:"holes"`
}

// WinnerMap records per-hole adjudications for CTP and LD. An absent key
// means "not yet adjudicated"; a nil value means "adjudicated, no qualifying
// winner". Go marshals int keys as strings, matching the persisted shape.
type WinnerMap map[int]*PlayerID

// MarkMap records per-hole, per-player opt-in marks.
type MarkMap map[int]map[PlayerID]bool

// HoleFlagMap records hole-level toggles gating per-player marks.
type HoleFlagMap map[int]bool

// SideGames aggregates every side-wager mark map of a game.
type SideGames struct {
	ClosestToPin  WinnerMap   `json:"closestToPin"`
	LongestDrive  WinnerMap   `json:"longestDrive"`
	Greenies      MarkMap     `json:"greenies"`
	Fivers        MarkMap     `json:"fivers"`
	Fours         MarkMap     `json:"fours"`
	SandyHoles    HoleFlagMap `json:"sandyHoles"`
	Sandies       MarkMap     `json:"sandies"`
	DoubleSandies MarkMap     `json:"doubleSandies"`
	LostBallHoles HoleFlagMap `json:"lostBallHoles"`
	LostBalls     MarkMap     `json:"lostBalls"`
}

// Game is the unit of recomputation: every mutation replaces it wholesale
// with a new, fully consistent value.
type Game struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	EventName   string   `json:"eventName,omitempty"`
	Course      Course   `json:"course"`
	Players     []Player `json:"players"`
	CurrentHole int      `json:"currentHole"`
	TotalHoles  int      `json:"totalHoles"`
	SideGames
}

// NewGame creates a game at round start: all mark maps empty, all strokes
// zero, pars and handicaps copied from the course.
func NewGame(id, date string, course Course, setups []PlayerSetup) Game {
	players := make([]Player, 0, len(setups))
	for _, setup := range setups {
		players = append(players, Player{
			ID:    setup.ID,
			Name:  setup.Name,
			Color: setup.Color,
			Holes: emptyHoles(course),
		})
	}

	return Game{
		ID:          id,
		Date:        date,
		Course:      course,
		Players:     players,
		CurrentHole: 1,
		TotalHoles:  len(course.Holes),
		SideGames:   emptySideGames(),
	}
}

func emptySideGames() SideGames {
	return SideGames{
		ClosestToPin:  WinnerMap{},
		LongestDrive:  WinnerMap{},
		Greenies:      MarkMap{},
		Fivers:        MarkMap{},
		Fours:         MarkMap{},
		SandyHoles:    HoleFlagMap{},
		Sandies:       MarkMap{},
		DoubleSandies: MarkMap{},
		LostBallHoles: HoleFlagMap{},
		LostBalls:     MarkMap{},
	}
}

func emptyHoles(course Course) []HoleScore {
	holes := make([]HoleScore, 0, len(course.Holes))
	for _, h := range course.Holes {
		holes = append(holes, HoleScore{
			HoleNumber:   h.HoleNumber,
			Par:          h.Par,
			HoleHandicap: h.Handicap,
		})
	}
	return holes
}

// Player returns the player with the given ID, or false when unknown.
func (g Game) Player(id PlayerID) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// Clone returns a deep copy so mutations never alias the previous snapshot.
func (g Game) Clone() Game {
	out := g
	out.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		cp := p
		cp.Holes = append([]HoleScore(nil), p.Holes...)
		out.Players[i] = cp
	}
	out.Course.Holes = append([]CourseHole(nil), g.Course.Holes...)
	out.ClosestToPin = cloneWinnerMap(g.ClosestToPin)
	out.LongestDrive = cloneWinnerMap(g.LongestDrive)
	out.Greenies = cloneMarkMap(g.Greenies)
	out.Fivers = cloneMarkMap(g.Fivers)
	out.Fours = cloneMarkMap(g.Fours)
	out.Sandies = cloneMarkMap(g.Sandies)
	out.DoubleSandies = cloneMarkMap(g.DoubleSandies)
	out.LostBalls = cloneMarkMap(g.LostBalls)
	out.SandyHoles = cloneFlagMap(g.SandyHoles)
	out.LostBallHoles = cloneFlagMap(g.LostBallHoles)
	return out
}

func cloneWinnerMap(m WinnerMap) WinnerMap {
	out := make(WinnerMap, len(m))
	for hole, winner := range m {
		if winner == nil {
			out[hole] = nil
			continue
		}
		id := *winner
		out[hole] = &id
	}
	return out
}

func cloneMarkMap(m MarkMap) MarkMap {
	out := make(MarkMap, len(m))
	for hole, marks := range m {
		cp := make(map[PlayerID]bool, len(marks))
		for id, v := range marks {
			cp[id] = v
		}
		out[hole] = cp
	}
	return out
}

func cloneFlagMap(m HoleFlagMap) HoleFlagMap {
	out := make(HoleFlagMap, len(m))
	for hole, v := range m {
		out[hole] = v
	}
	return out
}
