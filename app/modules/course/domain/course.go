package coursedomain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// Course layouts are shared with the game module; this package owns
// validation and identity for user-authored courses.

const holesPerCourse = 18

// Validate checks a course layout and returns human-readable warnings.
// Warnings do not block use: a course with duplicate handicap ranks still
// plays, with ties broken by hole number.
func Validate(course gamedomain.Course) []string {
	var warnings []string

	if course.Name == "" {
		warnings = append(warnings, "course has no name")
	}
	if len(course.Holes) != holesPerCourse {
		warnings = append(warnings, fmt.Sprintf("course has %d holes, expected %d", len(course.Holes), holesPerCourse))
	}

	seenNumbers := map[int]bool{}
	seenRanks := map[int][]int{}
	for _, hole := range course.Holes {
		if hole.HoleNumber < 1 || hole.HoleNumber > holesPerCourse {
			warnings = append(warnings, fmt.Sprintf("hole number %d is out of range", hole.HoleNumber))
		}
		if seenNumbers[hole.HoleNumber] {
			warnings = append(warnings, fmt.Sprintf("hole number %d appears more than once", hole.HoleNumber))
		}
		seenNumbers[hole.HoleNumber] = true

		if hole.Par < 3 || hole.Par > 5 {
			warnings = append(warnings, fmt.Sprintf("hole %d has par %d, expected 3-5", hole.HoleNumber, hole.Par))
		}
		if hole.Handicap < 1 || hole.Handicap > holesPerCourse {
			warnings = append(warnings, fmt.Sprintf("hole %d has handicap rank %d, expected 1-%d", hole.HoleNumber, hole.Handicap, holesPerCourse))
		}
		seenRanks[hole.Handicap] = append(seenRanks[hole.Handicap], hole.HoleNumber)
	}

	for rank, holes := range seenRanks {
		if len(holes) > 1 {
			warnings = append(warnings, fmt.Sprintf("handicap rank %d is shared by %d holes; ties break by hole number", rank, len(holes)))
		}
	}

	return warnings
}

// GenerateCourseID derives a stable, URL-safe ID from a course name plus a
// timestamp suffix to keep repeated names unique.
func GenerateCourseID(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(' ')
		}
	}
	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > 30 {
		slug = slug[:30]
	}
	if slug == "" {
		slug = "course"
	}
	return slug + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
}

// DefaultCustomCourse is the blank 18-hole template offered when a player
// wants to enter a layout by hand.
func DefaultCustomCourse() gamedomain.Course {
	holes := make([]gamedomain.CourseHole, 0, holesPerCourse)
	for n := 1; n <= holesPerCourse; n++ {
		holes = append(holes, gamedomain.CourseHole{
			HoleNumber:  n,
			Par:         4,
			Handicap:    n,
			Distance:    400,
			Description: fmt.Sprintf("Hole %d", n),
		})
	}
	return gamedomain.Course{
		ID:            "custom-course",
		Name:          "Custom Course",
		Location:      "Your Location",
		TotalPar:      72,
		TotalDistance: 7200,
		Holes:         holes,
	}
}

// Matches reports whether the course name or location contains the search
// term, case-insensitive.
func Matches(course gamedomain.Course, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(course.Name), term) ||
		strings.Contains(strings.ToLower(course.Location), term)
}
