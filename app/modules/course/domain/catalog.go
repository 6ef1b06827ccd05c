package coursedomain

import (
	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
)

// BuiltinCourses are the stock layouts shipped with the app. They are
// returned by value so callers can mutate copies freely.
func BuiltinCourses() []gamedomain.Course {
	return []gamedomain.Course{
		pebbleBeach(),
		augustaNational(),
		stAndrewsOld(),
	}
}

// BuiltinCourse looks up a stock layout by ID.
func BuiltinCourse(id string) (gamedomain.Course, bool) {
	for _, c := range BuiltinCourses() {
		if c.ID == id {
			return c, true
		}
	}
	return gamedomain.Course{}, false
}

func hole(number, par, handicap, distance int, description string) gamedomain.CourseHole {
	return gamedomain.CourseHole{
		HoleNumber:  number,
		Par:         par,
		Handicap:    handicap,
		Distance:    distance,
		Description: description,
	}
}

func pebbleBeach() gamedomain.Course {
	return gamedomain.Course{
		ID:            "pebble-beach",
		Name:          "Pebble Beach Golf Links",
		Location:      "Pebble Beach, CA",
		TotalPar:      72,
		TotalDistance: 7075,
		Holes: []gamedomain.CourseHole{
			hole(1, 4, 9, 380, "Opening hole with ocean views"),
			hole(2, 5, 13, 516, "Reachable par 5"),
			hole(3, 4, 11, 404, "Dogleg left"),
			hole(4, 4, 7, 331, "Short par 4"),
			hole(5, 3, 17, 195, "Over the ocean"),
			hole(6, 5, 15, 523, "Long par 5"),
			hole(7, 3, 3, 109, "Famous short par 3"),
			hole(8, 4, 1, 428, "Iconic cliff-top hole"),
			hole(9, 4, 5, 462, "Along the ocean"),
			hole(10, 4, 8, 495, "Back nine starts"),
			hole(11, 4, 12, 390, "Dogleg right"),
			hole(12, 3, 18, 202, "Over the ocean"),
			hole(13, 4, 14, 445, "Along the coast"),
			hole(14, 5, 16, 580, "Long par 5"),
			hole(15, 4, 6, 397, "Dogleg left"),
			hole(16, 4, 4, 403, "Uphill approach"),
			hole(17, 3, 2, 208, "Famous island green"),
			hole(18, 5, 10, 543, "Iconic finishing hole"),
		},
	}
}

func augustaNational() gamedomain.Course {
	return gamedomain.Course{
		ID:            "augusta-national",
		Name:          "Augusta National Golf Club",
		Location:      "Augusta, GA",
		TotalPar:      72,
		TotalDistance: 7475,
		Holes: []gamedomain.CourseHole{
			hole(1, 4, 7, 445, "Tea Olive"),
			hole(2, 5, 15, 575, "Pink Dogwood"),
			hole(3, 4, 11, 350, "Flowering Peach"),
			hole(4, 3, 17, 240, "Flowering Crab Apple"),
			hole(5, 4, 3, 495, "Magnolia"),
			hole(6, 3, 13, 180, "Juniper"),
			hole(7, 4, 1, 450, "Pampas"),
			hole(8, 5, 9, 570, "Yellow Jasmine"),
			hole(9, 4, 5, 460, "Carolina Cherry"),
			hole(10, 4, 2, 495, "Camellia"),
			hole(11, 4, 4, 505, "White Dogwood"),
			hole(12, 3, 16, 155, "Golden Bell"),
			hole(13, 5, 14, 510, "Azalea"),
			hole(14, 4, 8, 440, "Chinese Fir"),
			hole(15, 5, 12, 550, "Firethorn"),
			hole(16, 3, 18, 170, "Redbud"),
			hole(17, 4, 6, 440, "Nandina"),
			hole(18, 4, 10, 465, "Holly"),
		},
	}
}

func stAndrewsOld() gamedomain.Course {
	return gamedomain.Course{
		ID:            "st-andrews-old",
		Name:          "St Andrews Old Course",
		Location:      "St Andrews, Scotland",
		TotalPar:      72,
		TotalDistance: 7305,
		Holes: []gamedomain.CourseHole{
			hole(1, 4, 11, 376, "Burn"),
			hole(2, 4, 5, 453, "Dyke"),
			hole(3, 4, 15, 397, "Cartgate (Out)"),
			hole(4, 4, 7, 480, "Ginger Beer"),
			hole(5, 5, 13, 568, "Hole O'Cross (Out)"),
			hole(6, 4, 3, 412, "Heathery (Out)"),
			hole(7, 4, 9, 371, "High (Out)"),
			hole(8, 3, 17, 175, "Short"),
			hole(9, 4, 1, 352, "End"),
			hole(10, 4, 8, 386, "Bobby Jones"),
			hole(11, 3, 16, 174, "High (In)"),
			hole(12, 4, 4, 348, "Heathery (In)"),
			hole(13, 4, 12, 465, "Hole O'Cross (In)"),
			hole(14, 5, 6, 618, "Long"),
			hole(15, 4, 2, 455, "Cartgate (In)"),
			hole(16, 4, 10, 423, "Corner of the Dyke"),
			hole(17, 4, 14, 495, "Road"),
			hole(18, 4, 18, 357, "Tom Morris"),
		},
	}
}
