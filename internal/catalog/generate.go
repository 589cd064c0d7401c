package catalog

import "fmt"

const seedCount = 16

var seedTitles = []string{
	"Mastering UI/UX Design",
	"Python for Beginners",
	"Algebra Made Easy",
	"Quantum Basics",
	"React from Zero",
	"Data Structures",
	"English Conversation",
	"Startup 101",
}

var seedInstructors = []string{"A. Sharma", "P. Verma", "Jordan Lee", "Neha Kapoor", "Rohit Jain"}

var seedPrices = []int{299, 399, 499, 699}

// Generate produces the deterministic seed catalog. The same call always
// yields the same 16 courses, so generated data can stand in for a backend.
func Generate() []Course {
	courses := make([]Course, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		title := seedTitles[i%len(seedTitles)]
		if i >= len(seedTitles) {
			title = fmt.Sprintf("%s — Vol %d", title, i/len(seedTitles))
		}

		price := 0
		if i%4 != 0 {
			price = seedPrices[i%4]
		}

		// One decimal of precision, capped at a 5-star scale.
		rating := float64(37+(i*13)%30) / 10
		if rating > 5.0 {
			rating = 5.0
		}

		courses = append(courses, Course{
			ID:           i + 1,
			Title:        title,
			Instructor:   seedInstructors[i%len(seedInstructors)],
			Description:  "Project-based learning with practical assignments and mentor feedback.",
			Rating:       rating,
			ReviewCount:  120 + (i*53)%4000,
			StudentCount: 100 + (i*317)%5000,
			Price:        price,
			Currency:     "₹",
			Level:        Levels[i%len(Levels)],
			Category:     Categories[(i%(len(Categories)-1))+1],
			Duration:     fmt.Sprintf("%d Weeks", 4+i%8),
			ThumbnailURL: fmt.Sprintf("https://picsum.photos/seed/course%d/800/500", i),
			IsBestseller: i%5 == 0,
			Language:     "Hindi, English",
			Curriculum:   generateCurriculum(i + 1),
		})
	}
	return courses
}

// generateCurriculum builds the fixed 3-section, 4-lesson curriculum shape.
func generateCurriculum(courseID int) []Section {
	sections := make([]Section, 0, 3)
	for s := 1; s <= 3; s++ {
		lessons := make([]Lesson, 0, 4)
		for l := 1; l <= 4; l++ {
			lessons = append(lessons, Lesson{
				ID:       fmt.Sprintf("%d-%d-%d", courseID, s, l),
				Title:    fmt.Sprintf("Lesson %d.%d: Topic %d", s, l, l),
				Duration: fmt.Sprintf("6:0%d", l),
				VideoURL: "https://www.w3schools.com/html/mov_bbb.mp4",
			})
		}
		sections = append(sections, Section{
			Title:   fmt.Sprintf("Section %d: Foundations", s),
			Lessons: lessons,
		})
	}
	return sections
}
