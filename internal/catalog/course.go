package catalog

// Category is one of the fixed course categories.
type Category string

const (
	CategoryAll         Category = "All"
	CategoryUIUX        Category = "UI/UX"
	CategoryProgramming Category = "Programming"
	CategoryMaths       Category = "Maths"
	CategoryScience     Category = "Science"
	CategoryLanguages   Category = "Languages"
	CategoryBusiness    Category = "Business"
)

// Categories lists every category in display order, "All" first.
var Categories = []Category{
	CategoryAll,
	CategoryUIUX,
	CategoryProgramming,
	CategoryMaths,
	CategoryScience,
	CategoryLanguages,
	CategoryBusiness,
}

// Level is a course difficulty level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
	LevelAll          Level = "All Levels"
)

// Levels lists every level in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAll}

// Lesson is a single video lesson inside a section.
type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	VideoURL string `json:"video_url"`
}

// Section groups an ordered run of lessons under a heading.
type Section struct {
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Course is one catalog entry. Courses are generated once at startup and
// never mutated; save/enroll state lives in the session overlay keyed by ID.
type Course struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Instructor   string    `json:"instructor"`
	Description  string    `json:"description"`
	Rating       float64   `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	StudentCount int       `json:"student_count"`
	Price        int       `json:"price"`
	Currency     string    `json:"currency"`
	Level        Level     `json:"level"`
	Category     Category  `json:"category"`
	Duration     string    `json:"duration"`
	ThumbnailURL string    `json:"thumbnail_url"`
	IsBestseller bool      `json:"is_bestseller"`
	Language     string    `json:"language"`
	Curriculum   []Section `json:"curriculum"`
}

// Free reports whether the course costs nothing.
func (c Course) Free() bool {
	return c.Price == 0
}

// Catalog holds the immutable course collection and answers lookups.
type Catalog struct {
	courses []Course
	byID    map[int]int // id → index into courses
}

// New builds a Catalog over the given courses.
func New(courses []Course) *Catalog {
	byID := make(map[int]int, len(courses))
	for i, c := range courses {
		byID[c.ID] = i
	}
	return &Catalog{courses: courses, byID: byID}
}

// All returns the full course collection in generation order. Callers must
// treat the returned slice as read-only.
func (c *Catalog) All() []Course {
	return c.courses
}

// ByID looks up a course by its id.
func (c *Catalog) ByID(id int) (Course, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Course{}, false
	}
	return c.courses[i], true
}

// Len returns the number of courses in the catalog.
func (c *Catalog) Len() int {
	return len(c.courses)
}
