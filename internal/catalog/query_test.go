package catalog

import (
	"reflect"
	"testing"
)

func testCourses() []Course {
	return Generate()
}

func ids(courses []Course) []int {
	out := make([]int, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func TestQueryIdentityUnderDefaults(t *testing.T) {
	courses := testCourses()
	got := Query(courses, DefaultCriteria())

	if len(got) != len(courses) {
		t.Fatalf("expected %d results, got %d", len(courses), len(got))
	}
	if !reflect.DeepEqual(ids(got), ids(courses)) {
		t.Errorf("default criteria changed order: got %v", ids(got))
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	courses := testCourses()
	before := make([]Course, len(courses))
	copy(before, courses)

	Query(courses, Criteria{Sort: SortPriceHigh})
	Query(courses, Criteria{Category: CategoryProgramming, Sort: SortRating})

	if !reflect.DeepEqual(courses, before) {
		t.Error("query mutated its input slice")
	}
}

func TestQueryCategoryFilter(t *testing.T) {
	courses := testCourses()
	got := Query(courses, Criteria{Category: CategoryUIUX})

	if len(got) == 0 {
		t.Fatal("expected at least one UI/UX course")
	}
	prevID := 0
	for _, c := range got {
		if c.Category != CategoryUIUX {
			t.Errorf("course %d has category %q", c.ID, c.Category)
		}
		if c.ID < prevID {
			t.Errorf("category filter broke input order: %d after %d", c.ID, prevID)
		}
		prevID = c.ID
	}

	// Every matching course must be present.
	want := 0
	for _, c := range courses {
		if c.Category == CategoryUIUX {
			want++
		}
	}
	if len(got) != want {
		t.Errorf("expected %d UI/UX courses, got %d", want, len(got))
	}
}

func TestQueryRatingSortIsStableDescending(t *testing.T) {
	courses := testCourses()
	got := Query(courses, Criteria{Sort: SortRating})

	if len(got) != len(courses) {
		t.Fatalf("rating sort dropped courses: %d != %d", len(got), len(courses))
	}
	for i := 0; i < len(got)-1; i++ {
		a, b := got[i], got[i+1]
		if a.Rating < b.Rating {
			t.Errorf("ratings out of order at %d: %.1f < %.1f", i, a.Rating, b.Rating)
		}
		// Stability: equal ratings keep generation order.
		if a.Rating == b.Rating && a.ID > b.ID {
			t.Errorf("tie broken out of input order: id %d before %d", a.ID, b.ID)
		}
	}
}

func TestQuerySortKeys(t *testing.T) {
	courses := testCourses()

	tests := []struct {
		name string
		key  SortKey
		ok   func(a, b Course) bool
	}{
		{"newest", SortNewest, func(a, b Course) bool { return a.ID >= b.ID }},
		{"students", SortStudents, func(a, b Course) bool { return a.StudentCount >= b.StudentCount }},
		{"price_low", SortPriceLow, func(a, b Course) bool { return a.Price <= b.Price }},
		{"price_high", SortPriceHigh, func(a, b Course) bool { return a.Price >= b.Price }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(courses, Criteria{Sort: tt.key})
			for i := 0; i < len(got)-1; i++ {
				if !tt.ok(got[i], got[i+1]) {
					t.Errorf("adjacent pair out of order at %d: ids %d, %d", i, got[i].ID, got[i+1].ID)
				}
			}
		})
	}
}

func TestQueryUnknownValuesFallBack(t *testing.T) {
	courses := testCourses()

	got := Query(courses, Criteria{Sort: SortKey("bogus")})
	if !reflect.DeepEqual(ids(got), ids(courses)) {
		t.Error("unknown sort key should preserve input order")
	}

	got = Query(courses, Criteria{Category: Category("Knitting")})
	if len(got) != len(courses) {
		t.Errorf("unknown category should match everything, got %d", len(got))
	}

	got = Query(courses, Criteria{Level: Level("Wizard")})
	if len(got) != len(courses) {
		t.Errorf("unknown level should match everything, got %d", len(got))
	}
}

func TestQueryPriceTiers(t *testing.T) {
	courses := testCourses()

	free := Query(courses, Criteria{Price: PriceFree})
	for _, c := range free {
		if c.Price != 0 {
			t.Errorf("course %d in free tier has price %d", c.ID, c.Price)
		}
	}

	paid := Query(courses, Criteria{Price: PricePaid})
	for _, c := range paid {
		if c.Price == 0 {
			t.Errorf("free course %d in paid tier", c.ID)
		}
	}

	if len(free)+len(paid) != len(courses) {
		t.Errorf("tiers should partition the catalog: %d + %d != %d",
			len(free), len(paid), len(courses))
	}
}

func TestQuerySearchIsCaseFolded(t *testing.T) {
	courses := testCourses()

	got := Query(courses, Criteria{Search: "PYTHON"})
	if len(got) == 0 {
		t.Fatal("expected matches for PYTHON")
	}
	for _, c := range got {
		if c.Title != "Python for Beginners" && c.Title != "Python for Beginners — Vol 1" {
			t.Errorf("unexpected match %q", c.Title)
		}
	}

	// Instructor and category text participate in the search too.
	if got = Query(courses, Criteria{Search: "sharma"}); len(got) == 0 {
		t.Error("expected instructor-name match")
	}
	if got = Query(courses, Criteria{Search: "business"}); len(got) == 0 {
		t.Error("expected category-name match")
	}
}

func TestQueryFiltersCombine(t *testing.T) {
	courses := testCourses()

	got := Query(courses, Criteria{Category: CategoryUIUX, BestsellerOnly: true})
	for _, c := range got {
		if c.Category != CategoryUIUX || !c.IsBestseller {
			t.Errorf("course %d escaped the AND of both filters", c.ID)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate()
	b := Generate()

	if len(a) != 16 {
		t.Fatalf("expected 16 seed courses, got %d", len(a))
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("generation is not deterministic")
	}

	seen := make(map[int]bool)
	for _, c := range a {
		if seen[c.ID] {
			t.Errorf("duplicate course id %d", c.ID)
		}
		seen[c.ID] = true
		if c.Rating < 0 || c.Rating > 5 {
			t.Errorf("course %d has rating %.1f outside 0-5", c.ID, c.Rating)
		}
		if c.Price < 0 {
			t.Errorf("course %d has negative price", c.ID)
		}
		if len(c.Curriculum) != 3 {
			t.Errorf("course %d has %d sections", c.ID, len(c.Curriculum))
		}
		for _, s := range c.Curriculum {
			if len(s.Lessons) != 4 {
				t.Errorf("course %d section %q has %d lessons", c.ID, s.Title, len(s.Lessons))
			}
		}
	}
}

func TestCatalogByID(t *testing.T) {
	cat := New(Generate())

	c, ok := cat.ByID(1)
	if !ok {
		t.Fatal("course 1 should exist")
	}
	if c.ID != 1 {
		t.Errorf("ByID(1) returned course %d", c.ID)
	}

	if _, ok := cat.ByID(999); ok {
		t.Error("course 999 should not exist")
	}
}
