package repos_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/mehuljariwala/admin-dashboard/internal/repos"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return db
}

func TestCategoriesDisplayOrderNullLast(t *testing.T) {
	db := memdb(t)
	r := repos.NewColorRepo(db)

	// Scramble the seeded order values; NULL must always sort last.
	if _, err := db.Exec(`UPDATE color_categories SET display_order=2 WHERE id='cat-5tar'`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`UPDATE color_categories SET display_order=1 WHERE id='cat-3tar'`); err != nil {
		t.Fatal(err)
	}

	cats, err := r.Categories()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cat-3tar", "cat-5tar", "cat-yarn", "cat-multy"}
	if len(cats) != len(want) {
		t.Fatalf("want %d categories, got %d", len(want), len(cats))
	}
	for i, id := range want {
		if cats[i].ID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, cats[i].ID)
		}
	}
}

func TestSubcategoriesDisplayOrderNullLast(t *testing.T) {
	db := memdb(t)
	r := repos.NewColorRepo(db)

	subs, err := r.Subcategories()
	if err != nil {
		t.Fatal(err)
	}
	var fiveTar []string
	for _, s := range subs {
		if s.CategoryID == "cat-5tar" {
			fiveTar = append(fiveTar, s.ID)
		}
	}
	want := []string{"sub-5tar-cetionic", "sub-5tar-litchy", "sub-5tar-polyester", "sub-5tar-multy"}
	if len(fiveTar) != len(want) {
		t.Fatalf("want %d subcategories, got %d", len(want), len(fiveTar))
	}
	for i, id := range want {
		if fiveTar[i] != id {
			t.Fatalf("position %d: want %s, got %s", i, id, fiveTar[i])
		}
	}
}

func TestColorListUnorderedSortLast(t *testing.T) {
	db := memdb(t)
	r := repos.NewColorRepo(db)

	// Colors without an order value fall to the end, keeping insertion
	// order between themselves.
	if _, err := db.Exec(`UPDATE colors SET display_order=NULL WHERE id IN ('cl-red','cl-rani')`); err != nil {
		t.Fatal(err)
	}

	colors, err := r.List(true)
	if err != nil {
		t.Fatal(err)
	}
	var cetionic []string
	for _, c := range colors {
		if c.SubcategoryID == "sub-5tar-cetionic" {
			cetionic = append(cetionic, c.ID)
		}
	}
	want := []string{"cl-rblue", "cl-green", "cl-orange", "cl-jambli", "cl-red", "cl-rani"}
	for i, id := range want {
		if cetionic[i] != id {
			t.Fatalf("position %d: want %s, got %s (full: %v)", i, id, cetionic[i], cetionic)
		}
	}
}

func TestListFiltersDisabledColors(t *testing.T) {
	db := memdb(t)
	r := repos.NewColorRepo(db)

	if err := func() error {
		c, err := r.Get("cl-gray")
		if err != nil {
			return err
		}
		c.Status = "Disable"
		return r.Update(c)
	}(); err != nil {
		t.Fatal(err)
	}

	enabled, err := r.List(true)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range enabled {
		if c.ID == "cl-gray" {
			t.Fatal("disabled color leaked into enabled list")
		}
	}
	all, err := r.List(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(enabled)+1 {
		t.Fatalf("unfiltered list should include the disabled color: %d vs %d", len(all), len(enabled))
	}
}

func TestPartySearchMatchesNameAndAddress(t *testing.T) {
	db := memdb(t)
	r := repos.NewPartyRepo(db)

	byName, err := r.List("", "gurudev")
	if err != nil {
		t.Fatal(err)
	}
	if len(byName) != 1 || byName[0].ID != "pt-gurudev" {
		t.Fatalf("name search failed: %+v", byName)
	}

	byAddr, err := r.List("", "jivaseri")
	if err != nil {
		t.Fatal(err)
	}
	if len(byAddr) != 1 || byAddr[0].ID != "pt-devansh" {
		t.Fatalf("address search failed: %+v", byAddr)
	}

	byRoute, err := r.List("rt-sonal", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(byRoute) != 2 {
		t.Fatalf("route filter want 2 parties, got %d", len(byRoute))
	}

	none, err := r.List("", "zzz-no-such")
	if err != nil {
		t.Fatal(err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("empty result should be an empty slice, got %#v", none)
	}
}
