package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/musicmaps/musicmaps-backend/database"
	"github.com/musicmaps/musicmaps-backend/models"
	"github.com/musicmaps/musicmaps-backend/repository"
)

// ithaca is an origin within bounding-box range of every seeded venue
// at a 50 mile radius.
var ithaca = models.Location{Latitude: 42.44, Longitude: -76.50}

func newSeededStore(t *testing.T) *repository.CatalogStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.InitGormDB(dsn)
	if err != nil {
		t.Fatalf("InitGormDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := repository.NewCatalogStore(db)
	if err := store.Initialize(true); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return store
}

func resultNames(results []MatchedEvent) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	return names
}

func TestSearchFindsShowByQueryToken(t *testing.T) {
	engine := NewEngine(newSeededStore(t))

	results, err := engine.Search("Grassroots", 50, ithaca)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	names := resultNames(results)
	if len(names) != 2 {
		t.Fatalf("got %d results %v, want 2", len(names), names)
	}
	// catalog enumeration order, never re-ranked
	if names[0] != "Grassroots 2016" || names[1] != "Grassroots 2015" {
		t.Errorf("results = %v, want [Grassroots 2016 Grassroots 2015]", names)
	}

	if results[0].VenueName != "Hangar Theatre" {
		t.Errorf("venue name = %q, want Hangar Theatre", results[0].VenueName)
	}
	if results[0].Latitude != 42.4553429 || results[0].Longitude != -76.51731889999999 {
		t.Errorf("venue coordinates = (%v, %v), want Hangar Theatre's", results[0].Latitude, results[0].Longitude)
	}
}

func TestSearchNoMatchReturnsEmpty(t *testing.T) {
	engine := NewEngine(newSeededStore(t))

	results, err := engine.Search("Zzzznotfound", 50, ithaca)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %v, want no results", resultNames(results))
	}
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	engine := NewEngine(newSeededStore(t))

	for _, radius := range []float64{0, 50, 10000} {
		results, err := engine.Search("", radius, ithaca)
		if err != nil {
			t.Fatalf("Search(radius=%v): %v", radius, err)
		}
		if len(results) != 0 {
			t.Errorf("empty query at radius %v returned %v, want none", radius, resultNames(results))
		}
	}
}

func TestSearchMatchesShowNameTokenInQuery(t *testing.T) {
	engine := NewEngine(newSeededStore(t))

	// reverse direction of the rule: a show-name token occurring
	// inside the query text
	results, err := engine.Search("every Jimkata set ever", 50, ithaca)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	names := resultNames(results)
	if len(names) != 1 || names[0] != "Jimkata" {
		t.Errorf("results = %v, want [Jimkata]", names)
	}
}

func TestSearchRadiusExcludesDistantVenue(t *testing.T) {
	store := newSeededStore(t)

	// a matching show far outside the 50 mile box
	venueID, err := store.InsertVenue("Webster Hall", "", "", "125 E 11th St", "New York", "NY", "10003", 40.7317, -73.9891)
	if err != nil {
		t.Fatalf("InsertVenue: %v", err)
	}
	if _, err := store.InsertShow("Grassroots NYC", venueID, "", "", nil, "", ""); err != nil {
		t.Fatalf("InsertShow: %v", err)
	}

	engine := NewEngine(store)
	results, err := engine.Search("Grassroots", 50, ithaca)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, name := range resultNames(results) {
		if name == "Grassroots NYC" {
			t.Error("distant venue's show included at 50 mile radius")
		}
	}

	// a big enough radius brings it back
	results, err = engine.Search("Grassroots", 500, ithaca)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	var found bool
	for _, name := range resultNames(results) {
		if name == "Grassroots NYC" {
			found = true
		}
	}
	if !found {
		t.Error("distant venue's show missing at 500 mile radius")
	}
}

func TestSearchBoundingBoxIsInclusive(t *testing.T) {
	store := newSeededStore(t)

	origin := models.Location{Latitude: 42.0, Longitude: -76.0}
	radius := 10.0
	delta := MilesToDegrees(radius)

	venueID, err := store.InsertVenue("Edge Case Hall", "", "", "", "", "NY", "", origin.Latitude+delta, origin.Longitude)
	if err != nil {
		t.Fatalf("InsertVenue: %v", err)
	}
	if _, err := store.InsertShow("Edgefest", venueID, "", "", nil, "", ""); err != nil {
		t.Fatalf("InsertShow: %v", err)
	}

	engine := NewEngine(store)
	results, err := engine.Search("Edgefest", radius, origin)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	names := resultNames(results)
	if len(names) != 1 || names[0] != "Edgefest" {
		t.Errorf("venue exactly on the bounding box excluded: results = %v", names)
	}
}

func TestSearchSkipsShowWithUnresolvableVenue(t *testing.T) {
	store := newSeededStore(t)

	// a dangling venue reference can only appear through data
	// corruption, so write the row directly
	orphan := models.Show{ID: 999, Name: "Orphan Grassroots", VenueID: 4242}
	if err := store.DB.Create(&orphan).Error; err != nil {
		t.Fatalf("creating orphan show: %v", err)
	}

	engine := NewEngine(store)
	results, err := engine.Search("Orphan Grassroots", 50, ithaca)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	for _, name := range resultNames(results) {
		if name == "Orphan Grassroots" {
			t.Error("show with unresolvable venue included in results")
		}
	}
}

func TestSearchUnresolvedOriginMatchesNothing(t *testing.T) {
	engine := NewEngine(newSeededStore(t))

	results, err := engine.Search("Grassroots", 50, models.UnresolvedLocation())
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("sentinel origin returned %v, want none", resultNames(results))
	}
}

func TestNameMatches(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		showName string
		want     bool
	}{
		{"query token in show name", "Grassroots", "Grassroots 2016", true},
		{"show token in query", "all Jimkata shows", "Jimkata", true},
		{"partial token substring", "Grass", "Grassroots 2016", true},
		{"no overlap", "Zzzznotfound", "Grassroots 2016", false},
		{"empty query", "", "Grassroots 2016", false},
		{"whitespace-only query", "   ", "Grassroots 2016", false},
		{"case sensitive", "grassroots", "Grassroots 2016", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nameMatches(tt.query, tt.showName); got != tt.want {
				t.Errorf("nameMatches(%q, %q) = %v, want %v", tt.query, tt.showName, got, tt.want)
			}
		})
	}
}
