package importer

import (
	"strings"
	"testing"

	"voyago/roadmap"
)

func TestParseActivityRow_FieldMapping(t *testing.T) {
	t.Parallel()

	row := []string{"01/01/2025", "09:00", "🗼", "Visite", "Tour Eiffel", "réserver", "✅", "✅ terminé"}

	activity, ok := parseActivityRow(row)
	if !ok {
		t.Fatalf("expected a record")
	}

	if activity.Date != "01/01/2025" {
		t.Fatalf("unexpected date: %q", activity.Date)
	}
	if activity.Time != "09:00" {
		t.Fatalf("unexpected time: %q", activity.Time)
	}
	if activity.Label != "🗼 Visite" {
		t.Fatalf("unexpected label: %q", activity.Label)
	}
	if activity.Place != "Tour Eiffel" || activity.Address != "Tour Eiffel" {
		t.Fatalf("address must default to place: place=%q address=%q", activity.Place, activity.Address)
	}
	if activity.Status != roadmap.StatusDone {
		t.Fatalf("unexpected status: %q", activity.Status)
	}
	if activity.Price != "Inclus" {
		t.Fatalf("check-mark pass must set price Inclus, got %q", activity.Price)
	}
	if activity.Notes != "réserver" {
		t.Fatalf("unexpected notes: %q", activity.Notes)
	}
	if !strings.Contains(activity.MapsURL, "query=Tour%20Eiffel") {
		t.Fatalf("maps link not derived from place: %q", activity.MapsURL)
	}
	if !strings.HasPrefix(activity.ID, "activity-") {
		t.Fatalf("unexpected id prefix: %q", activity.ID)
	}
}

func TestParseActivityRow_EmptyEmojiAndShortRow(t *testing.T) {
	t.Parallel()

	activity, ok := parseActivityRow([]string{"02/01/2025", "", "", "Balade"})
	if !ok {
		t.Fatalf("expected a record")
	}
	if activity.Label != "Balade" {
		t.Fatalf("label must trim the missing emoji prefix, got %q", activity.Label)
	}
	if activity.Status != roadmap.StatusTodo {
		t.Fatalf("missing status column must default to %q, got %q", roadmap.StatusTodo, activity.Status)
	}
	if activity.Price != "" {
		t.Fatalf("missing pass column must leave price empty, got %q", activity.Price)
	}
}

func TestParseActivityRow_Rejections(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{},
		{""},
		{"", "09:00", "", "Visite"},
		{"Jour", "Heure", "", "Activité"},
		{"-"},
	}
	for _, row := range rows {
		if _, ok := parseActivityRow(row); ok {
			t.Fatalf("expected rejection for row %v", row)
		}
	}
}

func TestParseShopRow(t *testing.T) {
	t.Parallel()

	shop, ok := parseShopRow([]string{"Chez Paul", "12 Rue Cler"})
	if !ok {
		t.Fatalf("expected a record")
	}
	if shop.Name != "Chez Paul" || shop.Address != "12 Rue Cler" {
		t.Fatalf("unexpected mapping: %+v", shop)
	}
	if shop.Type != roadmap.TypeShop {
		t.Fatalf("unexpected type: %q", shop.Type)
	}
	if !strings.Contains(shop.MapsURL, "query=12%20Rue%20Cler") {
		t.Fatalf("maps link not derived from address: %q", shop.MapsURL)
	}

	for _, row := range [][]string{{}, {""}, {"Name", "Address"}} {
		if _, ok := parseShopRow(row); ok {
			t.Fatalf("expected rejection for row %v", row)
		}
	}
}

func TestParseVinylRow_HyperlinkSourcedLink(t *testing.T) {
	t.Parallel()

	sheet := Sheet{
		Name: "Vinyl Shops",
		Rows: [][]string{
			{"🏪 Boutique", "Lien Maps", "Notes"},
			{"Disc Shop", "", "Great selection"},
		},
		hyperlinks: map[cellIndex]string{
			{row: 1, col: 1}: "https://maps.example/x",
		},
	}

	shop, ok := parseVinylRow(sheet.Rows[1], sheet, 1)
	if !ok {
		t.Fatalf("expected a record")
	}
	if shop.Type != roadmap.TypeVinyl {
		t.Fatalf("unexpected type: %q", shop.Type)
	}
	if shop.MapsURL != "https://maps.example/x" {
		t.Fatalf("maps link must come from the cell hyperlink, got %q", shop.MapsURL)
	}
	if shop.Address != "" {
		t.Fatalf("address must stay empty for record stores, got %q", shop.Address)
	}
	if shop.Notes != "Great selection" {
		t.Fatalf("unexpected notes: %q", shop.Notes)
	}

	// Without a hyperlink the link is empty, never derived from text.
	bare, ok := parseVinylRow([]string{"Other Shop"}, Sheet{}, 0)
	if !ok {
		t.Fatalf("expected a record")
	}
	if bare.MapsURL != "" {
		t.Fatalf("expected empty link without hyperlink, got %q", bare.MapsURL)
	}

	for _, row := range [][]string{{}, {""}, {"🏪 Boutique", "", ""}} {
		if _, ok := parseVinylRow(row, sheet, 0); ok {
			t.Fatalf("expected rejection for row %v", row)
		}
	}
}
