package importer

import (
	"strings"

	"voyago/roadmap"
)

// Header literals used by the row parsers to drop the header row. The
// ingester feeds every row of a sheet through its parser, including row 0;
// filtering headers by content keeps sheets with repeated header blocks
// working.
const (
	activityHeaderCell = "Jour"
	shopHeaderCell     = "Name"
	vinylHeaderCell    = "🏪 Boutique"

	// rowSentinel marks a separator row meaning "intentionally absent".
	rowSentinel = "-"

	includedMarker = "✅"
)

func cellAt(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}

// parseActivityRow converts one itinerary row into an activity record.
// Columns: 0=date 1=time 2=emoji 3=description 4=place 5=notes 6=pass
// 7=status. Returns false for header rows, separator rows, and rows with an
// empty first cell; rejection is routine, not an error.
func parseActivityRow(row []string) (roadmap.Activity, bool) {
	first := cellAt(row, 0)
	if first == "" || first == activityHeaderCell || first == rowSentinel {
		return roadmap.Activity{}, false
	}

	place := cellAt(row, 4)
	pass := cellAt(row, 6)
	price := ""
	if strings.Contains(pass, includedMarker) {
		price = "Inclus"
	}

	return roadmap.Activity{
		ID:      roadmap.NewRecordID("activity"),
		Date:    FormatCellDate(first),
		Time:    cellAt(row, 1),
		Label:   strings.TrimSpace(cellAt(row, 2) + " " + cellAt(row, 3)),
		Place:   place,
		Address: place,
		Pass:    pass,
		Status:  roadmap.ParseStatus(cellAt(row, 7)),
		Notes:   cellAt(row, 5),
		MapsURL: roadmap.MapsSearchURL(place),
		Price:   price,
	}, true
}

// parseShopRow converts one shop row: column 0 is the name, column 1 the
// address the maps link is derived from.
func parseShopRow(row []string) (roadmap.Shop, bool) {
	name := cellAt(row, 0)
	if name == "" || name == shopHeaderCell {
		return roadmap.Shop{}, false
	}

	shop := roadmap.NewShop(roadmap.TypeShop)
	shop.Name = name
	shop.Address = cellAt(row, 1)
	shop.MapsURL = roadmap.MapsSearchURL(shop.Address)
	return shop, true
}

// parseVinylRow converts one record-store row. Column 0 is the name and
// column 2 free-text notes. The maps link comes from the hyperlink attached
// to the cell in column B, not from address text, and the address stays
// empty: the hyperlink is authoritative for location.
func parseVinylRow(row []string, sheet Sheet, rowIndex int) (roadmap.Shop, bool) {
	name := cellAt(row, 0)
	if name == "" || name == vinylHeaderCell {
		return roadmap.Shop{}, false
	}

	shop := roadmap.NewShop(roadmap.TypeVinyl)
	shop.Name = name
	shop.Notes = cellAt(row, 2)
	shop.MapsURL = sheet.Hyperlink(rowIndex, 1)
	return shop, true
}
