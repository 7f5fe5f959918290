package importer

import "strings"

// SheetKind tags which record kind a sheet encodes.
type SheetKind int

const (
	KindActivities SheetKind = iota
	KindShops
	KindVinyl
)

func (k SheetKind) String() string {
	switch k {
	case KindShops:
		return "shops"
	case KindVinyl:
		return "vinyl"
	default:
		return "activities"
	}
}

// ClassifySheet decides a sheet's record kind from its name, case-insensitive.
// Activities is the default, not a failure mode: any unrecognized sheet name
// is treated as an itinerary sheet, so classification never errors.
func ClassifySheet(name string) SheetKind {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "vinyl"):
		return KindVinyl
	case strings.Contains(lower, "shop"):
		return KindShops
	default:
		return KindActivities
	}
}
