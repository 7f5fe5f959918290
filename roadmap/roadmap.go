// Package roadmap holds the normalized travel records shared by importer,
// storage, stats, and outputs: day-by-day activities plus shop and record-store
// lists, grouped into a single per-city document.
package roadmap

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Shop type values. Record stores share the Shop shape but carry their own type
// tag and source their maps link from a cell hyperlink instead of address text.
const (
	TypeShop  = "shop"
	TypeVinyl = "vinyl"
)

// Activity is one itinerary entry. Date is a display string (fr-FR short
// form), not a timestamp; Time stays free text ("14:30", "Matin", "Soir").
type Activity struct {
	ID        string
	Date      string
	Time      string
	Label     string // description, optionally prefixed with an emoji marker
	Place     string
	Address   string
	Pass      string
	Status    Status
	Notes     string
	MapsURL   string
	Transport string
	Duration  string
	Price     string
}

// activityJSON is the serialized layout. The stored blob keeps the legacy
// duplicate aliases (statut/status, remarque/notes) so documents written by
// earlier versions of the app stay readable in both directions.
type activityJSON struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Activity  string `json:"activity"`
	Place     string `json:"place"`
	Address   string `json:"address"`
	Remarque  string `json:"remarque"`
	Pass      string `json:"pass"`
	Statut    Status `json:"statut"`
	MapsURL   string `json:"mapsUrl"`
	Transport string `json:"transport"`
	Duration  string `json:"duration"`
	Price     string `json:"price"`
	Notes     string `json:"notes"`
	Status    Status `json:"status"`
}

func (a Activity) MarshalJSON() ([]byte, error) {
	return json.Marshal(activityJSON{
		ID:        a.ID,
		Date:      a.Date,
		Time:      a.Time,
		Activity:  a.Label,
		Place:     a.Place,
		Address:   a.Address,
		Remarque:  a.Notes,
		Pass:      a.Pass,
		Statut:    a.Status,
		MapsURL:   a.MapsURL,
		Transport: a.Transport,
		Duration:  a.Duration,
		Price:     a.Price,
		Notes:     a.Notes,
		Status:    a.Status,
	})
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	var raw activityJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status := raw.Status
	if status == "" {
		status = raw.Statut
	}
	notes := raw.Notes
	if notes == "" {
		notes = raw.Remarque
	}

	*a = Activity{
		ID:        raw.ID,
		Date:      raw.Date,
		Time:      raw.Time,
		Label:     raw.Activity,
		Place:     raw.Place,
		Address:   raw.Address,
		Pass:      raw.Pass,
		Status:    status,
		Notes:     notes,
		MapsURL:   raw.MapsURL,
		Transport: raw.Transport,
		Duration:  raw.Duration,
		Price:     raw.Price,
	}
	return nil
}

// Shop is a shop or record-store entry. Specialties and Wishlist are always
// non-nil so the serialized document carries [] rather than null.
type Shop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Visited     bool     `json:"visited"`
	Favorite    bool     `json:"favorite"`
	Specialties []string `json:"specialties"`
	Notes       string   `json:"notes"`
	Rating      float64  `json:"rating"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Hours       string   `json:"hours"`
	Wishlist    []string `json:"wishlist"`
	MapsURL     string   `json:"mapsUrl"`
}

// NewShop returns a Shop of the given type with flag and collection fields at
// their zero values and fresh id.
func NewShop(shopType string) Shop {
	return Shop{
		ID:          NewRecordID(shopType),
		Type:        shopType,
		Specialties: []string{},
		Wishlist:    []string{},
	}
}

// NewRecordID generates a session-unique opaque id with a kind prefix.
// Records are matched by id for updates and deletes, so collisions would be a
// correctness bug, not a cosmetic one.
func NewRecordID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Document is the full itinerary for one city: the three record collections
// persisted and handed around as a single unit.
type Document struct {
	Roadmap []Activity `json:"roadmap"`
	Shops   []Shop     `json:"shops"`
	Vinyl   []Shop     `json:"vinyl"`
}

// Empty reports whether the document holds no records at all.
func (d Document) Empty() bool {
	return len(d.Roadmap) == 0 && len(d.Shops) == 0 && len(d.Vinyl) == 0
}

// FindActivity returns a pointer into the roadmap collection, or nil.
func (d *Document) FindActivity(id string) *Activity {
	for i := range d.Roadmap {
		if d.Roadmap[i].ID == id {
			return &d.Roadmap[i]
		}
	}
	return nil
}

// FindShop searches both the shop and vinyl collections.
func (d *Document) FindShop(id string) *Shop {
	for i := range d.Shops {
		if d.Shops[i].ID == id {
			return &d.Shops[i]
		}
	}
	for i := range d.Vinyl {
		if d.Vinyl[i].ID == id {
			return &d.Vinyl[i]
		}
	}
	return nil
}

// SetActivityStatus updates the status of one activity in place. The maps
// link is intentionally not re-derived on edits; it is fixed at creation time.
func (d *Document) SetActivityStatus(id string, status Status) bool {
	activity := d.FindActivity(id)
	if activity == nil {
		return false
	}
	activity.Status = status
	return true
}

// ToggleVisited flips the visited flag of a shop or record store and returns
// the new value.
func (d *Document) ToggleVisited(id string) (bool, bool) {
	shop := d.FindShop(id)
	if shop == nil {
		return false, false
	}
	shop.Visited = !shop.Visited
	return shop.Visited, true
}

// ToggleFavorite flips the favorite flag of a shop or record store and returns
// the new value.
func (d *Document) ToggleFavorite(id string) (bool, bool) {
	shop := d.FindShop(id)
	if shop == nil {
		return false, false
	}
	shop.Favorite = !shop.Favorite
	return shop.Favorite, true
}

// Remove deletes the record with the given id from whichever collection holds
// it. Order of the remaining records is preserved.
func (d *Document) Remove(id string) bool {
	for i := range d.Roadmap {
		if d.Roadmap[i].ID == id {
			d.Roadmap = append(d.Roadmap[:i], d.Roadmap[i+1:]...)
			return true
		}
	}
	for i := range d.Shops {
		if d.Shops[i].ID == id {
			d.Shops = append(d.Shops[:i], d.Shops[i+1:]...)
			return true
		}
	}
	for i := range d.Vinyl {
		if d.Vinyl[i].ID == id {
			d.Vinyl = append(d.Vinyl[:i], d.Vinyl[i+1:]...)
			return true
		}
	}
	return false
}

// Merge appends records from incoming that are not already present, keeping
// incoming order. An activity is a duplicate when label and date both match;
// a shop or record store is a duplicate when the name matches within its
// collection. Returns added and skipped counts.
func (d *Document) Merge(incoming Document) (int, int) {
	added := 0
	skipped := 0

	for _, activity := range incoming.Roadmap {
		if d.hasActivity(activity) {
			skipped++
			continue
		}
		d.Roadmap = append(d.Roadmap, activity)
		added++
	}

	for _, shop := range incoming.Shops {
		if hasShopNamed(d.Shops, shop.Name) {
			skipped++
			continue
		}
		d.Shops = append(d.Shops, shop)
		added++
	}

	for _, shop := range incoming.Vinyl {
		if hasShopNamed(d.Vinyl, shop.Name) {
			skipped++
			continue
		}
		d.Vinyl = append(d.Vinyl, shop)
		added++
	}

	return added, skipped
}

func (d *Document) hasActivity(candidate Activity) bool {
	for _, existing := range d.Roadmap {
		if existing.Label == candidate.Label && existing.Date == candidate.Date {
			return true
		}
	}
	return false
}

func hasShopNamed(shops []Shop, name string) bool {
	for _, existing := range shops {
		if existing.Name == name {
			return true
		}
	}
	return false
}
