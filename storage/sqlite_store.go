package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"voyago/roadmap"
)

// SQLiteStore persists one JSON document per city key plus a small meta
// table for the active city context. The document is written as a single
// blob after every mutation; last writer wins at the key level.
type SQLiteStore struct {
	db *sql.DB
}

var ErrDocumentNotFound = errors.New("document not found")

const activeCityMetaKey = "active_city"

// storedDocument is the persisted blob layout: the three collections plus
// the write timestamp, all inside the payload.
type storedDocument struct {
	roadmap.Document
	LastUpdated string `json:"lastUpdated"`
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS documents (
	city_key TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// CityKey normalizes a display city name into the storage key.
func CityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// SaveDocument writes the whole document for a city, stamping lastUpdated.
func (s *SQLiteStore) SaveDocument(city string, doc roadmap.Document) error {
	payload, err := json.Marshal(storedDocument{
		Document:    doc,
		LastUpdated: time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	const upsert = `
INSERT INTO documents (city_key, payload) VALUES (?, ?)
ON CONFLICT(city_key) DO UPDATE SET payload = excluded.payload;`

	if _, err := s.db.Exec(upsert, CityKey(city), string(payload)); err != nil {
		return fmt.Errorf("save document for %s: %w", city, err)
	}
	return nil
}

// LoadDocument reads a city's document and its lastUpdated stamp. A missing
// city returns ErrDocumentNotFound; use LoadOrInit where an empty document
// is the normal answer.
func (s *SQLiteStore) LoadDocument(city string) (roadmap.Document, string, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM documents WHERE city_key = ?;`,
		CityKey(city),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return roadmap.Document{}, "", ErrDocumentNotFound
	}
	if err != nil {
		return roadmap.Document{}, "", fmt.Errorf("load document for %s: %w", city, err)
	}

	var stored storedDocument
	if err := json.Unmarshal([]byte(payload), &stored); err != nil {
		return roadmap.Document{}, "", fmt.Errorf("decode document for %s: %w", city, err)
	}
	return stored.Document, stored.LastUpdated, nil
}

// LoadOrInit reads a city's document, treating a missing key as an empty
// document rather than an error.
func (s *SQLiteStore) LoadOrInit(city string) (roadmap.Document, error) {
	doc, _, err := s.LoadDocument(city)
	if errors.Is(err, ErrDocumentNotFound) {
		return roadmap.Document{}, nil
	}
	if err != nil {
		return roadmap.Document{}, err
	}
	return doc, nil
}

// DeleteDocument removes a city's document entirely.
func (s *SQLiteStore) DeleteDocument(city string) error {
	res, err := s.db.Exec(`DELETE FROM documents WHERE city_key = ?;`, CityKey(city))
	if err != nil {
		return fmt.Errorf("delete document for %s: %w", city, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document for %s: %w", city, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// ListCities returns the stored city keys in alphabetical order.
func (s *SQLiteStore) ListCities() ([]string, error) {
	rows, err := s.db.Query(`SELECT city_key FROM documents ORDER BY city_key;`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]string, 0, 8)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cities: %w", err)
	}
	return cities, nil
}

// SetActiveCity remembers which city commands operate on by default.
func (s *SQLiteStore) SetActiveCity(city string) error {
	const upsert = `
INSERT INTO meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	if _, err := s.db.Exec(upsert, activeCityMetaKey, strings.TrimSpace(city)); err != nil {
		return fmt.Errorf("set active city: %w", err)
	}
	return nil
}

// ActiveCity returns the remembered city context, or "" when none was set.
func (s *SQLiteStore) ActiveCity() (string, error) {
	var city string
	err := s.db.QueryRow(
		`SELECT value FROM meta WHERE key = ?;`,
		activeCityMetaKey,
	).Scan(&city)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load active city: %w", err)
	}
	return city, nil
}
