package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
)

// MenuItem mirrors one entry of a record's menus array in store_info.json.
type MenuItem struct {
	MenuName    string `json:"menu_name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Record is one store of the prepared dataset. categories, facilities and
// hashtags are string-encoded list literals as produced by the crawler
// pipeline; ParseListField decodes them at read time.
type Record struct {
	StoreID      json.Number `json:"store_id"`
	StoreName    string      `json:"store_name"`
	Address      string      `json:"address"`
	Phone        string      `json:"phone"`
	OpenHours    string      `json:"openhours"`
	Categories   string      `json:"categories"`
	Facilities   string      `json:"facilities"`
	Hashtags     string      `json:"hashtags"`
	MainImageURL string      `json:"main_image_url"`
	Menus        []MenuItem  `json:"menus"`
}

// Registry is the read-only in-memory index over store records. It is loaded
// once at startup and never mutated, so it is safe for concurrent readers.
type Registry struct {
	records []Record
}

func New(records []Record) *Registry {
	return &Registry{records: records}
}

// Load reads the store dataset from a JSON file.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", contractx.ErrDatasetLoad, path, err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", contractx.ErrDatasetLoad, path, err)
	}

	return New(records), nil
}

func (r *Registry) Len() int {
	return len(r.records)
}

// Find resolves a store by fuzzy name match: both names are normalized and a
// candidate matches when either normalized form contains the other. The first
// match in dataset order wins; no ranking among multiple matches.
func (r *Registry) Find(storeName string) (*Record, bool) {
	query := normalize(storeName)
	if query == "" {
		return nil, false
	}
	for i := range r.records {
		name := normalize(r.records[i].StoreName)
		if name == "" {
			continue
		}
		if strings.Contains(name, query) || strings.Contains(query, name) {
			return &r.records[i], true
		}
	}
	return nil, false
}

func normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(strings.ReplaceAll(text, " ", "")))
}
