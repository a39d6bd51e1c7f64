package world

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTypeCatalog reads a usable-types document of the form
// {"types": {"Chest": {...}, ...}}.
func LoadTypeCatalog(path string) (TypeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading usable types: %w", err)
	}

	var doc struct {
		Types TypeCatalog `json:"types"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loading usable types: %w", err)
	}
	if doc.Types == nil {
		doc.Types = TypeCatalog{}
	}
	return doc.Types, nil
}

// LoadWorld reads a world document, fills per-entity defaults, and
// validates it against the catalog. An invalid world never loads.
func LoadWorld(path string, catalog TypeCatalog) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	w.normalize()

	if err := Validate(&w, catalog); err != nil {
		return nil, err
	}
	return &w, nil
}

// normalize backfills map-key IDs and display-name defaults so the rest of
// the engine never has to special-case empty fields.
func (w *World) normalize() {
	if w.Fairness == nil {
		w.Fairness = map[string]bool{}
	}
	if w.Items == nil {
		w.Items = map[string]*Item{}
	}
	if w.Rooms == nil {
		w.Rooms = map[string]*Room{}
	}

	for id, item := range w.Items {
		item.ID = id
		if item.Name == "" {
			item.Name = id
		}
	}

	for id, room := range w.Rooms {
		room.ID = id
		if room.Title == "" {
			room.Title = id
		}
		if room.Exits == nil {
			room.Exits = map[string]string{}
		}
		if u := room.Usable; u != nil && u.Name == "" {
			u.Name = u.Type
		}
	}
}
