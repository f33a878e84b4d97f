package lesson

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the immutable, in-memory set of lessons. It is constructed once
// at startup and injected into whoever needs lesson content; nothing mutates
// it afterwards.
type Catalog struct {
	byID  map[string]Lesson
	order []string
}

func NewCatalog(lessons []Lesson) *Catalog {
	catalog := &Catalog{byID: make(map[string]Lesson, len(lessons))}
	for _, item := range lessons {
		if _, exists := catalog.byID[item.ID]; exists {
			continue
		}
		catalog.byID[item.ID] = item
		catalog.order = append(catalog.order, item.ID)
	}
	return catalog
}

// Load reads the lesson catalog from a JSON file holding an array of lessons.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson catalog: %w", err)
	}

	var lessons []Lesson
	if err := json.Unmarshal(data, &lessons); err != nil {
		return nil, fmt.Errorf("parse lesson catalog: %w", err)
	}
	return NewCatalog(lessons), nil
}

func (c *Catalog) Lesson(id string) (Lesson, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// All returns the lessons in load order.
func (c *Catalog) All() []Lesson {
	out := make([]Lesson, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
