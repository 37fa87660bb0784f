package catalog

import (
	"fmt"
	"sort"
)

// Lesson is a named, ordered subset of catalog items used as a practice
// scope alongside categories.
type Lesson struct {
	ID    string
	Title string
	Keys  []string
}

// Catalog is the indexed, read-only item collection.
type Catalog struct {
	items      []Item
	byKey      map[string]*Item
	byCategory map[string][]*Item
	lessons    []Lesson
	lessonByID map[string]*Lesson
}

// New builds a catalog from a slice of items and lesson definitions.
// Duplicate keys are rejected; lesson keys that reference no item are
// dropped so stale lesson definitions cannot break a scope.
func New(items []Item, lessons []Lesson) (*Catalog, error) {
	c := &Catalog{
		items:      items,
		byKey:      make(map[string]*Item, len(items)),
		byCategory: make(map[string][]*Item),
		lessonByID: make(map[string]*Lesson),
	}

	for i := range c.items {
		it := &c.items[i]
		if it.Key == "" {
			return nil, fmt.Errorf("item %d: empty key", i)
		}
		if _, dup := c.byKey[it.Key]; dup {
			return nil, fmt.Errorf("duplicate item key %q", it.Key)
		}
		c.byKey[it.Key] = it
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}

	for _, l := range lessons {
		kept := Lesson{ID: l.ID, Title: l.Title}
		for _, k := range l.Keys {
			if _, ok := c.byKey[k]; ok {
				kept.Keys = append(kept.Keys, k)
			}
		}
		c.lessons = append(c.lessons, kept)
	}
	for i := range c.lessons {
		c.lessonByID[c.lessons[i].ID] = &c.lessons[i]
	}

	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Get returns the item with the given key.
func (c *Catalog) Get(key string) (Item, bool) {
	it, ok := c.byKey[key]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// All returns every item in catalog order.
func (c *Catalog) All() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Categories returns the distinct category names, sorted.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.byCategory))
	for name := range c.byCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Category returns the items in a category, in catalog order.
func (c *Catalog) Category(name string) []Item {
	ptrs := c.byCategory[name]
	out := make([]Item, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

// Lessons returns the lesson definitions in catalog order.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Lesson returns the items of a lesson, in lesson order.
func (c *Catalog) Lesson(id string) []Item {
	l, ok := c.lessonByID[id]
	if !ok {
		return nil
	}
	return c.Resolve(l.Keys)
}

// Scope returns the item pool for a practice scope: a category name or
// a lesson ID. An unknown scope yields an empty pool, which callers
// treat as a configuration error upstream.
func (c *Catalog) Scope(scope string) []Item {
	if items := c.Category(scope); len(items) > 0 {
		return items
	}
	return c.Lesson(scope)
}

// Resolve maps item keys back to full items. Keys no longer present in
// the catalog are silently dropped; content changes between releases
// must not corrupt stored history.
func (c *Catalog) Resolve(keys []string) []Item {
	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		if it, ok := c.byKey[k]; ok {
			out = append(out, *it)
		}
	}
	return out
}

// ApplyFrequency merges resolved frequency metadata into the index.
// Called once, before any selection runs; items absent from the
// frequency table keep a nil Frequency.
func (c *Catalog) ApplyFrequency(freq map[string]FrequencyMeta) {
	for key, meta := range freq {
		if it, ok := c.byKey[key]; ok {
			m := meta
			it.Frequency = &m
		}
	}
}
