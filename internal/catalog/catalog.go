package catalog

import (
	"fmt"
	"strings"
	"sync"

	"cafeteria/internal/models"
	"cafeteria/internal/storage"

	"github.com/google/uuid"
)

// Catalog holds the ordered collection of menu items and is the source of
// price truth for order resolution. Reads are served from memory; mutations
// write through to the store.
type Catalog struct {
	mu    sync.RWMutex
	items []models.MenuItem
	store *storage.Store
}

// New loads the catalog from the store
func New(store *storage.Store) *Catalog {
	return &Catalog{
		items: store.Menu(),
		store: store,
	}
}

// List returns the menu items in catalog order
func (c *Catalog) List() []models.MenuItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]models.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// Resolve finds a menu item by case-insensitive exact name match. No other
// normalization is applied: trailing whitespace or pluralization differences
// do not match.
func (c *Catalog) Resolve(name string) (models.MenuItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Add appends a new item to the catalog, assigning it a fresh ID
func (c *Catalog) Add(item models.MenuItem) (models.MenuItem, error) {
	if err := models.ValidateMenuItem(&item); err != nil {
		return models.MenuItem{}, err
	}
	item.ID = "MENU-" + uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.store.SaveMenu(c.items)
	return item, nil
}

// Update replaces an existing item, matched by ID
func (c *Catalog) Update(item models.MenuItem) error {
	if err := models.ValidateMenuItem(&item); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if existing.ID == item.ID {
			c.items[i] = item
			c.store.SaveMenu(c.items)
			return nil
		}
	}
	return fmt.Errorf("menu item %s not found", item.ID)
}

// Remove deletes an item from the catalog. Historical orders keep their own
// name and price snapshots, so nothing is orphaned.
func (c *Catalog) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if existing.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.store.SaveMenu(c.items)
			return nil
		}
	}
	return fmt.Errorf("menu item %s not found", id)
}
