package storage

import (
	"strings"
	"testing"

	"cafeteria/internal/models"
)

func TestStoreDefaults(t *testing.T) {
	store := NewStore(NewMemoryKV())

	if got := store.Menu(); len(got) != 0 {
		t.Errorf("default menu has %d items, want 0", len(got))
	}
	if got := store.Orders(); len(got) != 0 {
		t.Errorf("default orders has %d entries, want 0", len(got))
	}
	if got := store.SystemBrain(); !strings.Contains(got, "Stanley Cafeteria") {
		t.Errorf("default system brain missing seed persona, got %q", got)
	}
	if got := store.HomePageContent(); len(got) != 3 {
		t.Errorf("default homepage content has %d slides, want 3", len(got))
	}
	if store.Authenticated() {
		t.Error("default auth flag is true, want false")
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(NewMemoryKV())

	menu := []models.MenuItem{{ID: "MENU-1", Name: "Burger", Price: 9.50}}
	store.SaveMenu(menu)
	if got := store.Menu(); len(got) != 1 || got[0].Name != "Burger" {
		t.Errorf("Menu() = %+v, want saved menu", got)
	}

	store.SaveSystemBrain("be terse")
	if got := store.SystemBrain(); got != "be terse" {
		t.Errorf("SystemBrain() = %q, want %q", got, "be terse")
	}

	store.SaveAuthenticated(true)
	if !store.Authenticated() {
		t.Error("Authenticated() = false after SaveAuthenticated(true)")
	}

	content := []models.HomePageContent{{ID: "CONTENT-1", Type: models.ContentTypeVideo, URL: "x"}}
	store.SaveHomePageContent(content)
	if got := store.HomePageContent(); len(got) != 1 || got[0].Type != models.ContentTypeVideo {
		t.Errorf("HomePageContent() = %+v, want saved content", got)
	}
}

func TestMemoryKVMissingKey(t *testing.T) {
	kv := NewMemoryKV()

	var out string
	ok, err := kv.Get("missing", &out)
	if err != nil {
		t.Fatalf("Get() on missing key returned error: %v", err)
	}
	if ok {
		t.Error("Get() on missing key reported found")
	}
}
