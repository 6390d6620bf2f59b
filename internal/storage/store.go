package storage

import (
	"log"

	"cafeteria/internal/models"
)

// Persisted keys
const (
	keyMenu            = "menu"
	keyOrders          = "orders"
	keySystemBrain     = "systemBrain"
	keyHomePageContent = "homePageContent"
	keyAuthenticated   = "isAuthenticated"
)

// DefaultSystemBrain is the seed persona used until an operator edits it. The
// JSON-finalization instruction is what makes chat-driven order capture work.
const DefaultSystemBrain = `You are a friendly and efficient chatbot for Stanley Cafeteria. Your goal is to help customers place food orders for delivery.
- Greet the customer warmly.
- Present the menu clearly when asked.
- Help the customer choose items and specify quantities.
- Confirm the order details (items, quantities, total price) before finalizing.
- After confirmation, ask for their name and delivery address.
- When the order is finalized, respond with ONLY a valid JSON string in the following format, and nothing else: {"customer": "customer_name", "items": [{"name": "item_name", "quantity": 2}]}.
- Do not add any text before or after the JSON string. Do not wrap it in markdown.`

// Store provides typed access to the persisted application state. Reads fall
// back to defaults and writes are best-effort: failures are logged, not
// propagated, so callers keep working with their in-memory state.
type Store struct {
	kv KV
}

// NewStore wraps a KV substrate
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Menu returns the persisted menu, or an empty menu
func (s *Store) Menu() []models.MenuItem {
	var menu []models.MenuItem
	if ok := s.get(keyMenu, &menu); !ok || menu == nil {
		return []models.MenuItem{}
	}
	return menu
}

// SaveMenu persists the menu
func (s *Store) SaveMenu(menu []models.MenuItem) {
	s.set(keyMenu, menu)
}

// Orders returns all persisted orders
func (s *Store) Orders() []models.Order {
	var orders []models.Order
	if ok := s.get(keyOrders, &orders); !ok || orders == nil {
		return []models.Order{}
	}
	return orders
}

// SaveOrders persists the full order collection
func (s *Store) SaveOrders(orders []models.Order) {
	s.set(keyOrders, orders)
}

// SystemBrain returns the chatbot persona text
func (s *Store) SystemBrain() string {
	var brain string
	if ok := s.get(keySystemBrain, &brain); !ok || brain == "" {
		return DefaultSystemBrain
	}
	return brain
}

// SaveSystemBrain persists the chatbot persona text
func (s *Store) SaveSystemBrain(brain string) {
	s.set(keySystemBrain, brain)
}

// HomePageContent returns the landing page slides, seeding stock images when
// nothing has been configured yet
func (s *Store) HomePageContent() []models.HomePageContent {
	var content []models.HomePageContent
	if ok := s.get(keyHomePageContent, &content); !ok || content == nil {
		return []models.HomePageContent{
			{ID: "1", Type: models.ContentTypeImage, URL: "https://picsum.photos/1920/1080?random=1"},
			{ID: "2", Type: models.ContentTypeImage, URL: "https://picsum.photos/1920/1080?random=2"},
			{ID: "3", Type: models.ContentTypeImage, URL: "https://picsum.photos/1920/1080?random=3"},
		}
	}
	return content
}

// SaveHomePageContent persists the landing page slides
func (s *Store) SaveHomePageContent(content []models.HomePageContent) {
	s.set(keyHomePageContent, content)
}

// Authenticated returns the persisted admin session flag
func (s *Store) Authenticated() bool {
	var authed bool
	s.get(keyAuthenticated, &authed)
	return authed
}

// SaveAuthenticated persists the admin session flag
func (s *Store) SaveAuthenticated(authed bool) {
	s.set(keyAuthenticated, authed)
}

func (s *Store) get(key string, out interface{}) bool {
	ok, err := s.kv.Get(key, out)
	if err != nil {
		log.Printf("Error reading storage key %q: %v", key, err)
		return false
	}
	return ok
}

func (s *Store) set(key string, value interface{}) {
	if err := s.kv.Set(key, value); err != nil {
		log.Printf("Error writing storage key %q: %v", key, err)
	}
}
