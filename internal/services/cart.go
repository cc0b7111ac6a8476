package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/canso2044/developer-store/internal/cart"
	"github.com/canso2044/developer-store/internal/models"
	repository "github.com/canso2044/developer-store/internal/repositories"
)

// CartChangedListener is notified after an item was added to a cart.
// Presentation layers use it, e.g. to auto-open a cart panel.
type CartChangedListener func(sessionID string, state *models.Cart)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID, lineID string) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*models.Cart, error)
	ClearCart(ctx context.Context, sessionID string) (*models.Cart, error)
	GetItemQuantity(ctx context.Context, sessionID, productID, variantID string) (int, error)
	OnCartChanged(listener CartChangedListener)
}

type cartService struct {
	repo repository.CartRepository

	mu        sync.RWMutex
	listeners []CartChangedListener
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) OnCartChanged(listener CartChangedListener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, listener)
}

// load rehydrates the session's cart from the durable mirror. Read
// failures are logged and yield an empty cart; they never fail the
// calling operation.
func (s *cartService) load(ctx context.Context, sessionID string) models.Cart {

	items, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to load cart from store, starting empty",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()))

		return models.Cart{Items: []models.CartItem{}}
	}

	return cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionLoad, Items: items})
}

// persist mirrors the line items after a mutation. Write failures are
// logged and swallowed: the in-memory result already succeeded.
func (s *cartService) persist(ctx context.Context, sessionID string, state models.Cart) {

	if err := s.repo.Save(ctx, sessionID, state.Items); err != nil {
		slog.Error("Failed to persist cart",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()))
	}
}

func (s *cartService) notify(sessionID string, state *models.Cart) {
	s.mu.RLock()
	listeners := s.listeners
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(sessionID, state)
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	state := s.load(ctx, sessionID)

	return &state, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {

	state := s.load(ctx, sessionID)

	state = cart.Apply(state, cart.Action{
		Type: cart.ActionAdd,
		Item: models.CartItem{
			ProductID: req.ProductID,
			Title:     req.Title,
			Image:     req.Image,
			Price:     req.Price,
			Variant:   req.Variant,
			Quantity:  req.Quantity,
		},
	})

	s.persist(ctx, sessionID, state)
	s.notify(sessionID, &state)

	return &state, nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*models.Cart, error) {

	state := s.load(ctx, sessionID)
	state = cart.Apply(state, cart.Action{Type: cart.ActionRemove, LineID: lineID})

	s.persist(ctx, sessionID, state)

	return &state, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*models.Cart, error) {

	state := s.load(ctx, sessionID)
	state = cart.Apply(state, cart.Action{Type: cart.ActionUpdateQuantity, LineID: lineID, Quantity: quantity})

	s.persist(ctx, sessionID, state)

	return &state, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	state := cart.Apply(models.Cart{}, cart.Action{Type: cart.ActionClear})

	s.persist(ctx, sessionID, state)

	return &state, nil
}

func (s *cartService) GetItemQuantity(ctx context.Context, sessionID, productID, variantID string) (int, error) {

	state := s.load(ctx, sessionID)

	return cart.Quantity(state, productID, variantID), nil
}
