package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirasheikh-dev/storefront-api/middleware"
	"github.com/amirasheikh-dev/storefront-api/models"
	"github.com/amirasheikh-dev/storefront-api/store"
)

const testSession = "sess_test"

// fakeCartStore implements Store with the same contract as the gorm-backed
// cart: at most one line per (session, product), adds merge atomically.
type fakeCartStore struct {
	mu       sync.Mutex
	nextID   uint
	items    []*models.CartItem
	products map[uint]*models.Product
	failing  bool
}

func newFakeCartStore(products ...*models.Product) *fakeCartStore {
	s := &fakeCartStore{products: map[uint]*models.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

var errStoreDown = errors.New("store down")

func (s *fakeCartStore) Items(sessionID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, errStoreDown
	}
	out := []models.CartItem{}
	for _, item := range s.items {
		if item.SessionID == sessionID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *fakeCartStore) AddItem(sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, errStoreDown
	}
	product, ok := s.products[productID]
	if !ok {
		return nil, store.ErrNotFound
	}
	for _, item := range s.items {
		if item.SessionID == sessionID && item.ProductID == productID {
			item.Quantity += quantity
			item.UpdatedAt = time.Now()
			copied := *item
			return &copied, nil
		}
	}
	s.nextID++
	item := &models.CartItem{
		ID:        s.nextID,
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		Product:   product,
		CreatedAt: time.Now(),
	}
	s.items = append(s.items, item)
	copied := *item
	return &copied, nil
}

func (s *fakeCartStore) SetQuantity(sessionID string, itemID uint, quantity int) (*models.CartItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, false, errStoreDown
	}
	for i, item := range s.items {
		if item.ID == itemID && item.SessionID == sessionID {
			if quantity <= 0 {
				s.items = append(s.items[:i], s.items[i+1:]...)
				return nil, true, nil
			}
			item.Quantity = quantity
			copied := *item
			return &copied, false, nil
		}
	}
	return nil, false, store.ErrNotFound
}

func (s *fakeCartStore) RemoveItem(sessionID string, itemID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errStoreDown
	}
	for i, item := range s.items {
		if item.ID == itemID && item.SessionID == sessionID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *fakeCartStore) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errStoreDown
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if item.SessionID != sessionID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

func newCartRouter(cart Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionKey, testSession)
	})
	r.GET("/cart", GetCart(cart))
	r.GET("/cart/summary", GetCartSummary(cart))
	r.POST("/cart/items", AddCartItem(cart))
	r.PUT("/cart/items/:id", UpdateCartItem(cart))
	r.DELETE("/cart/items/:id", RemoveCartItem(cart))
	r.DELETE("/cart", ClearCart(cart))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 { return &v }

func TestAddCartItemMergesQuantities(t *testing.T) {
	cart := newFakeCartStore(&models.Product{ID: 1, Price: 10})
	r := newCartRouter(cart)

	w := doJSON(t, r, http.MethodPost, "/cart/items", AddItemInput{ProductID: 1, Quantity: 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/cart/items", AddItemInput{ProductID: 1, Quantity: 3})
	require.Equal(t, http.StatusCreated, w.Code)

	items, err := cart.Items(testSession)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddCartItemConcurrentAddsKeepOneLine(t *testing.T) {
	cart := newFakeCartStore(&models.Product{ID: 1, Price: 10})
	r := newCartRouter(cart)

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doJSON(t, r, http.MethodPost, "/cart/items", AddItemInput{ProductID: 1, Quantity: 1})
		}()
	}
	wg.Wait()

	items, err := cart.Items(testSession)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}

func TestAddCartItemDefaultsQuantityToOne(t *testing.T) {
	cart := newFakeCartStore(&models.Product{ID: 1, Price: 10})
	r := newCartRouter(cart)

	w := doJSON(t, r, http.MethodPost, "/cart/items", map[string]interface{}{"product_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	items, _ := cart.Items(testSession)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	cart := newFakeCartStore()
	r := newCartRouter(cart)

	w := doJSON(t, r, http.MethodPost, "/cart/items", AddItemInput{ProductID: 99, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemZeroQuantityRemovesLine(t *testing.T) {
	cart := newFakeCartStore(&models.Product{ID: 1, Price: 10})
	r := newCartRouter(cart)

	item, err := cart.AddItem(testSession, 1, 2)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/cart/items/%d", item.ID), SetQuantityInput{Quantity: 0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["removed"])

	items, _ := cart.Items(testSession)
	assert.Empty(t, items)
}

func TestUpdateCartItemSetsAbsoluteQuantity(t *testing.T) {
	cart := newFakeCartStore(&models.Product{ID: 1, Price: 10})
	r := newCartRouter(cart)

	item, err := cart.AddItem(testSession, 1, 2)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/cart/items/%d", item.ID), SetQuantityInput{Quantity: 7})
	require.Equal(t, http.StatusOK, w.Code)

	items, _ := cart.Items(testSession)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestUpdateCartItemUnknownLine(t *testing.T) {
	cart := newFakeCartStore()
	r := newCartRouter(cart)

	w := doJSON(t, r, http.MethodPut, "/cart/items/42", SetQuantityInput{Quantity: 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveCartItem(t *testing.T) {
	cart := newFakeCartStore(&models.Product{ID: 1, Price: 10})
	r := newCartRouter(cart)

	item, err := cart.AddItem(testSession, 1, 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/cart/items/%d", item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/cart/items/%d", item.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCartThenGetYieldsEmpty(t *testing.T) {
	cart := newFakeCartStore(
		&models.Product{ID: 1, Price: 10},
		&models.Product{ID: 2, Price: 5},
	)
	r := newCartRouter(cart)

	_, err := cart.AddItem(testSession, 1, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(testSession, 2, 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestGetCartSummaryTotals(t *testing.T) {
	cart := newFakeCartStore(
		&models.Product{ID: 1, Price: 10},
		&models.Product{ID: 2, Price: 20, DiscountPrice: floatPtr(15)},
	)
	r := newCartRouter(cart)

	_, err := cart.AddItem(testSession, 1, 2)
	require.NoError(t, err)
	_, err = cart.AddItem(testSession, 2, 1)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/cart/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items    []models.CartItem `json:"items"`
		Subtotal float64           `json:"subtotal"`
		Tax      float64           `json:"tax"`
		Total    float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 35.0, resp.Subtotal)
	assert.Equal(t, 3.5, resp.Tax)
	assert.Equal(t, 38.5, resp.Total)
}

// A failing store must surface as an error status, never as an empty cart.
func TestStoreFailureIsNotAnEmptyCart(t *testing.T) {
	cart := newFakeCartStore()
	cart.failing = true
	r := newCartRouter(cart)

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/cart", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
