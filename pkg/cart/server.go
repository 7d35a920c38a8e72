package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zariwear/zari-store/pkg/catalog"
	"github.com/zariwear/zari-store/pkg/common"
	"github.com/zariwear/zari-store/pkg/tracking"
)

var (
	cartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zaristore_cart_adds_total",
		Help: "The total number of add to cart operations",
	})
	cartUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zaristore_cart_updates_total",
		Help: "The total number of cart quantity updates",
	})
	cartRemoves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zaristore_cart_removes_total",
		Help: "The total number of cart line removals",
	})
)

type CartServer struct {
	Storage  Storage
	Catalog  *catalog.Catalog
	Tracking tracking.Tracking
}

// AddItemRequest references a catalog product; display fields are
// snapshotted server side so the stored line survives catalog changes.
type AddItemRequest struct {
	ProductId    string        `json:"productId"`
	Quantity     int           `json:"quantity"`
	BlouseOption *BlouseOption `json:"blouseOption,omitempty"`
}

type ChangeQuantityRequest struct {
	Id       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// View is the cart payload returned to the storefront.
type View struct {
	Id        string     `json:"id"`
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  int        `json:"subtotal"`
	IsOpen    bool       `json:"isOpen"`
}

func makeView(cartId string, state State) View {
	items := state.Items
	if items == nil {
		items = []LineItem{}
	}
	return View{
		Id:        cartId,
		Items:     items,
		ItemCount: state.ItemCount(),
		Subtotal:  state.Subtotal(),
		IsOpen:    state.IsOpen,
	}
}

func (s *CartServer) makeItem(input *AddItemRequest) (*NewItem, error) {
	product, ok := s.Catalog.Get(input.ProductId)
	if !ok {
		return nil, errors.New("product not found")
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return &NewItem{
		ProductId:     product.Id,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Image:         product.Image,
		Quantity:      quantity,
		BlouseOption:  input.BlouseOption,
	}, nil
}

func (s *CartServer) GetCart(w http.ResponseWriter, r *http.Request) {
	cartId, err := handleCartCookie(w, r, false)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No cart session"))
		return
	}
	store := NewStore(r.Context(), cartId, s.Storage)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(makeView(cartId, store.State())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *CartServer) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionId := common.HandleSessionCookie(s.Tracking, w, r)
	cartId, err := handleCartCookie(w, r, true)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Unable to create cart session"))
		return
	}
	var input AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid item"))
		return
	}
	item, err := s.makeItem(&input)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}
	store := NewStore(r.Context(), cartId, s.Storage)
	if err := store.Dispatch(r.Context(), AddItem{Item: *item}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error adding item"))
		return
	}
	cartAdds.Inc()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(makeView(cartId, store.State())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	if s.Tracking != nil {
		s.Tracking.TrackAddToCart(sessionId, item.ProductId, item.Quantity)
	}
}

func (s *CartServer) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	sessionId := common.HandleSessionCookie(s.Tracking, w, r)
	cartId, err := handleCartCookie(w, r, false)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No cart session"))
		return
	}
	var input ChangeQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Invalid item"))
		return
	}
	store := NewStore(r.Context(), cartId, s.Storage)
	removed := findLine(store.State().Items, input.Id)
	if err := store.Dispatch(r.Context(), UpdateQuantity{Id: input.Id, Quantity: input.Quantity}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error changing quantity"))
		return
	}
	cartUpdates.Inc()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(makeView(cartId, store.State())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	if s.Tracking != nil && removed != nil && input.Quantity <= 0 {
		s.Tracking.TrackRemoveFromCart(sessionId, removed.ProductId)
	}
}

func (s *CartServer) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionId := common.HandleSessionCookie(s.Tracking, w, r)
	cartId, err := handleCartCookie(w, r, false)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No cart session"))
		return
	}
	id := r.PathValue("id")
	store := NewStore(r.Context(), cartId, s.Storage)
	removed := findLine(store.State().Items, id)
	if err := store.Dispatch(r.Context(), RemoveItem{Id: id}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error removing item"))
		return
	}
	cartRemoves.Inc()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(makeView(cartId, store.State())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
	if s.Tracking != nil && removed != nil {
		s.Tracking.TrackRemoveFromCart(sessionId, removed.ProductId)
	}
}

func (s *CartServer) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartId, err := handleCartCookie(w, r, false)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No cart session"))
		return
	}
	store := NewStore(r.Context(), cartId, s.Storage)
	if err := store.Dispatch(r.Context(), ClearCart{}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error clearing cart"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(makeView(cartId, store.State())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ToggleCart flips the visibility flag. The flag lives with the request's
// view of the cart and is never persisted.
func (s *CartServer) ToggleCart(w http.ResponseWriter, r *http.Request) {
	cartId, err := handleCartCookie(w, r, false)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("No cart session"))
		return
	}
	store := NewStore(r.Context(), cartId, s.Storage)
	if err := store.Dispatch(r.Context(), ToggleCart{}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Error toggling cart"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(makeView(cartId, store.State())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func findLine(items []LineItem, id string) *LineItem {
	for i := range items {
		if items[i].Id == id {
			return &items[i]
		}
	}
	return nil
}

func (s *CartServer) CartHandler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.GetCart)
	mux.HandleFunc("POST /items", s.AddItem)
	mux.HandleFunc("PUT /items", s.ChangeQuantity)
	mux.HandleFunc("DELETE /items/{id}", s.RemoveItem)
	mux.HandleFunc("POST /clear", s.ClearCart)
	mux.HandleFunc("POST /toggle", s.ToggleCart)
	return mux
}
