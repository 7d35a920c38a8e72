package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zariwear/zari-store/pkg/catalog"
)

func testCartServer() *CartServer {
	cat := catalog.New([]catalog.Product{
		{Id: "p1", Name: "Maroon Banarasi Silk Saree", Category: "sarees", Price: 1000, OriginalPrice: 1200},
		{Id: "p2", Name: "Red Bridal Lehenga", Category: "lehengas", Price: 24999},
	})
	return &CartServer{
		Storage: NewMemoryStorage(),
		Catalog: cat,
	}
}

func addToCart(t *testing.T, mux *http.ServeMux, cookies []*http.Cookie, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/items", strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestCartHandlerAddAndGet(t *testing.T) {
	mux := testCartServer().CartHandler()

	w := addToCart(t, mux, nil, `{"productId":"p1","quantity":1,"blouseOption":{"id":"unstitched","price":0}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	hasCartCookie := false
	for _, c := range cookies {
		if c.Name == "cartid" && c.Value != "" {
			hasCartCookie = true
		}
	}
	if !hasCartCookie {
		t.Fatalf("Expected cartid cookie to be set")
	}

	w = addToCart(t, mux, cookies, `{"productId":"p1","quantity":1,"blouseOption":{"id":"unstitched","price":0}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	get := httptest.NewRecorder()
	mux.ServeHTTP(get, req)

	var view View
	if err := json.Unmarshal(get.Body.Bytes(), &view); err != nil {
		t.Fatalf("Failed to decode cart view: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("Expected merged single line, got %d", len(view.Items))
	}
	if view.ItemCount != 2 || view.Subtotal != 2000 {
		t.Errorf("Expected count 2 subtotal 2000, got %d / %d", view.ItemCount, view.Subtotal)
	}
	if view.Items[0].Name != "Maroon Banarasi Silk Saree" {
		t.Errorf("Expected snapshotted product name, got %q", view.Items[0].Name)
	}
}

func TestCartHandlerUnknownProduct(t *testing.T) {
	mux := testCartServer().CartHandler()
	w := addToCart(t, mux, nil, `{"productId":"missing","quantity":1}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown product, got %d", w.Code)
	}
}

func TestCartHandlerRemove(t *testing.T) {
	mux := testCartServer().CartHandler()

	w := addToCart(t, mux, nil, `{"productId":"p2","quantity":1}`)
	cookies := w.Result().Cookies()
	var view View
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("Failed to decode cart view: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/items/"+view.Items[0].Id, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	del := httptest.NewRecorder()
	mux.ServeHTTP(del, req)
	if del.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", del.Code, del.Body.String())
	}
	if err := json.Unmarshal(del.Body.Bytes(), &view); err != nil {
		t.Fatalf("Failed to decode cart view: %v", err)
	}
	if len(view.Items) != 0 {
		t.Errorf("Expected empty cart after remove, got %d lines", len(view.Items))
	}
}

func TestCartHandlerNoSession(t *testing.T) {
	mux := testCartServer().CartHandler()
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 without cart cookie, got %d", w.Code)
	}
}
