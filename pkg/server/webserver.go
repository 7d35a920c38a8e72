package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/zariwear/zari-store/pkg/cart"
	"github.com/zariwear/zari-store/pkg/catalog"
	"github.com/zariwear/zari-store/pkg/common"
	"github.com/zariwear/zari-store/pkg/listing"
	"github.com/zariwear/zari-store/pkg/tracking"
)

var (
	noListings = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zaristore_listings_total",
		Help: "The total number of processed listing requests",
	})
	noProductViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "zaristore_product_views_total",
		Help: "The total number of single product lookups",
	})
)

type WebServer struct {
	Catalog     *catalog.Catalog
	CartStorage cart.Storage
	Cache       *Cache
	Tracking    tracking.Tracking
	CacheTtl    time.Duration
}

func (ws *WebServer) Listing(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	req, err := listing.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}
	noListings.Inc()

	derive := func() listing.Result {
		return listing.Derive(ws.Catalog.Products, req.Category, req.Selection, req.Sort, req.Page, req.PageSize)
	}
	var result listing.Result
	if ws.Cache != nil {
		helper := NewCacheHelper[listing.Result](ws.Cache)
		if err := helper.Handle(req.CacheKey(), &result, derive, ws.CacheTtl); err != nil {
			result = derive()
		}
	} else {
		result = derive()
	}

	if ws.Tracking != nil {
		go ws.Tracking.TrackListing(sessionId, req.Category, r.URL.RawQuery, result.TotalItems)
	}
	w.Header().Set("Content-Type", "application/json")
	return enc.Encode(result)
}

func (ws *WebServer) GetProduct(w http.ResponseWriter, r *http.Request, sessionId int, enc *json.Encoder) error {
	product, ok := ws.Catalog.Get(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, err := w.Write([]byte("Product not found"))
		return err
	}
	noProductViews.Inc()
	w.Header().Set("Content-Type", "application/json")
	return enc.Encode(product)
}

func (ws *WebServer) ClientHandler() *http.ServeMux {
	cartServer := &cart.CartServer{
		Storage:  ws.CartStorage,
		Catalog:  ws.Catalog,
		Tracking: ws.Tracking,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /listing", common.JsonHandler(ws.Tracking, ws.Listing))
	mux.HandleFunc("GET /product/{id}", common.JsonHandler(ws.Tracking, ws.GetProduct))
	mux.Handle("/cart/", http.StripPrefix("/cart", cartServer.CartHandler()))
	return mux
}
