package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zariwear/zari-store/pkg/cart"
	"github.com/zariwear/zari-store/pkg/catalog"
	"github.com/zariwear/zari-store/pkg/common"
	"github.com/zariwear/zari-store/pkg/server"
	"github.com/zariwear/zari-store/pkg/tracking"
)

var enableProfiling = flag.Bool("profiling", true, "enable profiling endpoints")
var redisUrl = os.Getenv("REDIS_URL")
var redisPassword = os.Getenv("REDIS_PASSWORD")
var rabbitUrl = os.Getenv("RABBIT_URL")
var country = os.Getenv("COUNTRY")
var catalogPath = os.Getenv("CATALOG_PATH")
var cartDataPath = os.Getenv("CART_DATA_PATH")
var listenAddress = ":8080"
var debugAddress = ":8081"

func makeCartStorage() (cart.Storage, common.ShutdownHook) {
	if redisUrl != "" {
		storage := cart.NewRedisStorage(redisUrl, redisPassword, 0, 30*24*time.Hour)
		log.Printf("Using redis cart storage, url: %s", redisUrl)
		return storage, func(ctx context.Context) error {
			return storage.Close()
		}
	}
	if cartDataPath != "" {
		log.Printf("Using disk cart storage, path: %s", cartDataPath)
		return cart.NewDiskStorage(cartDataPath), nil
	}
	log.Println("No cart storage configured, carts will not survive restarts")
	return cart.NewMemoryStorage(), nil
}

func main() {
	flag.Parse()

	if catalogPath == "" {
		catalogPath = "data/catalog.json"
	}
	cat, err := catalog.LoadFile(catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("Catalog loaded, %d products", cat.Len())

	cartStorage, storageHook := makeCartStorage()

	srv := &server.WebServer{
		Catalog:     cat,
		CartStorage: cartStorage,
		CacheTtl:    time.Minute,
	}
	if redisUrl != "" {
		srv.Cache = server.NewCache(redisUrl, redisPassword, 1)
	}

	var trackingHook common.ShutdownHook
	if rabbitUrl != "" {
		trk, err := tracking.NewRabbitTracking(rabbitUrl, country)
		if err != nil {
			log.Fatalf("Failed to create rabbit tracking: %v", err)
		}
		srv.Tracking = trk
		trackingHook = func(ctx context.Context) error {
			return trk.Close()
		}
	}

	debugMux := http.NewServeMux()
	debugMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	debugMux.Handle("/metrics", promhttp.Handler())
	if enableProfiling != nil && *enableProfiling {
		log.Println("Profiling enabled")
		debugMux.HandleFunc("/debug/pprof/", pprof.Index)
		debugMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		debugMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		debugMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		debugMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	go func() {
		log.Printf("Starting debug server %v", debugAddress)
		log.Fatal(http.ListenAndServe(debugAddress, debugMux))
	}()

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", srv.ClientHandler()))

	timeouts := common.LoadTimeoutConfig(common.TimeoutConfig{
		ReadHeader: 5 * time.Second,
		Read:       30 * time.Second,
		Write:      30 * time.Second,
		Idle:       60 * time.Second,
		Shutdown:   15 * time.Second,
		Hook:       5 * time.Second,
	})
	apiServer := common.NewServerWithTimeouts(&http.Server{Addr: listenAddress, Handler: mux}, timeouts)
	common.RunServerWithShutdown(apiServer, "storefront api", timeouts.Shutdown, timeouts.Hook, storageHook, trackingHook)
}
