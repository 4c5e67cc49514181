package main

import (
	batch "Facade/internal/calc/batch"
	importer "Facade/internal/calc/importer"
	openings "Facade/internal/calc/openings"
	recommend "Facade/internal/calc/recommend"
	report "Facade/internal/calc/report"
	config "Facade/internal/config"
	middleware "Facade/internal/middleware"
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func HandleList(router *mux.Router, cfg config.Config, store *openings.Store) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	openingsH := &openings.Handler{Store: store}
	batchH := &batch.Handler{Store: store}
	importH := &importer.Handler{Store: store}
	recommendH := &recommend.Handler{Store: store}
	reportH := &report.Handler{Store: store, Locale: cfg.ReportLocale}

	api.HandleFunc("/openings/calc", openingsH.Calc).Methods("POST")
	api.HandleFunc("/openings/tables", openingsH.Tables).Methods("GET")
	api.HandleFunc("/openings/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/openings/import", importH.Facades).Methods("POST")
	api.HandleFunc("/openings/recommend", recommendH.Distance).Methods("POST")
	api.HandleFunc("/openings/report", reportH.Generate).Methods("POST")
}

func loadStore(cfg config.Config) (*openings.Store, error) {
	if cfg.TablesFile == "" {
		return openings.DefaultStore(), nil
	}
	return openings.LoadStoreFile(cfg.TablesFile)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	store, err := loadStore(cfg)
	if err != nil {
		log.Fatalf("Loading reference tables: %v", err)
	}

	router := mux.NewRouter()
	HandleList(router, cfg, store)
	handler := middleware.CORS(cfg.CORSOrigin, router)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
	log.Printf("Starting server on %s", cfg.HTTPAddr)

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error stopping server: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
