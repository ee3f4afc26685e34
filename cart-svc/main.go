package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "restaurant-client/cart-svc/internal/api/http"
	"restaurant-client/cart-svc/internal/backend"
	"restaurant-client/cart-svc/internal/service"
	"restaurant-client/cart-svc/internal/storage"
	"restaurant-client/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	policy, ok := service.ParseSwitchPolicy(cfg.SwitchPolicy)
	if !ok {
		log.Fatalf("Invalid SWITCH_POLICY %q", cfg.SwitchPolicy)
	}

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	backendClient := backend.NewClient(backend.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
	}, httpClient)

	visits, closeVisits := newVisitStore(cfg)
	defer closeVisits()

	publisher, closePublisher := newPublisher(cfg)
	defer closePublisher()

	cartSvc := service.NewCartService(backendClient, visits, publisher, policy)
	orderSvc := service.NewOrderService(backendClient, publisher, service.ReceiptQRGenerator{BaseURL: cfg.PublicBaseURL})
	reservationSvc := service.NewReservationService(backendClient, publisher, cfg.ReservationDuration)

	handler := httpapi.NewHandler(cartSvc, orderSvc, reservationSvc)
	proxy := httpapi.NewProxy(cfg.BackendURL, httpClient)
	router := httpapi.NewRouter(handler, proxy, cfg.AllowedOrigins)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("[CART] backend=%s visit_store=%s switch_policy=%s", cfg.BackendURL, cfg.VisitStore, policy)
	if err := httpapi.StartServer(ctx, ":"+cfg.Port, router); err != nil {
		log.Fatal("Server error:", err)
	}
}

func newVisitStore(cfg *config.Config) (service.VisitStore, func()) {
	switch cfg.VisitStore {
	case config.VisitStoreRedis:
		rdb := config.MustInitRedis()
		return storage.NewRedisVisitStore(rdb, cfg.VisitTTL), closer("redis", rdb)
	case config.VisitStorePostgres:
		db := config.MustInitPostgres()
		store := storage.NewPostgresVisitStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		return store, closer("postgres", db)
	default:
		return storage.NewMemoryVisitStore(), func() {}
	}
}

// newPublisher returns a nil publisher when Kafka is not configured.
func newPublisher(cfg *config.Config) (service.EventPublisher, func()) {
	writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.CartEventsTopic)
	if writer == nil {
		log.Printf("[CART] KAFKA_BROKER not set, cart events disabled")
		return nil, func() {}
	}
	return storage.NewKafkaPublisher(writer), closer("kafka", writer)
}

func closer(name string, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Printf("ERROR: close %s: %v", name, err)
		}
	}
}
