package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	VisitStoreMemory   = "memory"
	VisitStoreRedis    = "redis"
	VisitStorePostgres = "postgres"
)

type Config struct {
	Port                string
	BackendURL          string
	BackendTimeout      time.Duration
	VisitStore          string
	VisitTTL            time.Duration
	KafkaBroker         string
	CartEventsTopic     string
	SwitchPolicy        string
	ReservationDuration time.Duration
	PublicBaseURL       string
	AllowedOrigins      []string
}

// Load reads the environment, after merging an optional .env file from the working
// directory. Variables already set in the environment win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8084"),
		BackendURL:          getEnv("BACKEND_URL", "http://localhost:8000"),
		BackendTimeout:      getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		VisitStore:          strings.ToLower(getEnv("VISIT_STORE", VisitStoreMemory)),
		VisitTTL:            getEnvAsDuration("VISIT_TTL", 0),
		KafkaBroker:         os.Getenv("KAFKA_BROKER"),
		CartEventsTopic:     getEnv("CART_EVENTS_TOPIC", "cart-events"),
		SwitchPolicy:        getEnv("SWITCH_POLICY", "auto_clear"),
		ReservationDuration: getEnvAsDuration("RESERVATION_DURATION", 2*time.Hour),
		PublicBaseURL:       getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		AllowedOrigins:      getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive, got %s", c.BackendTimeout)
	}
	switch c.VisitStore {
	case VisitStoreMemory, VisitStoreRedis, VisitStorePostgres:
	default:
		return fmt.Errorf("VISIT_STORE must be one of memory, redis, postgres, got %q", c.VisitStore)
	}
	if c.ReservationDuration <= 0 {
		return fmt.Errorf("RESERVATION_DURATION must be positive, got %s", c.ReservationDuration)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("90s", "2h") or a bare number of seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second
	}
	log.Printf("WARN: invalid %s=%q, using %s", key, raw, defaultValue)
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns nil when no broker is configured; events are then not published.
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
