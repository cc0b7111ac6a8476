package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":8080"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-default:""`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// CartStore configures the durable cart mirror.
type CartStore struct {
	KeyPrefix string        `yaml:"KEY_PREFIX" env:"CART_KEY_PREFIX" env-default:"cart"`
	TTL       time.Duration `yaml:"TTL" env:"CART_TTL" env-default:"720h"`
}

// OrderSim tunes the mocked order endpoint: fixed processing delay and
// the probability of a simulated payment decline.
type OrderSim struct {
	ProcessingDelay time.Duration `yaml:"PROCESSING_DELAY" env:"ORDER_PROCESSING_DELAY" env-default:"1500ms"`
	FailureRate     float64       `yaml:"FAILURE_RATE" env:"ORDER_FAILURE_RATE" env-default:"0.1"`
	CounterSeed     int64         `yaml:"COUNTER_SEED" env:"ORDER_COUNTER_SEED" env-default:"1000"`
}

type Checkout struct {
	TaxRate float64 `yaml:"TAX_RATE" env:"CHECKOUT_TAX_RATE" env-default:"0.19"`
}

// OrderAPI points the checkout service at the order endpoint. For the
// demo this is the same process, but it stays a URL so the mock can be
// hosted elsewhere.
type OrderAPI struct {
	BaseURL string        `yaml:"BASE_URL" env:"ORDER_API_BASE_URL" env-default:"http://localhost:8080"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"ORDER_API_TIMEOUT" env-default:"10s"`
}

type Telemetry struct {
	Enabled      bool   `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	ServiceName  string `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"developer-store"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer   `yaml:"http_server"`
	RedisConnect RedisConnect `yaml:"redis"`
	CartStore    CartStore    `yaml:"cart_store"`
	OrderSim     OrderSim     `yaml:"order_sim"`
	Checkout     Checkout     `yaml:"checkout"`
	OrderAPI     OrderAPI     `yaml:"order_api"`
	Telemetry    Telemetry    `yaml:"telemetry"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags
	}

	var cfg Config

	if configPath == "" {
		// Environment-only configuration.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("can not read config from environment: %s", err.Error())
		}

		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return &cfg
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d",
		r.Username, r.Password, r.Host, r.Port, r.DB)
}
