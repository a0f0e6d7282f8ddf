package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyUUID    = key("uuid")
	KeyRole    = key("role")
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Service    Service
	Platform   Platform
	Logger     Logger
	Metrics    Metrics
	Postgres   ReadWriteEnv
	Storage    Storage
	Realtime   Realtime
	Centrifuge Centrifuge
	Redis      Redis
	Kafka      Kafka
	RateLimit  RateLimit
}

type Service struct {
	Port string `env:"CONVERSATION_SERVICE_PORT" env-default:"8080"`
	Name string `env:"CONVERSATION_SERVICE_NAME" env-default:"conversation-service"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

type Logger struct {
	Host string `env:"LOGGER_SERVICE_HOST"`
	Port string `env:"LOGGER_SERVICE_PORT"`
}

type Metrics struct {
	Host string `env:"GRAFANA_HOST"`
	Port int    `env:"GRAFANA_PORT"`
}

type ReadWriteEnv struct {
	User     string `env:"CONVERSATION_SERVICE_POSTGRES_USER"`
	Password string `env:"CONVERSATION_SERVICE_POSTGRES_PASSWORD"`
	Database string `env:"CONVERSATION_SERVICE_POSTGRES_DB"`
	Host     string `env:"CONVERSATION_SERVICE_POSTGRES_HOST"`
	Port     string `env:"CONVERSATION_SERVICE_POSTGRES_PORT" env-default:"5432"`
}

type Storage struct {
	Driver string `env:"CONVERSATION_SERVICE_STORAGE_DRIVER" env-default:"postgres"`
}

type Realtime struct {
	JWTSecret    string        `env:"REALTIME_JWT_SECRET" env-required:"true"`
	TokenTTL     time.Duration `env:"REALTIME_TOKEN_TTL" env-default:"30m"`
	SendBuffer   int           `env:"REALTIME_SEND_BUFFER" env-default:"64"`
	WriteWait    time.Duration `env:"REALTIME_WRITE_WAIT" env-default:"10s"`
	PongWait     time.Duration `env:"REALTIME_PONG_WAIT" env-default:"60s"`
	PingPeriod   time.Duration `env:"REALTIME_PING_PERIOD" env-default:"50s"`
	InstanceName string        `env:"REALTIME_INSTANCE_NAME"`
}

type Centrifuge struct {
	BaseURL string        `env:"CENTRIFUGO_BASE_URL"`
	APIKey  string        `env:"CENTRIFUGO_API_KEY"`
	Timeout time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Redis struct {
	URL     string `env:"REDIS_URL"`
	Channel string `env:"REDIS_RELAY_CHANNEL" env-default:"conversation-events"`
}

type Kafka struct {
	Host         string `env:"KAFKA_HOST"`
	Port         string `env:"KAFKA_PORT"`
	BookingTopic string `env:"BOOKING_CONFIRMED_TOPIC" env-default:"booking-confirmed"`
	EventsTopic  string `env:"CONVERSATION_EVENTS_TOPIC"`
}

type RateLimit struct {
	SendRPS     float64 `env:"RATE_LIMIT_SEND_RPS" env-default:"5"`
	SendBurst   int     `env:"RATE_LIMIT_SEND_BURST" env-default:"10"`
	TypingRPS   float64 `env:"RATE_LIMIT_TYPING_RPS" env-default:"2"`
	TypingBurst int     `env:"RATE_LIMIT_TYPING_BURST" env-default:"4"`
}

func MustLoad() *Config {
	// .env is optional, real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		log.Fatalf("failed to read env variables: %s", err)
	}

	return cfg
}

func (k Kafka) Enabled() bool {
	return k.Host != "" && k.Port != ""
}

func (k Kafka) Brokers() []string {
	return []string{k.Host + ":" + k.Port}
}
