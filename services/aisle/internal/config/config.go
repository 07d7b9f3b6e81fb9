package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Env представляет окружение приложения
type Env string

const (
	EnvLocal  Env = "local"
	EnvDocker Env = "docker"
)

// Отделы магазина и их дефолтные gRPC порты.
// Один бинарник обслуживает ровно один отдел; каким именно - решает
// переменная окружения AISLE
var aislePorts = map[string]int{
	"bread":   50051,
	"dairy":   50052,
	"meat":    50053,
	"produce": 50054,
	"party":   50055,
}

// Config содержит конфигурацию Aisle Service
type Config struct {
	AppEnv   Env
	Aisle    string
	GRPCAddr string
	// InitialStock - стартовый запас каждого товара на полке
	InitialStock int32
	// WorkDelayPerItem - имитация времени сборки одной позиции
	WorkDelayPerItem time.Duration
	ShutdownTimeout  time.Duration

	OTelEnabled       bool
	OTelEndpoint      string
	OTelSamplingRatio float64
}

// Load загружает конфигурацию из переменных окружения
func Load() (Config, error) {
	cfg := Config{}

	appEnvStr := getString("APP_ENV", string(EnvLocal))
	appEnv := Env(appEnvStr)
	if appEnv != EnvLocal && appEnv != EnvDocker {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", appEnvStr)
	}
	cfg.AppEnv = appEnv

	// AISLE обязателен: без отдела сервис не имеет смысла
	cfg.Aisle = os.Getenv("AISLE")
	port, ok := aislePorts[cfg.Aisle]
	if !ok {
		return Config{}, fmt.Errorf("invalid AISLE: %q (must be bread/dairy/meat/produce/party)", cfg.Aisle)
	}

	// GRPC_ADDR
	if cfg.AppEnv == EnvLocal {
		cfg.GRPCAddr = getString("GRPC_ADDR", fmt.Sprintf("127.0.0.1:%d", port))
	} else {
		cfg.GRPCAddr = getString("GRPC_ADDR", fmt.Sprintf("0.0.0.0:%d", port))
	}

	stock, err := getInt32("INITIAL_STOCK", 25)
	if err != nil {
		return Config{}, err
	}
	cfg.InitialStock = stock

	cfg.WorkDelayPerItem, err = getDuration("WORK_DELAY_PER_ITEM", 0)
	if err != nil {
		return Config{}, err
	}

	cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	// OpenTelemetry
	cfg.OTelEnabled = getBool("OTEL_ENABLED", false)
	if cfg.AppEnv == EnvLocal {
		cfg.OTelEndpoint = getString("OTEL_EXPORTER_OTLP_ENDPOINT", "127.0.0.1:4317")
	} else {
		cfg.OTelEndpoint = getString("OTEL_EXPORTER_OTLP_ENDPOINT", "otel-collector:4317")
	}
	cfg.OTelSamplingRatio = getFloat64("OTEL_SAMPLING_RATIO", 1.0)

	return cfg, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt32(key string, def int32) (int32, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q: %w", key, v, err)
	}
	return int32(n), nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getFloat64(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
