package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	platformkafka "github.com/shestoi/GoGrocery/platform/kafka"
	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
)

// Env представляет окружение приложения
type Env string

const (
	// EnvLocal - локальное окружение (для разработки на хосте)
	EnvLocal Env = "local"
	// EnvDocker - Docker окружение (для запуска в контейнерах)
	EnvDocker Env = "docker"
)

// Config содержит конфигурацию Ordering Service.
// Адреса backend-ов приходят из окружения и собираются один раз на старте
// процесса - скрытого глобального состояния нет, конфигурация передаётся
// в app.Build явно
type Config struct {
	AppEnv   Env
	HTTPAddr string
	// AisleGRPCAddrs - адрес backend-а каждого из пяти отделов
	AisleGRPCAddrs  map[domain.Category]string
	PricingGRPCAddr string
	// AisleTimeout - индивидуальный таймаут вызова одного отдела
	AisleTimeout   time.Duration
	PricingTimeout time.Duration
	// TelemetryQueueSize - размер очереди асинхронной публикации телеметрии
	TelemetryQueueSize int
	Kafka              platformkafka.Config
	ShutdownTimeout    time.Duration

	OTelEnabled       bool
	OTelEndpoint      string
	OTelSamplingRatio float64
}

// Порты отделов в порядке domain.Categories()
var aisleDefaultPorts = map[domain.Category]int{
	domain.CategoryBread:   50051,
	domain.CategoryDairy:   50052,
	domain.CategoryMeat:    50053,
	domain.CategoryProduce: 50054,
	domain.CategoryParty:   50055,
}

// Load загружает конфигурацию из переменных окружения
// Читает APP_ENV и устанавливает дефолты в зависимости от окружения
func Load() (Config, error) {
	cfg := Config{}

	appEnvStr := getString("APP_ENV", string(EnvLocal))
	appEnv := Env(appEnvStr)
	if appEnv != EnvLocal && appEnv != EnvDocker {
		return Config{}, fmt.Errorf("invalid APP_ENV: %s (must be 'local' or 'docker')", appEnvStr)
	}
	cfg.AppEnv = appEnv

	// HTTP_ADDR
	if cfg.AppEnv == EnvLocal {
		cfg.HTTPAddr = getString("HTTP_ADDR", "127.0.0.1:8080")
	} else {
		cfg.HTTPAddr = getString("HTTP_ADDR", "0.0.0.0:8080")
	}

	// AISLE_<NAME>_GRPC_ADDR, например AISLE_BREAD_GRPC_ADDR
	cfg.AisleGRPCAddrs = make(map[domain.Category]string, len(aisleDefaultPorts))
	for _, cat := range domain.Categories() {
		envName := fmt.Sprintf("AISLE_%s_GRPC_ADDR", strings.ToUpper(string(cat)))
		var def string
		if cfg.AppEnv == EnvLocal {
			def = fmt.Sprintf("127.0.0.1:%d", aisleDefaultPorts[cat])
		} else {
			def = fmt.Sprintf("aisle-%s:%d", cat, aisleDefaultPorts[cat])
		}
		cfg.AisleGRPCAddrs[cat] = getString(envName, def)
	}

	// PRICING_GRPC_ADDR
	if cfg.AppEnv == EnvLocal {
		cfg.PricingGRPCAddr = getString("PRICING_GRPC_ADDR", "127.0.0.1:50060")
	} else {
		cfg.PricingGRPCAddr = getString("PRICING_GRPC_ADDR", "pricing:50060")
	}

	var err error
	cfg.AisleTimeout, err = getDuration("AISLE_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.PricingTimeout, err = getDuration("PRICING_TIMEOUT", 5*time.Second)
	if err != nil {
		return Config{}, err
	}

	cfg.TelemetryQueueSize, err = getInt("TELEMETRY_QUEUE_SIZE", 256)
	if err != nil {
		return Config{}, err
	}

	cfg.Kafka = platformkafka.DefaultConfig()
	if err := platformkafka.LoadEnv(&cfg.Kafka); err != nil {
		return Config{}, fmt.Errorf("failed to load kafka config: %w", err)
	}
	if len(cfg.Kafka.Brokers) == 0 {
		if cfg.AppEnv == EnvLocal {
			cfg.Kafka.Brokers = []string{"localhost:19092"}
		} else {
			cfg.Kafka.Brokers = []string{"kafka:9092"}
		}
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

// getString возвращает значение переменной окружения или default
func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getDuration возвращает значение переменной окружения как time.Duration или default
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

// getInt возвращает значение переменной окружения как int или default
func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q: %w", key, v, err)
	}
	return n, nil
}

// getBool возвращает булево значение переменной окружения или default
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

// getFloat64 возвращает значение переменной окружения как float64 или default
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
