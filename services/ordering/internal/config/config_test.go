package config

import (
	"os"
	"testing"
	"time"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
)

func TestLoad_LocalDefaults(t *testing.T) {
	// Очищаем env
	os.Clearenv()
	os.Setenv("APP_ENV", "local")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppEnv != EnvLocal {
		t.Errorf("Expected AppEnv=local, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != "127.0.0.1:8080" {
		t.Errorf("Expected HTTPAddr=127.0.0.1:8080, got %s", cfg.HTTPAddr)
	}
	if cfg.AisleGRPCAddrs[domain.CategoryBread] != "127.0.0.1:50051" {
		t.Errorf("Expected bread addr=127.0.0.1:50051, got %s", cfg.AisleGRPCAddrs[domain.CategoryBread])
	}
	if cfg.AisleGRPCAddrs[domain.CategoryParty] != "127.0.0.1:50055" {
		t.Errorf("Expected party addr=127.0.0.1:50055, got %s", cfg.AisleGRPCAddrs[domain.CategoryParty])
	}
	if cfg.PricingGRPCAddr != "127.0.0.1:50060" {
		t.Errorf("Expected PricingGRPCAddr=127.0.0.1:50060, got %s", cfg.PricingGRPCAddr)
	}
	if cfg.AisleTimeout != 10*time.Second {
		t.Errorf("Expected AisleTimeout=10s, got %s", cfg.AisleTimeout)
	}
	if cfg.PricingTimeout != 5*time.Second {
		t.Errorf("Expected PricingTimeout=5s, got %s", cfg.PricingTimeout)
	}
	if cfg.TelemetryQueueSize != 256 {
		t.Errorf("Expected TelemetryQueueSize=256, got %d", cfg.TelemetryQueueSize)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "localhost:19092" {
		t.Errorf("Expected Kafka brokers=[localhost:19092], got %v", cfg.Kafka.Brokers)
	}
	if cfg.Kafka.TelemetryTopic != "order.telemetry" {
		t.Errorf("Expected TelemetryTopic=order.telemetry, got %s", cfg.Kafka.TelemetryTopic)
	}
	if cfg.OTelEnabled {
		t.Error("Expected OTelEnabled=false by default")
	}
	if cfg.OTelEndpoint != "127.0.0.1:4317" {
		t.Errorf("Expected OTelEndpoint=127.0.0.1:4317, got %s", cfg.OTelEndpoint)
	}
	if cfg.OTelSamplingRatio != 1.0 {
		t.Errorf("Expected OTelSamplingRatio=1.0, got %f", cfg.OTelSamplingRatio)
	}
}

func TestLoad_DockerDefaults(t *testing.T) {
	// Очищаем env
	os.Clearenv()
	os.Setenv("APP_ENV", "docker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppEnv != EnvDocker {
		t.Errorf("Expected AppEnv=docker, got %s", cfg.AppEnv)
	}
	if cfg.HTTPAddr != "0.0.0.0:8080" {
		t.Errorf("Expected HTTPAddr=0.0.0.0:8080, got %s", cfg.HTTPAddr)
	}
	if cfg.AisleGRPCAddrs[domain.CategoryBread] != "aisle-bread:50051" {
		t.Errorf("Expected bread addr=aisle-bread:50051, got %s", cfg.AisleGRPCAddrs[domain.CategoryBread])
	}
	if cfg.PricingGRPCAddr != "pricing:50060" {
		t.Errorf("Expected PricingGRPCAddr=pricing:50060, got %s", cfg.PricingGRPCAddr)
	}
	if len(cfg.Kafka.Brokers) != 1 || cfg.Kafka.Brokers[0] != "kafka:9092" {
		t.Errorf("Expected Kafka brokers=[kafka:9092], got %v", cfg.Kafka.Brokers)
	}
	if cfg.OTelEndpoint != "otel-collector:4317" {
		t.Errorf("Expected OTelEndpoint=otel-collector:4317, got %s", cfg.OTelEndpoint)
	}
}

func TestLoad_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "local")
	os.Setenv("AISLE_DAIRY_GRPC_ADDR", "10.0.0.5:6000")
	os.Setenv("AISLE_TIMEOUT", "2s")
	os.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	os.Setenv("OTEL_ENABLED", "true")
	os.Setenv("OTEL_SAMPLING_RATIO", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AisleGRPCAddrs[domain.CategoryDairy] != "10.0.0.5:6000" {
		t.Errorf("Expected dairy addr=10.0.0.5:6000, got %s", cfg.AisleGRPCAddrs[domain.CategoryDairy])
	}
	if cfg.AisleTimeout != 2*time.Second {
		t.Errorf("Expected AisleTimeout=2s, got %s", cfg.AisleTimeout)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("Expected 2 Kafka brokers, got %v", cfg.Kafka.Brokers)
	}
	if !cfg.OTelEnabled {
		t.Error("Expected OTelEnabled=true")
	}
	if cfg.OTelSamplingRatio != 0.25 {
		t.Errorf("Expected OTelSamplingRatio=0.25, got %f", cfg.OTelSamplingRatio)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_ENV", "staging")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected error for invalid APP_ENV, got nil")
	}
}
