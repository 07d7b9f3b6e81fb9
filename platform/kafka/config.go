package kafka

// Config содержит конфигурацию для подключения к Kafka
type Config struct {
	// Brokers — список брокеров Kafka, через который подключаются сервисы.
	// Значение зависит от среды выполнения:
	//   - локальная разработка (go run): localhost:19092
	//   - запуск в Docker: kafka:9092
	// Можно указать несколько брокеров через запятую: "broker1:9092,broker2:9092"
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	// TelemetryTopic — топик, в который ordering публикует события о заказах
	// и из которого их читает analytics
	TelemetryTopic string `env:"KAFKA_TELEMETRY_TOPIC" envDefault:"order.telemetry"`
}

// DefaultConfig возвращает конфигурацию с дефолтными значениями для локальной разработки.
// Сервисы должны получать актуальные значения через переменные окружения
// (KAFKA_BROKERS, KAFKA_TELEMETRY_TOPIC).
func DefaultConfig() Config {
	return Config{
		Brokers:        []string{"localhost:19092"},
		TelemetryTopic: "order.telemetry",
	}
}
