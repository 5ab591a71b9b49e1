package cmd

// Config carries the environment-driven settings of the application.
// AmqpURL is optional: when empty the engine runs with in-process fan-out
// only.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	AmqpURL    string

	EventBufferSize      int
	CounterRetentionDays int
}
