package config

import "fmt"

// StorageBackend selects the persisted-state backend.
type StorageBackend string

const (
	// StorageRedis persists client state in Redis.
	StorageRedis StorageBackend = "redis"
	// StorageFile persists client state in a local JSON file.
	StorageFile StorageBackend = "file"
)

// UnmarshalText implements encoding.TextUnmarshaler for env parsing.
func (b *StorageBackend) UnmarshalText(text []byte) error {
	switch StorageBackend(text) {
	case StorageRedis, StorageFile:
		*b = StorageBackend(text)
		return nil
	case "":
		*b = StorageFile
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q (want %q or %q)", text, StorageRedis, StorageFile)
	}
}

// StorageConfig contains the persisted client-state configuration.
type StorageConfig struct {
	// Backend selects where session snapshots and UI preferences live.
	Backend StorageBackend `env:"STORAGE_BACKEND" envDefault:"file"`

	// FilePath is the state file location for the file backend.
	FilePath string `env:"STORAGE_FILE_PATH" envDefault:".fms-state.json"`

	// Redis connection settings for the redis backend.
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig contains Redis configuration shared by the state store
// and the query cache.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Sanitize applies guardrails to storage configuration values.
func (s *StorageConfig) Sanitize() {
	if s.Backend == "" {
		s.Backend = StorageFile
	}
	if s.FilePath == "" {
		s.FilePath = ".fms-state.json"
	}
	if s.Redis.Addr == "" {
		s.Redis.Addr = "localhost:6379"
	}
}
