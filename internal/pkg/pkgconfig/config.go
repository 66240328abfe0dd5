package pkgconfig

// Config is the read-only view of application configuration.
type Config interface {
	GetInt(key string) int64
	GetBool(key string) bool
	GetString(key string) string
	GetArray(key string) []string

	// Unmarshal decodes a structured section into out using mapstructure tags.
	Unmarshal(key string, out any) error

	Close() error
}
