package pkgconfig

import (
	"errors"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper

	fromFile bool
}

// NewViper loads configuration from the given file path and returns a Viper-backed Config.
//
// The config file type is inferred by Viper from the filename extension.
// Defaults are registered before the file is read, so keys missing from the
// file fall back to them.
func NewViper(pathFile string, defaults map[string]any) (*Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	filename := path.Base(pathFile)
	filePath := path.Dir(pathFile)

	configName := path.Base(filename[:len(filename)-len(path.Ext(filename))])

	v.AddConfigPath(filePath)
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return &Viper{v: v, fromFile: true}, nil
}

// NewViperOrDefaults behaves like NewViper but falls back to the defaults
// alone when the config file does not exist. Any other read error is returned.
func NewViperOrDefaults(pathFile string, defaults map[string]any) (*Viper, error) {
	cfg, err := NewViper(pathFile, defaults)
	if err == nil {
		return cfg, nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	return &Viper{v: v}, nil
}

// FromFile reports whether a config file was read.
func (vc *Viper) FromFile() bool {
	return vc.fromFile
}

// GetInt returns the value for key as int64.
func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

// GetBool returns the value for key as bool.
func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

// GetString returns the value for key as string.
func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

// GetArray returns the value for key split by commas.
func (vc *Viper) GetArray(key string) []string {
	raw := vc.v.GetString(key)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// Unmarshal decodes the section at key into out.
func (vc *Viper) Unmarshal(key string, out any) error {
	return vc.v.UnmarshalKey(key, out)
}

// Close implements io.Closer for interface compatibility.
func (vc *Viper) Close() error {
	// No resources to close for ViperConfig; this is just for interface completeness.
	return nil
}
