package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/volunteer/internal/flagx"
	"github.com/dmitrijs2005/volunteer/internal/timex"
)

// jsonConfig is the on-disk form. Pointers tell absent keys from zero values.
type jsonConfig struct {
	DataPath       *string         `json:"data_path"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
	StorageTimeout *timex.Duration `json:"storage_timeout"`
}

// parseJSON overlays cfg with the JSON file named by -c or -config. Without
// such a flag it does nothing.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.DataPath != nil {
		cfg.DataPath = *jc.DataPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
	if jc.StorageTimeout != nil {
		cfg.StorageTimeout = jc.StorageTimeout.Duration
	}
	return nil
}
