package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jpfielding/dicomdict/pkg/dicos/dict"
	"github.com/jpfielding/dicomdict/pkg/util"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, DICTCTL_LOG_LEVEL for log-level
const EnvPrefix = "DICTCTL"

const (
	keyConfig       = "config"
	keyLogLevel     = "log-level"
	keyLogJSON      = "log-json"
	keyLogFile      = "log-file"
	keyLogMaxMB     = "log-max-mb"
	keyDictionaries = "dictionaries"
	keyUIDNamespace = "uid.namespace"
)

var flagKeys = map[string]string{
	"dict":      keyDictionaries,
	"namespace": keyUIDNamespace,
}

// bindFlags binds each flag to its config key, the flag name unless mapped
// in flagKeys
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		key := f.Name
		if k, ok := flagKeys[f.Name]; ok {
			key = k
		}
		_ = v.BindPFlag(key, f)
	})
}

// readConfig applies defaults, the environment and the --config file
func readConfig(v *viper.Viper) error {
	v.SetDefault(keyLogLevel, "INFO")
	v.SetDefault(keyLogMaxMB, 10)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	path := v.GetString(keyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// loadDictionary returns the built-in dictionary, or a copy of it extended
// with the configured descriptors in order
func loadDictionary(ctx context.Context, v *viper.Viper) (*dict.Dictionary, error) {
	paths := v.GetStringSlice(keyDictionaries)
	if len(paths) == 0 {
		return dict.Default(), nil
	}
	d := dict.New()
	d.Merge(dict.Default())
	for _, path := range paths {
		if err := loadFile(d, path); err != nil {
			return nil, err
		}
		slog.DebugContext(ctx, "loaded dictionary", "path", path, "entries", d.Len())
	}
	return d, nil
}

func loadFile(d *dict.Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	if err := d.Load(f); err != nil {
		return fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return nil
}

// namespace returns the configured UUID namespace for name based UID
// derivation, nil when unset. Text that is not a UUID names one.
func namespace(v *viper.Viper) (*uuid.UUID, error) {
	text := v.GetString(keyUIDNamespace)
	if text == "" {
		return nil, nil
	}
	ns, err := util.ParseOrHashUUID(text)
	if err != nil {
		return nil, fmt.Errorf("uid namespace %q: %w", text, err)
	}
	return &ns, nil
}
