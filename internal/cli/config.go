// Robot description loading for the gearbox CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-robotics/gearbox/pkg/transmission"
)

const (
	configFileName = "gearbox"
	configFileType = "yaml"

	cfgKeyTransmissions = "transmissions"
)

// errNoTransmissions reports a well-formed description with nothing in it.
var errNoTransmissions = errors.New("robot description defines no transmissions")

// loadTransmissions reads the robot description with Viper. If path is
// empty, gearbox.yaml is searched in the working directory and then the
// user config directory.
func loadTransmissions(path string) ([]transmission.Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "gearbox"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading robot description: %w", err)
	}

	var configs []transmission.Config
	if err := v.UnmarshalKey(cfgKeyTransmissions, &configs); err != nil {
		return nil, fmt.Errorf("parsing transmissions: %w", err)
	}
	if len(configs) == 0 {
		return nil, errNoTransmissions
	}
	return configs, nil
}

// findTransmission returns the config with the given name.
func findTransmission(configs []transmission.Config, name string) (transmission.Config, error) {
	for _, cfg := range configs {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return transmission.Config{}, fmt.Errorf("transmission %q is not in the robot description", name)
}
