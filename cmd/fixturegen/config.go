package main

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type fixtureGenConfig struct {
	// RenameRule is the canonical spelling of the container-level rename rule
	// applied to all fixture fields; empty means passthrough.
	RenameRule string `toml:"rename_rule"`
	OutputFile string `toml:"output_file"`
	LogLevel   string `toml:"log_level"`
}

func loadConfig(filePath string) (*fixtureGenConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read the configuration file")
	}

	config := &fixtureGenConfig{}
	err = toml.Unmarshal(data, config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse the configuration file")
	}

	if len(config.OutputFile) == 0 {
		config.OutputFile = "./fixtures.txt"
	}
	if len(config.LogLevel) == 0 {
		config.LogLevel = "*:INFO"
	}

	return config, nil
}
