package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
)

type config struct {
	Width  int
	Height int
	Title  string
	TPS    int
	Vsync  bool
	Debug  bool

	// Shapefile is an optional .shp file whose polygons the demo shows.
	Shapefile string
}

func defaultConfig() config {
	return config{
		Width:     800,
		Height:    600,
		Title:     "Retain",
		TPS:       60,
		Vsync:     true,
		Debug:     false,
		Shapefile: ""}
}

// readConfig decodes the TOML file at path over the defaults. An empty path
// yields the defaults. Unknown keys are logged and otherwise ignored.
func readConfig(path string, logger *slog.Logger) (config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}

	meta, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		logger.Warn("unknown config key", "file", path, "key", key.String())
	}
	if err := conf.validate(); err != nil {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, nil
}

func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return errors.New("TPS must be positive")
	}
	return nil
}
