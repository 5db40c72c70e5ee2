package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"hexathello/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	path := "selfplay.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := loadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := experiments.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("self-play batch failed")
	}
}

func loadConfig(path string) (experiments.Config, error) {
	cfg := experiments.Config{
		Size:        5,
		PlayerCount: 2,
		Games:       10,
		Seed:        1,
		OutDir:      "selfplay",
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
