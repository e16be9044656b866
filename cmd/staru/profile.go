package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// profile is the optional YAML configuration for the CLI.
//
// Example:
//
//	globals:
//	  greeting: "hello"
//	  retries: 3
//	load_root: ./modules
//	history: ~/.staru_history
type profile struct {
	Globals  map[string]any `yaml:"globals"`
	LoadRoot string         `yaml:"load_root"`
	History  string         `yaml:"history"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
