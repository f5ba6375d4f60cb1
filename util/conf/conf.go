package conf

// Package conf holds the configuration of the external morphological
// analyzer invocation, read from a YAML file with environment overrides.

import (
	"github.com/ilyakaznacheev/cleanenv"
)

type Analyzer struct {
	Command      string   `yaml:"command" env:"ARAPIPE_ANALYZER_CMD" env-default:"java"`
	Args         []string `yaml:"args"`
	WorkDir      string   `yaml:"workdir" env:"ARAPIPE_ANALYZER_WORKDIR"`
	ReportSuffix string   `yaml:"report_suffix" env:"ARAPIPE_REPORT_SUFFIX" env-default:".ma"`
	Strict       bool     `yaml:"strict" env:"ARAPIPE_STRICT"`
}

func ReadFile(filename string) (*Analyzer, error) {
	var cfg Analyzer
	if err := cleanenv.ReadConfig(filename, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
