package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	backendPeriph = "periph"
	backendRPIO   = "rpio"
	backendDryRun = "dryrun"

	defaultChipSelect    = "GPIO8"
	defaultChipSelectPin = 8
	defaultSpeed         = 10000000
	defaultIntensity     = 8
)

type Config struct {
	Backend   string `yaml:"backend"`
	Intensity int    `yaml:"intensity"`
	SPI       struct {
		Bus        string `yaml:"bus"`
		ChipSelect string `yaml:"chipSelect"`
	} `yaml:"spi"`
	RPIO struct {
		ChipSelectPin int `yaml:"chipSelectPin"`
		Speed         int `yaml:"speed"`
	} `yaml:"rpio"`
}

func readConfig(path string) (*Config, error) {
	if path == "" {
		return parseConfig(nil)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{
		Backend:   backendDryRun,
		Intensity: defaultIntensity,
	}
	c.SPI.ChipSelect = defaultChipSelect
	c.RPIO.ChipSelectPin = defaultChipSelectPin

	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	switch c.Backend {
	case backendPeriph:
		if c.SPI.ChipSelect == "" {
			return nil, fmt.Errorf("chip select pin is missing")
		}
	case backendRPIO:
		if c.RPIO.ChipSelectPin < 0 || c.RPIO.ChipSelectPin > 27 {
			return nil, fmt.Errorf("chip select pin %d is not a BCM GPIO", c.RPIO.ChipSelectPin)
		}
	case backendDryRun:
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Intensity < 0 || c.Intensity > 15 {
		return nil, fmt.Errorf("intensity must be between 0 and 15, got %d", c.Intensity)
	}
	if c.RPIO.Speed <= 0 {
		c.RPIO.Speed = defaultSpeed
	}

	return c, nil
}
