package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultListen   = ":9000"
	defaultDatabase = "panchangad.sqlite"
)

type Config struct {
	Listen   string   `yaml:"listen"`
	Database string   `yaml:"database"`
	Location Location `yaml:"location"`
	Jobs     []Job    `yaml:"jobs"`
}

// Location is the observer location used for the sunrise-aligned
// almanac jobs. The UTC offset fixes the civil clock the almanac
// reports in; there is no timezone-database lookup.
type Location struct {
	Latitude         float64 `yaml:"latitude"`
	Longitude        float64 `yaml:"longitude"`
	UTCOffsetMinutes int     `yaml:"utc_offset_minutes"`
}

// Job defines when to compute and record the daily almanac. Schedule
// is either the literal "@sunrise" or a standard cron expression.
type Job struct {
	Schedule string `yaml:"schedule"`
}

func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var config Config
	err = yaml.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	if config.Listen == "" {
		config.Listen = defaultListen
	}
	if config.Database == "" {
		config.Database = defaultDatabase
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range", c.Location.Longitude)
	}
	if c.Location.UTCOffsetMinutes < -14*60 || c.Location.UTCOffsetMinutes > 14*60 {
		return fmt.Errorf("utc offset %d out of range", c.Location.UTCOffsetMinutes)
	}
	for _, job := range c.Jobs {
		if job.Schedule == "" {
			return fmt.Errorf("job with empty schedule")
		}
	}

	return nil
}
