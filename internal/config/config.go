// Package config loads the emufog configuration through viper and checks
// it with struct-tag validation before any pipeline stage runs.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/unly/emufog/internal/graph"
)

// Device sampling modes.
const (
	SamplingPoisson       = "poisson"
	SamplingDeterministic = "deterministic"
)

// ErrInvalid marks a fatal configuration error detected at startup.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all recognised options of a transformation run.
type Config struct {
	MaxFogNodes          int     `mapstructure:"max_fog_nodes" validate:"gte=0"`
	CostThreshold        float32 `mapstructure:"cost_threshold" validate:"gt=0"`
	BackboneDegreeFactor float32 `mapstructure:"backbone_degree_factor" validate:"gt=0"`
	DeviceSampling       string  `mapstructure:"device_sampling" validate:"oneof=poisson deterministic"`
	Seed                 uint64  `mapstructure:"seed"`
	TimeMeasuring        bool    `mapstructure:"time_measuring"`
	BaseAddress          string  `mapstructure:"base_address" validate:"ip4_addr"`

	DeviceNodeTypes []DeviceType `mapstructure:"device_node_types" validate:"min=1,dive"`
	FogNodeTypes    []FogType    `mapstructure:"fog_node_types" validate:"min=1,dive"`
}

// DeviceType configures one device container image.
type DeviceType struct {
	Image         string  `mapstructure:"image" validate:"required"`
	Tag           string  `mapstructure:"tag"`
	MemoryLimit   uint64  `mapstructure:"memory_limit"`
	CPUShare      float32 `mapstructure:"cpu_share"`
	ScalingFactor int     `mapstructure:"scaling_factor" validate:"gte=1"`
	AverageCount  float32 `mapstructure:"average_count" validate:"gt=0"`
}

// Container converts the config entry into the graph-level device container.
func (t DeviceType) Container() graph.DeviceContainer {
	return graph.DeviceContainer{
		Container: graph.Container{
			Image:       t.Image,
			Tag:         t.Tag,
			MemoryLimit: t.MemoryLimit,
			CPUShare:    t.CPUShare,
		},
		ScalingFactor: t.ScalingFactor,
		AverageCount:  t.AverageCount,
	}
}

// FogType configures one fog container image.
type FogType struct {
	Image       string  `mapstructure:"image" validate:"required"`
	Tag         string  `mapstructure:"tag"`
	MemoryLimit uint64  `mapstructure:"memory_limit"`
	CPUShare    float32 `mapstructure:"cpu_share"`
	Cost        float32 `mapstructure:"cost" validate:"gte=0"`
	MaxClients  int     `mapstructure:"max_clients" validate:"gte=1"`
}

// Container converts the config entry into the graph-level fog container.
func (t FogType) Container() graph.FogContainer {
	return graph.FogContainer{
		Container: graph.Container{
			Image:       t.Image,
			Tag:         t.Tag,
			MemoryLimit: t.MemoryLimit,
			CPUShare:    t.CPUShare,
		},
		Cost:       t.Cost,
		MaxClients: t.MaxClients,
	}
}

// DeviceContainers returns the graph-level device containers.
func (c *Config) DeviceContainers() []graph.DeviceContainer {
	types := make([]graph.DeviceContainer, len(c.DeviceNodeTypes))
	for i, t := range c.DeviceNodeTypes {
		types[i] = t.Container()
	}
	return types
}

// FogContainers returns the graph-level fog containers.
func (c *Config) FogContainers() []graph.FogContainer {
	types := make([]graph.FogContainer, len(c.FogNodeTypes))
	for i, t := range c.FogNodeTypes {
		types[i] = t.Container()
	}
	return types
}

// Load unmarshals the configuration viper has read and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		BackboneDegreeFactor: 0.6,
		DeviceSampling:       SamplingDeterministic,
		Seed:                 1,
		BaseAddress:          "10.0.0.1",
	}

	if !viper.IsSet("max_fog_nodes") {
		return nil, fmt.Errorf("%w: option max_fog_nodes is missing", ErrInvalid)
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("%w: option %s failed %q check", ErrInvalid, first.Namespace(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
