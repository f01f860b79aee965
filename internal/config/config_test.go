package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		MaxFogNodes:          10,
		CostThreshold:        5.0,
		BackboneDegreeFactor: 0.6,
		DeviceSampling:       SamplingDeterministic,
		BaseAddress:          "10.0.0.1",
		DeviceNodeTypes: []DeviceType{
			{Image: "emufog/device", ScalingFactor: 1, AverageCount: 2.5},
		},
		FogNodeTypes: []FogType{
			{Image: "emufog/fog", Cost: 5.0, MaxClients: 50},
		},
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cost threshold", func(c *Config) { c.CostThreshold = 0 }},
		{"negative fog budget", func(c *Config) { c.MaxFogNodes = -1 }},
		{"unknown sampling mode", func(c *Config) { c.DeviceSampling = "uniform" }},
		{"bad base address", func(c *Config) { c.BaseAddress = "nope" }},
		{"no device types", func(c *Config) { c.DeviceNodeTypes = nil }},
		{"no fog types", func(c *Config) { c.FogNodeTypes = nil }},
		{"device type without image", func(c *Config) { c.DeviceNodeTypes[0].Image = "" }},
		{"fog type without clients", func(c *Config) { c.FogNodeTypes[0].MaxClients = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestContainerConversion(t *testing.T) {
	cfg := validConfig()

	devices := cfg.DeviceContainers()
	require.Len(t, devices, 1)
	assert.Equal(t, "emufog/device", devices[0].Image)
	assert.Equal(t, 1, devices[0].ScalingFactor)
	assert.InDelta(t, 2.5, devices[0].AverageCount, 1e-6)

	fogs := cfg.FogContainers()
	require.Len(t, fogs, 1)
	assert.InDelta(t, 5.0, fogs[0].Cost, 1e-6)
	assert.Equal(t, 50, fogs[0].MaxClients)
}
