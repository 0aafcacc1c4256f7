package config

import (
	"github.com/brocaar/lorawan"
)

// Version defines the ChirpStack Subnet Resolver version.
var Version string

// Config defines the configuration structure.
type Config struct {
	General struct {
		LogLevel int `mapstructure:"log_level"`
	}

	Subnet struct {
		// NetIDs contains the decoded NetID list, in configuration
		// order. The order defines the subnet address layout and must
		// not change between restarts without re-issuing previously
		// derived subnet addresses.
		NetIDs       []lorawan.NetID `mapstructure:"-"`
		NetIDStrings []string        `mapstructure:"net_ids"`
	} `mapstructure:"subnet"`
}

// C holds the global configuration.
var C Config
