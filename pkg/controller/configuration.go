package controller

import (
	"github.com/openhlx/hlxproxyd/pkg/proto"
	"github.com/openhlx/hlxproxyd/pkg/servercm"
)

// Configuration implements the ConfigurationController (spec.md §4.5
// Configuration): answers a single QX request by concatenating every
// other controller's QueryCurrentConfiguration output, in the fixed order
// spec.md §4.5 specifies (Favorites, Sources, EqualizerPresets, FrontPanel,
// Infrared, Network, Zones, Groups).
type Configuration struct {
	Basis
	controllers []Controller
}

// NewConfiguration constructs a configuration controller over the other
// eight object controllers, in dump order.
func NewConfiguration(basis Basis, favorites, sources, presets, frontPanel, infrared, network, zones, groups Controller) *Configuration {
	return &Configuration{
		Basis: basis,
		controllers: []Controller{
			favorites, sources, presets, frontPanel, infrared, network, zones, groups,
		},
	}
}

// Init registers the configuration dump request.
func (c *Configuration) Init() {
	c.Server.RegisterRequest("configuration:dump", proto.ReqConfigurationDump, 1, c.onDump)
}

func (c *Configuration) onDump(conn servercm.Connection, body []byte, groups []string) {
	for _, controller := range c.controllers {
		for _, line := range splitRecords(controller.QueryCurrentConfiguration()) {
			c.Server.SendResponse(conn, line)
		}
	}
	c.Server.SendResponse(conn, []byte("QX"))
}

// splitRecords un-frames a buffer of concatenated proto.Wrap records back
// into individual bodies, since every QueryCurrentConfiguration
// implementation returns its lines pre-wrapped for direct upstream-style
// concatenation but SendResponse wraps its argument itself.
func splitRecords(buffer []byte) [][]byte {
	framer := proto.NewFramer()
	return framer.Feed(buffer)
}

// QueryCurrentConfiguration is not meaningful for the Configuration
// controller itself (spec.md §4.5: only the eight object controllers are
// iterated); it satisfies the Controller interface with an empty result so
// it can still be composed uniformly if ever needed.
func (c *Configuration) QueryCurrentConfiguration() []byte { return nil }
