// Package bridge assembles the pin update feeds in front of a Controller.
package bridge

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/denisbrodbeck/machineid"

	fx "github.com/robotalks/hitl.go/pkg/framework"
	"github.com/robotalks/hitl.go/pkg/feed"
	"github.com/robotalks/hitl.go/pkg/feed/mqtt"
	"github.com/robotalks/hitl.go/pkg/feed/stream"
	"github.com/robotalks/hitl.go/pkg/feed/websocket"
	"github.com/robotalks/hitl.go/pkg/pins"
)

// Config defines which feeds the bridge serves.
type Config struct {
	// ID identifies the bridge, used in MQTT topics.
	ID string
	// MQTTURL is the broker, e.g. mqtt://localhost:1883/hitl/
	// Empty disables MQTT.
	MQTTURL string
	// WebsocketAddr is the listen address, empty disables websocket.
	WebsocketAddr string
	// Stdin reads length-prefixed PinUpdate from stdin and replies to stdout.
	Stdin bool
}

var defaultConfig Config

func init() {
	defaultConfig.ID = MachineID()
	if val := os.Getenv("HITL_ID"); val != "" {
		defaultConfig.ID = val
	}
	if val := os.Getenv("HITL_MQTT_URL"); val != "" {
		defaultConfig.MQTTURL = val
	}
}

// MachineID retrieves the unique ID identifying the machine, falling back
// to the host name.
func MachineID() string {
	if id, err := machineid.ID(); err == nil {
		return id
	}
	if name, err := os.Hostname(); err == nil {
		return name
	}
	return "hitl"
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Bridge ID.")
	flag.StringVar(&defaultConfig.MQTTURL, "mqtt", defaultConfig.MQTTURL, "MQTT broker URL, empty to disable.")
	flag.StringVar(&defaultConfig.WebsocketAddr, "ws", defaultConfig.WebsocketAddr, "Websocket listen address, empty to disable.")
	flag.BoolVar(&defaultConfig.Stdin, "stdin", defaultConfig.Stdin, "Read pin updates from stdin.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewRunners creates a Runnable for each enabled feed.
func (c *Config) NewRunners(reg *pins.Registry, setter feed.Setter) ([]fx.Runnable, error) {
	var runners []fx.Runnable
	if c.Stdin {
		runners = append(runners, feed.New("stdin", stream.NewPair(os.Stdin, os.Stdout), setter))
	}
	if c.WebsocketAddr != "" {
		server := &http.Server{Addr: c.WebsocketAddr, Handler: websocket.Handler(setter)}
		runners = append(runners, fx.NamedRun("ws:"+c.WebsocketAddr, fx.RunFunc(func(ctx context.Context) error {
			return fx.RunWithContextCloser(ctx, server, server.ListenAndServe)
		})))
	}
	if c.MQTTURL != "" {
		if c.ID == "" {
			return nil, fmt.Errorf("bridge id is required for MQTT")
		}
		b, err := mqtt.NewBridge(c.MQTTURL, c.ID, reg, setter)
		if err != nil {
			return nil, fmt.Errorf("create MQTT bridge error: %v", err)
		}
		runners = append(runners, b)
	}
	if len(runners) == 0 {
		return nil, fmt.Errorf("at least one feed is required")
	}
	return runners, nil
}
