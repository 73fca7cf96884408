package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tutils/trand/entropy"
	"github.com/tutils/trand/entropy/httpsrc"
	"github.com/tutils/trand/entropy/system"
	"github.com/tutils/trand/entropy/websocket"
)

// newFetcher picks a fetcher from the authority address scheme. An empty
// address returns nil, meaning the seed is derived locally.
func newFetcher() (entropy.Fetcher, error) {
	addr := viper.GetString("authority")
	opts := []entropy.ClientOption{
		entropy.WithAddress(addr),
		entropy.WithSize(viper.GetInt("fetch-size")),
		entropy.WithTimeout(viper.GetDuration("timeout")),
		entropy.WithLogger(logger),
	}

	switch {
	case addr == "":
		return nil, nil
	case addr == "system":
		return system.NewFetcher(opts...), nil
	case strings.HasPrefix(addr, "http://"), strings.HasPrefix(addr, "https://"):
		return httpsrc.NewFetcher(opts...), nil
	case strings.HasPrefix(addr, "ws://"), strings.HasPrefix(addr, "wss://"):
		return websocket.NewFetcher(opts...), nil
	}
	return nil, fmt.Errorf("unsupported authority address %q", addr)
}
