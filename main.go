package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/flight-admin/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case app.BinGateway:
		return app.GatewayModules()
	case app.BinWatch:
		return []fx.Option{
			app.WatchModule(),
		}
	default:
		return append(app.GatewayModules(), app.WatchModule())
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: gateway|watch (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
