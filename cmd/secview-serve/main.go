// secview-serve hands the polygon dataset to viewers and serves the static
// front end.
//
// Usage:
//
//	secview-serve --addr :3000 --data data/vertices.json --public public
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"secview/internal/config"
	"secview/internal/server"
)

func main() {
	cfgPath := flag.String("config", "secview.yaml", "YAML config file")
	addr := flag.String("addr", "", "listen address (overrides config and PORT)")
	data := flag.String("data", "", "dataset JSON file")
	public := flag.String("public", "", "static files directory")
	release := flag.Bool("release", false, "run gin in release mode")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *data != "" {
		cfg.Server.DataFile = *data
	}
	if *public != "" {
		cfg.Server.PublicDir = *public
	}
	if *release {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := server.Run(ctx, cfg.Server.Addr, server.NewRouter(cfg.Server)); err != nil {
		log.Fatal(err)
	}
}
