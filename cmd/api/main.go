package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/ispnetops/ipam/docs"
	api "github.com/ispnetops/ipam/internal/app"
)

//	@title			IPAM API
//	@version		1.0
//	@description	IPv4 subnet and address pool engine for ISP provisioning.

//	@contact.name	Network Operations
//	@contact.email	netops@example.com

//	@license.name	MIT

//	@host		localhost:4040
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
