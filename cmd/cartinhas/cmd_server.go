package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/cartinhas/app/routes"
	"github.com/shashiranjanraj/cartinhas/app/services"
	"github.com/shashiranjanraj/cartinhas/internal/scryfall"
	"github.com/shashiranjanraj/cartinhas/internal/server"
	"github.com/shashiranjanraj/cartinhas/pkg/feed"
	"github.com/shashiranjanraj/cartinhas/pkg/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		hub := feed.NewHub()
		r := router.New()
		routes.RegisterAPI(r, routes.Services{
			Auth:     services.NewAuthService(nil),
			Cart:     services.NewCartService(services.NewMemoryCartStore(), nil),
			Catalog:  services.NewCatalogService(nil),
			Checkout: services.NewCheckoutService(nil, services.NewMemoryCartStore()),
			Orders:   services.NewOrderService(nil),
			Search:   scryfall.NewClient(),
			Hub:      hub,
		})

		infos := r.Routes()
		if len(infos) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
