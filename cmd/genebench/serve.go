package main

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genebench/genebench-go/pkg/logger"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve <workspace>",
	Short: "Serve the rendered dashboard over HTTP",
	Long: `Serve the workspace directory over HTTP so the dashboard and
result files can be viewed in a browser. The dashboard is available at
/visualizations/dashboard.html.

Only local workspaces can be served.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := args[0]
		if strings.HasPrefix(workspace, "s3://") {
			return fmt.Errorf("serve requires a local workspace, got %s", workspace)
		}

		host := cfg.Serve.Host
		port := cfg.Serve.Port
		if cmd.Flags().Changed("host") {
			host = serveHost
		}
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})
		app.Static("/", workspace)
		app.Get("/", func(c *fiber.Ctx) error {
			return c.Redirect("/visualizations/dashboard.html")
		})

		addr := fmt.Sprintf("%s:%d", host, port)
		logger.Info("serving workspace",
			zap.String("workspace", workspace),
			zap.String("addr", addr))
		fmt.Printf("Serving %s at http://%s/\n", workspace, addr)
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Address to bind")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
}
