package cmd

import (
	"log"
	"os"
	"time"

	"healthsnap/internal/config"
	"healthsnap/internal/middleware"
	"healthsnap/internal/routes"
	"healthsnap/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveRefresh int
	serveAuth    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the health report as a local dashboard",
	Long: `Serve the health report on a local address: an HTML dashboard at /,
the JSON form at /report.json and a websocket at /ws that pushes a fresh
report on every refresh tick.

Examples:
  healthsnap serve                     # localhost:8080
  healthsnap serve --addr :9100        # all interfaces, port 9100
  healthsnap serve --auth              # require a bearer token`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: localhost:8080)")
	serveCmd.Flags().IntVar(&serveRefresh, "refresh", 0, "Dashboard refresh interval in seconds (default: 2)")
	serveCmd.Flags().BoolVar(&serveAuth, "auth", false, "Require a bearer token on all endpoints")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	addr := cfg.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}
	refresh := time.Duration(cfg.RefreshSeconds) * time.Second
	if serveRefresh > 0 {
		refresh = time.Duration(serveRefresh) * time.Second
	}

	if serveAuth || cfg.AuthSecret != "" {
		services.InitAuthService(cfg.AuthSecret, 0)
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "healthsnap"
		}
		token, err := services.GenerateToken(hostname)
		if err != nil {
			return err
		}
		log.Printf("Auth enabled; bearer token: %s", token)
	}

	services.InitWebSocketHub(refresh)

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))
	r.Use(middleware.AuthMiddleware())

	routes.RegisterReportRoutes(r)

	log.Printf("Serving health dashboard on %s (refresh: %v)", addr, refresh)
	return r.Run(addr)
}
