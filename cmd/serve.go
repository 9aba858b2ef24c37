package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/procsim/procsim/server"
)

var (
	serveAddr string // Listen address for the HTTP binding
	assetsDir string // Directory of presentation assets to serve
)

// serveCmd starts the HTTP host binding: a JSON API over the engine's
// configuration/operation surface plus static presentation assets.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		srv := server.New(server.Config{
			Addr:      serveAddr,
			AssetsDir: assetsDir,
			TickCap:   maxTicks,
		})
		logrus.Infof("Serving on %s", serveAddr)
		if err := srv.ListenAndServe(); err != nil {
			logrus.Fatalf("server stopped: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().StringVar(&assetsDir, "assets", "www", "Directory of static presentation assets")
}
