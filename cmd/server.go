package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"privacyguard/config"
	"privacyguard/data"
	logger "privacyguard/log"
	"privacyguard/routes"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:     "Server",
	Aliases: []string{"serve", "s"},
	Short:   "Start API Server",
	Long:    `Start PrivacyGuard's API Server`,
	Run: func(cmd *cobra.Command, args []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

// logger and configuration
var (
	conf = config.GetConfig()
	log  = logger.GetLogger()
)

func run() {

	// make sure the schema exists before taking traffic
	if err := data.InitSchema(data.GetDB()); err != nil {
		log.Error(err)
		panic(err)
	}

	//attach routes
	router := routes.Router()

	// HTTP Server
	server := &http.Server{
		Addr:           ":" + conf.GetString("app.port"),
		Handler:        router,
		ReadTimeout:    15 * time.Minute,
		WriteTimeout:   15 * time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	// Handle graceful shutdown on SIGINT
	idleConnectionsClosed := make(chan struct{})

	go func() {

		s := make(chan os.Signal, 1)
		signal.Notify(s, os.Interrupt, syscall.SIGTERM)
		<-s

		// We received an interrupt signal, shut down.
		if err := server.Shutdown(context.Background()); err != nil {
			log.Errorf("HTTP server shutdown error: %v\n", err)
		}

		close(idleConnectionsClosed)
	}()

	log.Infof("Starting server on http://%s\n", server.Addr)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Error(err)
		panic(err)
	}

	<-idleConnectionsClosed
}
