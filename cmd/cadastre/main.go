package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stwalsh4118/cadastre/internal/config"
	"github.com/stwalsh4118/cadastre/internal/logger"
	"github.com/stwalsh4118/cadastre/internal/registry"
	"github.com/stwalsh4118/cadastre/internal/services"
)

const version = "0.1.0"

// app carries the flags shared by every command and the lazily built client.
type app struct {
	jsonOut     bool
	verbose     bool
	registryURL string
	timeout     time.Duration

	svc services.CadastreService
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cadastre",
		Short:         "Look up objects and regions in the public cadastral registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print results as JSON instead of a tree")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log registry calls to stderr")
	root.PersistentFlags().StringVar(&a.registryURL, "registry", "", "registry base URL (default from REGISTRY_BASE_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 0, "per-request timeout (default from REGISTRY_TIMEOUT)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newFindCmd(a))
	root.AddCommand(newObjectCmd(a))
	root.AddCommand(newCadnumCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newRegionsCmd(a))

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cadastre %s\n", version)
		},
	}
}

// service builds the registry client on first use. Logs go to stderr so
// stdout carries results only.
func (a *app) service(cmd *cobra.Command) (services.CadastreService, error) {
	if a.svc != nil {
		return a.svc, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if a.registryURL != "" {
		cfg.Registry.BaseURL = a.registryURL
	}
	if a.timeout > 0 {
		cfg.Registry.Timeout = a.timeout
	}

	log := logger.NewWithWriter(cfg.Server.Env, cmd.ErrOrStderr())
	if a.verbose {
		log.SetLevel(zerolog.DebugLevel)
	} else {
		log.SetLevel(zerolog.ErrorLevel)
	}

	transport := registry.NewHTTPTransport(registry.TransportOptions{
		Timeout:          cfg.Registry.Timeout,
		MaxResponseBytes: cfg.Registry.MaxResponseBytes,
		UserAgent:        cfg.Registry.UserAgent,
	})
	a.svc = services.NewCadastreService(registry.NewResolver(cfg.Registry.BaseURL), transport, log)
	return a.svc, nil
}
