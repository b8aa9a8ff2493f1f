package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airgraph/pkg/api"
	"airgraph/pkg/routing"
)

func NewServeCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "serve"
	cmd.Short = "Serve the route network over HTTP"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runServe(cmd, v, fs) }

	cmd.Flags().Int("port", 8080, "HTTP port")
	cmd.Flags().String("cors-origin", "", "CORS allowed origin (empty = same-origin)")
	cmd.Flags().Int("max-concurrent", 0, "Maximum in-flight requests (0 = 2x CPUs)")
	cmd.Flags().Duration("request-timeout", 0, "Per-request timeout (0 = default)")

	return cmd
}

func runServe(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	cfg := serverConfig(v)
	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	handlers := api.NewHandlers(g, routing.NewEngine(g))
	return api.ListenAndServe(cmd.Context(), api.NewServer(cfg, handlers))
}

func serverConfig(v *viper.Viper) api.ServerConfig {
	cfg := api.DefaultConfig(fmt.Sprintf(":%d", v.GetInt("port")))
	cfg.CORSOrigin = v.GetString("cors-origin")
	if n := v.GetInt("max-concurrent"); n > 0 {
		cfg.MaxConcurrent = n
	}
	if d := v.GetDuration("request-timeout"); d > 0 {
		cfg.RequestTimeout = d
	}
	return cfg
}
