package main

import (
	"strings"

	"github.com/haijima/cobrax"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRootCmd(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := cobrax.NewRoot(v)
	cmd.Use = "airgraph"
	cmd.Short = "airgraph analyzes airport route networks"
	cmd.Version = cobrax.VersionFunc(version, commit, date)
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cobrax.RootPersistentPreRunE(cmd, v, fs, args); err != nil {
			return err
		}
		return v.BindPFlags(cmd.Flags())
	}

	v.SetEnvPrefix("AIRGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.PersistentFlags().StringP("routes", "r", "routes.csv", "The route CSV `file` to load")
	cmd.PersistentFlags().String("bbox", "", "Keep only routes inside `minLat,minLng,maxLat,maxLng`")
	cmd.PersistentFlags().String("format", "table", "The output format {table|md|csv|tsv|html}")
	_ = cmd.MarkPersistentFlagFilename("routes", "csv")

	cmd.AddCommand(NewConnectivityCommand(v, fs))
	cmd.AddCommand(NewComponentsCommand(v, fs))
	cmd.AddCommand(NewMSTCommand(v, fs))
	cmd.AddCommand(NewPathCommand(v, fs))
	cmd.AddCommand(NewFarthestCommand(v, fs))
	cmd.AddCommand(NewAirportCommand(v, fs))
	cmd.AddCommand(NewNearestCommand(v, fs))
	cmd.AddCommand(NewServeCommand(v, fs))

	cmd.SetGlobalNormalizationFunc(cobrax.SnakeToKebab)

	return cmd
}
