// cmd_env.go - env Command
// Hauptfunktionen: EnvHandler
package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/7blacky7/godaal/envconfig"
)

// EnvHandler - Zeigt alle Umgebungsvariablen mit ihren effektiven Werten
func EnvHandler(cmd *cobra.Command, _ []string) error {
	vars := envconfig.AsMap()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	slices.Sort(names)

	var data [][]string
	for _, name := range names {
		v := vars[name]
		data = append(data, []string{v.Name, fmt.Sprintf("%v", v.Value), v.Description})
	}

	renderTable(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"}, data)
	return nil
}

// newEnvCmd - Erstellt den env Command
func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show effective configuration",
		Args:  cobra.ExactArgs(0),
		RunE:  EnvHandler,
	}
}
