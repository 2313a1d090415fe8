// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	_ "github.com/7blacky7/godaal/algorithms/all"
	"github.com/7blacky7/godaal/envconfig"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "godaal",
		Short:         "Inspect and probe DAAL algorithm bindings",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	serveCmd := newServeCmd()
	idsCmd := newIDsCmd()
	kindsCmd := newKindsCmd()
	probeCmd := newProbeCmd()
	envCmd := newEnvCmd()

	envVars := envconfig.AsMap()
	for _, cmd := range []*cobra.Command{serveCmd, probeCmd} {
		switch cmd {
		case serveCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["DAAL_DEBUG"],
				envVars["DAAL_HOST"],
				envVars["DAAL_ORIGINS"],
				envVars["DAAL_BACKEND"],
				envVars["DAAL_LIBRARY"],
				envVars["DAAL_MAX_HANDLES"],
				envVars["DAAL_PROBE_PARALLEL"],
			})
		case probeCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["DAAL_DEBUG"],
				envVars["DAAL_HOST"],
				envVars["DAAL_BACKEND"],
				envVars["DAAL_LIBRARY"],
				envVars["DAAL_MAX_HANDLES"],
				envVars["DAAL_PROBE_PARALLEL"],
			})
		}
	}

	rootCmd.AddCommand(
		serveCmd,
		idsCmd,
		kindsCmd,
		probeCmd,
		envCmd,
	)

	return rootCmd
}
