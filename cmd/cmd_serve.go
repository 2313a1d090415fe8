// cmd_serve.go - Server-Start und Versionsanzeige
// Hauptfunktionen: RunServer, versionHandler
package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/7blacky7/godaal/api"
	"github.com/7blacky7/godaal/envconfig"
	"github.com/7blacky7/godaal/server"
	"github.com/7blacky7/godaal/version"
)

// RunServer - Startet den Introspection-Server
func RunServer(_ *cobra.Command, _ []string) error {
	ln, err := net.Listen("tcp", envconfig.Host().Host)
	if err != nil {
		return err
	}

	err = server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// versionHandler - Zeigt Client- und Server-Version an
func versionHandler(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return
	}

	resp, err := client.Version(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, "Warning: could not connect to a running godaal server")
	}

	if resp != nil {
		fmt.Fprintf(out, "godaal server version is %s (backend %s, native %s)\n", resp.Version, resp.Backend, resp.Native)
		if resp.Version == version.Version {
			return
		}
	}

	fmt.Fprintf(out, "client version is %s\n", version.Version)
}

// newServeCmd - Erstellt den serve Command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start the introspection server",
		Args:    cobra.ExactArgs(0),
		RunE:    RunServer,
	}
}
