// cmd_probe.go - probe Command
// Hauptfunktionen: ProbeHandler, runLocalProbe
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/7blacky7/godaal/api"
	"github.com/7blacky7/godaal/daal"
	"github.com/7blacky7/godaal/envconfig"
	"github.com/7blacky7/godaal/logutil"
	"github.com/7blacky7/godaal/native"
	"github.com/7blacky7/godaal/probe"
)

var errProbeFailed = errors.New("probe: one or more constructions failed")

// ProbeHandler - Konstruiert Kinds lokal oder ueber einen laufenden Server
func ProbeHandler(cmd *cobra.Command, args []string) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))

	out := cmd.OutOrStdout()
	remote, _ := cmd.Flags().GetBool("remote")
	parallel, _ := cmd.Flags().GetInt("parallel")
	asJSON, _ := cmd.Flags().GetBool("json")

	precision, _ := cmd.Flags().GetString("precision")
	if precision != "" {
		if _, err := daal.ParsePrecision(precision); err != nil {
			return err
		}
	}

	var resp *api.ProbeResponse
	var err error
	if remote {
		resp, err = runRemoteProbe(cmd.Context(), args, precision, parallel)
	} else {
		resp, err = runLocalProbe(cmd.Context(), args, precision, parallel)
	}
	if err != nil {
		return err
	}

	if asJSON {
		if err := writeJSON(out, resp); err != nil {
			return err
		}
	} else {
		var data [][]string
		for _, o := range resp.Outcomes {
			status := "ok"
			if !o.OK() {
				status = o.Error
			}
			data = append(data, []string{o.Kind, orDash(o.Precision), orDash(o.Method), o.Handle.String(), formatCompanions(o.Companions), status})
		}
		renderTable(out, []string{"KIND", "PRECISION", "METHOD", "HANDLE", "COMPANIONS", "STATUS"}, data)
		fmt.Fprintf(out, "\n%d constructions, %d failed (backend %s)\n", len(resp.Outcomes), resp.Failed, resp.Backend)
	}

	if resp.Failed > 0 {
		return errProbeFailed
	}
	return nil
}

func runLocalProbe(ctx context.Context, names []string, precision string, parallel int) (*api.ProbeResponse, error) {
	lib, err := native.Init()
	if err != nil {
		return nil, err
	}

	kinds, err := selectKinds(names)
	if err != nil {
		return nil, err
	}

	jobs := probe.Jobs(kinds)
	if precision != "" {
		prec, err := daal.ParsePrecision(precision)
		if err != nil {
			return nil, err
		}
		jobs = probe.WithPrecision(jobs, prec)
	}

	if parallel <= 0 {
		parallel = int(envconfig.ProbeParallel())
	}

	outcomes, err := probe.Run(ctx, lib, jobs, parallel)
	if err != nil {
		return nil, err
	}

	return &api.ProbeResponse{
		Backend:  envconfig.Backend(),
		Outcomes: outcomes,
		Failed:   probe.Failed(outcomes),
	}, nil
}

func runRemoteProbe(ctx context.Context, names []string, precision string, parallel int) (*api.ProbeResponse, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, err
	}

	return client.Probe(ctx, &api.ProbeRequest{Kinds: names, Precision: precision, Parallel: parallel})
}

func selectKinds(names []string) ([]daal.KindInfo, error) {
	if len(names) == 0 {
		return daal.Kinds(), nil
	}

	kinds := make([]daal.KindInfo, 0, len(names))
	for _, name := range names {
		info, err := daal.LookupKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, info)
	}
	return kinds, nil
}

func formatCompanions(comps []daal.Companion) string {
	if len(comps) == 0 {
		return "-"
	}

	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = c.Name + "=" + c.Handle.String()
	}
	return strings.Join(parts, " ")
}

// newProbeCmd - Erstellt den probe Command
func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [KIND...]",
		Short: "Construct kinds with every supported precision and method",
		RunE:  ProbeHandler,
	}
	cmd.Flags().Bool("remote", false, "Probe through a running server (DAAL_HOST)")
	cmd.Flags().Int("parallel", 0, "Maximum concurrent constructions (default DAAL_PROBE_PARALLEL)")
	cmd.Flags().String("precision", "", "Only construct this precision (double or single)")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}
