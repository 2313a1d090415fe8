// cmd_list.go - ids und kinds Commands
// Hauptfunktionen: IDsHandler, KindsHandler, renderTable
package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/7blacky7/godaal/daal"
)

// renderTable schreibt data im CLI-Tabellenformat nach w
func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	table.SetAutoWrapText(false)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			table.SetAutoWrapText(true)
			table.SetColWidth(width / len(header))
		}
	}

	table.AppendBulk(data)
	table.Render()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatMembers(members []daal.Member) string {
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.Name + "=" + strconv.Itoa(m.Code)
	}
	return strings.Join(parts, ", ")
}

// IDsHandler - Listet Identifier-Familien oder zeigt eine einzelne an
func IDsHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")

	if len(args) == 1 {
		f, err := daal.LookupFamily(args[0])
		switch {
		case err == nil:
			if asJSON {
				return writeJSON(out, f)
			}

			var data [][]string
			for _, m := range f.Members {
				data = append(data, []string{m.Name, strconv.Itoa(m.Code)})
			}
			renderTable(out, []string{"NAME", "CODE"}, data)
			return nil
		case !errors.Is(err, daal.ErrNotFound):
			return err
		}

		// Kein exakter Treffer: als Praefix behandeln
		if !hasFamilyPrefix(args[0]) {
			return err
		}
	}

	var families []*daal.Family
	for _, f := range daal.Families() {
		if len(args) == 0 || strings.HasPrefix(f.Name, args[0]) {
			families = append(families, f)
		}
	}

	if asJSON {
		return writeJSON(out, families)
	}

	var data [][]string
	for _, f := range families {
		data = append(data, []string{f.Name, formatMembers(f.Members)})
	}
	renderTable(out, []string{"FAMILY", "MEMBERS"}, data)
	return nil
}

func hasFamilyPrefix(prefix string) bool {
	for _, f := range daal.Families() {
		if strings.HasPrefix(f.Name, prefix) {
			return true
		}
	}
	return false
}

// KindsHandler - Listet alle konstruierbaren Kinds
func KindsHandler(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")

	var kinds []daal.KindInfo
	for _, k := range daal.Kinds() {
		if len(args) == 0 || strings.HasPrefix(string(k.Name), args[0]) {
			kinds = append(kinds, k)
		}
	}

	if len(args) == 1 && len(kinds) == 0 {
		_, err := daal.LookupKind(args[0])
		return err
	}

	if asJSON {
		return writeJSON(out, kinds)
	}

	var data [][]string
	for _, k := range kinds {
		precs := make([]string, len(k.Precisions))
		for i, p := range k.Precisions {
			precs[i] = p.String()
		}

		methods := formatMembers(k.Methods)
		if !k.Selectors() {
			methods = "-"
		}

		data = append(data, []string{string(k.Name), k.Package, orDash(strings.Join(precs, ",")), methods})
	}
	renderTable(out, []string{"KIND", "PACKAGE", "PRECISIONS", "METHODS"}, data)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// newIDsCmd - Erstellt den ids Command
func newIDsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ids [FAMILY]",
		Aliases: []string{"families"},
		Short:   "List identifier families",
		Args:    cobra.MaximumNArgs(1),
		RunE:    IDsHandler,
	}
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

// newKindsCmd - Erstellt den kinds Command
func newKindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds [PREFIX]",
		Short: "List constructible kinds",
		Args:  cobra.MaximumNArgs(1),
		RunE:  KindsHandler,
	}
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}
