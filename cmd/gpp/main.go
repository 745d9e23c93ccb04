// Command gpp decodes IAB Global Privacy Platform consent strings.
//
// Usage:
//
//	gpp decode <gpp-string> [--section <name|id>]
//	gpp sections <gpp-string>
//
// Examples:
//
//	gpp decode "DBABM~CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA"
//	gpp decode --section uspv1 "DBACNY~CPXxRfA...~1YNN"
//	gpp sections "DBACNY~CPXxRfA...~1YNN"
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	gpp "github.com/noirotm/iabgpp-go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// jsonSection is a single decoded section in JSON output.
type jsonSection struct {
	ID    gpp.SectionID `json:"id"`
	Name  string        `json:"name"`
	Data  gpp.Section   `json:"data,omitempty"`
	Error string        `json:"error,omitempty"`
}

var sectionFlag string

var rootCmd = &cobra.Command{
	Use:           "gpp",
	Short:         "Decode IAB Global Privacy Platform consent strings",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <gpp-string>",
	Short: "Decode sections to JSON",
	Long: "Decode parses a GPP string and prints its sections as indented JSON.\n" +
		"Sections that fail to decode are reported inline, one entry per section.",
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var sectionsCmd = &cobra.Command{
	Use:   "sections <gpp-string>",
	Short: "List section IDs and raw bodies without decoding them",
	Args:  cobra.ExactArgs(1),
	RunE:  runSections,
}

func init() {
	decodeCmd.Flags().StringVar(&sectionFlag, "section", "", "decode a single section, by name (e.g. usnat) or numeric ID")
	rootCmd.AddCommand(decodeCmd, sectionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	g, err := gpp.Parse(args[0])
	if err != nil {
		return err
	}

	var out []jsonSection
	if sectionFlag != "" {
		id, err := resolveSectionID(sectionFlag)
		if err != nil {
			return err
		}
		sec, err := g.DecodeSection(id)
		out = append(out, newJSONSection(id, sec, err))
	} else {
		for _, r := range g.DecodeAll() {
			out = append(out, newJSONSection(r.ID, r.Section, r.Err))
		}
	}
	return emitJSON(out)
}

func runSections(cmd *cobra.Command, args []string) error {
	g, err := gpp.Parse(args[0])
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "ID", "Name", "Body"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, id := range g.SectionIDs() {
		body, _ := g.Section(id)
		table.Append([]string{
			strconv.Itoa(i + 1),
			strconv.Itoa(int(id)),
			id.String(),
			truncate(body, 48),
		})
	}
	table.Render()
	return nil
}

// resolveSectionID accepts either a numeric registry ID or a section name
// such as "tcfeuv2".
func resolveSectionID(s string) (gpp.SectionID, error) {
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return gpp.SectionID(n), nil
	}
	for id := gpp.SectionTCFEUV1; id <= gpp.SectionUSTN; id++ {
		if id.String() == s {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", s)
}

func newJSONSection(id gpp.SectionID, sec gpp.Section, err error) jsonSection {
	out := jsonSection{ID: id, Name: id.String(), Data: sec}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

// emitJSON writes v to stdout as indented JSON.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
