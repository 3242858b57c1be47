// Package commands implements the swissdata CLI commands.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/alpstat/swissdata/config"
	"github.com/alpstat/swissdata/errors"
	"github.com/alpstat/swissdata/fetch"
	"github.com/alpstat/swissdata/fso/communes"
	"github.com/alpstat/swissdata/logger"
)

var (
	communesLang string
	communesCite bool
)

// CommunesCmd reports on the FSO historicized commune registry.
var CommunesCmd = &cobra.Command{
	Use:   "communes [canton abbreviation]",
	Short: "Report on the FSO historicized commune registry",
	Long: `Download (or reuse a cached copy of) the FSO historicized commune
registry and print a per-district report for one canton: active
municipalities grouped by district, plus historic (abolished) counts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCommunes,
}

func init() {
	CommunesCmd.Flags().StringVar(&communesLang, "lang", "en", "Language for dataset metadata (en, de, fr, it, rm)")
	CommunesCmd.Flags().BoolVar(&communesCite, "cite", false, "Fetch and print the BibTeX citation entry instead of the report")
}

func runCommunes(cmd *cobra.Command, args []string) error {
	cantonAbbr := "BE"
	if len(args) > 0 {
		cantonAbbr = strings.ToUpper(args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client, err := fetch.FromConfig(cfg.Fetch)
	if err != nil {
		return err
	}

	if communesCite {
		entry, err := communes.Asset().BibTeX(cmd.Context(), client)
		if err != nil {
			return errors.Wrap(err, "fetching citation entry")
		}
		fmt.Println(entry)
		return nil
	}

	printMeta()

	data, err := communes.Load(cmd.Context(), client)
	if err != nil {
		return errors.Wrap(err, "loading commune registry")
	}

	return printReport(data, cantonAbbr)
}

func printMeta() {
	m := communes.Meta()

	editor := m.Editor.GetOrDefault(communesLang)
	copyright := m.Copyright.GetOrDefault(communesLang)
	terms := m.Terms.GetOrDefault(communesLang)

	pterm.DefaultSection.Println("Dataset")
	pterm.Printf("Editor              %s (%s)\n", editor.Content, editor.URL)
	pterm.Printf("Copyright           %s\n", copyright.URL)
	pterm.Printf("Terms of use        %s (%s)\n", terms.Content, terms.URL)
	pterm.Printf("Commercial use      %v\n", m.TermsAutomatic.FreeCommercialUse)
	pterm.Printf("Non-commercial use  %v\n", m.TermsAutomatic.FreeNoncommercialUse)
	pterm.Printf("Citation required   %v\n", m.TermsAutomatic.CitationMandatory)
	pterm.Println()
}

func printReport(data *communes.Datasets, cantonAbbr string) error {
	cantons, err := data.Cantons.All()
	if err != nil {
		return errors.Wrap(err, "decoding cantons")
	}

	var canton *communes.Canton
	for i := range cantons {
		if cantons[i].Abbreviation == cantonAbbr {
			canton = &cantons[i]
			break
		}
	}
	if canton == nil {
		return errors.Newf("no canton with abbreviation %q in the registry", cantonAbbr)
	}

	active, rowErrs := communes.Actual(data.Districts)
	historic, _ := communes.Historic(data.Districts)
	warnRowErrors("districts", rowErrs)

	var districts []communes.District
	for _, d := range active {
		if d.CantonID == canton.ID {
			districts = append(districts, d)
		}
	}
	sort.Slice(districts, func(i, j int) bool {
		if districts[i].EntryMode != districts[j].EntryMode {
			return districts[i].EntryMode < districts[j].EntryMode
		}
		return districts[i].ShortName < districts[j].ShortName
	})

	historicCount := 0
	for _, d := range historic {
		if d.CantonID == canton.ID {
			historicCount++
		}
	}

	municipalities, rowErrs := communes.Actual(data.Municipalities)
	warnRowErrors("municipalities", rowErrs)
	byDistrict := make(map[communes.DistrictHistID][]communes.Municipality)
	for _, m := range municipalities {
		byDistrict[m.DistrictHistID] = append(byDistrict[m.DistrictHistID], m)
	}

	pterm.DefaultSection.Printf("%s (%s)", canton.Name, canton.Abbreviation)
	pterm.Printf("%d districts, %d more in history\n\n", len(districts), historicCount)

	table := pterm.TableData{{"District", "Kind", "Municipalities", "Of which"}}
	for _, d := range districts {
		mun := byDistrict[d.HistID]
		table = append(table, []string{
			d.ShortName,
			d.EntryMode.String(),
			fmt.Sprintf("%d", len(mun)),
			summarizeModes(mun),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
}

// summarizeModes breaks a district's municipalities down by entry mode.
func summarizeModes(municipalities []communes.Municipality) string {
	counts := make(map[communes.MunicipalityMode]int)
	for _, m := range municipalities {
		counts[m.EntryMode]++
	}

	modes := make([]communes.MunicipalityMode, 0, len(counts))
	for mode := range counts {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })

	parts := make([]string, 0, len(modes))
	for _, mode := range modes {
		parts = append(parts, fmt.Sprintf("%d %s", counts[mode], mode))
	}
	return strings.Join(parts, ", ")
}

func warnRowErrors(what string, rowErrs []*communes.RowError) {
	if len(rowErrs) == 0 {
		return
	}
	logger.Logger.Warnw("some rows failed to decode", "dataset", what, "rows", len(rowErrs))
	for _, re := range rowErrs {
		logger.Logger.Debugw("bad row", "dataset", what, "line", re.Line, "error", re.Err)
	}
}
