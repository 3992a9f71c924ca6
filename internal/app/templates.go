package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/stackprobe/internal/registry"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the technologies in the template catalog",
	Long: `List every technology in the catalog with its per-method marker counts
and whether a full template profile is present. Technologies that appear
only in detection patterns are flagged: they can win detection but will
be served the fallback profile.`,
	Example: `  # List the default catalog
  stackprobe templates

  # List a specific catalog
  stackprobe templates --templates ./config/technology_templates.yaml`,
	Args: cobra.NoArgs,
	RunE: runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	_, reg, err := newAnalyzer()
	if err != nil {
		return err
	}

	// Union of templated technologies and every technology any method
	// has patterns for.
	seen := make(map[string]bool)
	var ids []string
	for _, id := range reg.Technologies() {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, m := range reg.Methods() {
		for id := range m.Patterns {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)

	fmt.Printf("%-16s %-12s %-14s %-13s %s\n",
		"Technology", "Extensions", "Config Files", "Directories", "Template")
	fmt.Println(strings.Repeat("─", 70))

	for _, id := range ids {
		counts := make(map[string]int)
		for _, m := range reg.Methods() {
			counts[m.Name] = len(m.Patterns[id])
		}

		template := "yes"
		if _, ok := reg.Profile(id); !ok {
			template = "missing"
		}

		fmt.Printf("%-16s %-12d %-14d %-13d %s\n",
			id,
			counts[registry.MethodFileExtensions],
			counts[registry.MethodConfigurationFiles],
			counts[registry.MethodDirectoryStructure],
			template)
	}

	fmt.Printf("\nConfidence threshold: %.2f\n", reg.Threshold())
	fmt.Printf("Fallback profile:     %s\n", reg.Fallback().Name)
	return nil
}
