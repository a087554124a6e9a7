package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"docval/internal/domain"
	"docval/internal/policy"
)

var policiesFormat string

var policiesCmd = &cobra.Command{
	Use:   "policies [country]",
	Short: "List document policies",
	Long:  "List the required documents and validity windows per country and person type",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPolicies,
}

func init() {
	policiesCmd.Flags().StringVar(&policiesFormat, "format", "table", "Output format: table, json, yaml")
}

func runPolicies(cmd *cobra.Command, args []string) error {
	store, err := loadPolicies("")
	if err != nil {
		return err
	}

	entries := store.Entries()
	if len(args) == 1 {
		var filtered []domain.PolicyEntry
		for _, e := range entries {
			if strings.EqualFold(e.Key.Country, args[0]) {
				filtered = append(filtered, e)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no policies for country %q", args[0])
		}
		entries = filtered
	}

	switch policiesFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		sub, err := policy.New(entries)
		if err != nil {
			return err
		}
		data, err := policy.Marshal(sub)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	case "table":
		return outputPoliciesTable(cmd, entries)
	default:
		return fmt.Errorf("invalid --format %q: must be table, json or yaml", policiesFormat)
	}
}

func outputPoliciesTable(cmd *cobra.Command, entries []domain.PolicyEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Country\tPerson type\tID label\tRequired documents\tMax age (days)\n")
	fmt.Fprintf(w, "-------\t-----------\t--------\t------------------\t--------------\n")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.Key.Country,
			e.Key.PersonType.Label(),
			e.Policy.IDLabel,
			strings.Join(e.Policy.RequiredKinds, ", "),
			formatMaxAges(e.Policy.MaxAgeDays),
		)
	}
	return nil
}

func formatMaxAges(ages map[string]int) string {
	if len(ages) == 0 {
		return "-"
	}
	kinds := make([]string, 0, len(ages))
	for k := range ages {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%s=%d", k, ages[k])
	}
	return strings.Join(parts, ", ")
}
