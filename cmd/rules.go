package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/uamatch/uamatch/config"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "list the detection rules in evaluation order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		d := newDetector(cmd)
		fmt.Fprintln(cmd.OutOrStdout(), rulesTable(d.Registry()))
	},
}

func rulesTable(reg *config.Registry) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "LABEL", "PATTERN", "KEYWORDS")
	for i, r := range reg.Entries() {
		t.Row(strconv.Itoa(i+1), r.Label, r.Regex.String(), strings.Join(r.Keywords, ", "))
	}
	return t.String()
}
