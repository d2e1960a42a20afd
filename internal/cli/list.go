package cli

import (
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lictool/spdx"
)

var listOpts spdx.FilterOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available licenses",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVarP(&listOpts.Deprecated, "deprecated", "d", false, "only deprecated")
	listCmd.Flags().BoolVarP(&listOpts.Supported, "supported", "s", false, "only supported")
	listCmd.Flags().BoolVarP(&listOpts.OSIApproved, "osi-approved", "o", false, "only OSI approved")
	listCmd.Flags().BoolVarP(&listOpts.FSFLibre, "fsf-libre", "f", false, "only FSF Free/Libre")
}

func runList(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	list, err := client.Licenses(cmd.Context())
	if err != nil {
		return err
	}
	printLicenseIDs(cmd.OutOrStdout(), list.Filter(listOpts))
	return nil
}

// printLicenseIDs prints identifiers sorted supported-first, deprecated
// ones in red and the rest in green.
func printLicenseIDs(w io.Writer, licenses []spdx.License) {
	sort.SliceStable(licenses, func(i, j int) bool {
		return !licenses[i].Deprecated && licenses[j].Deprecated
	})
	deprecated := color.New(color.FgRed, color.Bold)
	supported := color.New(color.FgGreen, color.Bold)
	for _, lic := range licenses {
		if lic.Deprecated {
			_, _ = deprecated.Fprintln(w, lic.ID)
		} else {
			_, _ = supported.Fprintln(w, lic.ID)
		}
	}
}
