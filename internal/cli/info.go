package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"lictool/spdx"
)

var infoCmd = &cobra.Command{
	Use:   "info <license-id>",
	Short: "Get info about a license",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	list, err := client.Licenses(cmd.Context())
	if err != nil {
		return err
	}
	lic, err := list.Find(args[0])
	if err != nil {
		return err
	}
	details, err := client.Details(cmd.Context(), lic)
	if err != nil {
		return err
	}
	formatDetails(cmd.OutOrStdout(), details, terminalWidth())
	return nil
}

// terminalWidth returns the stdout width, or 80 when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func formatDetails(w io.Writer, d *spdx.LicenseDetails, width int) {
	bold := color.New(color.Bold)
	underline := color.New(color.Underline)

	title := fmt.Sprintf("«%s»", bold.Sprint(d.Name))
	if padding := (width - len(d.Name) - 2) / 2; padding > 0 {
		fmt.Fprint(w, strings.Repeat(" ", padding))
	}
	fmt.Fprintln(w, title)

	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Reference:"), underline.Sprint(d.Reference()))
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("License ID:"), d.ID)
	if d.Comments != "" {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("License Comments:"), d.Comments)
	}
	fmt.Fprintln(w, bold.Sprint("See Also:"))
	for _, link := range d.SeeAlso {
		fmt.Fprintf(w, "  - %s\n", underline.Sprint(link))
	}
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Is Supported License ID:"), checkbox(!d.Deprecated))
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Is OSI Approved:"), checkbox(d.OSIApproved))
	if d.FSFLibre != nil {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("Is FSF Free/Libre:"), checkbox(*d.FSFLibre))
	}
	if d.DeprecatedVersion != "" {
		fmt.Fprintf(w, "%s %s\n", bold.Sprint("Deprecated Version:"), d.DeprecatedVersion)
	}
}

func checkbox(ok bool) string {
	if ok {
		return color.New(color.FgGreen, color.Bold).Sprint("✓")
	}
	return color.New(color.FgRed, color.Bold).Sprint("✗")
}
