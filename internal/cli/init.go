package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lictool"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a license, prompting for details to fill placeholders",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initPath, "path", "p", "LICENSE.md", "output file path")
}

func runInit(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	list, err := client.Licenses(cmd.Context())
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(list.Licenses))
	for _, lic := range list.Licenses {
		ids = append(ids, lic.ID)
	}
	var choice string
	if err := survey.AskOne(&survey.Select{
		Message:  "Select a license",
		Options:  ids,
		PageSize: 7,
	}, &choice); err != nil {
		return err
	}

	lic, err := list.Find(choice)
	if err != nil {
		return err
	}
	details, err := client.Details(cmd.Context(), lic)
	if err != nil {
		return err
	}
	tpl, err := fillTemplate(details)
	if err != nil {
		return err
	}
	return writeInteractive(cmd.OutOrStdout(), initPath, tpl.Render())
}

// writeInteractive writes text to path, re-prompting for a new path for as
// long as the target exists. Only the conflict error has a recovery path;
// everything else aborts the invocation.
func writeInteractive(w io.Writer, path, text string) error {
	warn := color.New(color.FgYellow, color.Bold)
	for {
		err := lictool.WriteFile(path, text)
		if err == nil {
			printCreated(w, path)
			return nil
		}
		var existsErr *lictool.FileExistsError
		if !errors.As(err, &existsErr) {
			return err
		}
		_, _ = warn.Fprintf(w, "The %s file already exists.\n", existsErr.Path)
		if err := survey.AskOne(&survey.Input{
			Message: "Please specify a new file name to avoid overwriting.",
			Default: path,
		}, &path); err != nil {
			return err
		}
	}
}

func printCreated(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		color.New(color.FgGreen).Sprint("✔"),
		color.New(color.Bold).Sprintf("Successfully created %s file.", path))
}
