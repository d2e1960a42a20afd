package cli

import (
	"github.com/spf13/cobra"

	"lictool"
)

var (
	addOwner string
	addEmail string
	addRepo  string
	addYear  int
	addPath  string
)

var addCmd = &cobra.Command{
	Use:   "add <license-id>",
	Short: "Add a license in the current directory without prompting for individual details",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addOwner, "owner", "o", "", "copyright owner (author)")
	addCmd.Flags().StringVarP(&addEmail, "email", "e", "", "contact email")
	addCmd.Flags().StringVarP(&addRepo, "repo", "r", "", "program or repository name")
	addCmd.Flags().IntVarP(&addYear, "year", "y", 0, "copyright year")
	addCmd.Flags().StringVarP(&addPath, "path", "p", "LICENSE.md", "output file path")
}

func runAdd(cmd *cobra.Command, args []string) error {
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
	tpl := &lictool.Template{
		Text:  details.Text,
		Year:  addYear,
		Owner: addOwner,
		Repo:  addRepo,
		Email: addEmail,
	}
	if err := lictool.WriteFile(addPath, tpl.Render()); err != nil {
		return err
	}
	printCreated(cmd.OutOrStdout(), addPath)
	return nil
}
