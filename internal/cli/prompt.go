package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"lictool"
	"lictool/gitconfig"
	"lictool/spdx"
)

// fillTemplate prompts for each placeholder category present in the
// license text. Defaults come from git config (author, email) and the
// current year; empty answers leave the category unsubstituted.
func fillTemplate(details *spdx.LicenseDetails) (*lictool.Template, error) {
	tpl := &lictool.Template{}
	placeholders := lictool.DetectPlaceholders(details.Text)
	identity := gitconfig.Load()

	if placeholders.Owner {
		if err := survey.AskOne(&survey.Input{
			Message: "Please enter the author's name",
			Default: identity.Name,
		}, &tpl.Owner); err != nil {
			return nil, err
		}
	}
	if placeholders.Year {
		var answer string
		if err := survey.AskOne(&survey.Input{
			Message: "Please enter the year of creation",
			Default: strconv.Itoa(time.Now().Year()),
		}, &answer, survey.WithValidator(validYear)); err != nil {
			return nil, err
		}
		// An explicit 0 means "leave the year markers alone".
		tpl.Year, _ = strconv.Atoi(answer)
	}
	if placeholders.Repo {
		if err := survey.AskOne(&survey.Input{
			Message: "Please enter the program's name",
		}, &tpl.Repo); err != nil {
			return nil, err
		}
	}
	if placeholders.Email {
		if err := survey.AskOne(&survey.Input{
			Message: "Please enter the email",
			Default: identity.Email,
		}, &tpl.Email); err != nil {
			return nil, err
		}
	}

	// Move the text out of the details record; the template owns it now.
	tpl.Text = details.Text
	details.Text = ""
	return tpl, nil
}

func validYear(ans any) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a year")
	}
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("%q is not a valid year", s)
	}
	return nil
}
