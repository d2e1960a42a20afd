package lictool

import (
	"strconv"
	"strings"
)

// Template is a license text plus the substitution values collected from
// flags or prompts. The zero value is ready to use; populate fields and
// call Render once. A zero Year or empty string means "not supplied" and
// leaves that category's markers untouched.
type Template struct {
	Text  string
	Year  int
	Owner string
	Repo  string
	Email string
}

// Render substitutes every supplied value for every marker variant of its
// category, left to right across the whole text. Substitution is literal
// find-and-replace; markers for categories without a value survive
// unchanged.
//
// Render consumes the template: the text is moved out, and a second call
// renders the empty string.
func (t *Template) Render() string {
	text := t.Text
	t.Text = ""
	if t.Year != 0 {
		text = replaceAll(text, YearMarkers, strconv.Itoa(t.Year))
	}
	if t.Owner != "" {
		text = replaceAll(text, OwnerMarkers, t.Owner)
	}
	if t.Repo != "" {
		text = replaceAll(text, RepoMarkers, t.Repo)
	}
	if t.Email != "" {
		text = replaceAll(text, EmailMarkers, t.Email)
	}
	return text
}

func replaceAll(text string, markers []string, value string) string {
	for _, m := range markers {
		text = strings.ReplaceAll(text, m, value)
	}
	return text
}
