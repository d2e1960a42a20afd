package lictool

import "strings"

// Marker sets are the literal placeholder spellings that occur in the
// upstream license corpus. Detection and substitution are plain substring
// operations; a marker that happens to appear inside unrelated prose is
// matched too. That is a known limitation, not something to guard against.
var (
	// YearMarkers are the copyright-year placeholders.
	YearMarkers = []string{"[yyyy]", "[YEAR]", "<year>", "{YEAR}", "[Year]"}

	// OwnerMarkers are the copyright-holder placeholders.
	OwnerMarkers = []string{
		"[fullname]",
		"<owner>",
		"[NAME]",
		"<name of author>",
		"[name of copyright owner]",
		"[name of copyright holder]",
		"<COPYRIGHT HOLDERS>",
		"<copyright holders>",
		"<AUTHOR>",
		"<author's name or designee>",
		"[one or more legally recognised persons or entities offering the Work under the terms and conditions of this Licence]",
	}

	// RepoMarkers are the program/repository name placeholders.
	RepoMarkers = []string{
		"<program>",
		"<one line to give the program's name and a brief idea of what it does.>",
	}

	// EmailMarkers are the contact email placeholders.
	EmailMarkers = []string{"<EMAIL>", "[EMAIL]"}
)

// Placeholders reports which marker categories occur in a license text.
// It drives which values the caller needs to collect before rendering.
type Placeholders struct {
	Year  bool
	Owner bool
	Repo  bool
	Email bool
}

// Any reports whether at least one category is present.
func (p Placeholders) Any() bool {
	return p.Year || p.Owner || p.Repo || p.Email
}

// DetectPlaceholders checks text against every marker set and reports,
// per category, whether any marker variant occurs as a substring.
func DetectPlaceholders(text string) Placeholders {
	return Placeholders{
		Year:  containsAny(text, YearMarkers),
		Owner: containsAny(text, OwnerMarkers),
		Repo:  containsAny(text, RepoMarkers),
		Email: containsAny(text, EmailMarkers),
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
