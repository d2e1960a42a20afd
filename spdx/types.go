package spdx

import "fmt"

// LicenseList is the registry's summary listing. Immutable once fetched;
// it lives only for the duration of one command invocation.
type LicenseList struct {
	Version  string    `json:"licenseListVersion"`
	Licenses []License `json:"licenses"`
}

// License is one summary entry from the license list.
// FSFLibre is a pointer because the registry omits the field for licenses
// the FSF has not reviewed.
type License struct {
	ID          string `json:"licenseId"`
	DetailsURL  string `json:"detailsUrl"`
	Deprecated  bool   `json:"isDeprecatedLicenseId"`
	OSIApproved bool   `json:"isOsiApproved"`
	FSFLibre    *bool  `json:"isFsfLibre,omitempty"`
}

// String returns the license identifier.
func (l License) String() string { return l.ID }

// LicenseDetails is the full record for one license: its text plus metadata.
type LicenseDetails struct {
	ID                string   `json:"licenseId"`
	Name              string   `json:"name"`
	Text              string   `json:"licenseText"`
	Comments          string   `json:"licenseComments,omitempty"`
	SeeAlso           []string `json:"seeAlso"`
	Deprecated        bool     `json:"isDeprecatedLicenseId"`
	OSIApproved       bool     `json:"isOsiApproved"`
	FSFLibre          *bool    `json:"isFsfLibre,omitempty"`
	DeprecatedVersion string   `json:"deprecatedVersion,omitempty"`
}

// Reference returns the human-readable registry page for the license.
func (d *LicenseDetails) Reference() string {
	return fmt.Sprintf("https://spdx.org/licenses/%s.html", d.ID)
}

// Find returns the summary whose identifier matches id exactly.
// Returns ErrLicenseNotFound when no entry matches.
func (l *LicenseList) Find(id string) (*License, error) {
	for i := range l.Licenses {
		if l.Licenses[i].ID == id {
			return &l.Licenses[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrLicenseNotFound, id)
}

// FilterOptions selects licenses by status flags. Each enabled criterion
// must hold for a license to pass; combining criteria is a logical AND.
type FilterOptions struct {
	Deprecated  bool // only deprecated identifiers
	Supported   bool // only non-deprecated identifiers
	OSIApproved bool // only OSI-approved licenses
	FSFLibre    bool // only FSF Free/Libre licenses
}

// Filter returns the subset of licenses matching every enabled criterion.
// With the zero FilterOptions it returns the full list.
func (l *LicenseList) Filter(opts FilterOptions) []License {
	out := make([]License, 0, len(l.Licenses))
	for _, lic := range l.Licenses {
		if opts.Deprecated && !lic.Deprecated {
			continue
		}
		if opts.Supported && lic.Deprecated {
			continue
		}
		if opts.OSIApproved && !lic.OSIApproved {
			continue
		}
		if opts.FSFLibre && (lic.FSFLibre == nil || !*lic.FSFLibre) {
			continue
		}
		out = append(out, lic)
	}
	return out
}
