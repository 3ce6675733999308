// Package refdata holds the static catalogs the wizard renders: organization
// types, provinces, and Bangkok districts. Read-only reference data.
package refdata

type OrgType struct {
	ID     string `json:"id"`
	NameTH string `json:"nameTh"`
	NameEN string `json:"nameEn"`
}

type Province struct {
	ID     int    `json:"id"`
	NameTH string `json:"nameTh"`
	NameEN string `json:"nameEn"`
}

type District struct {
	ID     int    `json:"id"`
	NameTH string `json:"nameTh"`
	NameEN string `json:"nameEn"`
}

// Catalog bundles everything step two of the wizard needs in one payload.
type Catalog struct {
	OrgTypes  []OrgType  `json:"orgTypes"`
	Provinces []Province `json:"provinces"`
	Districts []District `json:"districts"`
}
