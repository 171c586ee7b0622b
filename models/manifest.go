package models

// Manifest describes the addon to the host application: which catalogs it
// serves, which resources it answers, and which id scheme it speaks.
type Manifest struct {
	ID            string              `json:"id"`
	Version       string              `json:"version"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Logo          string              `json:"logo,omitempty"`
	ContactEmail  string              `json:"contactEmail,omitempty"`
	Resources     []string            `json:"resources"`
	Types         []string            `json:"types"`
	IDPrefixes    []string            `json:"idPrefixes"`
	Catalogs      []CatalogDefinition `json:"catalogs"`
	BehaviorHints BehaviorHints       `json:"behaviorHints"`
}

// CatalogDefinition is one advertised catalog with its supported extras.
type CatalogDefinition struct {
	Type           string       `json:"type"`
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Extra          []ExtraField `json:"extra"`
	ExtraSupported []string     `json:"extraSupported"`
}

// ExtraField declares an extra parameter a catalog accepts, with fixed
// options where the client should render a picker.
type ExtraField struct {
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}

type BehaviorHints struct {
	Adult bool `json:"adult"`
}
