package document

import (
	"errors"
	"fmt"
	"sort"
)

// Type selects one of the built-in informational documents
type Type string

const (
	TypeDrugs     Type = "drugs"
	TypeTreatment Type = "treatment"
)

var ErrUnknownType = errors.New("unknown document type")

// Content is the fixed title and body of a document
type Content struct {
	Title string
	Body  string
}

var catalog = map[Type]Content{
	TypeDrugs: {
		Title: "Recommended Drugs",
		Body:  "Temozolomide, Bevacizumab, Corticosteroids",
	},
	TypeTreatment: {
		Title: "Treatment Process",
		Body:  "Surgery, Radiation Therapy, Chemotherapy, Targeted Therapy",
	},
}

// ParseType validates a selector taken from the request path
func ParseType(value string) (Type, error) {
	t := Type(value)
	if _, ok := catalog[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, value)
	}
	return t, nil
}

// Types lists the recognised selectors in a stable order
func Types() []Type {
	types := make([]Type, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Filename is the download name for the document
func (t Type) Filename() string {
	return string(t) + ".pdf"
}
