package docx

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// stylesXML represents the subset of word/styles.xml the extractors need.
type stylesXML struct {
	XMLName xml.Name   `xml:"styles"`
	Styles  []styleXML `xml:"style"`
}

// styleXML represents one style definition.
type styleXML struct {
	StyleID string       `xml:"styleId,attr"`
	Name    styleNameXML `xml:"name"`
}

// styleNameXML represents a style's display name.
type styleNameXML struct {
	Val string `xml:"val,attr"`
}

// StyleNames returns a map from style ID to human-readable style name. A
// missing styles part yields an empty map; callers fall back to the raw style
// ID for unseen entries.
func StyleNames(pkg *Package) (map[string]string, error) {
	data, err := pkg.ReadPart(PartStyles)
	if errors.Is(err, ErrPartMissing) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var styles stylesXML
	if err := xml.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("unmarshaling %s: %w", PartStyles, err)
	}

	names := make(map[string]string, len(styles.Styles))
	for _, style := range styles.Styles {
		if style.StyleID != "" && style.Name.Val != "" {
			names[style.StyleID] = style.Name.Val
		}
	}
	return names, nil
}
