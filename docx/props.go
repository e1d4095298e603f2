package docx

import (
	"errors"
	"fmt"
)

// Property is one document property: a core (Dublin Core) or extended
// (application) metadata entry.
type Property struct {
	Name  string
	Value string
}

// CoreProperties reads docProps/core.xml: every child element by local name,
// in document order. A missing part yields no properties.
func CoreProperties(pkg *Package) ([]Property, error) {
	return childProperties(pkg, PartCoreProps)
}

// AppProperties reads docProps/app.xml the same way.
func AppProperties(pkg *Package) ([]Property, error) {
	return childProperties(pkg, PartAppProps)
}

func childProperties(pkg *Package, partName string) ([]Property, error) {
	data, err := pkg.ReadPart(partName)
	if errors.Is(err, ErrPartMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", partName, err)
	}

	props := make([]Property, 0, len(root.Children))
	for _, child := range root.Children {
		props = append(props, Property{Name: child.Local, Value: child.Text})
	}
	return props, nil
}

// CustomProperty is one docProps/custom.xml entry. Datatype is the variant
// type element's local name (lpwstr, i4, ...), empty when the property has no
// value child.
type CustomProperty struct {
	Name     string
	Value    string
	Datatype string
}

// CustomProperties reads docProps/custom.xml. A missing part yields no
// properties.
func CustomProperties(pkg *Package) ([]CustomProperty, error) {
	data, err := pkg.ReadPart(PartCustomProps)
	if errors.Is(err, ErrPartMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	root, err := ParseXML(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PartCustomProps, err)
	}

	var props []CustomProperty
	for _, elem := range root.FindAll("property") {
		prop := CustomProperty{Name: elem.Attr("name")}
		if len(elem.Children) > 0 {
			value := elem.Children[0]
			prop.Datatype = value.Local
			prop.Value = value.Text
		}
		props = append(props, prop)
	}
	return props, nil
}
