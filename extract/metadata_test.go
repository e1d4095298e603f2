package extract

import (
	"reflect"
	"testing"

	"github.com/lawdesk/lawdocx/internal/docxtest"
	"github.com/lawdesk/lawdocx/model"
)

func TestCollectMetadata(t *testing.T) {
	pkg := openPackage(t, docxtest.Metadata())

	findings := CollectMetadata(pkg)

	byCategory := map[string][]model.Finding{}
	for _, f := range findings {
		if f.Severity != model.SeverityInfo {
			t.Errorf("finding %v severity = %q, want info", f.Details["name"], f.Severity)
		}
		category, _ := f.Details["category"].(string)
		byCategory[category] = append(byCategory[category], f)
	}

	if got := len(byCategory[categoryCore]); got != 6 {
		t.Errorf("core properties = %d, want 6", got)
	}
	if got := len(byCategory[categoryExtended]); got != 4 {
		t.Errorf("extended properties = %d, want 4", got)
	}
	if got := len(byCategory[categoryCustom]); got != 2 {
		t.Errorf("custom properties = %d, want 2", got)
	}

	title := findByName(findings, "title")
	if title == nil || title.Details["raw_value"] != "Asset Purchase Agreement" {
		t.Errorf("title finding = %+v", title)
	}
	matter := findByName(findings, "MatterNumber")
	if matter == nil || matter.Details["datatype"] != "lpwstr" || matter.Details["raw_value"] != "2024-0117" {
		t.Errorf("MatterNumber finding = %+v", matter)
	}

	xmls := byCategory[categoryCustomXML]
	if len(xmls) != 1 {
		t.Fatalf("custom-xml findings = %d, want 1", len(xmls))
	}
	if xmls[0].Details["count"] != 1 {
		t.Errorf("custom_xml count = %v, want 1", xmls[0].Details["count"])
	}
	if paths, _ := xmls[0].Details["paths"].([]string); !reflect.DeepEqual(paths, []string{"customXml/item1.xml"}) {
		t.Errorf("custom_xml paths = %v", xmls[0].Details["paths"])
	}
}

func TestCollectMetadataRevisionParts(t *testing.T) {
	const revisionXML = `<w:revisions xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:author>Alice</w:author></w:revisions>`
	pkg := openPackage(t, docxtest.Body("plain body").
		Part("word/revisionLog.xml", revisionXML))

	findings := CollectMetadata(pkg)

	var revisions []model.Finding
	for _, f := range findings {
		if f.Details["category"] == categoryRevision {
			revisions = append(revisions, f)
		}
	}
	if len(revisions) != 1 {
		t.Fatalf("revision findings = %d, want 1", len(revisions))
	}
	f := revisions[0]
	if f.Details["name"] != "word/revisionLog.xml" {
		t.Errorf("name = %v, want the part path", f.Details["name"])
	}
	if f.Details["datatype"] != "xml" {
		t.Errorf("datatype = %v, want xml", f.Details["datatype"])
	}
	if f.Details["raw_value"] != revisionXML {
		t.Errorf("raw_value = %v", f.Details["raw_value"])
	}
	if f.Severity != model.SeverityInfo {
		t.Errorf("severity = %q, want info", f.Severity)
	}
}

func TestCollectMetadataBareDocument(t *testing.T) {
	pkg := openPackage(t, docxtest.Body("no properties at all"))

	findings := CollectMetadata(pkg)

	// The customXml summary is always present, even when empty.
	if len(findings) != 1 {
		t.Fatalf("CollectMetadata() returned %d findings, want 1", len(findings))
	}
	f := findings[0]
	if f.Details["category"] != categoryCustomXML || f.Details["count"] != 0 {
		t.Errorf("summary finding = %+v", f)
	}
}

func findByName(findings []model.Finding, name string) *model.Finding {
	for i := range findings {
		if findings[i].Details["name"] == name {
			return &findings[i]
		}
	}
	return nil
}
