package extract

import (
	"fmt"
	"strings"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// Metadata categories.
const (
	categoryCore      = "core"
	categoryExtended  = "extended"
	categoryCustom    = "custom"
	categoryRevision  = "revision"
	categoryCustomXML = "custom-xml"
)

// CollectMetadata reads the document property parts: core (Dublin Core),
// extended (application), custom, any revision-log parts, plus a summary of
// embedded customXml parts. Every property becomes one info finding; a failed
// section degrades to one error finding without blocking the remaining
// sections. The customXml summary is always emitted, count zero included, so
// reviewers can rely on its presence.
func CollectMetadata(pkg *docx.Package) []model.Finding {
	var findings []model.Finding

	core, err := docx.CoreProperties(pkg)
	if err != nil {
		findings = append(findings, metadataError(fmt.Sprintf("Core properties failed: %v", err)))
	}
	for _, prop := range core {
		findings = append(findings, metadataFinding(prop.Name, prop.Value, categoryCore, ""))
	}

	app, err := docx.AppProperties(pkg)
	if err != nil {
		findings = append(findings, metadataError(fmt.Sprintf("Extended properties failed: %v", err)))
	}
	for _, prop := range app {
		findings = append(findings, metadataFinding(prop.Name, prop.Value, categoryExtended, ""))
	}

	custom, err := docx.CustomProperties(pkg)
	if err != nil {
		findings = append(findings, metadataError(fmt.Sprintf("Custom properties failed: %v", err)))
	}
	for _, prop := range custom {
		findings = append(findings, metadataFinding(prop.Name, prop.Value, categoryCustom, prop.Datatype))
	}

	findings = append(findings, revisionFindings(pkg)...)
	findings = append(findings, customXMLFinding(pkg))
	return findings
}

// revisionFindings reports package parts whose names mention revisions, the
// raw save/edit history Word sometimes leaves behind. One finding per part,
// named by the part path, carrying the part's XML forced to valid UTF-8.
func revisionFindings(pkg *docx.Package) []model.Finding {
	var findings []model.Finding
	for _, name := range pkg.Parts() {
		if !strings.Contains(strings.ToLower(name), "revision") {
			continue
		}
		data, err := pkg.ReadPart(name)
		if err != nil {
			findings = append(findings, metadataError(
				fmt.Sprintf("Revision part %s failed: %v", name, err)))
			continue
		}
		value := strings.ToValidUTF8(string(data), "�")
		findings = append(findings, metadataFinding(name, value, categoryRevision, "xml"))
	}
	return findings
}

// customXMLFinding summarizes the customXml parts referenced by the main
// document: how many there are and where they live in the package.
func customXMLFinding(pkg *docx.Package) model.Finding {
	paths := []string{}
	rels, err := pkg.RelationshipList(docx.PartDocument)
	if err != nil {
		return metadataError(fmt.Sprintf("Custom XML parts failed: %v", err))
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, "/customXml") && !rel.External {
			paths = append(paths, rel.Target)
		}
	}

	finding := metadataFinding("custom_xml", "", categoryCustomXML, "")
	delete(finding.Details, "raw_value")
	finding.Details["count"] = len(paths)
	finding.Details["paths"] = paths
	return finding
}

func metadataFinding(name, value, category, datatype string) model.Finding {
	details := model.Details{
		"name":      name,
		"category":  category,
		"raw_value": value,
	}
	if datatype != "" {
		details["datatype"] = datatype
	}
	return model.Finding{
		ID:       model.NewFindingID(),
		Type:     model.TypeMetadata,
		Severity: model.SeverityInfo,
		Location: paraLocation("metadata", 0),
		Context:  model.Context{Target: value},
		Details:  details,
	}
}

func metadataError(message string) model.Finding {
	return errorFinding(model.TypeMetadata, "metadata", message)
}
