package docxtest

// Canned packages covering the part combinations the extractors care about.
// Each returns a Builder so tests can tweak parts before assembling.

const sectPrHeaderFooter = `<w:sectPr>
  <w:headerReference w:type="default" r:id="rId6"/>
  <w:footerReference w:type="default" r:id="rId7"/>
</w:sectPr>`

const documentRelsHeaderFooter = `<Relationship Id="rId6" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>
<Relationship Id="rId7" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>`

// HeaderFooter builds a document with one section referencing a default
// header and footer.
func HeaderFooter(headerText, footerText string, bodyParas ...string) *Builder {
	return NewBuilder().
		Document(Paras(bodyParas...)+sectPrHeaderFooter).
		Part("word/_rels/document.xml.rels", RelsXML(documentRelsHeaderFooter)).
		Part("word/header1.xml", HeaderXML(P(headerText))).
		Part("word/footer1.xml", FooterXML(P(footerText)))
}

// Body builds a document whose body is just the given paragraphs.
func Body(paras ...string) *Builder {
	return NewBuilder().Document(Paras(paras...))
}

// TrackedChanges builds a document with one change of each kind spread over
// body, header, footer, and a footnote.
func TrackedChanges() *Builder {
	body := `<w:p><w:r><w:t>Before </w:t></w:r><w:ins w:id="1" w:author="Alice" w:date="2024-03-01T10:00:00Z"><w:r><w:t>inserted text</w:t></w:r></w:ins><w:r><w:t> after.</w:t></w:r></w:p>` + sectPrHeaderFooter
	header := `<w:p><w:del w:id="2" w:author="Bob" w:date="2024-03-02T11:00:00Z"><w:r><w:delText>Header change</w:delText></w:r></w:del></w:p>`
	footer := `<w:p><w:moveFrom w:id="3" w:author="Carol"><w:r><w:delText>moved away</w:delText></w:r></w:moveFrom></w:p>`
	footnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:type="separator" w:id="-1"><w:p><w:r><w:separator/></w:r></w:p></w:footnote>
  <w:footnote w:type="continuationSeparator" w:id="0"><w:p><w:r><w:continuationSeparator/></w:r></w:p></w:footnote>
  <w:footnote w:id="1"><w:p><w:moveTo w:id="4" w:author="Dave"><w:r><w:t>moved here</w:t></w:r></w:moveTo></w:p></w:footnote>
</w:footnotes>`
	return NewBuilder().
		Document(body).
		Part("word/_rels/document.xml.rels", RelsXML(documentRelsHeaderFooter)).
		Part("word/header1.xml", HeaderXML(header)).
		Part("word/footer1.xml", FooterXML(footer)).
		Part("word/footnotes.xml", footnotes)
}

// Notes builds a document referencing one footnote and one endnote from the
// body, with note text parts present.
func Notes(footnoteText, endnoteText string) *Builder {
	body := `<w:p><w:r><w:t>Body with a claim</w:t></w:r><w:r><w:footnoteReference w:id="1"/></w:r><w:r><w:t> and a citation</w:t></w:r><w:r><w:endnoteReference w:id="2"/></w:r><w:r><w:t>.</w:t></w:r></w:p>`
	footnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:type="separator" w:id="-1"><w:p/></w:footnote>
  <w:footnote w:type="continuationSeparator" w:id="0"><w:p/></w:footnote>
  <w:footnote w:id="1"><w:p><w:r><w:t>` + footnoteText + `</w:t></w:r></w:p></w:footnote>
</w:footnotes>`
	endnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:endnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:endnote w:type="separator" w:id="-1"><w:p/></w:endnote>
  <w:endnote w:type="continuationSeparator" w:id="0"><w:p/></w:endnote>
  <w:endnote w:id="2"><w:p><w:r><w:t>` + endnoteText + `</w:t></w:r></w:p></w:endnote>
</w:endnotes>`
	return NewBuilder().
		Document(body).
		Part("word/footnotes.xml", footnotes).
		Part("word/endnotes.xml", endnotes)
}

// DanglingNote builds a document referencing footnote 7 with no footnotes
// part in the package.
func DanglingNote() *Builder {
	body := `<w:p><w:r><w:t>Claim</w:t></w:r><w:r><w:footnoteReference w:id="7"/></w:r><w:r><w:t>.</w:t></w:r></w:p>`
	return NewBuilder().Document(body)
}

// MultistoryNotes builds note references in the header, footer, and inside a
// footnote, exercising composed story names.
func MultistoryNotes() *Builder {
	body := `<w:p><w:r><w:t>Body point</w:t></w:r><w:r><w:endnoteReference w:id="3"/></w:r></w:p>` + sectPrHeaderFooter
	header := `<w:p><w:r><w:t>Header note</w:t></w:r><w:r><w:footnoteReference w:id="2"/></w:r></w:p>`
	footer := `<w:p><w:r><w:t>Footer note</w:t></w:r><w:r><w:endnoteReference w:id="3"/></w:r></w:p>`
	footnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:type="separator" w:id="-1"><w:p/></w:footnote>
  <w:footnote w:id="2"><w:p><w:r><w:t>Nested claim</w:t></w:r><w:r><w:endnoteReference w:id="3"/></w:r></w:p></w:footnote>
</w:footnotes>`
	endnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:endnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:endnote w:type="separator" w:id="-1"><w:p/></w:endnote>
  <w:endnote w:id="3"><w:p><w:r><w:t>Shared endnote</w:t></w:r></w:p></w:endnote>
</w:endnotes>`
	return NewBuilder().
		Document(body).
		Part("word/_rels/document.xml.rels", RelsXML(documentRelsHeaderFooter)).
		Part("word/header1.xml", HeaderXML(header)).
		Part("word/footer1.xml", FooterXML(footer)).
		Part("word/footnotes.xml", footnotes).
		Part("word/endnotes.xml", endnotes)
}

// Highlights builds highlighted runs in all five story kinds.
func Highlights() *Builder {
	hl := func(color, text string) string {
		return `<w:r><w:rPr><w:highlight w:val="` + color + `"/></w:rPr><w:t>` + text + `</w:t></w:r>`
	}
	body := `<w:p><w:r><w:t>Plain </w:t></w:r>` + hl("yellow", "body mark") + `<w:r><w:t> tail</w:t></w:r><w:r><w:footnoteReference w:id="1"/></w:r><w:r><w:endnoteReference w:id="2"/></w:r></w:p>` + sectPrHeaderFooter
	header := `<w:p>` + hl("green", "header mark") + `</w:p>`
	footer := `<w:p>` + hl("cyan", "footer mark") + `</w:p>`
	footnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:type="separator" w:id="-1"><w:p/></w:footnote>
  <w:footnote w:id="1"><w:p>` + hl("magenta", "footnote mark") + `</w:p></w:footnote>
</w:footnotes>`
	endnotes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:endnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:endnote w:type="separator" w:id="-1"><w:p/></w:endnote>
  <w:endnote w:id="2"><w:p>` + hl("blue", "endnote mark") + `</w:p></w:endnote>
</w:endnotes>`
	return NewBuilder().
		Document(body).
		Part("word/_rels/document.xml.rels", RelsXML(documentRelsHeaderFooter)).
		Part("word/header1.xml", HeaderXML(header)).
		Part("word/footer1.xml", FooterXML(footer)).
		Part("word/footnotes.xml", footnotes).
		Part("word/endnotes.xml", endnotes)
}

// Comments builds two anchored comments where the second replies to the
// first, with the commentsExtended part carrying thread state.
func Comments() *Builder {
	body := `<w:p><w:commentRangeStart w:id="1"/><w:r><w:t>The indemnity clause needs review.</w:t></w:r><w:commentRangeEnd w:id="1"/><w:r><w:commentReference w:id="1"/></w:r></w:p>` +
		`<w:p><w:commentRangeStart w:id="2"/><w:r><w:t>Second paragraph under discussion.</w:t></w:r><w:commentRangeEnd w:id="2"/><w:r><w:commentReference w:id="2"/></w:r></w:p>`
	comments := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:comments xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml">
  <w:comment w:id="1" w:author="Alice" w:initials="AL" w:date="2024-02-01T09:00:00Z"><w:p w14:paraId="11110001"><w:r><w:t>Please tighten this.</w:t></w:r></w:p></w:comment>
  <w:comment w:id="2" w:author="Bob" w:initials="BO" w:date="2024-02-01T10:00:00Z"><w:p w14:paraId="22220002"><w:r><w:t>Agreed, will do.</w:t></w:r></w:p></w:comment>
</w:comments>`
	extended := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w15:commentsEx xmlns:w15="http://schemas.microsoft.com/office/word/2012/wordml">
  <w15:commentEx w15:paraId="11110001" w15:done="1"/>
  <w15:commentEx w15:paraId="22220002" w15:done="0" w15:paraIdParent="11110001"/>
</w15:commentsEx>`
	return NewBuilder().
		Document(body).
		Part("word/comments.xml", comments).
		Part("word/commentsExtended.xml", extended)
}

const stylesWithHeading = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/></w:style>
  <w:style w:type="paragraph" w:styleId="BodyText"><w:name w:val="Body Text"/></w:style>
</w:styles>`

// Outline builds a manually numbered paragraph, a list-numbered paragraph,
// and a numbered heading.
func Outline() *Builder {
	body := `<w:p><w:pPr><w:pStyle w:val="BodyText"/></w:pPr><w:r><w:t>1. Manually numbered clause</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:pStyle w:val="BodyText"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="5"/></w:numPr></w:pPr><w:r><w:t>List numbered clause</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>3. Numbered heading</w:t></w:r></w:p>`
	return NewBuilder().
		Document(body).
		Part("word/styles.xml", stylesWithHeading)
}

const coreXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/">
  <dc:title>Asset Purchase Agreement</dc:title>
  <dc:creator>Alice Author</dc:creator>
  <cp:lastModifiedBy>Bob Editor</cp:lastModifiedBy>
  <cp:revision>12</cp:revision>
  <dcterms:created>2024-01-01T00:00:00Z</dcterms:created>
  <dcterms:modified>2024-02-01T00:00:00Z</dcterms:modified>
</cp:coreProperties>`

const appXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
  <Application>Microsoft Office Word</Application>
  <AppVersion>16.0000</AppVersion>
  <Company>Lawdesk LLP</Company>
  <TotalTime>95</TotalTime>
</Properties>`

const customXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/custom-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">
  <property fmtid="{D5CDD505-2E9C-101B-9397-08002B2CF9AE}" pid="2" name="MatterNumber"><vt:lpwstr>2024-0117</vt:lpwstr></property>
  <property fmtid="{D5CDD505-2E9C-101B-9397-08002B2CF9AE}" pid="3" name="ReviewRound"><vt:i4>4</vt:i4></property>
</Properties>`

const rootRelsWithProps = `<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
<Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties" Target="docProps/custom.xml"/>`

// Metadata builds a document carrying core, extended, and custom properties
// plus a customXml part reached through a relative relationship target.
func Metadata() *Builder {
	docRels := `<Relationship Id="rId5" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/customXml" Target="../customXml/item1.xml"/>`
	return NewBuilder().
		Part("_rels/.rels", RelsXML(rootRelsWithProps)).
		Document(P(`Body text`)).
		Part("word/_rels/document.xml.rels", RelsXML(docRels)).
		Part("docProps/core.xml", coreXML).
		Part("docProps/app.xml", appXML).
		Part("docProps/custom.xml", customXML).
		Part("customXml/item1.xml", `<root><meta>embedded</meta></root>`)
}
