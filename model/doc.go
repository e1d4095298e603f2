// Package model defines the output types shared by every lawdocx extractor.
//
// All extraction operations ultimately produce these types, making them the
// primary API for consuming results.
//
// # Findings
//
// The [Finding] type is the universal output unit. Every extractor (tracked
// changes, comments, footnotes, highlights, brackets, todos, boilerplate,
// outline, metadata) emits a flat list of findings with a uniform shape:
//
//	{id, type, severity, location, context, details}
//
// Extraction failures are findings too: a file that cannot be opened yields a
// single finding with [SeverityError] and a details payload carrying the
// failure message, never a panic or a batch-aborting error.
//
// # Locations
//
// A [Location] points into a document by story name and paragraph range.
// Story names are symbolic: "body", "header", "footer--Section2--even",
// "footnote--3", and so on. Paragraph indices are 0-based and inclusive on
// both ends; character spans used to build context windows are half-open.
//
// # Envelopes
//
// A tool run wraps per-file finding lists into an [Envelope] carrying the
// lawdocx version, tool name, and generation timestamp. The audit composite
// nests one envelope per tool under Tools.
package model
