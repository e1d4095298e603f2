package extract

import (
	"testing"

	"github.com/lawdesk/lawdocx/internal/docxtest"
)

func TestCollectCommentsThreading(t *testing.T) {
	pkg := openPackage(t, docxtest.Comments())

	findings := CollectComments(pkg)

	if len(findings) != 2 {
		t.Fatalf("CollectComments() returned %d findings, want 2", len(findings))
	}

	parent, child := findings[0], findings[1]

	if parent.Details["resolved"] != true {
		t.Errorf("parent resolved = %v, want true", parent.Details["resolved"])
	}
	if child.Details["resolved"] != false {
		t.Errorf("child resolved = %v, want false", child.Details["resolved"])
	}
	if child.Details["parent_comment_id"] != "1" {
		t.Errorf("parent_comment_id = %v, want %q", child.Details["parent_comment_id"], "1")
	}
	if parent.Details["author"] != "Alice" || parent.Details["initials"] != "AL" {
		t.Errorf("parent author/initials = %v/%v", parent.Details["author"], parent.Details["initials"])
	}
	if parent.Details["comment_text"] != "Please tighten this." {
		t.Errorf("comment_text = %v", parent.Details["comment_text"])
	}
}

func TestCollectCommentsAnchorsToBody(t *testing.T) {
	pkg := openPackage(t, docxtest.Comments())

	findings := CollectComments(pkg)
	if len(findings) != 2 {
		t.Fatalf("CollectComments() returned %d findings, want 2", len(findings))
	}

	parent := findings[0]
	if parent.Location.Story != "body" {
		t.Errorf("parent story = %q, want body", parent.Location.Story)
	}
	if parent.Location.ParagraphIndexStart != 0 || parent.Location.ParagraphIndexEnd != 0 {
		t.Errorf("parent paragraphs = %d..%d, want 0..0",
			parent.Location.ParagraphIndexStart, parent.Location.ParagraphIndexEnd)
	}
	if parent.Location.CommentID != "1" {
		t.Errorf("parent comment_id = %q, want 1", parent.Location.CommentID)
	}
	if parent.Location.AnchorFallback {
		t.Error("parent anchored, AnchorFallback should be unset")
	}
	if parent.Context.Target != "The indemnity clause needs review." {
		t.Errorf("parent target = %q", parent.Context.Target)
	}
	if parent.Location.TargetLocation == nil || parent.Location.TargetLocation.Story != "comment" {
		t.Errorf("parent target_location = %+v", parent.Location.TargetLocation)
	}

	child := findings[1]
	if child.Location.ParagraphIndexStart != 1 || child.Location.ParagraphIndexEnd != 1 {
		t.Errorf("child paragraphs = %d..%d, want 1..1",
			child.Location.ParagraphIndexStart, child.Location.ParagraphIndexEnd)
	}
	if child.Context.Target != "Second paragraph under discussion." {
		t.Errorf("child target = %q", child.Context.Target)
	}
}

func TestCollectCommentsFallbackWithoutAnchor(t *testing.T) {
	comments := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:comments xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml">
  <w:comment w:id="9" w:author="Eve"><w:p w14:paraId="99990009"><w:r><w:t>Orphaned remark.</w:t></w:r></w:p></w:comment>
</w:comments>`
	b := docxtest.Body("No ranges here.").Part("word/comments.xml", comments)
	pkg := openPackage(t, b)

	findings := CollectComments(pkg)
	if len(findings) != 1 {
		t.Fatalf("CollectComments() returned %d findings, want 1", len(findings))
	}

	f := findings[0]
	if !f.Location.AnchorFallback {
		t.Error("AnchorFallback not set for orphaned comment")
	}
	if f.Location.Story != "comment" {
		t.Errorf("story = %q, want comment", f.Location.Story)
	}
	if f.Details["context_fallback"] != "comment_text" {
		t.Errorf("context_fallback = %v", f.Details["context_fallback"])
	}
	if f.Context.Target != "Orphaned remark." {
		t.Errorf("target = %q, want comment body text", f.Context.Target)
	}
	if f.Location.CommentID != "9" {
		t.Errorf("comment_id = %q, want 9", f.Location.CommentID)
	}
}

func TestCollectCommentsNoCommentsPart(t *testing.T) {
	pkg := openPackage(t, docxtest.Body("Nothing to see."))

	if findings := CollectComments(pkg); len(findings) != 0 {
		t.Errorf("CollectComments() = %v, want none", findings)
	}
}

func TestCollectCommentsMultiParagraphBody(t *testing.T) {
	comments := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:comments xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:w14="http://schemas.microsoft.com/office/word/2010/wordml">
  <w:comment w:id="3" w:author="Fay"><w:p w14:paraId="30000003"><w:r><w:t>First line.</w:t></w:r></w:p><w:p><w:r><w:t>Second line.</w:t></w:r></w:p></w:comment>
</w:comments>`
	b := docxtest.Body("Body.").Part("word/comments.xml", comments)
	pkg := openPackage(t, b)

	findings := CollectComments(pkg)
	if len(findings) != 1 {
		t.Fatalf("CollectComments() returned %d findings, want 1", len(findings))
	}

	f := findings[0]
	if f.Details["comment_text"] != "First line.\nSecond line." {
		t.Errorf("comment_text = %v", f.Details["comment_text"])
	}
	if f.Location.ParagraphIndexEnd != 1 {
		t.Errorf("paragraph_index_end = %d, want 1", f.Location.ParagraphIndexEnd)
	}
}

func TestScanCommentAnchorsSpansParagraphs(t *testing.T) {
	body := `<w:p><w:commentRangeStart w:id="5"/><w:r><w:t>Starts here</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>ends here.</w:t></w:r><w:commentRangeEnd w:id="5"/></w:p>`
	pkg := openPackage(t, docxtest.NewBuilder().Document(body))

	anchors := scanCommentAnchors(pkg)

	anchor, ok := anchors["5"]
	if !ok {
		t.Fatalf("anchor for comment 5 not found: %v", anchors)
	}
	if anchor.paraStart != 0 || anchor.paraEnd != 1 {
		t.Errorf("anchor paragraphs = %d..%d, want 0..1", anchor.paraStart, anchor.paraEnd)
	}
	if got := anchor.text[anchor.start:anchor.end]; got != "Starts here\nends here." {
		t.Errorf("anchored span = %q", got)
	}
}

func TestScanCommentAnchorsIgnoresUnmatched(t *testing.T) {
	body := `<w:p><w:commentRangeStart w:id="7"/><w:r><w:t>never closed</w:t></w:r></w:p>` +
		`<w:p><w:commentRangeEnd w:id="8"/><w:r><w:t>never opened</w:t></w:r></w:p>`
	pkg := openPackage(t, docxtest.NewBuilder().Document(body))

	if anchors := scanCommentAnchors(pkg); len(anchors) != 0 {
		t.Errorf("scanCommentAnchors() = %v, want none", anchors)
	}
}
