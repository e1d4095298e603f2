package extract

import (
	"fmt"
	"strings"

	"github.com/lawdesk/lawdocx/docx"
	"github.com/lawdesk/lawdocx/model"
)

// commentAnchor is a closed comment range located in a story: the span
// offsets within the story's joined text plus the paragraph range it covers.
type commentAnchor struct {
	story     string
	paraStart int
	paraEnd   int
	start     int
	end       int
	text      string
}

// CollectComments extracts comment bodies with threading and resolved state,
// anchored back to their range markers in the document. The anchor scan
// covers body, header, and footer stories; comments whose range never closes
// fall back to their own body text as context, flagged as such.
func CollectComments(pkg *docx.Package) []model.Finding {
	comments, err := docx.Comments(pkg)
	if err != nil {
		return []model.Finding{errorFinding(model.TypeComment, "comment",
			fmt.Sprintf("Comment extraction failed: %v", err))}
	}
	if comments == nil {
		return nil
	}

	anchors := scanCommentAnchors(pkg)

	// Malformed threading data reads as absent threading data.
	extended, err := docx.CommentsExtended(pkg)
	if err != nil {
		extended = map[string]docx.CommentExtended{}
	}

	var findings []model.Finding
	paraToCommentID := make(map[string]string)

	for _, comment := range comments {
		for _, paraID := range comment.ParaIDs {
			if comment.ID != "" {
				paraToCommentID[paraID] = comment.ID
			}
		}

		var ext docx.CommentExtended
		for _, paraID := range comment.ParaIDs {
			if entry, ok := extended[paraID]; ok {
				ext = entry
				break
			}
		}

		commentText := comment.Text()
		details := model.Details{
			"resolved":     ext.Done != nil && *ext.Done,
			"comment_text": commentText,
		}
		if comment.Author != "" {
			details["author"] = comment.Author
		}
		if comment.Initials != "" {
			details["initials"] = comment.Initials
		}
		if comment.Date != "" {
			details["date"] = comment.Date
		}
		if ext.ParentParaID != "" {
			if parentID, ok := paraToCommentID[ext.ParentParaID]; ok {
				details["parent_comment_id"] = parentID
			}
		}

		paraEnd := max(0, len(comment.Paragraphs)-1)
		intrinsic := model.Location{
			Story:             "comment",
			ParagraphIndexEnd: paraEnd,
		}

		finding := model.Finding{
			ID:       model.NewFindingID(),
			Type:     model.TypeComment,
			Severity: model.SeverityInfo,
			Details:  details,
		}

		if anchor, ok := anchors[comment.ID]; ok && comment.ID != "" && anchor.text != "" {
			finding.Location = model.Location{
				Story:               anchor.story,
				ParagraphIndexStart: anchor.paraStart,
				ParagraphIndexEnd:   anchor.paraEnd,
				CommentID:           comment.ID,
				TargetLocation:      &intrinsic,
			}
			finding.Context = textContext(anchor.text, anchor.start, anchor.end)
		} else {
			finding.Location = intrinsic
			finding.Location.CommentID = comment.ID
			finding.Location.AnchorFallback = true
			finding.Context = textContext(commentText, 0, len(commentText))
			details["context_fallback"] = "comment_text"
		}

		findings = append(findings, finding)
	}

	return findings
}

// scanCommentAnchors locates commentRangeStart/End pairs in the body, header,
// and footer stories. The first closed range wins for a given comment ID;
// unmatched starts and ends are ignored. A failed story scan reads as no
// anchors, leaving every comment on the fallback path.
func scanCommentAnchors(pkg *docx.Package) map[string]commentAnchor {
	stories, err := docx.Stories(pkg)
	if err != nil {
		return nil
	}

	anchors := make(map[string]commentAnchor)
	for _, story := range stories {
		switch story.Kind {
		case docx.StoryBody, docx.StoryHeader, docx.StoryFooter:
		default:
			continue
		}
		for id, anchor := range storyAnchors(story) {
			if _, taken := anchors[id]; !taken {
				anchors[id] = anchor
			}
		}
	}
	return anchors
}

// storyAnchors scans one story, joining its paragraphs with newlines while
// tracking where each comment range opens and closes in the joined text.
func storyAnchors(story docx.Story) map[string]commentAnchor {
	type openRange struct {
		para   int
		offset int
	}
	open := make(map[string]openRange)
	closed := make(map[string]commentAnchor)
	var sb strings.Builder

	for index, p := range story.Paragraphs {
		if index > 0 {
			sb.WriteByte('\n')
		}
		paraStart := sb.Len()

		text, spans := docx.Flatten(p, docx.CommentRangeMarkers())
		sb.WriteString(text)

		for _, span := range spans {
			offset := paraStart + span.Start
			switch span.Kind {
			case "commentRangeStart":
				if _, seen := open[span.ID]; !seen {
					open[span.ID] = openRange{para: index, offset: offset}
				}
			case "commentRangeEnd":
				began, ok := open[span.ID]
				if !ok {
					continue
				}
				delete(open, span.ID)
				if _, taken := closed[span.ID]; taken {
					continue
				}
				closed[span.ID] = commentAnchor{
					story:     story.Name,
					paraStart: began.para,
					paraEnd:   index,
					start:     began.offset,
					end:       offset,
				}
			}
		}
	}

	text := sb.String()
	for id, anchor := range closed {
		anchor.text = text
		closed[id] = anchor
	}
	return closed
}
