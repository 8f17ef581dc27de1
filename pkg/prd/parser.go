// Package prd extracts user stories from a product requirements document
// written in Markdown. Each story is a heading like "AUTH-001: Login form"
// followed by metadata lines and an acceptance-criteria list.
package prd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Boomerang-Apps/wave/pkg/models"
)

// storyHeading matches "AUTH-001: Build the login form" style headings.
var storyHeading = regexp.MustCompile(`^([A-Z][A-Z0-9]+-\d+)\s*[:\-]\s*(.+)$`)

// metadataLine matches "Domain: be", "**Priority:** 2" and similar.
var metadataLine = regexp.MustCompile(`(?i)^\*{0,2}(domain|agent|priority|points|story points)\*{0,2}\s*[:\-]\s*\*{0,2}(.+?)\*{0,2}$`)

// Document is the parsed PRD.
type Document struct {
	Title   string
	Stories []models.StoryTask
}

// Parse extracts stories from PRD markdown.
func Parse(source []byte) (*Document, error) {
	md := goldmark.New()
	reader := text.NewReader(source)
	root := md.Parser().Parse(reader)

	doc := &Document{}
	var current *models.StoryTask
	inCriteria := false

	flush := func() {
		if current != nil {
			doc.Stories = append(doc.Stories, *current)
			current = nil
		}
		inCriteria = false
	}

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, source)
			if node.Level == 1 && doc.Title == "" {
				doc.Title = title
			}
			if m := storyHeading.FindStringSubmatch(title); m != nil {
				flush()
				current = &models.StoryTask{
					StoryID: m[1],
					Title:   strings.TrimSpace(m[2]),
					Context: map[string]interface{}{},
				}
				return ast.WalkSkipChildren, nil
			}
			if current != nil && isCriteriaHeading(title) {
				inCriteria = true
				return ast.WalkSkipChildren, nil
			}
			if current != nil && node.Level <= 3 {
				// A new section at story level closes the open story
				flush()
			}
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			if current == nil {
				return ast.WalkContinue, nil
			}
			for _, line := range strings.Split(nodeText(node, source), "\n") {
				applyMetadata(current, strings.TrimSpace(line))
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if current == nil {
				return ast.WalkContinue, nil
			}
			item := nodeText(node, source)
			if first := strings.Split(item, "\n"); len(first) > 0 {
				item = strings.TrimSpace(first[0])
			}
			if item == "" {
				return ast.WalkSkipChildren, nil
			}
			if inCriteria {
				current.AcceptanceCriteria = append(current.AcceptanceCriteria, item)
			} else if !applyMetadata(current, item) && looksLikeCriterion(item) {
				current.AcceptanceCriteria = append(current.AcceptanceCriteria, item)
			}
			return ast.WalkContinue, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk PRD: %w", err)
	}
	flush()

	if len(doc.Stories) == 0 {
		return nil, fmt.Errorf("no stories found in PRD")
	}
	return doc, nil
}

// applyMetadata folds a "key: value" line into the story; returns whether
// the line was metadata.
func applyMetadata(story *models.StoryTask, line string) bool {
	m := metadataLine.FindStringSubmatch(line)
	if m == nil {
		return false
	}
	value := strings.TrimSpace(m[2])
	switch strings.ToLower(m[1]) {
	case "domain":
		story.Domain = strings.ToLower(value)
	case "agent":
		story.Agent = value
	case "priority":
		if n, err := strconv.Atoi(value); err == nil {
			story.Priority = n
		}
	case "points", "story points":
		if n, err := strconv.Atoi(value); err == nil {
			story.StoryPoints = n
		}
	}
	return true
}

func isCriteriaHeading(title string) bool {
	lower := strings.ToLower(title)
	return strings.Contains(lower, "acceptance criteria") || strings.Contains(lower, "acceptance")
}

// looksLikeCriterion treats checkbox and Given/When/Then bullets as
// acceptance criteria even outside a criteria section.
func looksLikeCriterion(item string) bool {
	lower := strings.ToLower(item)
	return strings.HasPrefix(lower, "[ ]") || strings.HasPrefix(lower, "[x]") ||
		strings.HasPrefix(lower, "given ") || strings.HasPrefix(lower, "when ") ||
		strings.HasPrefix(lower, "then ")
}

// nodeText renders a node's literal text content.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
