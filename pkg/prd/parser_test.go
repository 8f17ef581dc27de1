package prd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePRD = `# Checkout PRD

Some introduction text that is not a story.

## AUTH-001: Login form

Domain: auth
Agent: fe-agent
Priority: 1
Points: 3

### Acceptance Criteria

- User can log in with email and password
- Errors are shown inline

## PAY-001 - Charge endpoint

**Domain:** payments
**Priority:** 2

- [ ] Charges are idempotent
- Given a valid card, when charged, then a receipt is stored
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(samplePRD))
	require.NoError(t, err)

	assert.Equal(t, "Checkout PRD", doc.Title)
	require.Len(t, doc.Stories, 2)

	auth := doc.Stories[0]
	assert.Equal(t, "AUTH-001", auth.StoryID)
	assert.Equal(t, "Login form", auth.Title)
	assert.Equal(t, "auth", auth.Domain)
	assert.Equal(t, "fe-agent", auth.Agent)
	assert.Equal(t, 1, auth.Priority)
	assert.Equal(t, 3, auth.StoryPoints)
	require.Len(t, auth.AcceptanceCriteria, 2)
	assert.Equal(t, "User can log in with email and password", auth.AcceptanceCriteria[0])

	pay := doc.Stories[1]
	assert.Equal(t, "PAY-001", pay.StoryID)
	assert.Equal(t, "Charge endpoint", pay.Title)
	assert.Equal(t, "payments", pay.Domain)
	assert.Equal(t, 2, pay.Priority)
	assert.Len(t, pay.AcceptanceCriteria, 2)
}

func TestParse_NoStories(t *testing.T) {
	_, err := Parse([]byte("# Just a title\n\nNothing else.\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stories found")
}

func TestParse_CriteriaWithoutSection(t *testing.T) {
	doc, err := Parse([]byte(`## UI-001: Button

Domain: ui

- Given a click, when pressed, then it submits
- some random note
`))
	require.NoError(t, err)
	require.Len(t, doc.Stories, 1)

	// Given/When/Then bullets count as criteria even without a heading;
	// free-form notes do not.
	assert.Len(t, doc.Stories[0].AcceptanceCriteria, 1)
}
