// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package workflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"brandvoice/internal/models"
)

// Sentinel errors returned by transition functions. Handlers map these to
// HTTP status codes.
var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrNotesRequired     = errors.New("revision notes are required")
)

// ReviewAction is a client-initiated review decision.
type ReviewAction string

const (
	ActionApprove         ReviewAction = "approve"
	ActionRequestRevision ReviewAction = "request_revision"
)

// ReviewResult is the outcome of applying a client review action.
type ReviewResult struct {
	Status models.ScriptStatus
	// Notes is the script's new notes value. Unchanged from the input
	// notes unless the action prepends a revision request.
	Notes *string
}

// ClientReview applies a client-side review action to a script. These are
// the only two transitions exposed to the portal: approve moves a draft or
// revision-requested script to approved; request_revision moves a draft or
// approved script to revision_requested and requires non-blank notes,
// which are prepended to any existing notes with a dated marker.
//
// Exported scripts are in production and cannot be reviewed; only an admin
// force-set can move them back.
func ClientReview(current models.ScriptStatus, existingNotes *string, action ReviewAction, notes string) (*ReviewResult, error) {
	switch action {
	case ActionApprove:
		switch current {
		case models.ScriptStatusDraft, models.ScriptStatusRevisionRequested:
			return &ReviewResult{Status: models.ScriptStatusApproved, Notes: existingNotes}, nil
		default:
			return nil, fmt.Errorf("%w: cannot approve a script in status %q", ErrInvalidTransition, current)
		}

	case ActionRequestRevision:
		if strings.TrimSpace(notes) == "" {
			return nil, ErrNotesRequired
		}
		switch current {
		case models.ScriptStatusDraft, models.ScriptStatusApproved:
			merged := prependRevisionNotes(existingNotes, notes, time.Now())
			return &ReviewResult{Status: models.ScriptStatusRevisionRequested, Notes: &merged}, nil
		default:
			return nil, fmt.Errorf("%w: cannot request revision on a script in status %q", ErrInvalidTransition, current)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
}

// prependRevisionNotes stacks a new dated revision request above whatever
// notes the script already carries, so the admin sees the full history.
func prependRevisionNotes(existing *string, notes string, at time.Time) string {
	entry := fmt.Sprintf("[Revision Requested - %s]: %s", at.Format("1/2/2006"), strings.TrimSpace(notes))
	if existing == nil || *existing == "" {
		return entry
	}
	return entry + "\n\n" + *existing
}

// bulkTargets are the statuses an admin bulk update may set. The bulk
// action has no per-script precondition: re-applying the same status is a
// no-op success.
var bulkTargets = map[models.ScriptStatus]bool{
	models.ScriptStatusDraft:    true,
	models.ScriptStatusApproved: true,
	models.ScriptStatusExported: true,
}

// ValidateBulkTarget checks a bulk update's target status. Revision
// requests are a client action and are not reachable through the bulk
// path.
func ValidateBulkTarget(raw string) (models.ScriptStatus, error) {
	s := models.ScriptStatus(raw)
	if !bulkTargets[s] {
		return "", fmt.Errorf("%w: must be one of: draft, approved, exported", ErrInvalidStatus)
	}
	return s, nil
}

// ValidateForceSet checks the status on a privileged single-script admin
// edit. Unlike the client path this accepts all four statuses, including
// moving an exported script back, an explicit admin override.
func ValidateForceSet(raw string) (models.ScriptStatus, error) {
	s := models.ScriptStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: must be one of: draft, approved, revision_requested, exported", ErrInvalidStatus)
	}
	return s, nil
}
