// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

// Package workflow implements the two state machines at the heart of the
// delivery pipeline: the project-status lifecycle attached to a client and
// the per-script review workflow driven by client and admin actions.
package workflow

import (
	"fmt"
	"math"

	"brandvoice/internal/models"
)

// progressSteps is the linear delivery path used for progress rendering.
// Ongoing is excluded: it marks a subscription continuing past delivery
// and always reads as fully complete.
var progressSteps = []models.ProjectStatus{
	models.StatusDiscovery,
	models.StatusOnboarding,
	models.StatusAvatarCreation,
	models.StatusScriptwriting,
	models.StatusVideoProduction,
	models.StatusQAReview,
	models.StatusDelivered,
}

// StepState describes how one step of the delivery path should render for
// a given current status.
type StepState string

const (
	StepCompleted StepState = "completed"
	StepCurrent   StepState = "current"
	StepPending   StepState = "pending"
)

// Step pairs a linear status with its render state.
type Step struct {
	Status models.ProjectStatus `json:"status"`
	State  StepState            `json:"state"`
}

// Progress returns the completion percentage for a project status.
// The percentage is defined only over the seven-step linear path:
// ongoing reads as 100, and the side states paused and disputed have no
// percentage (ok is false). Unrecognized statuses also report ok=false
// rather than rendering incorrect progress.
func Progress(status models.ProjectStatus) (percent int, ok bool) {
	if status == models.StatusOngoing {
		return 100, true
	}
	for i, s := range progressSteps {
		if s == status {
			// Rounded to the nearest percent: onboarding is 17, not 16.
			return int(math.Round(float64(i) / float64(len(progressSteps)-1) * 100)), true
		}
	}
	return 0, false
}

// Steps returns the full seven-step path annotated for rendering: steps
// before the current status are completed, the current one is current,
// later ones are pending. For ongoing every step is completed. For side
// states and unrecognized statuses it returns nil; callers render a
// dedicated non-linear panel instead.
func Steps(status models.ProjectStatus) []Step {
	if status == models.StatusOngoing {
		steps := make([]Step, len(progressSteps))
		for i, s := range progressSteps {
			steps[i] = Step{Status: s, State: StepCompleted}
		}
		return steps
	}

	idx := -1
	for i, s := range progressSteps {
		if s == status {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	steps := make([]Step, len(progressSteps))
	for i, s := range progressSteps {
		state := StepPending
		switch {
		case i < idx:
			state = StepCompleted
		case i == idx:
			state = StepCurrent
		}
		steps[i] = Step{Status: s, State: state}
	}
	return steps
}

// ValidateStatus rejects anything outside the ten enumerated statuses.
func ValidateStatus(raw string) (models.ProjectStatus, error) {
	s := models.ProjectStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}
