// Copyright (c) 2026 BrandVoice Studio <hello@brandvoice.studio>
// All rights reserved. See LICENSE for details.

package models

// ProjectStatus represents a client engagement's position in the delivery
// lifecycle. Eight stages form a linear path; paused and disputed sit
// outside it and can be entered from any point.
type ProjectStatus string

const (
	StatusDiscovery       ProjectStatus = "discovery"
	StatusOnboarding      ProjectStatus = "onboarding"
	StatusAvatarCreation  ProjectStatus = "avatar-creation"
	StatusScriptwriting   ProjectStatus = "scriptwriting"
	StatusVideoProduction ProjectStatus = "video-production"
	StatusQAReview        ProjectStatus = "qa-review"
	StatusDelivered       ProjectStatus = "delivered"
	StatusOngoing         ProjectStatus = "ongoing"
	StatusPaused          ProjectStatus = "paused"
	StatusDisputed        ProjectStatus = "disputed"
)

// LinearStatuses is the ordered delivery path. Ongoing follows delivered
// for subscription clients but is not a progress step of its own.
var LinearStatuses = []ProjectStatus{
	StatusDiscovery,
	StatusOnboarding,
	StatusAvatarCreation,
	StatusScriptwriting,
	StatusVideoProduction,
	StatusQAReview,
	StatusDelivered,
	StatusOngoing,
}

// AllStatuses lists every valid project status, linear and side states.
var AllStatuses = []ProjectStatus{
	StatusDiscovery,
	StatusOnboarding,
	StatusAvatarCreation,
	StatusScriptwriting,
	StatusVideoProduction,
	StatusQAReview,
	StatusDelivered,
	StatusOngoing,
	StatusPaused,
	StatusDisputed,
}

// Valid reports whether s is one of the ten recognized statuses.
func (s ProjectStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsSideState reports whether s is paused or disputed, states that have
// no position on the linear delivery path.
func (s ProjectStatus) IsSideState() bool {
	return s == StatusPaused || s == StatusDisputed
}
