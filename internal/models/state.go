// Social Media App - Graph-Backed Social Content API
// Copyright 2026 Moneeb Shammout (moneebshammout)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/moneebshammout/social-media-app

package models

import "fmt"

// PollStatus is the lifecycle state of a poll, stored in the graph as a
// mutually exclusive Active/Ended label pair.
type PollStatus string

const (
	PollActive PollStatus = "Active"
	PollEnded  PollStatus = "Ended"
)

// ErrPollAlreadyEnded is returned when ending a poll that is not Active.
var ErrPollAlreadyEnded = fmt.Errorf("poll is already ended")

// End performs the one-way Active -> Ended transition. Ending an ended poll
// is rejected so reaction counters are frozen exactly once.
func (s PollStatus) End() (PollStatus, error) {
	if s != PollActive {
		return s, ErrPollAlreadyEnded
	}
	return PollEnded, nil
}

// Valid reports whether s is a known poll status.
func (s PollStatus) Valid() bool {
	return s == PollActive || s == PollEnded
}

// PollStatusFromLabels derives the status from a node's label list.
func PollStatusFromLabels(labels []string) (PollStatus, bool) {
	for _, l := range labels {
		switch l {
		case string(PollActive):
			return PollActive, true
		case string(PollEnded):
			return PollEnded, true
		}
	}
	return "", false
}

// ProfileState is the visibility state of a profile, stored in the graph as a
// mutually exclusive Public/Private label pair.
type ProfileState string

const (
	ProfilePublic  ProfileState = "Public"
	ProfilePrivate ProfileState = "Private"
)

// Toggle flips between Public and Private. Profiles start Public at creation.
func (s ProfileState) Toggle() ProfileState {
	if s == ProfilePublic {
		return ProfilePrivate
	}
	return ProfilePublic
}

// Valid reports whether s is a known profile state.
func (s ProfileState) Valid() bool {
	return s == ProfilePublic || s == ProfilePrivate
}

// ProfileStateFromLabels derives the state from a node's label list.
// A profile without either label is treated as Private.
func ProfileStateFromLabels(labels []string) ProfileState {
	for _, l := range labels {
		if l == string(ProfilePublic) {
			return ProfilePublic
		}
	}
	return ProfilePrivate
}
