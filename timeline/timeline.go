// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline groups sessions into recency buckets for display.
package timeline

import (
	"time"

	"github.com/jeranaias/rigchat/chat"
)

// =============================================================================
// TIMELINE TYPE
// =============================================================================

// Timeline holds sessions bucketed by recency. Each bucket is sorted by
// effective last-activity time ascending; call Recent on a bucket to get the
// most-recent-first order used for display.
type Timeline struct {
	Today     []chat.Session
	Yesterday []chat.Session
	Older     []chat.Session
}

// Organize buckets sessions against now's calendar date and sorts each
// bucket. Bucketing compares calendar dates only: a session from 23 hours
// ago still counts as Today if the day has not rolled over. Future dates
// land in Older by construction of the comparison.
func Organize(sessions []chat.Session, now time.Time) Timeline {
	var tl Timeline

	today := now
	yesterday := now.AddDate(0, 0, -1)

	for _, sess := range sessions {
		switch at := sess.LastActivity(); {
		case sameDay(at, today):
			tl.Today = append(tl.Today, sess)
		case sameDay(at, yesterday):
			tl.Yesterday = append(tl.Yesterday, sess)
		default:
			tl.Older = append(tl.Older, sess)
		}
	}

	tl.Today = sortByActivity(tl.Today)
	tl.Yesterday = sortByActivity(tl.Yesterday)
	tl.Older = sortByActivity(tl.Older)
	return tl
}

// Recent returns a reversed copy of bucket: most recent first.
func Recent(bucket []chat.Session) []chat.Session {
	out := make([]chat.Session, len(bucket))
	for i, sess := range bucket {
		out[len(bucket)-1-i] = sess
	}
	return out
}

// =============================================================================
// SORTING
// =============================================================================

// sortByActivity sorts ascending by effective last-activity time using a
// recursive partition sort with first-element pivot. Not stable for equal
// timestamps, and O(n^2) on already-descending input; session counts are
// tens, not thousands, so the simple shape wins.
func sortByActivity(sessions []chat.Session) []chat.Session {
	if len(sessions) <= 1 {
		return sessions
	}

	pivot := sessions[0].LastActivity()
	var earlier, later []chat.Session
	for _, sess := range sessions[1:] {
		if sess.LastActivity().Before(pivot) {
			earlier = append(earlier, sess)
		} else {
			later = append(later, sess)
		}
	}

	out := append(sortByActivity(earlier), sessions[0])
	return append(out, sortByActivity(later)...)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
