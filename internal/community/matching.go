package community

// targetID resolves the canonical id an activity points at: its source when
// it is a personal copy, otherwise its own id.
func targetID(activity Activity) string {
	if activity.SourceID != "" {
		return activity.SourceID
	}
	return activity.ID
}

// FindUpcoming locates the personal upcoming entry corresponding to the
// given activity, which may be any of its representations (canonical
// friend/public copy or the requester's own copy). No single key is shared
// across all representations, so several id/sourceId pairings are tried in
// order. Returns the first match, or false when none exists.
func FindUpcoming(activity Activity, upcoming []Activity) (Activity, bool) {
	target := targetID(activity)

	for _, candidate := range upcoming {
		if candidate.ID != "" && candidate.ID == activity.ID {
			return candidate, true
		}
		// sourceId of the upcoming copy pointing at the canonical id is the
		// common case after a join request.
		if candidate.SourceID != "" && candidate.SourceID == activity.ID {
			return candidate, true
		}
		if candidate.SourceID != "" && candidate.SourceID == target {
			return candidate, true
		}
		if candidate.ID != "" && candidate.ID == activity.SourceID {
			return candidate, true
		}
		if candidate.ID != "" && candidate.ID == target {
			return candidate, true
		}
		if candidate.SourceID != "" && activity.SourceID != "" && candidate.SourceID == activity.SourceID {
			return candidate, true
		}
	}
	return Activity{}, false
}
