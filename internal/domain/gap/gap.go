package gap

// MaxMissingSkills bounds how many gap entries are surfaced per posting.
const MaxMissingSkills = 3

// Missing returns the posting skills the user does not have, in the
// posting's canonical skill order, capped at MaxMissingSkills. Both inputs
// must already be normalized (trimmed, lowercased). Advisory only: the gap
// never feeds back into ranking.
func Missing(required, userSkills []string) []string {
	have := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		have[s] = struct{}{}
	}

	out := make([]string, 0, MaxMissingSkills)
	for _, s := range required {
		if _, ok := have[s]; ok {
			continue
		}
		out = append(out, s)
		if len(out) == MaxMissingSkills {
			break
		}
	}
	return out
}
