package analyzer

import "sort"

// rankCandidates combines the per-method signal maps into one weighted
// confidence per technology and ranks the candidates.
//
// The technology key set is the union across all methods; a technology a
// method never scored contributes 0 for that method. Candidates are sorted
// by confidence descending; equal confidences are broken by technology id
// ascending so that ranking is deterministic.
func (a *Analyzer) rankCandidates(methodScores map[string]SignalScores) []CandidateScore {
	techs := make(map[string]struct{})
	for _, scores := range methodScores {
		for tech := range scores {
			techs[tech] = struct{}{}
		}
	}

	candidates := make([]CandidateScore, 0, len(techs))
	for tech := range techs {
		c := CandidateScore{
			Technology:   tech,
			MethodScores: make(map[string]float64, len(methodScores)),
		}
		for _, m := range a.registry.Methods() {
			if !m.Enabled {
				continue
			}
			scores, ok := methodScores[m.Name]
			if !ok {
				continue
			}
			score := scores[tech]
			c.MethodScores[m.Name] = score
			c.Confidence += m.Weight * score
		}
		candidates = append(candidates, c)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Technology < candidates[j].Technology
	})
	return candidates
}

// decide applies the threshold policy to the ranked candidates. Exactly one
// of three outcomes is possible:
//
//   - no candidates: fallback profile, confidence 0.0
//   - top candidate below threshold: fallback profile, but the would-be top
//     confidence is retained for diagnostics
//   - top candidate at or above threshold (inclusive): matched; a matched
//     technology missing from the template catalog is recovered locally by
//     substituting the fallback profile and logging a warning
func (a *Analyzer) decide(root string, methodScores map[string]SignalScores, candidates []CandidateScore) *DetectionResult {
	if len(candidates) == 0 {
		return a.fallbackResult(root, methodScores, 0.0)
	}

	top := candidates[0]
	if top.Confidence < a.registry.Threshold() {
		result := a.fallbackResult(root, methodScores, top.Confidence)
		result.Candidates = candidates
		return result
	}

	result := &DetectionResult{
		Root:               root,
		DetectedTechnology: top.Technology,
		Confidence:         top.Confidence,
		MethodScores:       methodScores,
		Candidates:         candidates,
	}

	profile, ok := a.registry.Profile(top.Technology)
	if !ok {
		a.log.Warn("technology not found in templates, using fallback profile",
			"technology", top.Technology)
		result.Profile = a.registry.Fallback()
		result.TemplateMissing = true
		return result
	}

	result.Profile = profile
	return result
}
