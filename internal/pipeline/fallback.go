package pipeline

import "github.com/jonathan/resume-evaluator/internal/types"

// FallbackContent synthesizes presentation content directly from the
// normalized profile. Used when the polishing generator call failed twice;
// the run must still finish with renderable content.
func FallbackContent(p *types.RawProfile) *types.GeneratedContent {
	if p == nil {
		return &types.GeneratedContent{}
	}
	return &types.GeneratedContent{RawProfile: *p}
}
