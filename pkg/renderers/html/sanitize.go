package html

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicyInst *bluemonday.Policy
)

// textPolicy sanitizes schema-authored label text. Labels may carry a small
// set of inline markup; everything else is stripped.
func textPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		textPolicyInst = policy
	})
	return textPolicyInst
}
