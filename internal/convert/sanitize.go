package convert

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helpPolicyOnce sync.Once
	helpPolicy     *bluemonday.Policy
)

// SanitizeHelp strips markup from model help text before it becomes a field
// description. Help text often originates in external definition documents,
// so it is not trusted as-is.
func SanitizeHelp(text string) string {
	if text == "" {
		return ""
	}
	helpPolicyOnce.Do(func() {
		helpPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(helpPolicy.Sanitize(text))
}
