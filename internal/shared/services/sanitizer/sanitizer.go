// Package sanitizer strips markup from user-supplied text before it is stored
// or relayed to other users.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Service sanitizes chat message content. Messages are plain text; any HTML is
// removed rather than escaped so stored content matches what recipients see.
type Service struct {
	policy *bluemonday.Policy
}

func NewService() *Service {
	return &Service{
		policy: bluemonday.StrictPolicy(),
	}
}

// CleanText removes all markup and collapses surrounding whitespace.
func (s *Service) CleanText(input string) string {
	cleaned := s.policy.Sanitize(input)
	// StrictPolicy escapes entities; decode them back to plain characters.
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}
