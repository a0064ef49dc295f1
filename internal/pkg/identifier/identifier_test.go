package identifier

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		pattern string
	}{
		{
			name:    "complaint code",
			prefix:  ComplaintPrefix,
			pattern: `^CMP\d{6}\d{2}$`,
		},
		{
			name:    "ticket code",
			prefix:  TicketPrefix,
			pattern: `^TKT\d{6}\d{2}$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := New(tt.prefix)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), code)
			assert.Len(t, code, len(tt.prefix)+8)
		})
	}
}
