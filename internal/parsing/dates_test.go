package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDateRange(t *testing.T) {
	tests := []struct {
		name  string
		block string
		start *string
		end   *string
	}{
		{
			name:  "two four-digit years",
			block: "2017 - 2020",
			start: strPtr("2017"),
			end:   strPtr("2020"),
		},
		{
			name:  "year to present",
			block: "2017 - Present",
			start: strPtr("2017"),
			end:   strPtr("Present"),
		},
		{
			name:  "two-digit end inherits century",
			block: "2017 - 20",
			start: strPtr("2017"),
			end:   strPtr("2020"),
		},
		{
			name:  "no dates at all",
			block: "no dates here",
			start: nil,
			end:   nil,
		},
		{
			name:  "month wording around the years",
			block: "June 2021 – Present",
			start: strPtr("2021"),
			end:   strPtr("Present"),
		},
		{
			name:  "currently employed wording",
			block: "currently employed",
			start: nil,
			end:   strPtr("Present"),
		},
		{
			name:  "only two-digit tokens",
			block: "05 - 09",
			start: nil,
			end:   strPtr("09"),
		},
		{
			name:  "extra years beyond the first two are ignored",
			block: "1998 2003 2010",
			start: strPtr("1998"),
			end:   strPtr("2003"),
		},
		{
			name:  "nineteenth-century prefix",
			block: "1998 - 01",
			start: strPtr("1998"),
			end:   strPtr("1901"),
		},
		{
			name:  "stray two-digit token outranks present wording",
			block: "Apr 05, 2017 until current",
			start: strPtr("2017"),
			end:   strPtr("2005"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolveDateRange(tt.block)
			assertPtrEqual(t, tt.start, start, "start")
			assertPtrEqual(t, tt.end, end, "end")
		})
	}
}

func strPtr(s string) *string { return &s }

func assertPtrEqual(t *testing.T, want, got *string, label string) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got, label)
		return
	}
	if assert.NotNil(t, got, label) {
		assert.Equal(t, *want, *got, label)
	}
}
