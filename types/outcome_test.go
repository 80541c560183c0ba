package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OK, "ok"},
		{UnknownFlag, "unknown flag"},
		{MissingValue, "missing value"},
		{UnexpectedValue, "unexpected value"},
		{InvalidValue, "invalid value"},
		{Outcome(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.String())
		})
	}
}
