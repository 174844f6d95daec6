package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-01-05",
			want:  "2024-01-05",
		},
		{
			name:    "not a date",
			input:   "next monday",
			wantErr: true,
		},
		{
			name:    "wrong layout",
			input:   "05/01/2024",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FormatDate(got))
		})
	}
}

func TestDateOfTruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2024, time.March, 9, 23, 59, 58, 0, time.UTC))
	assert.Equal(t, "2024-03-09", FormatDate(d))
}
