package main

import (
	"strings"
	"testing"

	"asset-tracker/internal/db"

	"github.com/stretchr/testify/assert"
)

func Test_parseRow(t *testing.T) {
	cases := []struct {
		name        string
		input       string
		expected    db.Celltower
		expectedErr error
	}{
		{
			name:  "opencellid row",
			input: "GSM,262,2,1101,20511,0,7.2000,51.5000,1450,12,1,1459203405,1611238811",
			expected: db.Celltower{
				Radio: "GSM", MCC: 262, MNC: 2, LAC: 1101, CID: 20511,
				Lat: 51.5, Lon: 7.2, Range: 1450, Samples: 12,
				Created: 1459203405, Updated: 1611238811,
			},
		},
		{
			name:        "too few fields",
			input:       "GSM,262,2,1101",
			expectedErr: ErrInvalidRow,
		},
		{
			name:        "not a number",
			input:       "GSM,262,x,1101,20511,0,7.2000,51.5000,1450,12,1,1459203405,1611238811",
			expectedErr: ErrInvalidRow,
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tower, err := parseRow(strings.Split(tt.input, ","))
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, tower)
		})
	}
}
