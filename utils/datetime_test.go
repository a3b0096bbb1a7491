package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow(t *testing.T) {

	got := Now()

	assert.False(t, got.IsZero())
	assert.WithinDuration(t, time.Now(), got, time.Minute)
}

func TestScheduleInHours(t *testing.T) {

	tests := []struct {
		name  string
		hours int
	}{
		{"four hours", 4},
		{"one day", 24},
		{"one week", 168},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			got := ScheduleInHours(tt.hours)

			want := time.Now().Add(time.Duration(tt.hours) * time.Hour)

			assert.WithinDuration(t, want, got, time.Minute)
		})
	}
}
