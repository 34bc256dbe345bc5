package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{neighbors: 0, alive: true, want: false},  // underpopulation
		{neighbors: 1, alive: true, want: false},  // underpopulation
		{neighbors: 2, alive: true, want: true},   // survival
		{neighbors: 3, alive: true, want: true},   // survival
		{neighbors: 4, alive: true, want: false},  // overpopulation
		{neighbors: 8, alive: true, want: false},  // overpopulation
		{neighbors: 2, alive: false, want: false}, // stays dead
		{neighbors: 3, alive: false, want: true},  // reproduction
		{neighbors: 4, alive: false, want: false}, // stays dead
	}

	for _, tt := range tests {
		if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
			t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", tt.neighbors, tt.alive, got, tt.want)
		}
	}
}
