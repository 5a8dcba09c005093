package layout

import "testing"

func TestValue_Resolve(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		expected  int
	}

	tests := map[string]tc{
		"fixed ignores available": {
			value:     Fixed(10),
			available: 100,
			fallback:  5,
			expected:  10,
		},
		"auto returns fallback": {
			value:     Auto(),
			available: 100,
			fallback:  42,
			expected:  42,
		},
		"percent of available": {
			value:     Percent(50),
			available: 80,
			fallback:  0,
			expected:  40,
		},
		"percent rounds half up": {
			value:     Percent(50),
			available: 5,
			fallback:  0,
			expected:  3, // 2.5 rounds up
		},
		"percent rounds down below half": {
			value:     Percent(33),
			available: 10,
			fallback:  0,
			expected:  3, // 3.3 rounds down
		},
		"hundred percent": {
			value:     Percent(100),
			available: 17,
			fallback:  0,
			expected:  17,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.value.Resolve(tt.available, tt.fallback)
			if got != tt.expected {
				t.Errorf("Resolve(%d, %d) = %d, want %d", tt.available, tt.fallback, got, tt.expected)
			}
		})
	}
}

func TestValue_IsAuto(t *testing.T) {
	if !Auto().IsAuto() {
		t.Error("Auto().IsAuto() = false, want true")
	}
	if Fixed(0).IsAuto() {
		t.Error("Fixed(0).IsAuto() = true, want false")
	}
	if Percent(0).IsAuto() {
		t.Error("Percent(0).IsAuto() = true, want false")
	}
}

func TestDistribute(t *testing.T) {
	type tc struct {
		amount   int
		weights  []float64
		expected []int
	}

	tests := map[string]tc{
		"even split": {
			amount:   10,
			weights:  []float64{1, 1},
			expected: []int{5, 5},
		},
		"uneven amount sums exactly": {
			amount:   10,
			weights:  []float64{1, 1, 1},
			expected: []int{3, 4, 3},
		},
		"weighted": {
			amount:   10,
			weights:  []float64{2, 1, 1},
			expected: []int{5, 3, 2},
		},
		"zero weights": {
			amount:   10,
			weights:  []float64{0, 0},
			expected: []int{0, 0},
		},
		"zero amount": {
			amount:   0,
			weights:  []float64{1, 1},
			expected: []int{0, 0},
		},
		"seven across three": {
			amount:   7,
			weights:  []float64{1, 1, 1},
			expected: []int{2, 3, 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := distribute(tt.amount, tt.weights)
			if len(got) != len(tt.expected) {
				t.Fatalf("distribute returned %d parts, want %d", len(got), len(tt.expected))
			}
			sum := 0
			for i, part := range got {
				if part != tt.expected[i] {
					t.Errorf("part %d = %d, want %d", i, part, tt.expected[i])
				}
				sum += part
			}
			wantSum := 0
			for _, w := range tt.weights {
				if w > 0 {
					wantSum = tt.amount
					break
				}
			}
			if sum != wantSum {
				t.Errorf("parts sum to %d, want %d", sum, wantSum)
			}
		})
	}
}
