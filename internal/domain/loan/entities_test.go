package loan

import "testing"

func TestEMI(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		tenure    int
		want      float64
	}{
		{"two year flat interest", 120_000, 0.12, 24, 6_200},
		{"one year", 12_000, 0.10, 12, 1_100},
		{"zero rate is principal spread", 24_000, 0, 24, 1_000},
		{"zero tenure", 10_000, 0.1, 0, 0},
		{"negative tenure", 10_000, 0.1, -3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EMI(tc.principal, tc.rate, tc.tenure)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("EMI(%v, %v, %d) = %v, want %v", tc.principal, tc.rate, tc.tenure, got, tc.want)
			}
		})
	}
}
