package stencil

import "testing"

func TestEdgePolicyResolve(t *testing.T) {
	tests := []struct {
		name   string
		policy EdgePolicy
		v, n   int
		want   int
		wantOK bool
	}{
		{"clamp inside", EdgeClamp, 3, 5, 3, true},
		{"clamp below", EdgeClamp, -2, 5, 0, true},
		{"clamp above", EdgeClamp, 9, 5, 4, true},
		{"wrap below", EdgeWrap, -1, 5, 4, true},
		{"wrap far below", EdgeWrap, -7, 5, 3, true},
		{"wrap above", EdgeWrap, 5, 5, 0, true},
		{"wrap far above", EdgeWrap, 12, 5, 2, true},
		{"reject inside", EdgeReject, 0, 5, 0, true},
		{"reject below", EdgeReject, -1, 5, -1, false},
		{"reject above", EdgeReject, 5, 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.policy.Resolve(tt.v, tt.n)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%d, %d) = (%d, %v), want (%d, %v)", tt.v, tt.n, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseEdgePolicy(t *testing.T) {
	for _, p := range []EdgePolicy{EdgeClamp, EdgeWrap, EdgeReject} {
		got, err := ParseEdgePolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseEdgePolicy(%q) = %v, %v; want %v", p.String(), got, err, p)
		}
	}

	if got, err := ParseEdgePolicy(" WRAP "); err != nil || got != EdgeWrap {
		t.Errorf("ParseEdgePolicy(\" WRAP \") = %v, %v; want wrap", got, err)
	}
	if _, err := ParseEdgePolicy("mirror"); err == nil {
		t.Error("ParseEdgePolicy(\"mirror\") should fail")
	}
	if EdgePolicy(9).IsValid() {
		t.Error("EdgePolicy(9) should be invalid")
	}
}
