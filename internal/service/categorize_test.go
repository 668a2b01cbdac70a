package service

import "testing"

func TestCategorize(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"My wheat leaves have yellow spots", "crop"},
		{"when will it RAIN this week", "weather"},
		{"मौसम कैसा रहेगा", "weather"},
		{"insects are eating my brinjal", "pest"},
		{"बीमारी लग गई है", "pest"},
		{"which fertilizer for paddy", "fertilizer"},
		{"മണ്ണ് പരിശോധന എവിടെ", "fertilizer"},
		{"namaste", "general"},
		{"", "general"},
	}
	for _, tc := range cases {
		if got := Categorize(tc.text); got != tc.want {
			t.Fatalf("Categorize(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestCategorize_CropWinsOverLater(t *testing.T) {
	// "rice disease" matches both crop and pest; crop is checked first.
	if got := Categorize("rice disease in my field"); got != "crop" {
		t.Fatalf("expected crop, got %q", got)
	}
}
