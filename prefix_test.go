package engnotation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrefixTableShape(t *testing.T) {
	if len(siPrefixes) != 41 {
		t.Fatal("expected 41 table entries, got", len(siPrefixes))
	}
	for exponent := range siPrefixes {
		if exponent%3 != 0 {
			t.Fatalf("table key %d is not a multiple of three", exponent)
		}
		if exponent < -60 || exponent > 60 {
			t.Fatalf("table key %d is outside the documented domain", exponent)
		}
	}
}

func TestPrefix(t *testing.T) {
	// testcase is a test case implemented by this function.
	type testcase struct {
		// exponent is the exponent to look up
		exponent int

		// expectPrefix is the expected prefix token
		expectPrefix string

		// expectOK tells whether the table defines the exponent
		expectOK bool
	}

	testcases := []testcase{{
		exponent:     0,
		expectPrefix: "",
		expectOK:     true,
	}, {
		exponent:     3,
		expectPrefix: "k",
		expectOK:     true,
	}, {
		exponent:     -6,
		expectPrefix: "μ",
		expectOK:     true,
	}, {
		exponent:     24,
		expectPrefix: "Y",
		expectOK:     true,
	}, {
		exponent:     60,
		expectPrefix: "QQ",
		expectOK:     true,
	}, {
		exponent: 1, // not a multiple of three
		expectOK: false,
	}, {
		exponent: 63, // beyond the extended table
		expectOK: false,
	}}

	for _, tc := range testcases {
		prefix, ok := Prefix(tc.exponent)
		if ok != tc.expectOK {
			t.Fatalf("Prefix(%d): expected ok=%v, got %v", tc.exponent, tc.expectOK, ok)
		}
		if diff := cmp.Diff(tc.expectPrefix, prefix); diff != "" {
			t.Fatal(diff)
		}
	}
}

// The upstream convention table repeats "yy" for -60/-54 and "y" for
// -30/-24. We preserve the repetition rather than invent tokens.
func TestPrefixDuplicateTokens(t *testing.T) {
	for _, pair := range [][2]int{{-60, -54}, {-30, -24}} {
		first, _ := Prefix(pair[0])
		second, _ := Prefix(pair[1])
		if first != second {
			t.Fatalf("expected %d and %d to share a token", pair[0], pair[1])
		}
	}
}

func TestExpString(t *testing.T) {
	// testcase is a test case implemented by this function.
	type testcase struct {
		// exponent is the exponent to render
		exponent int

		// expectOutput is the expected rendering
		expectOutput string
	}

	testcases := []testcase{
		{exponent: 15, expectOutput: "E+15"},
		{exponent: 3, expectOutput: "E+3"},
		{exponent: 0, expectOutput: ""},
		{exponent: -3, expectOutput: "E-3"},
		{exponent: -12, expectOutput: "E-12"},
	}

	for _, tc := range testcases {
		if diff := cmp.Diff(tc.expectOutput, expString(tc.exponent)); diff != "" {
			t.Fatal(diff)
		}
	}
}
