package ptb

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treegram"
)

var inputStrings = []string{
	"(S (NP (DT The) (NN cat)) (VP (VBZ sat)))",
	"( (S (NP-SBJ (PRP He)) (VP (VBD said) (NP (-NONE- *T*-1))) (. .)))",
	"(CD 3.14)",
	"(ROOT (X (Y (Z word))))",
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.tree")
	defer teardown()
	//
	for i, input := range inputStrings {
		tr, err := Parse(input)
		if err != nil {
			t.Fatalf("cannot parse input #%d: %v", i, err)
		}
		if s := tr.String(); s != input {
			t.Errorf("expected #%d to read as\n%s, is\n%s", i, input, s)
		}
		if err = tr.Validate(); err != nil {
			t.Errorf("input #%d is invalid: %v", i, err)
		}
	}
}

func TestUnlabeledRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.tree")
	defer teardown()
	//
	tr, err := Parse(inputStrings[1])
	if err != nil {
		t.Fatal(err)
	}
	if tr.Label != "" || len(tr.Children) != 1 || tr.Children[0].Label != "S" {
		t.Errorf("expected unlabeled root over S, have %s", tr)
	}
}

func TestReadForest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.tree")
	defer teardown()
	//
	r, err := NewReader()
	if err != nil {
		t.Fatal(err)
	}
	input := strings.Join(inputStrings, "\n\n")
	forest, err := r.ReadAll(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(forest) != len(inputStrings) {
		t.Errorf("expected %d trees, have %d", len(inputStrings), len(forest))
	}
	pretty := "(S\n  (NP (DT The)\n      (NN cat))\n\t(VP (VBZ sat)))\n"
	forest, err = r.ReadString(pretty)
	if err != nil || len(forest) != 1 {
		t.Fatalf("cannot read multi-line tree: %v", err)
	}
	if forest[0].String() != inputStrings[0] {
		t.Errorf("multi-line tree read as %s", forest[0])
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treegram.tree")
	defer teardown()
	//
	for _, input := range []string{
		"(S (NP (DT The)",
		"(S (NP))",
		"(S x))",
		"word (S x)",
	} {
		if _, err := Parse(input); !errors.Is(err, treegram.ErrMalformedTree) {
			t.Errorf("expected %q to be malformed, error is %v", input, err)
		}
	}
}
