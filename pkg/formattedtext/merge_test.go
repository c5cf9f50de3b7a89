package formattedtext_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/goliatone/go-styledtext/pkg/formattedtext"
	"github.com/goliatone/go-styledtext/pkg/testsupport"
)

func mergeResult(t *testing.T, p formattedtext.Producer) formattedtext.FormattedText {
	t.Helper()

	value, err := p()
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	got, err := formattedtext.ToFormattedText(value)
	if err != nil {
		t.Fatalf("ToFormattedText: %v", err)
	}
	return got
}

func TestMerge_Order(t *testing.T) {
	produce := formattedtext.Merge(
		"one ",
		formattedtext.FormattedText{{Style: "bold", Text: "two"}},
		func() any { return " three" },
	)

	testsupport.DiffFragments(t, formattedtext.FormattedText{
		{Text: "one "},
		{Style: "bold", Text: "two"},
		{Text: " three"},
	}, mergeResult(t, produce))
}

func TestMerge_RepeatedInvocation(t *testing.T) {
	produce := formattedtext.Merge("a", "b", "c")

	first := mergeResult(t, produce)
	second := mergeResult(t, produce)
	testsupport.DiffFragments(t, first, second)
}

func TestMerge_ErrorPropagates(t *testing.T) {
	produce := formattedtext.Merge("ok", 42)

	_, err := produce()
	if !errors.Is(err, formattedtext.ErrUnsupportedInput) {
		t.Fatalf("err = %v, want ErrUnsupportedInput", err)
	}
}

func TestMergeSeq(t *testing.T) {
	items := []any{"a", "b"}
	traversals := 0
	seq := iter.Seq[any](func(yield func(any) bool) {
		traversals++
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})

	produce := formattedtext.MergeSeq(seq)
	if traversals != 0 {
		t.Fatal("sequence traversed before the producer was invoked")
	}

	want := formattedtext.FormattedText{{Text: "a"}, {Text: "b"}}
	testsupport.DiffFragments(t, want, mergeResult(t, produce))
	testsupport.DiffFragments(t, want, mergeResult(t, produce))

	if traversals != 2 {
		t.Fatalf("sequence traversed %d time(s), want 2", traversals)
	}
}
