package formattedtext

import "iter"

// Merge concatenates several pieces of formatted text into one lazy
// producer. Each invocation normalizes every item afresh, in argument
// order, and flattens the fragments into a single canonical value. No
// reordering, no deduplication, no styling across items.
func Merge(items ...any) Producer {
	return func() (any, error) {
		result := FormattedText{}
		for _, item := range items {
			fragments, err := ToFormattedText(item)
			if err != nil {
				return nil, err
			}
			result = append(result, fragments...)
		}
		return result, nil
	}
}

// MergeSeq is Merge over a sequence. The sequence is traversed fully on
// every invocation of the producer; if it is single-use, avoiding repeated
// invocation is the caller's responsibility.
func MergeSeq(items iter.Seq[any]) Producer {
	return func() (any, error) {
		result := FormattedText{}
		for item := range items {
			fragments, err := ToFormattedText(item)
			if err != nil {
				return nil, err
			}
			result = append(result, fragments...)
		}
		return result, nil
	}
}
