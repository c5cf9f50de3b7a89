package styledtext_test

import (
	"errors"
	"strings"
	"testing"

	styledtext "github.com/goliatone/go-styledtext"
)

// The facade only forwards; a single end-to-end pass keeps the re-exports
// honest.
func TestFacade(t *testing.T) {
	tmpl, err := styledtext.NewTemplate("{} and {}")
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}

	banner := styledtext.Merge(
		tmpl.Format("salt", "pepper"),
		func() any { return "!" },
	)

	got, err := styledtext.ToFormattedText(banner, styledtext.WithStyle("class:bar"))
	if err != nil {
		t.Fatalf("ToFormattedText: %v", err)
	}
	if !styledtext.IsFormattedText(got) {
		t.Fatal("canonical result not recognised by the classifier")
	}

	plain, err := styledtext.ToPlainText(got)
	if err != nil {
		t.Fatalf("ToPlainText: %v", err)
	}
	if plain != "salt and pepper!" {
		t.Fatalf("plain = %q", plain)
	}
	for i, frag := range got {
		if !strings.HasPrefix(frag.Style, "class:bar ") {
			t.Fatalf("fragment %d missing style prefix: %q", i, frag.Style)
		}
	}

	if _, err := styledtext.ToFormattedText(1.5); !errors.Is(err, styledtext.ErrUnsupportedInput) {
		t.Fatalf("err = %v, want ErrUnsupportedInput", err)
	}
}
