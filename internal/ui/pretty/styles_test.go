package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/proofline/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "essay.md", styles.Path.Render("essay.md"))
	assert.Equal(t, "very very", styles.Mark.Render("very very"))
	assert.Equal(t, "grammar", styles.Category.Render("grammar"))
	assert.Equal(t, "I am", styles.ExcerptText.Render("I am"))
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "always", mode: "always", want: true},
		{name: "never", mode: "never", want: false},
		{name: "auto without terminal", mode: "auto", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, pretty.IsColorEnabled(tc.mode, &buf))
		})
	}
}

//nolint:paralleltest // t.Setenv
func TestIsColorEnabled_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}
