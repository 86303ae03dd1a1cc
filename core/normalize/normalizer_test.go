package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStar_InsertsCheckboxAfterBullet(t *testing.T) {
	n := New()

	assert.Equal(t, "\n* [ ] item", n.Star("\n* item"))
	assert.Equal(t, "\n  * [ ] indented item", n.Star("\n  * indented item"))
}

func TestStar_LeavesMidLineStarsAlone(t *testing.T) {
	n := New()

	assert.Equal(t, "\nfoo * bar", n.Star("\nfoo * bar"))
	// A star with no trailing whitespace is emphasis, not a bullet.
	assert.Equal(t, "\n*bold*", n.Star("\n*bold*"))
}

func TestStar_SkipsFirstLineOfBuffer(t *testing.T) {
	// No preceding newline, no match. In practice every section starts right
	// after a checklist marker, so the first line is never a list item.
	assert.Equal(t, "* item", New().Star("* item"))
}

func TestDash_RewritesDashAsCheckboxBullet(t *testing.T) {
	n := New()

	assert.Equal(t, "\n* [ ] item", n.Dash("\n- item"))
	assert.Equal(t, "\n  * [ ] indented", n.Dash("\n  - indented"))
}

func TestDash_LeavesMidLineDashesAlone(t *testing.T) {
	assert.Equal(t, "\nfoo - bar", New().Dash("\nfoo - bar"))
}

func TestNum_RewritesNumberedItems(t *testing.T) {
	n := New()

	assert.Equal(t, "\n* [ ] item", n.Num("\n3. item"))
	assert.Equal(t, "\n* [ ] item", n.Num("\n12. item"))
	// An empty number (a bare dot) matches too.
	assert.Equal(t, "\n* [ ] item", n.Num("\n. item"))
}

func TestNum_LeavesMidLineNumbersAlone(t *testing.T) {
	n := New()

	assert.Equal(t, "\nsee step 3. then continue", n.Num("\nsee step 3. then continue"))
	// A version-like token has no whitespace after the dot.
	assert.Equal(t, "\n1.50.0 released", n.Num("\n1.50.0 released"))
}

func TestPasses_AreIndependent(t *testing.T) {
	n := New()
	text := "\n* star\n- dash\n2. num\n"

	// Dash then num, as applied to the UI section: the star line is untouched.
	got := n.Num(n.Dash(text))
	assert.Equal(t, "\n* star\n* [ ] dash\n* [ ] num\n", got)
}
