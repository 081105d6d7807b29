package relocate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview_ShowsRewrite(t *testing.T) {
	res := RewriteConfigPM(split(configPMFixture), winInstallDir)
	res.Path = "lib/Config.pm"

	preview := Preview(res, 200)

	assert.False(t, preview.Truncated)
	assert.Equal(t, "lib/Config.pm", preview.Path)
	assert.Contains(t, preview.UnifiedDiff, "--- lib/Config.pm")
	assert.Contains(t, preview.UnifiedDiff, "+++ lib/Config.pm (relocated)")
	assert.Contains(t, preview.UnifiedDiff, "+my $rootdir = __FILE__;")
	assert.Contains(t, preview.UnifiedDiff, `-    archlibexp => 'C:\\texlive\\perl\\lib',`)
	assert.Contains(t, preview.UnifiedDiff, `+    archlibexp => "$rootdir\\lib",`)
	assert.True(t, strings.HasSuffix(preview.UnifiedDiff, "\n"))
}

func TestPreview_Truncates(t *testing.T) {
	res := RewriteConfigPM(split(configPMFixture), winInstallDir)
	res.Path = "lib/Config.pm"

	preview := Preview(res, 5)

	assert.True(t, preview.Truncated)
	diffLines := strings.Split(strings.TrimRight(preview.UnifiedDiff, "\n"), "\n")
	assert.Len(t, diffLines, 6)
	assert.Contains(t, diffLines[5], "rerun with --diff-lines <n>")
}

func TestPreview_NoChanges(t *testing.T) {
	res := RewriteConfigPM(split("unrelated\n"), "/p")
	preview := Preview(res, 0)
	assert.Empty(t, preview.UnifiedDiff)
	assert.False(t, preview.Truncated)
}

func TestNormalizeDiffMaxLines(t *testing.T) {
	assert.Equal(t, DefaultDiffMaxLines, normalizeDiffMaxLines(0))
	assert.Equal(t, DefaultDiffMaxLines, normalizeDiffMaxLines(-3))
	assert.Equal(t, 7, normalizeDiffMaxLines(7))
}
