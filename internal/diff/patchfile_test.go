package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoFilePatch = `diff --git a/cmd/main.go b/cmd/main.go
--- a/cmd/main.go
+++ b/cmd/main.go
@@ -1,3 +1,4 @@
 package main

+import "fmt"

diff --git a/README.md b/README.md
--- a/README.md
+++ b/README.md
@@ -1,2 +1,2 @@
-# old title
+# new title
 intro
`

func TestParsePatch(t *testing.T) {
	files, err := ParsePatch(strings.NewReader(twoFilePatch))
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "cmd/main.go", files[0].Filename)
	assert.Contains(t, files[0].Patch, "@@ -1,3 +1,4 @@")
	assert.Contains(t, files[0].Patch, `+import "fmt"`)

	assert.Equal(t, "README.md", files[1].Filename)
	assert.Contains(t, files[1].Patch, "+# new title")
}

func TestParsePatchDeletedFileKeepsOldName(t *testing.T) {
	patch := "diff --git a/gone.txt b/gone.txt\n" +
		"deleted file mode 100644\n" +
		"--- a/gone.txt\n" +
		"+++ /dev/null\n" +
		"@@ -1,1 +0,0 @@\n" +
		"-goodbye\n"

	files, err := ParsePatch(strings.NewReader(patch))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "gone.txt", files[0].Filename)
}

func TestParsePatchGarbageInput(t *testing.T) {
	// go-gitdiff treats leading non-diff text as preamble, so garbage
	// parses to zero files rather than an error.
	files, err := ParsePatch(strings.NewReader("this is not a diff at all"))
	require.NoError(t, err)
	assert.Empty(t, files)
}
