package diff

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codariq/reviewkit/internal/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const threeHunkPatch = `@@ -1,3 +1,4 @@
 package main
+
+import "fmt"

@@ -10,4 +11,4 @@ func run() error {
 	if err != nil {
-		return err
+		return fmt.Errorf("run: %w", err)
 	}
@@ -20,3 +21,4 @@ func main() {
 	run()
+	fmt.Println("done")
 }`

func TestSplitter_Split_OrderedHunks(t *testing.T) {
	s := NewSplitter(discardLogger())

	hunks, err := s.Split(core.PullRequestFile{Filename: "main.go", Patch: threeHunkPatch})
	require.NoError(t, err)
	require.Len(t, hunks, 3)

	assert.Equal(t, 1, hunks[0].NewStart)
	assert.Equal(t, 11, hunks[1].NewStart)
	assert.Equal(t, 21, hunks[2].NewStart)

	for i, h := range hunks {
		assert.Truef(t, strings.HasPrefix(h.Content, "@@"), "hunk %d should keep its header, got %q", i, h.Content)
	}
	assert.Contains(t, hunks[0].Content, `+import "fmt"`)
	assert.Contains(t, hunks[1].Content, `+		return fmt.Errorf("run: %w", err)`)
	assert.Contains(t, hunks[2].Content, `+	fmt.Println("done")`)
}

func TestSplitter_Split_GitHeaderPassthrough(t *testing.T) {
	s := NewSplitter(discardLogger())

	patch := "diff --git a/util.py b/util.py\n--- a/util.py\n+++ b/util.py\n@@ -1,2 +1,3 @@\n def f():\n+    pass\n     return 1\n"
	hunks, err := s.Split(core.PullRequestFile{Filename: "util.py", Patch: patch})
	require.NoError(t, err)
	require.Len(t, hunks, 1)
	assert.Equal(t, 1, hunks[0].OldStart)
	assert.Equal(t, 3, hunks[0].NewLines)
}

func TestSplitter_Split_Degenerate(t *testing.T) {
	s := NewSplitter(discardLogger())

	tests := []struct {
		name  string
		patch string
	}{
		{"Empty patch", ""},
		{"Whitespace only", "\n\n"},
		{"Garbage", "this is not a diff at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hunks, err := s.Split(core.PullRequestFile{Filename: "a.go", Patch: tt.patch})
			require.NoError(t, err)
			assert.NotNil(t, hunks)
			assert.Empty(t, hunks)
		})
	}
}
