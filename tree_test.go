package pathspec

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
}

func TestMatchTreeFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{"keep.go", "skip.txt", "Dir/keep.go", "Dir/skip.txt"})

	spec := gitignoreSpec(t, []string{"*.txt"})
	paths, err := spec.MatchTreeFiles(root)
	require.NoError(t, err)

	for i := range paths {
		paths[i] = filepath.ToSlash(paths[i])
	}
	sort.Strings(paths)
	require.Equal(t, []string{"Dir/skip.txt", "skip.txt"}, paths)
}

func TestCheckTreeFilesCoversEveryFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{"a.txt", "b.bin", "Dir/c.txt"})

	spec := gitignoreSpec(t, []string{"*.txt"})
	results, err := spec.CheckTreeFiles(root)
	require.NoError(t, err)
	require.Len(t, results, 3)

	verdicts := map[string]*bool{}
	for _, r := range results {
		verdicts[filepath.ToSlash(r.Path)] = r.Include
	}
	require.NotNil(t, verdicts["a.txt"])
	require.True(t, *verdicts["a.txt"])
	require.NotNil(t, verdicts["Dir/c.txt"])
	require.True(t, *verdicts["Dir/c.txt"])
	require.Nil(t, verdicts["b.bin"])
}

func TestMatchTreeEntriesTestsDirectoriesAsDirectories(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{"Dir/a.go", "other/b.go"})

	// A directory-only pattern matches the directory entry itself (queried
	// with a trailing slash) as well as the files beneath it.
	spec := gitignoreSpec(t, []string{"Dir/"})
	entries, err := spec.MatchTreeEntries(root)
	require.NoError(t, err)

	var got []string
	for _, e := range entries {
		got = append(got, filepath.ToSlash(e.Path))
	}
	sort.Strings(got)
	require.Equal(t, []string{"Dir", "Dir/a.go"}, got)
}
