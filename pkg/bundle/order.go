package bundle

import (
	"path/filepath"
	"sort"
)

// Order returns files arranged for mode. Sorting is stable and uses
// byte-wise comparison, so "B.cs" sorts before "a.cs". Unknown modes keep
// discovery order. The input slice is not modified.
func Order(files FileList, mode SortMode) FileList {
	out := append(FileList(nil), files...)

	var key func(string) string
	switch mode {
	case SortAlphabetical:
		key = filepath.Base
	case SortType:
		key = filepath.Ext
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) < key(out[j])
	})
	return out
}
