package util

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// WalkCorpus collects the files under dir carrying the given extension
// (e.g. ".txt"), sorted for deterministic processing order.
func WalkCorpus(dir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
