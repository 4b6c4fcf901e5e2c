package agestd

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DiscoverWorkbooks recursively collects .xls/.xlsx files under dir whose
// name contains "roadstd" (case-insensitive), sorted by path. Finding
// nothing is an error.
func DiscoverWorkbooks(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".xls" && ext != ".xlsx" {
			return nil
		}
		if !strings.Contains(strings.ToLower(d.Name()), "roadstd") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &NoWorkbooksError{Dir: dir}
	}
	sort.Strings(files)
	return files, nil
}

// ConvertAll discovers workbooks under dir and converts them in order,
// writing one status line per file to w. The first failure aborts the
// batch; outputs written before it remain on disk.
func ConvertAll(dir string, opts Options, w io.Writer) error {
	files, err := DiscoverWorkbooks(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Found %d files.\n", len(files))
	return ConvertFiles(files, opts, w)
}

// ConvertFiles converts the given workbooks in order, stopping at the
// first failure.
func ConvertFiles(files []string, opts Options, w io.Writer) error {
	for _, path := range files {
		out, err := ConvertFile(path, opts)
		if err != nil {
			fmt.Fprintf(w, "FAIL %s : %v\n", path, err)
			return err
		}
		fmt.Fprintf(w, "OK  %s  ->  %s\n", filepath.Base(path), filepath.Base(out))
	}
	return nil
}
