package utils

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// ListFiles returns every file under root whose extension matches ext
// (dot included, case-insensitive), in walk order. A plain file root that
// matches is returned as a single-element list.
func ListFiles(root, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// OutputPath mirrors srcPath's position under inputRoot into outRoot,
// swapping the extension for newExt (dot included).
func OutputPath(srcPath, inputRoot, outRoot, newExt string) (string, error) {
	rel, err := filepath.Rel(inputRoot, srcPath)
	if err != nil {
		return "", err
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + newExt
	return filepath.Join(outRoot, rel), nil
}
