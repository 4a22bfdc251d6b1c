package siteroot

import (
	"os"
	"path/filepath"
)

// ContentDir is the content root relative to a site directory.
var ContentDir = filepath.Join("content", "posts")

// Find walks up from startDir looking for a directory that holds
// content/posts or config/site.json. Returns "" if none is found.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		ok, err := IsSite(dir)
		if err != nil {
			return "", err
		}
		if ok {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// IsSite reports whether dir looks like a site root.
func IsSite(dir string) (bool, error) {
	for _, marker := range []string{ContentDir, filepath.Join("config", "site.json")} {
		_, err := os.Stat(filepath.Join(dir, marker))
		if err == nil {
			return true, nil
		}
		if !os.IsNotExist(err) {
			return false, err
		}
	}
	return false, nil
}
