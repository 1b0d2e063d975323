package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveProjectRoot finds the directory that holds the tests dir.
//
// A binary installed as <root>/bin/iniharness or <root>/scripts/iniharness
// resolves to <root>. Otherwise the working directory and its ancestors are
// searched, and the working directory itself is the fallback.
func ResolveProjectRoot(testsDir string) (string, error) {
	if exe, err := os.Executable(); err == nil {
		if exe, err = filepath.EvalSymlinks(exe); err == nil {
			candidate := filepath.Dir(filepath.Dir(exe))
			if isDir(filepath.Join(candidate, testsDir)) {
				return candidate, nil
			}
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findUpward(wd, testsDir), nil
}

// findUpward returns the nearest of start and its ancestors that contains
// testsDir, or start when none does.
func findUpward(start, testsDir string) string {
	dir := start
	for {
		if isDir(filepath.Join(dir, testsDir)) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// LoadProject resolves the project root, makes it the working directory
// and loads the configuration found there. The root is always located by
// DefaultTestsDir since iniharness.yaml lives inside it; a tests_dir set in
// that file only changes where tests are scanned, relative to the root.
func LoadProject() (*Config, error) {
	root, err := ResolveProjectRoot(DefaultTestsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	if err := os.Chdir(root); err != nil {
		return nil, fmt.Errorf("change to project root %s: %w", root, err)
	}
	return Load(root)
}
