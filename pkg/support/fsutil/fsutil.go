// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package fsutil reads and writes the configuration and serialized option files, expanding "~" in paths.
package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ExpandHome replaces a leading "~" or "~user" in filePath by the corresponding home directory.
// Other paths are returned unchanged.
func ExpandHome(filePath string) (string, error) {
	if filePath == "" || filePath[0] != '~' {
		return filePath, nil
	}
	userName, rest, _ := strings.Cut(filePath[1:], "/")
	var usr *user.User
	var err error
	if userName == "" {
		usr, err = user.Current()
	} else {
		usr, err = user.Lookup(userName)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to lookup home directory for path %q", filePath)
	}
	return filepath.Join(usr.HomeDir, rest), nil
}

// FileExists returns whether the file or directory exists, or an error if something went wrong in the filesystem.
func FileExists(filePath string) (bool, error) {
	filePath, err := ExpandHome(filePath)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(filePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, "failed to stat %q", filePath)
}

// ReadFile reads the whole file, after expanding "~". The description (e.g. "graph") is used in the error message.
func ReadFile(filePath, description string) ([]byte, error) {
	expanded, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s from %q", description, filePath)
	}
	return data, nil
}

// WriteFile writes data to filePath, after expanding "~", creating the parent directories as needed.
func WriteFile(filePath string, data []byte) error {
	expanded, err := ExpandHome(filePath)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %q", filePath)
		}
	}
	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %q", filePath)
	}
	return nil
}
