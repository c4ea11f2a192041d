// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a possibly relative file path against a
// base directory, returning a cleaned absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Clean(filepath.Join(directory, filePath))
}

// EnsureFileExists - true if the named file is present and statable
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
