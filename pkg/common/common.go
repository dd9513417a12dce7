// 29 Apr 2020

// Package common holds the exit codes shared by the commands and a
// couple of helpers which are used all over the place in testing.
package common

import (
	"compress/gzip"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file in dir and returns
// the filename. An empty dir means the system default.
func WrtTemp(dir, s string) (string, error) {
	f_tmp, err := os.CreateTemp(dir, "_del_me_testing")
	if err != nil {
		return "", errors.Wrap(err, "tempfile fail")
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", errors.Wrapf(err, "writing string to temp file %v", f_tmp.Name())
	}
	return f_tmp.Name(), nil
}

// WrtTempGz is WrtTemp, but the contents are gzipped, so we can check
// that readers see through the compression.
func WrtTempGz(dir, s string) (string, error) {
	f_tmp, err := os.CreateTemp(dir, "_del_me_testing*.gz")
	if err != nil {
		return "", errors.Wrap(err, "tempfile fail")
	}
	defer f_tmp.Close()

	zw := gzip.NewWriter(f_tmp)
	if _, err := io.WriteString(zw, s); err != nil {
		return "", errors.Wrapf(err, "writing gzip string to temp file %v", f_tmp.Name())
	}
	if err := zw.Close(); err != nil {
		return "", errors.Wrapf(err, "flushing gzip temp file %v", f_tmp.Name())
	}
	return f_tmp.Name(), nil
}
