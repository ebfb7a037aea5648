package tools

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

func OpenFileOrFail(filePath string) *os.File {
	file, err := os.Open(filePath)
	if err != nil {
		glog.Fatal(err)
	}

	return file
}

func GetRootFolder() string {
	assetsFromEnv := os.Getenv("GEO_EXTENTS_WORKDIR")
	if assetsFromEnv != "" {
		return assetsFromEnv
	} else if strings.HasSuffix(os.Args[0], ".test") || strings.HasSuffix(os.Args[0], ".test.exe") {
		_, b, _, _ := runtime.Caller(0)
		return filepath.Dir(filepath.Dir(b))
	} else {
		ex, err := os.Executable()
		if err != nil {
			glog.Fatal("cannot retrieve executable directory", err)
		}
		return filepath.Dir(ex)
	}
}

func CreateDirectoryIfDoesNotExist(directory string) error {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		err := os.MkdirAll(directory, 0777)
		if err != nil {
			return err
		}
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// CreateOutput opens filePath for writing, creating its parent folders. An empty path writes on stdout.
func CreateOutput(filePath string) (io.WriteCloser, error) {
	if filePath == "" {
		return nopCloser{os.Stdout}, nil
	}
	if err := CreateDirectoryIfDoesNotExist(filepath.Dir(filePath)); err != nil {
		return nil, errors.Wrapf(err, "creating folder for %s", filePath)
	}
	file, err := os.Create(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", filePath)
	}
	return file, nil
}
