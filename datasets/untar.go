package datasets

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/melisma/audiotensor/common"
)

// BaseName strips the archive suffix from a file name, compound suffixes
// included: "foo.tar.gz" and "foo.tgz" both give "foo".
func BaseName(fname string) string {
	name := filepath.Base(fname)
	for _, suffix := range []string{".tar.gz", ".tgz", ".tar", ".gz", ".zip"} {
		if strings.HasSuffix(strings.ToLower(name), suffix) {
			return name[:len(name)-len(suffix)]
		}
	}
	if ext := filepath.Ext(name); ext != "" {
		return name[:len(name)-len(ext)]
	}
	return name
}

type archiveWorkFn = func(header *tar.Header, f io.Reader) error

func readArchive(file io.ReadCloser, workFn archiveWorkFn) error {
	archiver, err := gzip.NewReader(file)
	if err != nil {
		return err
	}
	defer func(archiver *gzip.Reader) {
		_ = archiver.Close()
	}(archiver)

	tarFile := tar.NewReader(archiver)
	for {
		header, err := tarFile.Next()
		if err == io.EOF {
			break // we're done
		}
		if err != nil {
			return err
		}

		if header == nil {
			continue // skip weird file
		}
		if header.Typeflag != tar.TypeReg {
			continue // skip directories and other stuff
		}

		err = workFn(header, tarFile)
		if err != nil {
			return err
		}
	}

	return nil
}

// Untar extracts a tar-gzip archive into dest/<archive base name> and returns
// that directory. Entries escaping the target directory are rejected.
func Untar(fname string, dest string) (string, error) {
	target := filepath.Join(dest, BaseName(fname))
	if err := os.MkdirAll(target, os.ModePerm); err != nil {
		return "", err
	}

	f, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	err = readArchive(f, func(header *tar.Header, r io.Reader) error {
		out := filepath.Join(target, filepath.Clean(header.Name))
		if !strings.HasPrefix(out, target+string(os.PathSeparator)) {
			return fmt.Errorf("%w: %s", common.ErrUnsafeArchivePath, header.Name)
		}

		if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
			return err
		}

		file, err := os.Create(out)
		if err != nil {
			return err
		}
		if _, err = io.Copy(file, r); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	})
	if err != nil {
		return "", err
	}

	return target, nil
}
