package datasets_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/melisma/audiotensor/common/config"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "audiotensor-test")
	if err != nil {
		panic(err)
	}
	config.Path = filepath.Join(dir, "audiotensor.yaml")
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type archiveEntry struct {
	name string
	body string
}

func makeArchive(tb testing.TB, path string, entries []archiveEntry) {
	buf := &bytes.Buffer{}
	gz := gzip.NewWriter(buf)
	tw := tar.NewWriter(gz)

	for _, e := range entries {
		flag := byte(tar.TypeReg)
		if strings.HasSuffix(e.name, "/") {
			flag = tar.TypeDir
		}
		require.NoError(tb, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Typeflag: flag,
			Mode:     0o644,
			Size:     int64(len(e.body)),
		}))
		_, err := tw.Write([]byte(e.body))
		require.NoError(tb, err)
	}

	require.NoError(tb, tw.Close())
	require.NoError(tb, gz.Close())
	require.NoError(tb, os.WriteFile(path, buf.Bytes(), 0o644))
}
