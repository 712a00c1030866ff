package util_test

import (
	"io"
	"testing"

	"github.com/melisma/audiotensor/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteSeeker(t *testing.T) {
	s := util.NewByteSeeker([]byte("abcdef"))

	buf := make([]byte, 3)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", string(buf))

	pos, err := s.Seek(1, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pos)

	n, err = s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "bcd", string(buf[:n]))

	assert.NoError(t, s.Close())
}

func TestWriteSeeker(t *testing.T) {
	w := util.NewWriteSeeker()

	_, err := w.Write([]byte("hello world"))
	require.NoError(t, err)

	// overwrite the middle, the way the wav encoder patches its header
	_, err = w.Seek(6, io.SeekStart)
	require.NoError(t, err)
	_, err = w.Write([]byte("gopher"))
	require.NoError(t, err)

	assert.Equal(t, "hello gopher", string(w.Bytes()))

	pos, err := w.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(12), pos)

	_, err = w.Seek(-1, io.SeekStart)
	assert.Error(t, err)
}

func TestGetSha256HashOfStream(t *testing.T) {
	hash, err := util.GetSha256HashOfStream(util.ByteCloser([]byte("")))
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hash)
}

func TestGetSha256HashOfString(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", util.GetSha256HashOfString(""))
	assert.NotEqual(t, util.GetSha256HashOfString("a"), util.GetSha256HashOfString("b"))
}
