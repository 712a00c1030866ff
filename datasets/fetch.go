package datasets

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/melisma/audiotensor/common/runctx"
	"github.com/melisma/audiotensor/util"
	"github.com/minio/minio-go/v6"
)

// Fetch downloads a dataset archive into the archive cache directory and
// returns its local path. Already-downloaded archives are reused. Supports
// http(s):// and s3://bucket/key sources.
func Fetch(ctx runctx.RunContext, rawUrl string) (string, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", fmt.Errorf("fetch: error parsing url: %w", err)
	}

	cacheDir := ctx.Config.Datasets.CacheDirectory
	if err = os.MkdirAll(cacheDir, os.ModePerm); err != nil {
		return "", err
	}

	// Cache files carry a short hash of the full url: different sources can
	// share a basename ("archive/master.zip" style downloads).
	dest := filepath.Join(cacheDir, CacheName(rawUrl))
	if info, err := os.Stat(dest); err == nil && info.Size() > 0 {
		ctx.Log.Infof("Using cached archive %s (%s)", dest, humanize.Bytes(uint64(info.Size())))
		return dest, nil
	}

	switch u.Scheme {
	case "http", "https":
		err = fetchHttp(ctx, rawUrl, dest)
	case "s3":
		err = fetchS3(ctx, u, dest)
	default:
		err = fmt.Errorf("fetch: unsupported url scheme %q", u.Scheme)
	}
	if err != nil {
		return "", err
	}

	info, err := os.Stat(dest)
	if err != nil {
		return "", err
	}
	f, err := os.Open(dest)
	if err != nil {
		return "", err
	}
	hash, err := util.GetSha256HashOfStream(f)
	if err != nil {
		return "", err
	}
	ctx.Log.Infof("Downloaded %s (%s, sha256 %s)", dest, humanize.Bytes(uint64(info.Size())), hash)

	return dest, nil
}

// CacheName is the cache file name for a source url: its basename prefixed
// with a short hash of the whole url.
func CacheName(rawUrl string) string {
	base := rawUrl
	if u, err := url.Parse(rawUrl); err == nil && u.Path != "" {
		base = u.Path
	}
	return util.GetSha256HashOfString(rawUrl)[:8] + "-" + filepath.Base(base)
}

func fetchHttp(ctx runctx.RunContext, rawUrl string, dest string) error {
	req, err := http.NewRequestWithContext(ctx.Context, http.MethodGet, rawUrl, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch: unexpected status %d for %s", resp.StatusCode, rawUrl)
	}

	// Download to a temp file first so partial downloads never look cached
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), dest)
}

func fetchS3(ctx runctx.RunContext, u *url.URL, dest string) error {
	s3conf := ctx.Config.Datasets.S3
	if s3conf == nil || s3conf.Endpoint == "" {
		return fmt.Errorf("fetch: s3 source %s given but no s3 endpoint configured", u)
	}

	client, err := minio.New(s3conf.Endpoint, s3conf.AccessKeyId, s3conf.AccessSecret, s3conf.Ssl)
	if err != nil {
		return err
	}

	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	return client.FGetObjectWithContext(ctx.Context, bucket, key, dest, minio.GetObjectOptions{})
}
