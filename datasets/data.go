package datasets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/melisma/audiotensor/common"
	"github.com/melisma/audiotensor/common/runctx"
)

// Data fetches and extracts a registered dataset (or a raw archive URL) and
// returns the extracted data directory. Both steps are skipped when their
// output already exists.
func Data(ctx runctx.RunContext, nameOrUrl string) (string, error) {
	url, ok := URL(nameOrUrl)
	if !ok {
		url = nameOrUrl
	}
	if url == "" {
		return "", fmt.Errorf("%w: %s", common.ErrDatasetNotFound, nameOrUrl)
	}

	archive, err := Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	target := filepath.Join(ctx.Config.Datasets.CacheDirectory, BaseName(archive))
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		entries, err := os.ReadDir(target)
		if err == nil && len(entries) > 0 {
			ctx.Log.Infof("Using extracted dataset at %s", target)
			return target, nil
		}
	}

	return Untar(archive, ctx.Config.Datasets.CacheDirectory)
}
