package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Loadenv loads .env style files into the process environment without
// overriding variables that are already set. With no arguments it reads
// ./.env. It reports whether any file was loaded; a missing file is not an
// error.
func Loadenv(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	loaded := false
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, err
		}
		loaded = true
	}
	return loaded, nil
}
