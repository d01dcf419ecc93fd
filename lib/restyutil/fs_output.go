package restyutil

import (
	"log/slog"
	"os"
	"path/filepath"
)

// FilesystemOutput dumps http transcripts into a directory, one file
// per exchange. The directory is cleared at construction so a run's
// dumps never mix with a previous run's.
type FilesystemOutput struct {
	dir string
}

func NewFilesystemOutput(dir string) FilesystemOutput {
	err := os.RemoveAll(dir)
	if err != nil {
		slog.Warn("failed to clear http dump directory", "dir", dir, "err", err)
	}
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		panic(err)
	}
	return FilesystemOutput{dir: dir}
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.dir, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write http dump", "id", id, "dir", o.dir, "err", err)
	}
}
