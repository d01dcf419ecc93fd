package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// ReadConfig decodes a json5 configuration file into T. `name` must
// carry a file extension; a sibling `<name>.local.<ext>` file, when
// present, is merged on top of the base file so checked-in defaults can
// be overridden per machine. When neither file exists the error is
// os.ErrNotExist.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found := false

	base, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(base) > 0 {
		err = json5.Unmarshal(base, &out)
		if err != nil {
			return out, err
		}
		found = true
	}

	localPath := localVariant(name)
	local, err := os.ReadFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return out, err
	}
	if len(local) > 0 {
		var override T
		err = json5.Unmarshal(local, &override)
		if err != nil {
			return out, err
		}
		err = mergo.Merge(&out, override, mergo.WithOverride)
		if err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

// config.json5 -> config.local.json5
func localVariant(name string) string {
	dir := filepath.Dir(name)
	base := filepath.Base(name)

	ext := ""
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		base, ext = base[:idx], base[idx+1:]
	}
	return filepath.Join(dir, fmt.Sprintf("%s.local.%s", base, ext))
}

// ReadRecursively is ReadConfig, except it walks up from the working
// directory towards the filesystem root until a matching configuration
// file is found.
func ReadRecursively[T any](name string) (T, error) {
	var none T

	root, err := filepath.Abs("/")
	if err != nil {
		return none, err
	}
	current, err := os.Getwd()
	if err != nil {
		return none, err
	}

	for current != root {
		cfg, err := ReadConfig[T](filepath.Join(current, name))
		if os.IsNotExist(err) {
			current = filepath.Join(current, "..")
			continue
		}
		if err != nil {
			return none, err
		}
		return cfg, nil
	}

	return none, os.ErrNotExist
}
