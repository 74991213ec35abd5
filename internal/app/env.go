// Where: cli/internal/app/env.go
// What: Environment lookup and debug logger construction.
// Why: Merge process variables with an optional .env file without mutating the process.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/poruru/mobile-ci/cli/internal/envutil"
	"github.com/poruru/mobile-ci/cli/internal/infra/fileops"
	"github.com/rs/zerolog"
)

// resolveLookup returns a lookup where process variables win over .env values.
// An explicit --env-file must load; an implicit ./.env only warns on failure.
func resolveLookup(cli CLI, deps Dependencies, warn func(string)) (envutil.LookupFunc, error) {
	path := cli.EnvFile
	explicit := path != ""
	if !explicit {
		path = filepath.Join(deps.WorkDir, ".env")
		if !fileops.FileExists(path) {
			return deps.LookupEnv, nil
		}
	} else {
		path = resolvePath(deps.WorkDir, path)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
		warn(fmt.Sprintf("failed to load %s: %v", path, err))
		return deps.LookupEnv, nil
	}

	process := deps.LookupEnv
	if process == nil {
		process = os.LookupEnv
	}
	return func(key string) (string, bool) {
		if value, ok := process(key); ok {
			return value, true
		}
		value, ok := values[key]
		return value, ok
	}, nil
}

// newLogger returns a disabled logger unless debug tracing was requested.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
