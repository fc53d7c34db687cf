package domain

import "errors"

// Domain errors.
var (
	ErrSourceNotFound     = errors.New("source file not found")
	ErrDestinationSetup   = errors.New("create destination directory")
	ErrCopyFailed         = errors.New("copy failed")
	ErrInvalidManifest    = errors.New("invalid manifest")
	ErrUnsupportedFormat  = errors.New("unsupported manifest format (use .toml, .yaml or .yml)")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrNotRegularFile     = errors.New("not a regular file")
	ErrSameFile           = errors.New("source and destination are the same file")
	ErrInvalidLogLevel    = errors.New("invalid log level (use debug, info, warn or error)")
	ErrConfigDecodeFailed = errors.New("decode config file")
	ErrConfigExists       = errors.New("config file already exists (use --force to overwrite)")
	ErrManifestExists     = errors.New("manifest file already exists (use --force to overwrite)")
)
