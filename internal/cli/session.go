package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/engine"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/inline"
	"github.com/yaklabco/gomdedit/pkg/trigger"
)

// stdinPath names standard input as a document argument.
const stdinPath = "-"

// session is the resolved state shared by one command invocation.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	loaded *configloader.LoadResult
	logger *log.Logger
	styles *pretty.Styles
	out    io.Writer
	in     io.Reader
}

// newSession loads configuration with cliCfg on top and builds the logger
// and styles for cmd.
func newSession(cmd *cobra.Command, flags *globalFlags, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(flags.color)
	}
	if flags.debug {
		cliCfg.LogLevel = "debug"
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: flags.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	cfg := loaded.Config

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("configuration loaded", logging.FieldPaths, loaded.LoadedFrom)
	}

	out := cmd.OutOrStdout()
	return &session{
		ctx:    logging.WithLogger(ctx, logger),
		cfg:    cfg,
		loaded: loaded,
		logger: logger,
		styles: pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out)),
		out:    out,
		in:     cmd.InOrStdin(),
	}, nil
}

// engineOptions maps configuration onto document options.
func (s *session) engineOptions() engine.Options {
	return engine.Options{
		Logger: s.logger,
		Inline: inline.Options{
			Underline: s.cfg.Inline.UnderlineEnabled(),
			Highlight: s.cfg.Inline.HighlightEnabled(),
		},
		Trigger: trigger.Options{
			ListIndent:    s.cfg.Editor.ListIndent,
			ContinueLists: s.cfg.Editor.ContinueListsEnabled(),
		},
	}
}

// openDocument reads path, or standard input for "-", into a document.
// The returned FileInfo is nil for standard input.
func (s *session) openDocument(path string) (*engine.Document, *fsutil.FileInfo, error) {
	if path == stdinPath {
		content, err := io.ReadAll(s.in)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return engine.New(string(content), s.engineOptions()), nil, nil
	}

	content, info, err := fsutil.ReadFile(s.ctx, path)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Debug("document read", logging.FieldPath, path, logging.FieldLength, len(content))
	return engine.New(string(content), s.engineOptions()), info, nil
}

// workingDir returns the process working directory.
func workingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}
