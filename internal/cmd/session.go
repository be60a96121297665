package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harrison/garmentqc/internal/aql"
	"github.com/harrison/garmentqc/internal/config"
	"github.com/harrison/garmentqc/internal/display"
	"github.com/harrison/garmentqc/internal/logger"
)

// session holds what every command needs once flags and config are resolved.
type session struct {
	cfg        *config.Config
	configPath string
	log        logger.Logger
	fileLog    *logger.FileLogger
	out        io.Writer
	errOut     io.Writer
	render     *display.Renderer
	evaluator  *aql.Evaluator
}

// newSession loads config, applies global flags and builds loggers.
// Callers must Close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	var cfg *config.Config
	var err error
	if configPath == "" {
		if configPath, err = config.DefaultConfigPath(); err != nil {
			return nil, err
		}
		cfg, err = config.LoadConfigFromHome()
	} else {
		cfg, err = config.LoadConfig(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var logLevelPtr, outputPtr, policyPtr *string
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevelPtr = &v
	}
	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		outputPtr = &v
	}
	if flags.Changed("lot-size-policy") {
		v, _ := flags.GetString("lot-size-policy")
		policyPtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, outputPtr, policyPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	policy, _ := cfg.Policy()

	noColor, _ := flags.GetBool("no-color")
	if noColor {
		color.NoColor = true
	}

	s := &session{
		cfg:        cfg,
		configPath: configPath,
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
		render:     display.NewRenderer(!noColor && isTerminalWriter(cmd.OutOrStdout())),
		evaluator:  aql.NewEvaluator(aql.DefaultTable(), aql.WithLotSizePolicy(policy)),
	}

	console := logger.NewConsoleLogger(s.errOut, cfg.LogLevel)
	if noColor {
		console.SetColor(false)
	}

	if cfg.FileLogging {
		dir, err := config.ResolveLogDir(cfg.LogDir)
		if err != nil {
			return nil, err
		}
		fl, err := logger.NewFileLoggerWithDirAndLevel(dir, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.fileLog = fl
		s.log = logger.NewMultiLogger(console, fl)
	} else {
		s.log = console
	}

	s.log.LogDebug(fmt.Sprintf("config: %s (policy=%s, output=%s)", configPath, cfg.LotSizePolicy, cfg.Output))
	return s, nil
}

// Close flushes the file logger, if any.
func (s *session) Close() {
	if s.fileLog != nil {
		s.fileLog.Close()
	}
}

// emit writes value in the configured output format. text renders the
// human-readable form.
func (s *session) emit(value interface{}, text func() string) error {
	switch s.cfg.Output {
	case config.OutputJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Fprintln(s.out, string(data))
	case config.OutputYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		fmt.Fprint(s.out, string(data))
	default:
		fmt.Fprintln(s.out, text())
	}
	return nil
}

// warn shows a warning on stderr and mirrors its title into the run log.
func (s *session) warn(w display.Warning) {
	w.Display(s.errOut)
	if s.fileLog != nil {
		s.fileLog.LogWarn(w.Title)
	}
}

// isTerminalWriter reports whether w is a terminal file.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
