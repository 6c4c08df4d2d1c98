package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
	"github.com/msto63/stringops/foundation/core/locale"
	mdwlog "github.com/msto63/stringops/foundation/core/log"
	"github.com/msto63/stringops/pkg/core/config"
	"github.com/msto63/stringops/pkg/core/logging"
)

// app carries the global flags and the state shared by all commands
type app struct {
	cfgFile    string
	verbose    bool
	logFormat  string
	localeName string
	noValidate bool
	copyOut    bool

	cfg    *config.Config
	logger *mdwlog.Logger
	loc    locale.Locale

	// copyToClipboard is swapped in tests
	copyToClipboard func(string) error
}

func newApp() *app {
	return &app{
		logger:          mdwlog.Discard(),
		loc:             locale.C,
		copyToClipboard: clipboard.WriteAll,
	}
}

// NewRootCmd builds the stringops command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "stringops",
		Short: "String utilities: checked formatting, case, trim, replace, URL encoding and more",
		Long: `stringops exposes a small string utility library on the command line.

Commands that take TEXT read standard input when TEXT is omitted.
Configuration is read from stringops.toml or stringops.yaml (or the file
named by STRINGOPS_CONFIG), a .env file and STRINGOPS_* variables.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "__complete" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./stringops.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: auto, json, text, console, logfmt")
	flags.StringVar(&a.localeName, "locale", "", "locale for narrow/wide conversion (default: from environment)")
	flags.BoolVar(&a.noValidate, "no-validate", false, "render format templates without checking them")
	flags.BoolVar(&a.copyOut, "copy", false, "also copy the output to the clipboard")

	root.AddCommand(
		newFormatCmd(a),
		newPrintCmd(a),
		newPrintlnCmd(a),
		newCaseCmd(a, "lower", "Convert ASCII letters to lower case"),
		newCaseCmd(a, "upper", "Convert ASCII letters to upper case"),
		newTrimCmd(a),
		newDos2UnixCmd(a),
		newReplaceCmd(a),
		newURLEncodeCmd(a),
		newTokenizeCmd(a),
		newWideCmd(a),
		newNumericCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the root command and prints any error to stderr
func Execute() error {
	a := newApp()
	root := newRootCmd(a)
	err := root.Execute()
	if err != nil {
		if a.verbose {
			a.logger.LogError(err)
		}
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// setup loads the configuration, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.verbose {
		a.cfg.General.LogLevel = "debug"
	}
	if a.logFormat != "" {
		a.cfg.General.LogFormat = a.logFormat
	}
	if a.localeName != "" {
		a.cfg.Locale.Name = a.localeName
	}
	if a.noValidate {
		a.cfg.Format.SkipValidation = true
	}
	if a.copyOut {
		a.cfg.Output.Copy = true
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.loc, err = a.cfg.LocaleValue()
	if err != nil {
		return err
	}
	if a.cfg.Locale.Name != "" {
		locale.SetAmbient(a.loc)
	}

	a.logger = logging.NewLogger(logging.LoggerConfig{
		Name:   "stringops",
		Level:  a.cfg.General.LogLevel,
		Format: a.cfg.General.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	a.logger.Debug("command started", mdwlog.Fields{
		"command": cmd.CommandPath(),
		"locale":  a.loc.String(),
	})
	return nil
}

// output returns the writer a command prints to and a function to call when
// the command is done. With --copy the output is also put on the clipboard.
func (a *app) output(cmd *cobra.Command) (io.Writer, func() error) {
	out := cmd.OutOrStdout()
	if a.cfg == nil || !a.cfg.Output.Copy {
		return out, func() error { return nil }
	}

	var buf bytes.Buffer
	return io.MultiWriter(out, &buf), func() error {
		if err := a.copyToClipboard(buf.String()); err != nil {
			// the output itself was written; clipboard failures only warn
			a.logger.Warn("failed to copy to clipboard", mdwlog.Err(err))
			return nil
		}
		a.logger.Debug("copied output to clipboard", mdwlog.Field("bytes", buf.Len()))
		return nil
	}
}

// emitLine writes s followed by a newline unless s already ends with one
func (a *app) emitLine(cmd *cobra.Command, s string) error {
	w, done := a.output(cmd)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	return done()
}

// readInput returns args[i] or, when absent, all of standard input.
// chomp drops a single trailing newline from standard input.
func readInput(cmd *cobra.Command, args []string, i int, chomp bool) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	s := string(data)
	if chomp {
		s = strings.TrimSuffix(s, "\n")
	}
	return s, nil
}

var (
	errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	codeStyle  = lipgloss.NewStyle().Faint(true)
)

func printError(w io.Writer, err error) {
	label := "error:"
	code := ""
	if c := mdwerror.GetCode(err); c != mdwerror.CodeUnknown {
		code = " [" + string(c) + "]"
	}
	if logging.IsTerminal(w) {
		label = errorLabel.Render(label)
		if code != "" {
			code = " " + codeStyle.Render("["+string(mdwerror.GetCode(err))+"]")
		}
	}
	fmt.Fprintf(w, "%s %v%s\n", label, err, code)
}
