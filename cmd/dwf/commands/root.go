// Package commands implements the CLI commands for dwf.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/devflow/internal/app"
	"go.trai.ch/devflow/internal/build"
	"go.trai.ch/devflow/internal/core/domain"
)

// aliases maps legacy command spellings to their canonical form.
var aliases = map[string]string{
	"verify": string(domain.PrimaryCheck),
	"smoke":  "test:smoke",
}

const longHelp = `dwf maps canonical commands such as test:unit or check:pr onto the tools of
each stack declared in devflow.toml and runs them on the host or in a container.`

// CLI represents the command line interface for dwf.
type CLI struct {
	app     Application
	log     LogConfigurer
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, cmd domain.CommandRef, opts app.RunOptions) error
}

// LogConfigurer is implemented by loggers whose verbosity and format can be
// switched from flags.
type LogConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log LogConfigurer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dwf <command> [selector]",
		Short:         "Run developer workflows across every stack of a project",
		Long:          longHelp,
		Example:       "  dwf test unit\n  dwf check:pr\n  dwf ci:generate",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the devflow config")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show debug output")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolP("dry-run", "n", false, "Print the resolved plan without running it")

	rootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = c.configureLogging
	rootCmd.RunE = c.runCommand
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) configureLogging(cmd *cobra.Command, _ []string) {
	if c.log == nil {
		return
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	c.log.SetVerbose(verbose)
	c.log.SetJSON(logJSON)
}

func (c *CLI) runCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// Display command usage help without returning an error
		_ = cmd.Help()
		return nil
	}

	ref, err := ParseArgs(args)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	return c.app.Run(cmd.Context(), ref, app.RunOptions{
		ConfigPath: configPath,
		DryRun:     dryRun,
		Host:       app.DetectHost(),
	})
}

// ParseArgs turns `<command> [selector]` into a command reference.
// `dwf test unit` and `dwf test:unit` are equivalent.
func ParseArgs(args []string) (domain.CommandRef, error) {
	text := strings.Join(args, ":")

	primary, selector, hasSelector := strings.Cut(text, ":")
	if alias, ok := aliases[primary]; ok {
		text = alias
		if hasSelector {
			text += ":" + selector
		}
	}

	return domain.ParseCommand(text)
}
