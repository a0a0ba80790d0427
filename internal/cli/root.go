package cli

// Copyright (C) 2025 Rizome Labs, Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"fmt"
	"log/slog"

	"github.com/rizome-dev/cs2ir/internal/config"
	"github.com/rizome-dev/cs2ir/internal/logging"
	"github.com/rizome-dev/cs2ir/pkg/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds what every command needs once configuration is loaded.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	log    *slog.Logger
	engine *engine.Table
}

func newApp() *app {
	return &app{
		v:      viper.New(),
		log:    logging.Discard(),
		engine: engine.Default(),
	}
}

func (a *app) init(cmd *cobra.Command, configFile string) error {
	if err := config.Init(a.v, configFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Component(logging.New(cfg.Log, cmd.ErrOrStderr()), cmd.Name())

	if cfg.Engine.Table != "" {
		overlay, err := engine.LoadTable(cfg.Engine.Table)
		if err != nil {
			return err
		}
		a.engine = engine.Default().Merge(overlay)
		a.log.Info("engine table overlay loaded", "path", cfg.Engine.Table)
	}
	return nil
}

// RootCmd returns the root command
func RootCmd() *cobra.Command {
	var configFile string
	a := newApp()

	rootCmd := &cobra.Command{
		Use:   "cs2ir",
		Short: "Explain disassembly-to-IR translation errors",
		Long: `cs2ir renders the diagnostics a disassembly-to-IR translator reports: engine
failures, rejected architecture/mode combinations and internal translator errors.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, configFile)
		},
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./cs2ir.yaml or $HOME/.cs2ir/cs2ir.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.SetHelpTemplate(customHelpTemplate())

	rootCmd.AddCommand(
		ExplainCmd(a),
		CodesCmd(a),
		CheckCmd(a),
		CompletionCmd(),
	)

	return rootCmd
}

// customHelpTemplate returns a custom help template with grouped commands
func customHelpTemplate() string {
	return `{{.Long}}

Usage:
  {{.UseLine}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`
}

// GetCustomHelp returns the formatted help text for display
func GetCustomHelp() string {
	return `cs2ir renders the diagnostics a disassembly-to-IR translator reports: engine
failures, rejected architecture/mode combinations and internal translator errors.

Usage:
  cs2ir [command]

Diagnostic Commands:
  explain     Render a translation error
  check       Run translator mode and engine-code checks
  codes       List engine error codes

System Commands:
  completion  Generate shell completions
  help        Help about any command

Flags:
  --config string      config file (default is ./cs2ir.yaml or $HOME/.cs2ir/cs2ir.yaml)
  --log-level string   log level: debug, info, warn, error
  -h, --help           help for cs2ir

Use "cs2ir [command] --help" for more information about a command.
`
}

// CompletionCmd generates shell completions
func CompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(cs2ir completion bash)

Zsh:
  $ cs2ir completion zsh > "${fpath[1]}/_cs2ir"

Fish:
  $ cs2ir completion fish | source

PowerShell:
  PS> cs2ir completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		// Completion scripts must generate even when the config is broken.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletion(out)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}
	return cmd
}
