package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yllada/rfkill-panel/cli"
	"github.com/yllada/rfkill-panel/common"
	"github.com/yllada/rfkill-panel/config"
	"github.com/yllada/rfkill-panel/rfkill"
	"github.com/yllada/rfkill-panel/ui"
)

// options holds the persistent flags.
type options struct {
	configPath    string
	wlanName      string
	bluetoothName string
	wwanName      string
	timeoutMS     int
	stylesheet    string
	dryRun        bool
	verbose       bool
}

// app is the state shared by every command once flags are parsed.
type app struct {
	opts    options
	config  *config.Config
	scanner *rfkill.Scanner
	table   *rfkill.Table
	ctrl    *rfkill.Controller
}

func newRootCmd() *cobra.Command {
	return (&app{}).command()
}

// command builds the command tree bound to a.
func (a *app) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   common.BinaryName,
		Short: "Popup panel to switch Wi-Fi, Bluetooth and WWAN radios",
		Long: `rfkill-panel shows a small borderless popup with one switch per radio.
Flipping a switch runs "rfkill block|unblock <index>" for the device found
under /sys/class/rfkill. The popup closes by itself after the timeout.`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.opts.configPath, "config", "c", "", "config file (default ~/.config/rfkill-panel/config.yaml)")
	flags.StringVarP(&a.opts.wlanName, "wlan", "w", common.DefaultWLANName, "name of the Wi-Fi rfkill device")
	flags.StringVarP(&a.opts.bluetoothName, "bluetooth", "b", common.DefaultBluetoothName, "name of the Bluetooth rfkill device")
	flags.StringVarP(&a.opts.wwanName, "wwan", "n", "", "name of the WWAN rfkill device (default: any device of type wwan)")
	flags.IntVarP(&a.opts.timeoutMS, "timeout", "t", int(common.AutoQuitTimeout.Milliseconds()), "close after this many milliseconds, 0 to stay open")
	flags.StringVarP(&a.opts.stylesheet, "stylesheet", "s", common.StylesheetFileName, "CSS file for the popup")
	flags.BoolVar(&a.opts.dryRun, "dry-run", false, "log rfkill commands instead of running them")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		a.newListCmd(),
		a.newStatusCmd(),
		a.newSetCmd("block", false),
		a.newSetCmd("unblock", true),
		a.newTUICmd(),
		a.newWriteConfigCmd(),
	)

	return rootCmd
}

// setup initializes logging and configuration, then scans the radios once.
func (a *app) setup(cmd *cobra.Command) error {
	logLevel := common.LevelInfo
	if a.opts.verbose {
		logLevel = common.LevelDebug
	}
	common.GetLogger().SetLevel(logLevel)

	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg

	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: cfg.LogToFile,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}

	a.scanner = rfkill.NewScanner(common.RfkillSysfsDir)
	a.table = rfkill.NewTable(cfg.WLANName, cfg.BluetoothName, cfg.WWANName)
	if err := a.scanner.Scan(a.table); err != nil {
		return err
	}
	for _, r := range a.table.Radios() {
		common.LogDebug("%s", r)
	}

	var blocker rfkill.Blocker = rfkill.NewCommandBlocker()
	if cfg.DryRun {
		blocker = rfkill.DryRunBlocker{}
	}
	a.ctrl = rfkill.NewController(a.table, blocker)
	return nil
}

// applyFlags copies explicitly set flags over the config file values.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("wlan") {
		cfg.WLANName = a.opts.wlanName
	}
	if flags.Changed("bluetooth") {
		cfg.BluetoothName = a.opts.bluetoothName
	}
	if flags.Changed("wwan") {
		cfg.WWANName = a.opts.wwanName
	}
	if flags.Changed("timeout") {
		cfg.TimeoutMS = a.opts.timeoutMS
	}
	if flags.Changed("stylesheet") {
		cfg.Stylesheet = a.opts.stylesheet
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = a.opts.dryRun
	}
}

func (a *app) runGUI(cmd *cobra.Command) error {
	stylesheet, err := ui.ReadStylesheet(a.config.Stylesheet)
	if err != nil {
		fmt.Println(err)
		return exitError{code: common.ExitStylesheet}
	}

	common.LogDebug("Starting %s %s", common.AppName, appVersion)
	application := ui.NewApplication(cmd.Context(), a.config, a.ctrl, stylesheet, appVersion)

	// GTK parses its own options; cobra already consumed ours.
	if code := application.Run(os.Args[:1]); code != 0 {
		return exitError{code: code}
	}
	return nil
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every rfkill device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.New(a.scanner, a.ctrl).ListDevices()
		},
	}
}

func (a *app) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the state of each radio class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.New(a.scanner, a.ctrl).Status()
		},
	}
}

func (a *app) newSetCmd(verb string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:       verb + " <wlan|bluetooth|wwan>",
		Short:     "Soft-" + verb + " a radio class",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"wlan", "bluetooth", "wwan"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.New(a.scanner, a.ctrl).Set(cmd.Context(), args[0], active)
		},
	}
}

func (a *app) newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the switches in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout := time.Duration(a.config.TimeoutMS) * time.Millisecond
			return cli.New(a.scanner, a.ctrl).RunTUI(cmd.Context(), timeout)
		},
	}
}

func (a *app) newWriteConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write-config",
		Short: "Save the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.config.Save(a.opts.configPath); err != nil {
				return err
			}
			path := a.opts.configPath
			if path == "" {
				path, _ = config.DefaultPath()
			}
			fmt.Printf("Configuration written to %s\n", path)
			return nil
		},
	}
}
