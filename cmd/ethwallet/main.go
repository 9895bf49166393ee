// Package main provides the ethwallet CLI tool for generating and importing
// Ethereum wallets.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/ethwallet"
	"github.com/complex-gh/ethwallet/ethereum"
	"github.com/complex-gh/ethwallet/internal/config"
	"github.com/complex-gh/ethwallet/internal/log"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

var (
	baseStyle  = lipgloss.NewStyle().Margin(0, 0, 1, 2) //nolint:mnd
	red        = lipgloss.Color(completeColor("#FF4444", "196", "9"))
	errorStyle = baseStyle.
			Foreground(red).
			Background(lipgloss.AdaptiveColor{Light: completeColor("#FFEBEB", "255", "7"), Dark: completeColor("#2B1A1A", "235", "8")}).
			Padding(1, 2) //nolint:mnd

	cfg, configErr = loadConfig()

	jsonOutput bool
	count      int
	logLevel   string
	logJSON    bool

	rootCmd = &cobra.Command{
		Use:   "ethwallet",
		Short: "Generate an Ethereum wallet (include -h for more options)",
		Long: `Generate an Ethereum wallet.

Without a subcommand a random private key is generated. Use "hd" for a new
mnemonic-backed wallet, "import" for an existing key or address and
"import-hd" for an existing mnemonic or extended key.

Derivation conventions for --derivation:
  ethereum       m/44'/60'/0'/{index}  (default)
  keepkey        m/44'/60'/{index}'/0
  ledger-legacy  m/44'/60'/0'/{index}
  ledger-live    m/44'/60'/{index}'/0/0
  trezor         m/44'/60'/0'/{index}
Anything else is used as a custom path, e.g. "m/44'/60'/0'/0/7".

SECURITY TIP: Add a space before the command to prevent it from being
saved in your shell history.`,
		Example: `  ethwallet
  ethwallet --count 3 --json
  ethwallet hd --language japanese --word-count 24
  ethwallet import --address 0x52908400098527886e0f7030069857d2e4169ee7
  ethwallet import-hd --mnemonic "..." --derivation ledger-live --index 2`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(ethwallet.Random{})
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	envCmd = &cobra.Command{
		Use:          "env",
		Args:         cobra.NoArgs,
		Short:        "List the environment variables ethwallet reads",
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return config.Usage()
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for ethwallet.

To load completions:

Bash:
  $ source <(ethwallet completion bash)

Zsh:
  $ ethwallet completion zsh > "${fpath[1]}/_ethwallet"

Fish:
  $ ethwallet completion fish | source

PowerShell:
  PS> ethwallet completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", cfg.JSON, "Print the generated wallet(s) in JSON")
	rootCmd.PersistentFlags().IntVarP(&count, "count", "c", cfg.Count, "Number of wallets to generate")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Diagnostic log level on stderr (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", cfg.LogJSON, "Write diagnostic logs as JSON")

	rootCmd.AddCommand(hdCmd, importCmd, importHDCmd)
	rootCmd.AddCommand(manCmd, envCmd, completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		formatError(err)
		os.Exit(1)
	}
}

// loadConfig reads flag defaults from the environment. On failure the
// built-in defaults are used so flags can still be registered; the error is
// reported once a command runs.
func loadConfig() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return &config.Config{
			Count:     1,
			Language:  string(ethwallet.DefaultLanguage),
			WordCount: ethwallet.DefaultWordCount,
			LogLevel:  "warn",
		}, err
	}
	return c, nil
}

// setup applies the logging flags before any subcommand runs.
func setup(*cobra.Command, []string) error {
	if configErr != nil {
		return configErr
	}
	log.Init(logLevel, logJSON)
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	return nil
}

// run composes count wallets for mode and prints each as soon as it is
// ready, so wallets printed before a failure stay on screen.
func run(mode ethwallet.RequestMode) error {
	composer := ethwallet.NewComposer(ethereum.New(), ethwallet.WithLogger(log.Composer))
	req := ethwallet.Request{Mode: mode, Count: count}

	return composer.Run(req, func(w *ethwallet.Wallet) error {
		return printWallet(os.Stdout, w, jsonOutput)
	})
}

func getWidth(maxw int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint: gosec
	if err != nil || w > maxw {
		return maxWidth
	}
	return w
}

func renderBlock(w io.Writer, s lipgloss.Style, width int, str string) {
	_, _ = io.WriteString(w, s.Width(width).Render(str))
	_, _ = io.WriteString(w, "\n")
}

// formatError prints err to stderr. On a terminal it is rendered as a
// styled block; otherwise as a single "Error:" line. Address errors get
// their own wording since nothing can be recovered from the input.
func formatError(err error) {
	msg := err.Error()
	var addrErr *ethwallet.AddressError
	if errors.As(err, &addrErr) {
		msg = fmt.Sprintf("%q is not a valid Ethereum address: %v", addrErr.Address, addrErr.Err)
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		b := strings.Builder{}
		w := getWidth(maxWidth)

		b.WriteRune('\n')
		renderBlock(&b, errorStyle, w, msg)

		fmt.Fprint(os.Stderr, b.String())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
}

func completeColor(truecolor, ansi256, ansi string) string {
	//nolint: exhaustive
	switch lipgloss.ColorProfile() {
	case termenv.TrueColor:
		return truecolor
	case termenv.ANSI256:
		return ansi256
	}
	return ansi
}

func readPassword(msg string) ([]byte, error) {
	_, _ = fmt.Fprint(os.Stderr, msg)
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open tty: %w", err)
	}
	defer t.Close()                                     //nolint: errcheck
	pass, err := term.ReadPassword(int(t.Input().Fd())) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not read passphrase: %w", err)
	}
	return pass, nil
}

func askSeedPassword() (string, error) {
	defer fmt.Fprintf(os.Stderr, "\n")
	pass, err := readPassword("Enter the BIP-39 password: ")
	if err != nil {
		return "", err
	}
	defer clear(pass)
	return string(pass), nil
}
