package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ukfiscal/lifetax/internal/calculation"
	"github.com/ukfiscal/lifetax/internal/config"
	"github.com/ukfiscal/lifetax/internal/domain"
	"github.com/ukfiscal/lifetax/internal/output"
	"github.com/ukfiscal/lifetax/internal/server"
	"github.com/ukfiscal/lifetax/internal/tui"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lifetax",
	Short: "UK lifetime tax-benefit policy simulator",
	Long:  "Projects income tax, NICs, student loan repayments and the lifetime impact of policy reforms over a taxpayer's remaining life",
}

// loadEngine builds an engine from the optional --rules override.
func loadEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	if rulesFile == "" {
		return calculation.NewEngine(), nil
	}
	rules, err := config.NewInputParser().LoadRules(rulesFile)
	if err != nil {
		return nil, err
	}
	return calculation.NewEngineWithRules(rules), nil
}

func runSimulation(cmd *cobra.Command, inputFile string) (*domain.SimulationResult, error) {
	parser := config.NewInputParser()
	req, err := parser.LoadFromFile(inputFile)
	if err != nil {
		return nil, err
	}

	engine, err := loadEngine(cmd)
	if err != nil {
		return nil, err
	}
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine.Run(req)
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Run a lifetime simulation and print the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := runSimulation(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format %q, have: %v", outputFormat, output.FormatterNames())
		}
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [input-file]",
	Short: "Run a lifetime simulation and write the result to a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := runSimulation(cmd, args[0])
		if err != nil {
			log.Fatal(err)
		}

		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			log.Fatalf("unsupported format %q, have: %v", outputFormat, output.FormatterNames())
		}
		filename, err := output.WriteFormatted(f, result, outputFormat)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s\n", filename)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a simulation input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(inputFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Input file %s is valid\n", inputFile)
	},
}

var reformsCmd = &cobra.Command{
	Use:   "reforms",
	Short: "List the reform categories the simulator models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range domain.AllReforms() {
			fmt.Printf("%-22s %s\n  %s\n", r.Key, r.Name, r.Description)
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulation engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		cfg := server.NewConfig()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		logger := server.NewLogger(cfg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := server.New(cfg, engine, logger).Start(ctx); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Browse a simulation interactively",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		req, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		engine, err := loadEngine(cmd)
		if err != nil {
			log.Fatal(err)
		}

		p := tea.NewProgram(tui.NewModel(engine, req.Profile), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "lifetax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func init() {
	rootCmd.PersistentFlags().String("rules", "", "Path to a fiscal rules override file (YAML)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	simulateCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json, yaml)")
	exportCmd.Flags().StringP("format", "f", "csv", "Output format (console, csv, json, yaml)")
	serveCmd.Flags().StringP("port", "p", "", "Listen port (default from LIFETAX_PORT, else 8080)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(reformsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
