package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SundaesOnDemand/pkg/config"
	"SundaesOnDemand/pkg/logger"
	"SundaesOnDemand/pkg/order"
	"SundaesOnDemand/pkg/tui"

	"github.com/charmbracelet/lipgloss"
)

const version = "0.1.0"

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F472B6")).
			Bold(true)
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	tailLog := flag.Int("tail-log", 0, "Print the last N lines of the debug log and exit")
	showVersion := flag.Bool("version", false, "Show version")
	showHelp := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *showHelp {
		printHelp()
		return
	}

	if *showVersion {
		fmt.Printf("Sundaes on Demand v%s\n", version)
		return
	}

	cfg, cfgPath, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	appLog, err := logger.NewWithLevel(cfg.Log.StoragePath, cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Failed to open log: %v", err)
	}
	defer appLog.Sync()

	if *tailLog > 0 {
		fmt.Println(appLog.GetLastLines(*tailLog))
		return
	}

	appLog.Info("starting v%s with config %s", version, cfgPath)

	// The session owns the order state; the UI only borrows it.
	state := order.NewState(cfg.PricePerItem)
	phases := order.NewPhaseController()

	model, err := tui.NewModel(cfg, state, phases, appLog)
	if err != nil {
		log.Fatalf("❌ Failed to build UI: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// First SIGINT/SIGTERM cancels the program, a second one force-exits.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		select {
		case <-sigCh:
			os.Exit(1)
		case <-time.After(5 * time.Second):
			os.Exit(1)
		}
	}()

	fmt.Println(bannerStyle.Render("🍨 " + cfg.ShopName))

	if err := tui.Run(model, ctx); err != nil {
		if ctx.Err() == nil {
			appLog.Error("tui: %v", err)
			_ = appLog.Sync()
			log.Fatalf("❌ TUI error: %v", err)
		}
	}

	appLog.Info("session ended")
	fmt.Println("\n👋 Goodbye!")
	fmt.Printf("Debug log: %s\n", appLog.Path())
}

func printHelp() {
	fmt.Printf("Sundaes on Demand v%s - build and order an ice-cream sundae\n\n", version)
	fmt.Println("Usage: sundaes [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -config string")
	fmt.Println("        Path to configuration file (default: .sundaes/config.json)")
	fmt.Println("  -tail-log int")
	fmt.Println("        Print the last N lines of the debug log and exit")
	fmt.Println("  -version")
	fmt.Println("        Show version")
	fmt.Println("  -help")
	fmt.Println("        Show this help")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  SUNDAES_SCOOP_PRICE     Price of one scoop (default: 2.00)")
	fmt.Println("  SUNDAES_TOPPING_PRICE   Price of one topping (default: 1.50)")
	fmt.Println("  SUNDAES_LOG_LEVEL       DEBUG, INFO, WARN or ERROR")
	fmt.Println("  SUNDAES_STORAGE_PATH    Directory for debug.log")
	fmt.Println("  SUNDAES_THEME           dark or light")
	fmt.Println()
	fmt.Println("Keys:")
	fmt.Println("  ↑/↓ move · digits or +/- set scoops · space toggles toppings")
	fmt.Println("  enter continues · esc goes back · ctrl+r starts over · ctrl+c quits")
}
