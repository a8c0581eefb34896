package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"riskmap/api"
	"riskmap/app"
	"riskmap/javascript"
	"riskmap/mapdef"
	"riskmap/storage"
	"riskmap/truntime"

	"net/http"
	_ "net/http/pprof"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

const apiAddr = ":42070"

func init() {
	go func() {
		http.ListenAndServe("localhost:6060", nil)
	}()
}

func main() {
	var headless bool
	var mapFilePath string
	var scriptPath string
	flag.BoolVar(&headless, "headless", false, "Run without GUI, WebSocket API only")
	flag.BoolVar(&headless, "h", false, "Run without GUI, WebSocket API only (shorthand)")
	flag.StringVar(&mapFilePath, "map", "", "Map JSON file to load instead of the embedded default")
	flag.StringVar(&mapFilePath, "f", "", "Map JSON file to load instead of the embedded default (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "JavaScript file to run against the loaded map")
	flag.StringVar(&scriptPath, "s", "", "JavaScript file to run against the loaded map (shorthand)")
	flag.Parse()

	// Support a positional map argument so double-clicking a map file
	// passes the path through.
	if mapFilePath == "" {
		if args := flag.Args(); len(args) > 0 {
			mapFilePath = args[0]
		}
	}

	st, err := loadState(mapFilePath)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}

	go api.StartWebSocketServer(st, apiAddr)
	fmt.Printf("[MAIN] WebSocket API is available at ws://localhost%s/ws\n", apiAddr)

	if scriptPath != "" {
		runStartupScript(st, scriptPath)
	}

	if headless {
		runHeadless(st)
		return
	}
	runWithGUI(st)
}

// loadState loads the requested (or default) map and builds the runtime.
// Any malformed map aborts startup; a partial collection never reaches
// the runtime.
func loadState(mapFilePath string) (*truntime.State, error) {
	var m *mapdef.Map
	var err error
	if mapFilePath != "" {
		m, err = mapdef.Load(mapFilePath)
	} else {
		m, err = mapdef.Default()
	}
	if err != nil {
		return nil, err
	}

	fmt.Printf("[MAIN] Loaded map %q with %d territories\n", m.Name, len(m.Territories))

	st := truntime.New(m.Name, m.Territories)
	if m.InitialSelection != truntime.NoSelection {
		if err := st.Select(m.InitialSelection); err != nil {
			return nil, err
		}
	}
	return st, nil
}

func runStartupScript(st *truntime.State, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("[MAIN] failed to read script %s: %v", path, err)
	}
	val, err := javascript.Execute(st, string(src), path)
	if err != nil {
		log.Fatalf("[MAIN] %v", err)
	}
	if val != nil {
		fmt.Printf("[MAIN] Script %s returned: %v\n", path, val)
	}
}

func runHeadless(st *truntime.State) {
	fmt.Println("[MAIN] Running headless; waiting for WebSocket clients")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("[MAIN] Received shutdown signal. Saving state...")
	if err := st.SaveSnapshot(storage.DataFile(storage.DefaultSnapshotName)); err != nil {
		log.Printf("[MAIN] shutdown snapshot failed: %v", err)
	}
	fmt.Println("[MAIN] Shutdown complete.")
}

func runWithGUI(st *truntime.State) {
	game := app.New(st)

	// Clipboard is only initialized on supported desktop platforms.
	if err := clipboard.Init(); err != nil {
		log.Printf("[MAIN] clipboard unavailable: %v", err)
	} else {
		game.SetClipboardReady(true)
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalChan
		fmt.Println("[MAIN] Received shutdown signal. Saving state...")
		if err := st.SaveSnapshot(storage.DataFile(storage.DefaultSnapshotName)); err != nil {
			log.Printf("[MAIN] shutdown snapshot failed: %v", err)
		}
		os.Exit(0)
	}()

	ebiten.SetWindowTitle("Interactive Risk Map")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1000, 700)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
