package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/rollcall/internal/config"
	"github.com/akyairhashvil/rollcall/internal/storage"
	"github.com/akyairhashvil/rollcall/internal/tracker"
	"github.com/akyairhashvil/rollcall/internal/tui"
	"github.com/akyairhashvil/rollcall/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)
	storePath := filepath.Join(dataRoot, config.StoreFileName)

	store, err := storage.Open(storePath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Load reconstructs state from the store, falling back to defaults
	// on missing or corrupt values.
	app := tracker.New(store)

	p := tea.NewProgram(tui.NewModel(app), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
