// Command scrawl is a terminal scratchpad. It keeps a single document in
// ~/.scrawl.txt, saves after every edit, and picks up changes other
// processes make to the same file.
package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avasker/scrawl/metrics"
	"github.com/avasker/scrawl/persist"
	"github.com/avasker/scrawl/session"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	if os.Getenv("SCRAWL_DEBUG") != "" {
		f, err := tea.LogToFile("scrawl-debug.log", "scrawl")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	// No home directory means no persistence, not a startup failure.
	var store *persist.Store
	text := ""
	if path, err := persist.DefaultPath(); err == nil {
		store = persist.NewStore(path)
		loaded, ok, err := store.Load()
		if err != nil {
			return err
		}
		if ok {
			text = loaded
		}
	}

	sess, err := session.New(session.Config{
		Text:    text,
		Metrics: metrics.Cell{},
		Font:    metrics.FontConfig{Size: session.DefaultFontSize},
	})
	if err != nil {
		return err
	}
	if store != nil {
		sess.Subscribe(func(session.Change) { _ = store.Save(sess.Text()) })
	}

	p := tea.NewProgram(newModel(sess, store),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}
