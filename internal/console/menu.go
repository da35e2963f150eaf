package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"journal/internal/entry"
	"journal/internal/journal"
	"journal/internal/prompts"
)

// Menu is the interactive console front-end of the journal.
type Menu struct {
	store       *journal.Store
	prompts     prompts.Source
	in          *bufio.Reader
	out         io.Writer
	defaultPath string
	now         func() time.Time
}

func New(store *journal.Store, src prompts.Source, in io.Reader, out io.Writer, defaultPath string) *Menu {
	return &Menu{
		store:       store,
		prompts:     src,
		in:          bufio.NewReader(in),
		out:         out,
		defaultPath: defaultPath,
		now:         time.Now,
	}
}

// Run shows the menu until the user quits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.println("🌟 Welcome to Your Personal Journal Program! 🌟")
	m.println("Let's help you reflect on your day with thoughtful prompts.")

	for {
		m.println("\n--- Journal Menu ---")
		m.println("1. Write a new entry")
		m.println("2. Display all entries")
		m.println("3. Save journal to file")
		m.println("4. Load journal from file")
		m.println("5. Quit")
		choice, err := m.ask("Choose an option (1-5): ")
		if err != nil {
			return eofIsQuit(err)
		}

		switch choice {
		case "1":
			err = m.writeEntry(ctx)
		case "2":
			m.displayAll()
		case "3":
			err = m.save()
		case "4":
			err = m.load()
		case "5":
			m.println("Thank you for journaling today! Goodbye. 📖")
			return nil
		default:
			m.println("❌ Invalid option. Please choose 1-5.")
		}
		if err != nil {
			return eofIsQuit(err)
		}
	}
}

func (m *Menu) writeEntry(ctx context.Context) error {
	prompt, err := m.prompts.Next(ctx)
	if err != nil {
		m.printf("⚠️ Could not get a prompt: %v\n", err)
		return nil
	}
	m.printf("\n📌 Prompt: %s\n", prompt)
	response, err := m.ask("📝 Your response: ")
	if err != nil {
		return err
	}
	m.store.Add(entry.New(m.now().Format(entry.DateLayout), prompt, response))
	m.println("✅ Entry successfully added!")
	return nil
}

func (m *Menu) displayAll() {
	entries := m.store.List()
	if len(entries) == 0 {
		m.println("📄 No entries to display. Start writing today!")
		return
	}
	m.println("\n--- YOUR JOURNAL ENTRIES ---\n")
	for _, e := range entries {
		e.Display(m.out)
	}
}

func (m *Menu) save() error {
	path, err := m.askPath("💾 Enter filename to save")
	if err != nil {
		return err
	}
	if err := m.store.SaveToFile(path); err != nil {
		m.printf("⚠️ Error saving file: %v\n", err)
		return nil
	}
	m.printf("✅ Journal saved to '%s'.\n", path)
	return nil
}

func (m *Menu) load() error {
	path, err := m.askPath("📂 Enter filename to load")
	if err != nil {
		return err
	}
	res, err := m.store.LoadFromFile(path)
	for _, f := range res.Failures {
		m.printf("⚠️ Warning: Could not load line %d: %s (%v)\n", f.Line, f.Text, f.Err)
	}
	var nf *journal.NotFoundError
	switch {
	case errors.As(err, &nf):
		m.printf("❌ File '%s' not found. Please check the filename.\n", path)
	case err != nil:
		m.printf("⚠️ Error loading file: %v\n", err)
	default:
		m.printf("✅ Loaded %d entries from '%s'.\n", res.Loaded, path)
	}
	return nil
}

func (m *Menu) askPath(label string) (string, error) {
	q := label + ": "
	if m.defaultPath != "" {
		q = fmt.Sprintf("%s [%s]: ", label, m.defaultPath)
	}
	path, err := m.ask(q)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = m.defaultPath
	}
	return path, nil
}

// ask prints q and reads one line. A final line without a newline is
// returned as is; io.EOF is only reported when nothing was read.
func (m *Menu) ask(q string) (string, error) {
	fmt.Fprint(m.out, q)
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) println(s string) { fmt.Fprintln(m.out, s) }

func (m *Menu) printf(format string, args ...any) { fmt.Fprintf(m.out, format, args...) }

func eofIsQuit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
