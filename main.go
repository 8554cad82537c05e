package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ARBS-hmm/Raster/grid"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (default ~/"+rcFile+")")
		sceneName  = flag.String("scene", "", "scene to start with: boundary, flood, line, circle or stack")
		policy     = flag.String("policy", "", "fill policy for revisited boundary cells: boundary or flood")
		rows       = flag.Int("rows", 0, "grid rows")
		cols       = flag.Int("cols", 0, "grid columns")
		window     = flag.Int("window", 0, "visible stack window size")
		delay      = flag.Int("delay", 0, "milliseconds between steps")
		exportDir  = flag.String("export", "", "render every step of the scene to PNG files in this directory and exit")
	)
	flag.Parse()

	logger := bslogger.NewLogger("Raster", bslogger.Normal, nil)
	config, err := loadConfig(*configPath)
	checkError(err, logger, Fatal)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			config.StartScene = *sceneName
		case "policy":
			config.Policy = *policy
		case "rows":
			config.Rows = *rows
		case "cols":
			config.Cols = *cols
		case "window":
			config.Window = *window
		case "delay":
			config.DelayMS = *delay
		}
	})
	checkError(config.Validate(), logger, Fatal)
	logger = config.newLogger("Raster")
	logger.Debug(config.String())

	kind, err := parseScene(config.StartScene)
	checkError(err, logger, Fatal)

	if *exportDir != "" {
		runExport(config, logger, kind, *exportDir)
		return
	}

	m, err := newModel(config, logger, kind)
	checkError(err, logger, Fatal)

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	checkError(err, logger, Fatal)
	if fm, ok := final.(model); ok {
		if fm.player != nil {
			fm.player.close()
		}
		if fm.errorMessage != "" {
			logger.Warning(fm.errorMessage)
		}
	}
}

func runExport(config *Config, logger bslogger.Logger, kind SceneKind, dir string) {
	policy, ok := config.PolicyOverride()
	if !ok {
		policy = kind.defaultPolicy()
	}
	sc, err := buildScene(kind, config, policy, kind.defaultAnchor(config.Rows, config.Cols))
	checkError(err, logger, Fatal)

	if !filepath.IsAbs(dir) {
		dir = config.GetSavePath(dir)
	}
	logger.Info(fmt.Sprintf("Exporting %s frames to %s", sc.title, dir))
	n, err := exportFrames(sc, dir, func(n int) {
		if n%100 == 0 {
			logger.Info(fmt.Sprintf("Wrote %d frames", n))
		}
	})
	checkError(err, logger, Fatal)
	logger.Info(fmt.Sprintf("Done: %d frames in %s", n, dir))
}

func (c *Config) String() string {
	output := "\nRaster settings\n"
	output += fmt.Sprintf("Grid: %dx%d\n", c.Rows, c.Cols)
	output += fmt.Sprintf("Window: %d\n", c.Window)
	output += fmt.Sprintf("Delay: %dms\n", c.DelayMS)
	output += fmt.Sprintf("Policy: %q\n", c.Policy)
	output += fmt.Sprintf("Start scene: %s\n", c.StartScene)
	output += fmt.Sprintf("Save directory: %q\n", c.SaveDirectory)
	return output
}

type tickMsg struct {
	gen int
}

func newModel(config *Config, logger bslogger.Logger, kind SceneKind) (model, error) {
	m := model{
		config:  config,
		logger:  logger,
		delayMS: config.DelayMS,
		playing: config.Autoplay,
	}
	if p, ok := config.PolicyOverride(); ok {
		m.policy = p
		m.policySet = true
	}
	if err := m.switchScene(kind); err != nil {
		return m, err
	}
	return m, nil
}

// loadScene replaces the current scene with a fresh one anchored at anchor.
func (m *model) loadScene(kind SceneKind, anchor point) error {
	policy := m.policy
	if !m.policySet {
		policy = kind.defaultPolicy()
	}
	sc, err := buildScene(kind, m.config, policy, anchor)
	if err != nil {
		return err
	}
	if m.player != nil {
		m.player.close()
	}
	m.kind = kind
	m.policy = policy
	m.player = newPlayer(sc)
	m.player.current = frame{caption: "ready"}
	m.tickGen++
	return nil
}

func (m *model) switchScene(kind SceneKind) error {
	anchor := kind.defaultAnchor(m.config.Rows, m.config.Cols)
	m.cursorRow, m.cursorCol = anchor.Row, anchor.Col
	m.ensureCursorInBounds()
	return m.loadScene(kind, anchor)
}

func (m *model) restart() error {
	return m.loadScene(m.kind, m.player.scene.anchor)
}

func (m model) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Duration(m.delayMS)*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// play starts the tick loop if the scene still has steps.
func (m *model) play() tea.Cmd {
	if m.player.done {
		m.playing = false
		return nil
	}
	m.playing = true
	m.tickGen++
	return m.tick()
}

func (m *model) step() {
	if !m.player.advance() {
		m.playing = false
		m.successMessage = fmt.Sprintf("Finished after %d steps", m.player.steps)
	}
}

func (m model) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if msg.gen != m.tickGen || !m.playing {
			return m, nil
		}
		m.step()
		if !m.playing {
			return m, nil
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch m.mode {
		case ModeHelp:
			return m.updateHelp(msg)
		case ModeFileInput:
			return m.updateFileInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errorMessage = ""
	m.successMessage = ""

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		m.player.close()
		return m, tea.Quit
	case "?":
		m.mode = ModeHelp
		m.helpScroll = 0
	case " ":
		if m.playing {
			m.playing = false
			return m, nil
		}
		cmd := m.play()
		return m, cmd
	case "n", ".":
		m.playing = false
		m.step()
	case "r":
		if err := m.restart(); err != nil {
			m.errorMessage = err.Error()
		}
		if m.config.Autoplay {
			cmd := m.play()
			return m, cmd
		}
		m.playing = false
	case "tab", "shift+tab", "1", "2", "3", "4", "5":
		kind := m.kind
		switch key {
		case "tab":
			kind = (kind + 1) % numScenes
		case "shift+tab":
			kind = (kind + numScenes - 1) % numScenes
		default:
			kind = SceneKind(key[0] - '1')
		}
		if err := m.switchScene(kind); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		if m.config.Autoplay {
			cmd := m.play()
			return m, cmd
		}
		m.playing = false
	case "+", "=":
		m.delayMS = max(minDelayMS, m.delayMS/2)
	case "-", "_":
		m.delayMS = min(maxDelayMS, m.delayMS*2)
	case "p":
		if m.kind != SceneBoundary && m.kind != SceneFlood {
			m.errorMessage = "Fill policy only applies to the fill scenes"
			return m, nil
		}
		if m.policy == grid.BoundaryFill {
			m.policy = grid.FloodFill
		} else {
			m.policy = grid.BoundaryFill
		}
		m.policySet = true
		if err := m.restart(); err != nil {
			m.errorMessage = err.Error()
		}
		m.playing = false
		m.successMessage = "Policy: " + m.policy.String()
	case "enter":
		if !m.kind.usesGrid() {
			return m, nil
		}
		if err := m.loadScene(m.kind, point{m.cursorRow, m.cursorCol}); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		cmd := m.play()
		return m, cmd
	case "u":
		m.playing = false
		m.undo()
	case "U":
		m.playing = false
		m.redo()
	case "s", "S":
		m.playing = false
		m.fileOp = FileOpSaveTXT
		if key == "S" {
			m.fileOp = FileOpSavePNG
		}
		m.filename = fmt.Sprintf("%s-%05d", m.kind, m.player.steps)
		m.mode = ModeFileInput
	case "y":
		if err := m.copyFrame(); err != nil {
			m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		} else {
			m.successMessage = "Frame copied to clipboard"
		}
	case "h", "j", "k", "l", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.handleCursorMove(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m model) updateFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
	case tea.KeyEnter:
		m.mode = ModeNormal
		if m.filename == "" {
			m.errorMessage = "No filename given"
			return m, nil
		}
		path, err := m.saveFile()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Save failed: %v", err)
		} else {
			m.successMessage = "Saved " + path
		}
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			runes := []rune(m.filename)
			m.filename = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m *model) saveFile() (string, error) {
	ext := ".txt"
	if m.fileOp == FileOpSavePNG {
		ext = ".png"
	}
	name := m.filename
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	path := m.config.GetSavePath(name)

	var err error
	if m.fileOp == FileOpSavePNG {
		err = exportPNG(m.player.scene, m.player.current, path)
	} else {
		err = exportVisualTXT(m.player.scene, m.player.current, m.cursor(), path)
	}
	if err != nil {
		return "", err
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

func (m model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q":
		m.mode = ModeNormal
	case "j", "down":
		m.helpScroll++
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.mode == ModeHelp {
		return m.helpView()
	}
	sc := m.player.scene

	var body []string
	if sc.grid != nil {
		body = renderGrid(sc.grid, m.cursor())
	} else {
		body = renderStack(sc.stack, m.player.current.delta)
	}
	left := strings.Join(body, "\n")
	code := renderCode(sc.code, longestLine(sc.code)+2)

	var content string
	if m.width > 0 && lipgloss.Width(left)+lipgloss.Width(code)+2 > m.width {
		content = lipgloss.JoinVertical(lipgloss.Left, left, code)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", code)
	}

	header := titleStyle.Render(fmt.Sprintf("[%d/%d] %s", int(m.kind)+1, int(numScenes), sc.title))
	caption := captionStyle.Render(m.player.current.caption)
	return strings.Join([]string{header, content, caption, m.statusLine()}, "\n")
}

func (m model) statusLine() string {
	if m.mode == ModeFileInput {
		kind := "TXT"
		if m.fileOp == FileOpSavePNG {
			kind = "PNG"
		}
		return fmt.Sprintf("Save %s as: %s_  (Enter to save, Esc to cancel)", kind, m.filename)
	}

	parts := []string{
		m.modeString(),
		fmt.Sprintf("step %d", m.player.steps),
		fmt.Sprintf("%dms", m.delayMS),
	}
	if m.kind == SceneBoundary || m.kind == SceneFlood {
		parts = append(parts, "policy "+m.policy.String())
	}
	if m.kind.usesGrid() {
		parts = append(parts, fmt.Sprintf("cursor (%d,%d)", m.cursorRow, m.cursorCol))
	} else {
		s := m.player.scene.stack
		parts = append(parts, fmt.Sprintf("depth %d, %d hidden", s.Len(), s.Hidden()))
	}
	parts = append(parts, "? help")
	status := strings.Join(parts, " | ")

	if m.errorMessage != "" {
		status += " | " + errorStyle.Render(m.errorMessage)
	} else if m.successMessage != "" {
		status += " | " + captionStyle.Render(m.successMessage)
	}
	return status
}

func (m model) modeString() string {
	switch {
	case m.player.done:
		return "FINISHED"
	case m.playing:
		return "PLAYING"
	default:
		return "PAUSED"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Raster Help",
		"===========",
		"",
		"Playback:",
		"---------",
		"  Space            Play / pause",
		"  n or .           Single step",
		"  r                Restart the scene",
		"  + / -            Faster / slower",
		"",
		"Scenes:",
		"-------",
		"  Tab / Shift+Tab  Next / previous scene",
		"  1-5              boundary, flood, line, circle, stack",
		"  p                Toggle fill policy (boundary and flood scenes)",
		"",
		"Grid:",
		"-----",
		"  h/←/j/↓/k/↑/l/→  Move the cursor",
		"  Shift+h/j/k/l    Move the cursor 5 cells at a time",
		"  Enter            Restart the scene from the cursor",
		"                   (fill seed, line start or circle centre)",
		"",
		"History (once a scene has finished):",
		"------------------------------------",
		"  u                Step back",
		"  U                Step forward again",
		"",
		"Files:",
		"------",
		"  s                Save the current frame as text",
		"  S                Save the current frame as PNG",
		"  y                Copy the current frame to the clipboard",
		"",
		"Colors:",
		"-------",
		"  " + cellStyles[grid.Boundary].Render("█") + " boundary   " +
			cellStyles[grid.Filled].Render("█") + " filled   " +
			cellStyles[grid.Highlight].Render("█") + " revisited   " +
			cellStyles[grid.InProgress].Render("█") + " plotting",
		"",
		"  ?                Toggle this help screen",
		"  q/Ctrl+C         Quit",
	}

	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = len(helpLines)
	}

	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = max(0, len(helpLines)-visibleHeight)
	}
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusLine
}
