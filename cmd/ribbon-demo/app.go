package main

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/okteal/ribbon/internal/config"
	"github.com/okteal/ribbon/internal/ui/category"
	"github.com/okteal/ribbon/internal/ui/helppage"
	"github.com/okteal/ribbon/internal/ui/panel"
	"github.com/okteal/ribbon/internal/ui/ribbon"
	"github.com/okteal/ribbon/internal/ui/widgets"
)

var _ tea.Model = (*app)(nil)

type app struct {
	ribbon   *ribbon.Model
	pictures *category.Model
	help     *helppage.Model
	keyMap   config.KeyMap
	status   string
}

func newApp(cfg *config.Config) (*app, error) {
	keyMap := config.NewKeyMap(cfg.Bindings)
	rb := ribbon.New(
		ribbon.WithKeyMap(keyMap),
		ribbon.WithHeight(cfg.Ribbon.Height),
		ribbon.WithCollapsed(cfg.Ribbon.Collapsed),
	)

	rb.AddQuickAccess(widgets.NewButton("save", "Save", widgets.WithSize(widgets.SizeSmall), widgets.WithGlyph("💾")))
	rb.AddQuickAccess(widgets.NewButton("undo", "Undo", widgets.WithSize(widgets.SizeSmall), widgets.WithGlyph("↶")))

	maxRows := cfg.Ribbon.MaxRows
	if maxRows < 1 {
		maxRows = panel.DefaultMaxRows
	}
	popt := panel.WithMaxRows(maxRows)

	home := rb.AddCategory("Home")
	clipboard, err := home.AddPanel("Clipboard", popt)
	if err != nil {
		return nil, err
	}
	if err := fillClipboard(clipboard); err != nil {
		return nil, err
	}
	font, err := home.AddPanel("Font", popt)
	if err != nil {
		return nil, err
	}
	if err := fillFont(font); err != nil {
		return nil, err
	}

	insert := rb.AddCategory("Insert")
	insertPanel, err := insert.AddPanel("Elements", popt)
	if err != nil {
		return nil, err
	}
	if err := buildInsertPanel(insertPanel); err != nil {
		return nil, err
	}

	view := rb.AddCategory("View")
	layouts, err := view.AddPanel("Layouts", popt)
	if err != nil {
		return nil, err
	}
	if err := fillLayouts(layouts); err != nil {
		return nil, err
	}

	pictures := rb.AddContextualCategory("Picture Tools", nil)
	arrange, err := pictures.AddPanel("Arrange", popt)
	if err != nil {
		return nil, err
	}
	if err := fillArrange(arrange); err != nil {
		return nil, err
	}

	return &app{
		ribbon:   rb,
		pictures: pictures,
		keyMap:   keyMap,
		status:   "ctrl+p toggles Picture Tools",
	}, nil
}

func fillClipboard(p *panel.Model) error {
	if err := p.AddButton(widgets.NewButton("paste", "Paste", widgets.WithGlyph("📋"))); err != nil {
		return err
	}
	if err := p.AddButton(widgets.NewButton("cut", "Cut", widgets.WithGlyph("✂"), widgets.WithSize(widgets.SizeSmall))); err != nil {
		return err
	}
	return p.AddButton(widgets.NewButton("copy", "Copy", widgets.WithGlyph("⧉"), widgets.WithSize(widgets.SizeSmall)))
}

func fillFont(p *panel.Model) error {
	if err := p.AddComboBox(widgets.NewComboBox("font", []string{"Monospace", "Serif", "Sans"})); err != nil {
		return err
	}
	if err := p.AddSlider(widgets.NewSlider("size", widgets.WithRange(6, 72), widgets.WithValue(12))); err != nil {
		return err
	}
	if err := p.AddToggleButton(widgets.NewToggleButton("bold", "Bold", widgets.WithToggleSize(widgets.SizeSmall))); err != nil {
		return err
	}
	return p.AddToggleButton(widgets.NewToggleButton("italic", "Italic", widgets.WithToggleSize(widgets.SizeSmall)))
}

func fillLayouts(p *panel.Model) error {
	if err := p.AddGallery(widgets.NewGallery("layout", []string{"Single page", "Two pages", "Continuous", "Thumbnails"})); err != nil {
		return err
	}
	if err := p.AddSeparator(widgets.NewSeparator("zoom-sep")); err != nil {
		return err
	}
	if err := p.AddSlider(widgets.NewSlider("zoom", widgets.WithRange(25, 400), widgets.WithValue(100), widgets.WithStep(25))); err != nil {
		return err
	}
	return p.AddLabel(widgets.NewLabel("zoom-hint", "zoom %"))
}

func fillArrange(p *panel.Model) error {
	if err := p.AddButton(widgets.NewButton("front", "Bring to Front", widgets.WithSize(widgets.SizeMedium))); err != nil {
		return err
	}
	if err := p.AddButton(widgets.NewButton("back", "Send to Back", widgets.WithSize(widgets.SizeMedium))); err != nil {
		return err
	}
	return p.AddLineEdit(widgets.NewLineEdit("alt-text", widgets.WithPlaceholder("alt text")))
}

func (a *app) Init() tea.Cmd {
	return a.ribbon.Init()
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.help != nil {
		switch msg.(type) {
		case helppage.ClosedMsg:
			a.help = nil
			return a, nil
		case tea.KeyPressMsg:
			return a, a.help.Update(msg)
		}
	}
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if !a.ribbon.IsEditing() {
			if key.Matches(msg, a.keyMap.Quit) {
				return a, tea.Quit
			}
			if msg.String() == "ctrl+p" {
				a.togglePictures()
				return a, nil
			}
		}
	case widgets.PressedMsg:
		a.status = fmt.Sprintf("pressed %s", msg.Name)
	case widgets.ToggledMsg:
		a.status = fmt.Sprintf("%s checked=%t", msg.Name, msg.Checked)
	case widgets.ComboChangedMsg:
		a.status = fmt.Sprintf("%s = %s", msg.Name, msg.Value)
	case widgets.SliderChangedMsg:
		a.status = fmt.Sprintf("%s = %d", msg.Name, msg.Value)
	case widgets.SubmittedMsg:
		a.status = fmt.Sprintf("%s = %q", msg.Name, msg.Value)
	case widgets.PickedMsg:
		a.status = fmt.Sprintf("%s picked %s", msg.Name, msg.Item)
	case panel.OptionClickedMsg:
		a.status = fmt.Sprintf("options of %s", msg.Title)
	case category.DisplayOptionsMsg:
		a.status = fmt.Sprintf("display options of %s", msg.Title)
	case ribbon.HelpRequestedMsg:
		a.help = helppage.New(a.keyMap)
		return a, a.help.Init()
	}
	return a, a.ribbon.Update(msg)
}

func (a *app) togglePictures() {
	if a.ribbon.IsShown(a.pictures) {
		_ = a.ribbon.HideContextCategory(a.pictures)
		a.status = "Picture Tools hidden"
	} else {
		_ = a.ribbon.ShowContextCategory(a.pictures)
		a.status = "Picture Tools shown"
	}
}

func (a *app) View() tea.View {
	return tea.NewView(a.content())
}

func (a *app) content() string {
	if a.help != nil {
		return a.help.View()
	}
	statusLine := lipgloss.NewStyle().Faint(true).Render(a.status)
	return lipgloss.JoinVertical(lipgloss.Left, a.ribbon.View(), statusLine)
}
