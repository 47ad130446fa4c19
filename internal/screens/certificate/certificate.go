// Package certificate implements the certificate screen, reachable only
// after a passing quiz score.
package certificate

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	cert "github.com/abhisek/lingoleap/internal/certificate"
	"github.com/abhisek/lingoleap/internal/screen"
	"github.com/abhisek/lingoleap/internal/ui/layout"
	"github.com/abhisek/lingoleap/internal/ui/theme"
)

type exportedMsg struct {
	path string
	err  error
}

// CertificateScreen renders the achievement certificate and exports it on
// request. The certificate source is a getter so the screen always shows
// the latest passing attempt.
type CertificateScreen struct {
	certificate func() (cert.Certificate, bool)
	exportDir   string

	exportPath string
	exportErr  error
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)

// New creates the certificate screen.
func New(certificate func() (cert.Certificate, bool), exportDir string) *CertificateScreen {
	return &CertificateScreen{
		certificate: certificate,
		exportDir:   exportDir,
	}
}

func (c *CertificateScreen) Title() string {
	return "Certificate"
}

func (c *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (c *CertificateScreen) KeyHints() []layout.KeyHint {
	if _, ok := c.certificate(); !ok {
		return nil
	}
	return []layout.KeyHint{
		{Key: "X", Description: "Export to file"},
	}
}

func (c *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportedMsg:
		c.exportPath = msg.path
		c.exportErr = msg.err
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "x" {
			crt, ok := c.certificate()
			if !ok {
				return c, nil
			}
			dir := c.exportDir
			return c, func() tea.Msg {
				path, err := crt.Export(dir)
				return exportedMsg{path: path, err: err}
			}
		}
	}
	return c, nil
}

func (c *CertificateScreen) View(width, height int) string {
	crt, ok := c.certificate()
	if !ok {
		var b strings.Builder
		b.WriteString(theme.Title.Render("Certificate Locked") + "\n\n")
		b.WriteString(theme.Hint.Render(
			"You need to score at least 80% on the quiz to unlock your\ncertificate. Keep studying and try the quiz again!"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
	}

	inner := lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(crt.Text())

	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Render(inner)

	var footer string
	switch {
	case c.exportErr != nil:
		footer = theme.Incorrect.Render("Export failed: " + c.exportErr.Error())
	case c.exportPath != "":
		footer = theme.Correct.Render("Saved to " + c.exportPath)
	default:
		footer = theme.Hint.Render("Press X to save a copy")
	}

	content := card + "\n\n" + footer
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
