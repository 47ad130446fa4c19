// Package certificate builds the achievement certificate shown after a
// passing quiz score, and exports it to a text file.
package certificate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abhisek/lingoleap/internal/catalog"
)

// Certificate carries everything printed on an achievement certificate.
type Certificate struct {
	LearnerName string
	Language    catalog.Language
	Score       int
	IssuedAt    time.Time
}

// New creates a certificate issued now.
func New(learnerName string, language catalog.Language, score int) Certificate {
	return Certificate{
		LearnerName: learnerName,
		Language:    language,
		Score:       score,
		IssuedAt:    time.Now(),
	}
}

// Text renders the certificate as plain text, suitable for export and for
// styling by the certificate screen.
func (c Certificate) Text() string {
	date := c.IssuedAt.Format("January 2, 2006")

	var b strings.Builder
	b.WriteString("Certificate of Achievement\n\n")
	b.WriteString("This certificate is proudly presented to\n\n")
	b.WriteString(c.LearnerName + "\n\n")
	b.WriteString(fmt.Sprintf(
		"for successfully demonstrating proficiency in the %s language\nby passing the assessment with a score of %d%%.\n\n",
		c.Language.Name, c.Score))
	b.WriteString(fmt.Sprintf("%s %s\n\n", c.Language.Flag, c.Language.Name))
	b.WriteString(fmt.Sprintf("Date: %s\n", date))
	b.WriteString("Issuing Authority: LingoLeap AI\n")
	return b.String()
}

// Export writes the certificate as a text file in dir and returns the
// written path. The filename encodes language and date so repeated exports
// don't clobber unrelated certificates.
func (c Certificate) Export(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("lingoleap-certificate-%s-%s.txt",
		c.Language.ID, c.IssuedAt.Format("2006-01-02"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(c.Text()), 0o644); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}

// DefaultExportDir returns the directory certificates are exported to:
// the user's home directory, falling back to the working directory.
func DefaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
