package certificate

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/lingoleap/internal/catalog"
)

func testCert(t *testing.T) Certificate {
	t.Helper()
	lang, ok := catalog.ByID("spanish")
	if !ok {
		t.Fatal("spanish missing from catalog")
	}
	c := New("Maria", lang, 90)
	c.IssuedAt = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	return c
}

func TestTextContainsAllFields(t *testing.T) {
	c := testCert(t)
	text := c.Text()

	for _, want := range []string{
		"Certificate of Achievement",
		"Maria",
		"Spanish",
		"90%",
		"March 14, 2026",
		"LingoLeap AI",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("certificate text missing %q", want)
		}
	}
}

func TestExportWritesFile(t *testing.T) {
	c := testCert(t)
	dir := t.TempDir()

	path, err := c.Export(dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasSuffix(path, "lingoleap-certificate-spanish-2026-03-14.txt") {
		t.Errorf("unexpected path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if string(data) != c.Text() {
		t.Error("exported content does not match certificate text")
	}
}
