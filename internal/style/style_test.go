package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	p.Info("Estimated combinations: %s", p.Count(2500000))
	p.Error("No valid tokens provided. Exiting.")
	p.Done("Save complete.")

	assert.Equal(t,
		"[+] Estimated combinations: 2,500,000\n"+
			"[!] No valid tokens provided. Exiting.\n"+
			"[*] Save complete.\n",
		buf.String())
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf, false).Summary(1234, "out/list.txt")

	assert.Contains(t, buf.String(), "[*] TOTAL COMBINATIONS: 1,234")
	assert.Contains(t, buf.String(), "[*] Saved to: out/list.txt")
}

func TestPrompt(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, false)
	assert.Equal(t, "[+] Max words per password [3]: ", p.Prompt("Max words per password", "3"))
	assert.Equal(t, "[+] First name: ", p.Prompt("First name", ""))
}

func TestDetect(t *testing.T) {
	assert.False(t, Detect(&bytes.Buffer{}))
}
