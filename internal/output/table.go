package output

import (
	"fmt"
	"strings"
)

// KV is a simple aligned label/value block renderer. Labels are padded to
// the widest label so values line up in a column.
type KV struct {
	labels []string
	values []string
	width  int
}

// NewKV creates an empty label/value block.
func NewKV() *KV {
	return &KV{}
}

// Add appends a label/value row to the block.
func (kv *KV) Add(label, value string) {
	kv.labels = append(kv.labels, label)
	kv.values = append(kv.values, value)
	if len(label) > kv.width {
		kv.width = len(label)
	}
}

// Render returns the formatted block as a string, one row per line.
// Values may carry their own styling; labels are rendered muted.
func (kv *KV) Render() string {
	var sb strings.Builder
	for i, label := range kv.labels {
		sb.WriteString("  ")
		sb.WriteString(StyleMuted.Render(pad(label+":", kv.width+1)))
		sb.WriteString("  ")
		sb.WriteString(kv.values[i])
		sb.WriteString("\n")
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (kv *KV) String() string {
	return kv.Render()
}

// Print writes the block to stdout.
func (kv *KV) Print() {
	fmt.Print(kv.Render())
}

// pad right-pads a string to the given width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
