package printer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/argdump/internal/ctxlog"
	"github.com/specialistvlad/argdump/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// recordName prefixes the rendered record.
const recordName = "Namespace"

// Format renders a record as `Namespace(pos="foo", param=null, switch=true)`.
// Attributes are written in model.FieldOrder. Supplied text is written as
// given, including template sequences and bytes that are not valid UTF-8.
func Format(a *model.Arguments) (string, error) {
	if a == nil {
		return "", fmt.Errorf("cannot format a nil record")
	}
	v, err := a.Value()
	if err != nil {
		return "", err
	}
	return formatValue(v, a.Texts())
}

// formatValue renders the object v. An attribute found in texts is written
// from the raw string; the rest go through hclwrite.
func formatValue(v cty.Value, texts map[string]*string) (string, error) {
	if v.IsNull() || !v.IsKnown() {
		return "", fmt.Errorf("cannot format a null or unknown record")
	}
	if !v.Type().IsObjectType() {
		return "", fmt.Errorf("expected an object, got %s", v.Type().FriendlyName())
	}

	parts := make([]string, 0, len(model.FieldOrder))
	for _, name := range model.FieldOrder {
		if !v.Type().HasAttribute(name) {
			return "", fmt.Errorf("record is missing attribute %q", name)
		}
		attr := v.GetAttr(name)
		if text := texts[name]; text != nil && attr.Type() == cty.String && !attr.IsNull() {
			parts = append(parts, name+"="+quote(*text))
			continue
		}
		tokens := hclwrite.TokensForValue(attr)
		parts = append(parts, name+"="+string(tokens.Bytes()))
	}

	return recordName + "(" + strings.Join(parts, ", ") + ")", nil
}

// quote wraps s in double quotes, escaping only quotes, backslashes and line
// control characters. Every other byte is copied unchanged.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Fprint writes the formatted record and a trailing newline to w.
func Fprint(ctx context.Context, w io.Writer, a *model.Arguments) error {
	logger := ctxlog.FromContext(ctx)

	line, err := Format(a)
	if err != nil {
		return err
	}
	logger.Debug("Record formatted.", "line", line)

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}
