package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BrowserGlobal is the window property the web client reads its config from.
const BrowserGlobal = "window.FIREBASE_CONFIG"

// RenderJSON encodes the config as a JSON object with keys in SDK order.
func RenderJSON(cfg FirebaseConfig) ([]byte, error) {
	return renderObject(cfg, "", true)
}

// RenderJS renders the browser snippet that publishes cfg as a global,
// in the same shape as firebase-config.example.js: bare keys, two-space indent.
func RenderJS(cfg FirebaseConfig) ([]byte, error) {
	obj, err := renderObject(cfg, "  ", false)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(BrowserGlobal)
	buf.WriteString(" = ")
	buf.Write(obj)
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// renderObject writes the fields by hand so key order is stable; values go
// through json.Marshal for escaping. Keys are plain identifiers, so they only
// need quoting for JSON.
func renderObject(cfg FirebaseConfig, indent string, quoteKeys bool) ([]byte, error) {
	fields := cfg.Fields()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("config: encode %s: %w", f.Key, err)
		}
		if indent != "" {
			buf.WriteByte('\n')
			buf.WriteString(indent)
		}
		if quoteKeys {
			fmt.Fprintf(&buf, "%q:", f.Key)
		} else {
			buf.WriteString(f.Key + ":")
		}
		if indent != "" {
			buf.WriteByte(' ')
		}
		buf.Write(val)
		if i < len(fields)-1 {
			buf.WriteByte(',')
		}
	}
	if indent != "" {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
