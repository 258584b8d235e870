package countries

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const OutputFile = "countries.json"

// Encode writes cs as an indented JSON array. Struct fields are declared in
// key order and encoding/json sorts map keys, so every object comes out with
// sorted keys.
func Encode(w io.Writer, cs []Country) error {
	if cs == nil {
		cs = []Country{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(cs)
}

func Decode(r io.Reader) ([]Country, error) {
	var cs []Country
	if err := json.NewDecoder(r).Decode(&cs); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}
	return cs, nil
}

// WriteFile encodes cs into a temp file next to dst and renames it over dst.
// The temp file is created like os.Create does, so the umask applies.
func WriteFile(dst string, cs []Country) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cs); err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+".tmp")
	_ = os.Remove(tmp) // stale temp from an interrupted run keeps its old mode
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer os.Remove(tmp)

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("rename %s: %w", dst, err)
	}
	return nil
}

func ReadFile(path string) ([]Country, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
