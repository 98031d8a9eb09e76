package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

const (
	binaryMagic   = "LXB1"
	binaryVersion = 1
)

// binaryHeader precedes the record stream in a compiled word list.
type binaryHeader struct {
	Version  int    `msgpack:"v"`
	Language string `msgpack:"lang"`
	Count    int    `msgpack:"n"`
}

// WordRecord is the on-disk shape of one dictionary entry.
type WordRecord struct {
	Text       string `msgpack:"w"`
	Definition string `msgpack:"d,omitempty"`
	Points     int    `msgpack:"p"`
	Valid      bool   `msgpack:"ok"`
}

// WriteBinary compiles a word list into the binary format: a fixed magic,
// a msgpack header, then one msgpack record per word.
func WriteBinary(path, code string, words []lexicon.Word) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(binaryMagic); err != nil {
		return fmt.Errorf("failed to write magic: %w", err)
	}

	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(binaryHeader{Version: binaryVersion, Language: code, Count: len(words)}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}
	for i := range words {
		rec := WordRecord{
			Text:       words[i].Text,
			Definition: words[i].Definition,
			Points:     words[i].Points,
			Valid:      words[i].Valid,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode word %q: %w", rec.Text, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// LoadBinary reads a compiled word list, checking the magic, version and
// language against what the caller expects.
func LoadBinary(path, code string) ([]lexicon.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	r := bufio.NewReader(file)
	magic := make([]byte, len(binaryMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("failed to read magic from %s: %w", path, err)
	}
	if string(magic) != binaryMagic {
		return nil, fmt.Errorf("%s is not a compiled word list", path)
	}

	dec := msgpack.NewDecoder(r)
	var header binaryHeader
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("failed to decode header from %s: %w", path, err)
	}
	if header.Version != binaryVersion {
		return nil, fmt.Errorf("%s has unsupported version %d", path, header.Version)
	}
	if header.Language != code {
		return nil, fmt.Errorf("%s holds %q words, wanted %q", path, header.Language, code)
	}

	words := make([]lexicon.Word, 0, header.Count)
	for i := 0; i < header.Count; i++ {
		var rec WordRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode word %d of %d: %w", i+1, header.Count, err)
		}
		words = append(words, lexicon.NewWord(rec.Text, rec.Definition, rec.Points, rec.Valid))
	}
	return words, nil
}
