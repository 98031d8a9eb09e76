package dictionary

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.csv")
	content := `# dictionnaire de test
CHAT;petit félin domestique;9
chats;pluriel de chat
CHIEN;;10;true
XYZ;mot retiré;28;false

zèbre
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	words, err := LoadText(path, "fr")
	require.NoError(t, err)
	require.Len(t, words, 5)

	byText := make(map[string]lexicon.Word)
	for _, w := range words {
		byText[w.Text] = w
	}

	assert.Equal(t, 9, byText["CHAT"].Points)
	assert.Equal(t, "petit félin domestique", byText["CHAT"].Definition)
	assert.True(t, byText["CHAT"].Valid)

	// points derived from the letter table when the column is absent
	assert.Equal(t, 10, byText["CHATS"].Points)

	assert.False(t, byText["XYZ"].Valid)

	// diacritics fold into the plain alphabet
	zebre, ok := byText["ZEBRE"]
	require.True(t, ok)
	assert.Equal(t, 16, zebre.Points)
}

func TestLoadTextRejectsBadLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"non-alphabet word", "CH4T;;9"},
		{"bad points", "CHAT;;beaucoup"},
		{"negative points", "CHAT;;-1"},
		{"bad valid flag", "CHAT;;9;peut-etre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fr.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.line+"\n"), 0o644))

			_, err := LoadText(path, "fr")
			require.Error(t, err)
			assert.Contains(t, err.Error(), ":1:")
		})
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.lxb")
	in := []lexicon.Word{
		lexicon.NewWord("CHAT", "petit félin", 9, true),
		lexicon.NewWord("XYZ", "", 28, false),
	}
	require.NoError(t, WriteBinary(path, "fr", in))

	out, err := LoadBinary(path, "fr")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// language mismatch is refused
	_, err = LoadBinary(path, "en")
	assert.Error(t, err)
}

func TestLoadBinaryRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.lxb")
	require.NoError(t, os.WriteFile(path, []byte("not a word list at all"), 0o644))

	_, err := LoadBinary(path, "fr")
	assert.Error(t, err)
}

func makeTestDB(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE mots_fr (
		mot TEXT PRIMARY KEY,
		definition TEXT,
		points INTEGER,
		valide_scrabble INTEGER
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO mots_fr VALUES
		('CHAT', 'petit félin domestique', 9, 1),
		('XYZ', NULL, 28, 0)`)
	require.NoError(t, err)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.db")
	makeTestDB(t, path)

	words, err := LoadSQLite(context.Background(), path, "fr")
	require.NoError(t, err)
	require.Len(t, words, 2)

	assert.Equal(t, "CHAT", words[0].Text)
	assert.Equal(t, 9, words[0].Points)
	assert.True(t, words[0].Valid)
	assert.Equal(t, "XYZ", words[1].Text)
	assert.Empty(t, words[1].Definition)
	assert.False(t, words[1].Valid)
}

func TestLoadSQLiteUnknownLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xx.db")
	makeTestDB(t, path)

	_, err := LoadSQLite(context.Background(), path, "xx")
	assert.Error(t, err)
}

func TestDetectFileFormat(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "fr.txt")
	require.NoError(t, os.WriteFile(text, []byte("CHAT\n"), 0o644))

	bin := filepath.Join(dir, "fr.lxb")
	require.NoError(t, WriteBinary(bin, "fr", []lexicon.Word{lexicon.NewWord("CHAT", "", 9, true)}))

	db := filepath.Join(dir, "fr.db")
	makeTestDB(t, db)

	tests := []struct {
		path string
		want FileFormat
	}{
		{text, FormatText},
		{bin, FormatBinary},
		{db, FormatSQLite},
	}
	for _, tt := range tests {
		got, err := DetectFileFormat(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := DetectFileFormat(filepath.Join(dir, "fr.exe"))
	assert.Error(t, err)

	// right extension, wrong content
	fake := filepath.Join(dir, "fake.lxb")
	require.NoError(t, os.WriteFile(fake, []byte("XXXXYYYY"), 0o644))
	_, err = DetectFileFormat(fake)
	assert.Error(t, err)
}

func TestLoaderResolvePriority(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr.txt"), []byte("CHAT\n"), 0o644))
	require.NoError(t, WriteBinary(filepath.Join(dir, "fr.lxb"), "fr",
		[]lexicon.Word{lexicon.NewWord("CHAT", "", 9, true)}))

	l := NewLoader(dir)
	path, err := l.Resolve("fr")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fr.lxb"), path, "compiled list beats raw text")

	_, err = l.Resolve("en")
	assert.Error(t, err)
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.txt"), []byte("CAT;feline;5\n"), 0o644))

	words, err := NewLoader(dir).Load(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, words, 1)
	assert.Equal(t, "CAT", words[0].Text)
	assert.Equal(t, 5, words[0].Points)
}
