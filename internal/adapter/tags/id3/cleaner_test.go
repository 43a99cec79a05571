package id3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "json", input: `[["(?i)free download", ""], ["\\s+$", ""]]`, want: 2},
		{name: "yaml", input: "- ['www\\.\\S+', '']\n- ['DJ ', 'Dj ']\n", want: 2},
		{name: "empty list", input: `[]`, want: 0},
		{name: "wrong arity", input: `[["only pattern"]]`, wantErr: true},
		{name: "bad regexp", input: `[["(", ""]]`, wantErr: true},
		{name: "not a list", input: `{"a": "b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := ParseFilterList([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilterList)
				return
			}
			require.NoError(t, err)
			assert.Len(t, filters, tt.want)
		})
	}
}

func TestLoadFilterList_EmptyPath(t *testing.T) {
	filters, err := LoadFilterList("")
	require.NoError(t, err)
	assert.Nil(t, filters)
}

func TestCleaner_Apply(t *testing.T) {
	filters, err := ParseFilterList([]byte(`[["(?i)\\s*\\(free download\\)", ""], ["www\\.\\S+", "site"]]`))
	require.NoError(t, err)
	c := NewCleaner(filters, "")

	assert.Equal(t, "Intro", c.Apply("Intro (Free Download)"))
	assert.Equal(t, "mixed by site", c.Apply("mixed by www.example.com"))
	// decomposed e + combining acute is normalised before matching
	assert.Equal(t, "Caf\u00e9", c.Apply("Cafe\u0301"))
}

func writeTaggedFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "a.mp3")
	require.NoError(t, os.WriteFile(path, make([]byte, 128), 0o644))

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetArtist("DJ Someone www.spam.example")
	tag.SetTitle("Intro (Free Download)")
	tag.SetAlbum("Summer Tape")
	tag.AddCommentFrame(id3v2.CommentFrame{Encoding: id3v2.EncodingUTF8, Language: "eng", Text: "ripped by someone"})
	require.NoError(t, tag.Save())
	require.NoError(t, tag.Close())
	return path
}

func readTag(t *testing.T, path string) *id3v2.Tag {
	t.Helper()
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tag.Close() })
	return tag
}

func TestCleaner_Clean(t *testing.T) {
	filters, err := ParseFilterList([]byte(`[["\\s*www\\.\\S+", ""], ["\\s*\\(Free Download\\)", ""]]`))
	require.NoError(t, err)

	t.Run("replaces comment", func(t *testing.T) {
		path := writeTaggedFile(t)
		require.NoError(t, NewCleaner(filters, "Downloaded from the tape archive").Clean(path))

		tag := readTag(t, path)
		assert.Equal(t, "DJ Someone", tag.Artist())
		assert.Equal(t, "Intro", tag.Title())
		assert.Equal(t, "Summer Tape", tag.Album())

		comments := tag.GetFrames(tag.CommonID("Comments"))
		require.Len(t, comments, 1)
		cf, ok := comments[0].(id3v2.CommentFrame)
		require.True(t, ok)
		assert.Equal(t, "Downloaded from the tape archive", cf.Text)
	})

	t.Run("empty comment removes frames", func(t *testing.T) {
		path := writeTaggedFile(t)
		require.NoError(t, NewCleaner(filters, "").Clean(path))

		tag := readTag(t, path)
		assert.Empty(t, tag.GetFrames(tag.CommonID("Comments")))
	})

	t.Run("missing file", func(t *testing.T) {
		err := NewCleaner(nil, "").Clean(filepath.Join(t.TempDir(), "missing.mp3"))
		assert.Error(t, err)
	})
}
