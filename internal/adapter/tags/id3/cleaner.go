// Package id3 rewrites ID3v2 tags of extracted tracks: text frames run through
// a substitution table, and comments are replaced by a fixed text.
package id3

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/bogem/id3v2/v2"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

var ErrInvalidFilterList = errors.New("invalid filter list")

// Substitution replaces every match of Pattern with Replacement.
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
}

type Cleaner struct {
	filters []Substitution
	comment string
}

// NewCleaner builds a cleaner. An empty comment removes comment frames.
func NewCleaner(filters []Substitution, comment string) *Cleaner {
	return &Cleaner{filters: filters, comment: comment}
}

// LoadFilterList reads a list of [pattern, replacement] pairs. The file may be
// YAML or JSON since JSON is valid YAML. A missing path yields no filters.
func LoadFilterList(path string) ([]Substitution, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filter list: %w", err)
	}
	return ParseFilterList(data)
}

func ParseFilterList(data []byte) ([]Substitution, error) {
	var pairs [][]string
	if err := yaml.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilterList, err)
	}

	filters := make([]Substitution, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d elements, expected 2", ErrInvalidFilterList, i, len(pair))
		}
		re, err := regexp.Compile(pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidFilterList, i, err)
		}
		filters = append(filters, Substitution{Pattern: re, Replacement: pair[1]})
	}
	return filters, nil
}

// Apply runs every substitution in order over the NFC form of s.
func (c *Cleaner) Apply(s string) string {
	s = norm.NFC.String(s)
	for _, f := range c.filters {
		s = f.Pattern.ReplaceAllString(s, f.Replacement)
	}
	return s
}

func (c *Cleaner) Clean(path string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tag: %w", err)
	}
	defer func() { _ = tag.Close() }()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	if v := tag.Artist(); v != "" {
		tag.SetArtist(c.Apply(v))
	}
	if v := tag.Title(); v != "" {
		tag.SetTitle(c.Apply(v))
	}
	if v := tag.Album(); v != "" {
		tag.SetAlbum(c.Apply(v))
	}

	tag.DeleteFrames(tag.CommonID("Comments"))
	if c.comment != "" {
		tag.AddCommentFrame(id3v2.CommentFrame{
			Encoding: id3v2.EncodingUTF8,
			Language: "eng",
			Text:     c.comment,
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag: %w", err)
	}
	logger.Debug.Printf("cleaned tags of %s: %s - %s",
		logger.SanitizeForLog(path), logger.SanitizeForLog(tag.Artist()), logger.SanitizeForLog(tag.Title()))
	return nil
}

var _ port.TagCleaner = (*Cleaner)(nil)
