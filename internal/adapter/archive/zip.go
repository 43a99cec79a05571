package archive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/infrastructure/validation"
	"github.com/bnema/mixtaped/internal/port"
)

// Zip reads and writes zip archives.
type Zip struct {
	// VerifyContent skips entries whose leading bytes do not match the
	// class their extension claims.
	VerifyContent bool
}

func NewZip(verifyContent bool) *Zip {
	return &Zip{VerifyContent: verifyContent}
}

// Extract flattens audio and image entries into their target directories.
// A basename already extracted once is skipped.
func (z *Zip) Extract(ctx context.Context, archivePath string, targets domain.ExtractTargets) (*domain.Extraction, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoArchive, archivePath)
		}
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	out := &domain.Extraction{}
	seen := make(map[string]bool)

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kind := domain.ClassifyEntry(f.Name)
		var dir string
		switch kind {
		case domain.EntryAudio:
			dir = targets.AudioDir
		case domain.EntryImage:
			dir = targets.ImageDir
		}
		if dir == "" {
			out.Skipped = append(out.Skipped, f.Name)
			continue
		}

		name := validation.EntryBaseName(f.Name)
		if seen[name] {
			logger.Warn.Printf("duplicate archive entry %q skipped", logger.SanitizeForLog(f.Name))
			out.Skipped = append(out.Skipped, f.Name)
			continue
		}

		dest := filepath.Join(dir, name)
		written, err := z.extractFile(f, dest, kind)
		if err != nil {
			return nil, fmt.Errorf("extract %q: %w", logger.SanitizeForLog(f.Name), err)
		}
		if !written {
			logger.Warn.Printf("archive entry %q content does not match its extension, skipped", logger.SanitizeForLog(f.Name))
			out.Skipped = append(out.Skipped, f.Name)
			continue
		}

		seen[name] = true
		logger.Debug.Printf("extracted %s (%s)", logger.SanitizeForLog(name), humanize.Bytes(f.UncompressedSize64))
		if kind == domain.EntryAudio {
			out.Audio = append(out.Audio, dest)
		} else {
			out.Images = append(out.Images, dest)
		}
	}

	sort.Strings(out.Audio)
	sort.Strings(out.Images)
	return out, nil
}

func (z *Zip) extractFile(f *zip.File, dest string, kind domain.EntryKind) (bool, error) {
	rc, err := f.Open()
	if err != nil {
		return false, err
	}
	defer func() { _ = rc.Close() }()

	src := bufio.NewReaderSize(rc, validation.SniffLength)
	if z.VerifyContent {
		head, err := src.Peek(validation.SniffLength)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
			return false, err
		}
		if !validation.MatchesEntryKind(head, kind) {
			return false, nil
		}
	}

	dst, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dest)
		return false, err
	}
	if err := dst.Close(); err != nil {
		return false, err
	}
	return true, nil
}

// Pack writes files into a new deflate zip at destPath, one flat entry each.
func (z *Zip) Pack(ctx context.Context, destPath string, files []string) error {
	tmp := destPath + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}

	if err := writeEntries(ctx, out, files); err != nil {
		_ = out.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close archive: %w", err)
	}
	if err := os.Rename(tmp, destPath); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename archive: %w", err)
	}
	return nil
}

func writeEntries(ctx context.Context, out io.Writer, files []string) error {
	zw := zip.NewWriter(out)
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := addFile(zw, path); err != nil {
			return fmt.Errorf("add %s: %w", filepath.Base(path), err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish archive: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(path)
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

var _ port.Archiver = (*Zip)(nil)
