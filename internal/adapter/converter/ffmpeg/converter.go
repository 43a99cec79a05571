package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path cannot be empty")
	ErrInvalidPath = errors.New("path contains invalid characters")
	ErrNonZeroExit = errors.New("transcoder exited with nonzero status")
)

const (
	DefaultBinary          = "ffmpeg"
	DefaultBitrate         = "128k"
	DefaultPreviewDuration = 30 * time.Second

	// stderrTail bounds how much ffmpeg chatter ends up in an error.
	stderrTail = 512
	blankFrame = "color=c=black:s=1280x720"
)

type Options struct {
	Binary          string
	Bitrate         string
	PreviewDuration time.Duration
	// Timeout bounds a single invocation. Zero means no limit.
	Timeout time.Duration
}

type Converter struct {
	binary          string
	bitrate         string
	previewDuration time.Duration
	timeout         time.Duration
}

func NewConverter(opts Options) *Converter {
	c := &Converter{
		binary:          opts.Binary,
		bitrate:         opts.Bitrate,
		previewDuration: opts.PreviewDuration,
		timeout:         opts.Timeout,
	}
	if c.binary == "" {
		c.binary = DefaultBinary
	}
	if c.bitrate == "" {
		c.bitrate = DefaultBitrate
	}
	if c.previewDuration <= 0 {
		c.previewDuration = DefaultPreviewDuration
	}
	return c
}

// validatePath rejects paths that would be truncated when handed to exec.
func validatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// Strip re-encodes audio at a fixed bitrate and drops every metadata block.
func (c *Converter) Strip(ctx context.Context, inputPath, outputPath string) error {
	if err := validatePaths(inputPath, outputPath); err != nil {
		return err
	}
	args := []string{
		"-loglevel", "error",
		"-i", inputPath,
		"-b:a", c.bitrate,
		"-map_metadata", "-1",
		"-map", "0:a",
		"-y", outputPath,
	}
	return c.run(ctx, args)
}

// Preview copies the first seconds of the stream without re-encoding.
func (c *Converter) Preview(ctx context.Context, inputPath, outputPath string) error {
	if err := validatePaths(inputPath, outputPath); err != nil {
		return err
	}
	args := []string{
		"-loglevel", "error",
		"-t", formatSeconds(c.previewDuration),
		"-i", inputPath,
		"-acodec", "copy",
		"-y", outputPath,
	}
	return c.run(ctx, args)
}

func (c *Converter) RenderVideo(ctx context.Context, audioPath, imagePath, outputPath string) error {
	if err := validatePaths(audioPath, outputPath); err != nil {
		return err
	}

	args := []string{"-loglevel", "error"}
	if imagePath == "" {
		args = append(args, "-f", "lavfi", "-i", blankFrame)
	} else {
		if err := validatePath(imagePath); err != nil {
			return fmt.Errorf("image: %w", err)
		}
		args = append(args, "-loop", "1", "-i", imagePath)
	}
	args = append(args,
		"-i", audioPath,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", c.bitrate,
		"-shortest",
		"-movflags", "+faststart",
		"-y", outputPath,
	)
	return c.run(ctx, args)
}

func validatePaths(inputPath, outputPath string) error {
	if err := validatePath(inputPath); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (c *Converter) run(ctx context.Context, args []string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stderr = &stderr

	logger.Debug.Printf("exec %s %s", c.binary, logger.SanitizeForLog(strings.Join(args, " ")))

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: code %d: %s", ErrNonZeroExit, exitErr.ExitCode(),
			logger.SanitizePayload(tail(stderr.Bytes()), stderrTail))
	}
	return fmt.Errorf("run %s: %w", c.binary, err)
}

func tail(b []byte) []byte {
	b = bytes.TrimSpace(b)
	if len(b) > stderrTail {
		return b[len(b)-stderrTail:]
	}
	return b
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}

var _ port.Transcoder = (*Converter)(nil)
