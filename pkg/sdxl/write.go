package sdxl

import (
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// WriteOptions configures artifact writing.
type WriteOptions struct {
	// OutputDir is the directory to write into. Created if missing.
	OutputDir string

	// SkipRequest suppresses the request-body .json sidecar. Set when
	// the body was loaded from a prepared request file.
	SkipRequest bool

	// OpenViewer opens each written image in the platform viewer,
	// best effort.
	OpenViewer bool

	// Report, when set, receives a status line per written file.
	Report func(format string, args ...any)
}

// WriteArtifacts persists each artifact in order: a .json file holding
// the exact serialized request bytes (unless skipped) and a .png file
// holding the decoded image, both sharing a content-derived basename.
//
// Writing is best effort per artifact: a failure stops the loop but
// files written for earlier artifacts remain on disk. The returned slice
// lists every path that was written, including on error.
func WriteArtifacts(req *Request, artifacts []Artifact, opts WriteOptions) ([]string, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	slug := PromptSlug(req.Prompts)
	fingerprint := Fingerprint(req.Body)

	var written []string
	for i, artifact := range artifacts {
		base := BaseName(slug, fingerprint, i)
		jsonPath := filepath.Join(opts.OutputDir, base+".json")
		imgPath := filepath.Join(opts.OutputDir, base+".png")

		if !opts.SkipRequest {
			report(opts, "writing %s", jsonPath)
			if err := os.WriteFile(jsonPath, req.Body, 0644); err != nil {
				return written, fmt.Errorf("write request body: %w", err)
			}
			written = append(written, jsonPath)
		}

		img, err := base64.StdEncoding.DecodeString(artifact.Base64)
		if err != nil {
			return written, fmt.Errorf("decode artifact %d: %w", i, err)
		}

		report(opts, "writing %s", imgPath)
		if err := os.WriteFile(imgPath, img, 0644); err != nil {
			return written, fmt.Errorf("write image: %w", err)
		}
		written = append(written, imgPath)

		if opts.OpenViewer {
			openViewer(imgPath)
		}
	}

	return written, nil
}

func report(opts WriteOptions, format string, args ...any) {
	if opts.Report != nil {
		opts.Report(format, args...)
	}
}

// openViewer opens the image in the platform's default viewer. Failures
// are ignored; viewing is a convenience, not part of the contract.
func openViewer(path string) {
	for _, tool := range []string{"xdg-open", "open"} {
		bin, err := exec.LookPath(tool)
		if err != nil {
			continue
		}
		_ = exec.Command(bin, path).Start()
		return
	}
}
