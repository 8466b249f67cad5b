package genebench

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"
)

// Workspace file layout. All paths are relative to the workspace root and
// resolved through the Storage backend, so a workspace can live on S3.
const (
	MetadataPath    = "data/metadata.json"
	SequenceDir     = "data/sequences"
	AnnotationDir   = "data/annotations"
	ResultsDir      = "results"
	ResultsPath     = "results/evaluation_results.json"
	ManifestPath    = "results/_artifacts.json"
	DashboardPath   = "visualizations/dashboard.html"
	predictionsFile = "predictions.json.zst"
)

// Writer persists benchmark artifacts into a workspace.
type Writer struct {
	path       string
	storage    Storage
	compressor *Compressor
	artifacts  []ArtifactInfo
}

// NewWriter creates a workspace writer at path (local directory or
// s3://bucket/prefix) and lays out the directory structure.
func NewWriter(workspacePath string) (*Writer, error) {
	storage, err := NewStorage(workspacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage backend: %w", err)
	}

	compressor, err := NewCompressor()
	if err != nil {
		return nil, fmt.Errorf("failed to create compressor: %w", err)
	}

	w := &Writer{
		path:       workspacePath,
		storage:    storage,
		compressor: compressor,
	}

	for _, dir := range []string{SequenceDir, AnnotationDir, ResultsDir, "visualizations"} {
		if err := storage.MkdirAll(dir); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}

	return w, nil
}

// Storage exposes the underlying backend for collaborators that write
// their own file formats (FASTA, GFF, HTML) into the workspace.
func (w *Writer) Storage() Storage {
	return w.storage
}

// WriteMetadata writes the dataset metadata file.
func (w *Writer) WriteMetadata(md Metadata) error {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}
	return w.storage.WriteFile(MetadataPath, data)
}

// WritePredictions persists one tool's prediction list as zstd-compressed
// JSON under results/<tool>/ and records an artifact entry with a checksum
// of the compressed bytes.
func (w *Writer) WritePredictions(tool string, preds []Prediction) error {
	data, err := json.Marshal(preds)
	if err != nil {
		return fmt.Errorf("failed to encode predictions for %s: %w", tool, err)
	}

	compressed, err := w.compressor.Compress(data)
	if err != nil {
		return fmt.Errorf("failed to compress predictions for %s: %w", tool, err)
	}

	relPath := path.Join(ResultsDir, strings.ToLower(tool), predictionsFile)
	if err := w.storage.WriteFile(relPath, compressed); err != nil {
		return err
	}

	hash := sha256.Sum256(compressed)
	w.artifacts = append(w.artifacts, ArtifactInfo{
		Path:        relPath,
		Tool:        tool,
		Records:     len(preds),
		SizeBytes:   int64(len(compressed)),
		Compression: "zstd",
		Checksum:    fmt.Sprintf("%x", hash),
		Created:     time.Now(),
	})

	return nil
}

// WriteResults writes the aggregated evaluation results file.
func (w *Writer) WriteResults(res EvaluationResults) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return w.storage.WriteFile(ResultsPath, data)
}

// WriteDashboard writes the rendered HTML dashboard.
func (w *Writer) WriteDashboard(html []byte) error {
	return w.storage.WriteFile(DashboardPath, html)
}

// Finalize writes the artifact manifest and releases the compressor.
func (w *Writer) Finalize() error {
	if len(w.artifacts) > 0 {
		data, err := json.MarshalIndent(w.artifacts, "", "  ")
		if err != nil {
			return err
		}
		if err := w.storage.WriteFile(ManifestPath, data); err != nil {
			return fmt.Errorf("failed to write artifact manifest: %w", err)
		}
	}

	return w.compressor.Close()
}
