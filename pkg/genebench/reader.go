package genebench

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// Reader loads benchmark artifacts from a workspace.
type Reader struct {
	path     string
	storage  Storage
	metadata Metadata
}

// OpenWorkspace opens an existing workspace (local or s3://) and loads its
// dataset metadata.
func OpenWorkspace(workspacePath string) (*Reader, error) {
	storage, err := NewStorage(workspacePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage backend: %w", err)
	}

	r := &Reader{path: workspacePath, storage: storage}

	data, err := storage.ReadFile(MetadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}
	if err := json.Unmarshal(data, &r.metadata); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	// Bucket labels partition the dataset; reject anything outside the
	// three buckets before it reaches aggregation.
	for _, gene := range r.metadata.Genes {
		if _, err := ParseComplexity(string(gene.Complexity)); err != nil {
			return nil, fmt.Errorf("gene %s: %w", gene.ID, err)
		}
	}

	return r, nil
}

// Metadata returns the dataset metadata.
func (r *Reader) Metadata() Metadata {
	return r.metadata
}

// Genes returns the dataset's gene records.
func (r *Reader) Genes() []Gene {
	return r.metadata.Genes
}

// Predictions loads one tool's persisted prediction list, decompressing
// when the artifact is zstd-compressed.
func (r *Reader) Predictions(tool string) ([]Prediction, error) {
	relPath := path.Join(ResultsDir, strings.ToLower(tool), predictionsFile)
	data, err := r.storage.ReadFile(relPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions for %s: %w", tool, err)
	}

	decompressed, err := Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress predictions for %s: %w", tool, err)
	}

	var preds []Prediction
	if err := json.Unmarshal(decompressed, &preds); err != nil {
		return nil, fmt.Errorf("failed to parse predictions for %s: %w", tool, err)
	}

	return preds, nil
}

// Results loads the aggregated evaluation results, if present.
func (r *Reader) Results() (EvaluationResults, error) {
	var res EvaluationResults

	data, err := r.storage.ReadFile(ResultsPath)
	if err != nil {
		return res, fmt.Errorf("failed to load evaluation results: %w", err)
	}
	if err := json.Unmarshal(data, &res); err != nil {
		return res, fmt.Errorf("failed to parse evaluation results: %w", err)
	}

	return res, nil
}

// Manifest loads the artifact manifest written by the prediction stage.
func (r *Reader) Manifest() ([]ArtifactInfo, error) {
	data, err := r.storage.ReadFile(ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load artifact manifest: %w", err)
	}

	var artifacts []ArtifactInfo
	if err := json.Unmarshal(data, &artifacts); err != nil {
		return nil, fmt.Errorf("failed to parse artifact manifest: %w", err)
	}

	return artifacts, nil
}

// Storage exposes the underlying backend.
func (r *Reader) Storage() Storage {
	return r.storage
}

// Close closes the reader.
func (r *Reader) Close() error {
	// Nothing held open for either backend
	return nil
}
