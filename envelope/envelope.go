// Package envelope builds and serializes the JSON envelopes every tool
// emits, and carries the shared hashing, timestamp, and severity-filter
// helpers those envelopes depend on.
package envelope

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lawdesk/lawdocx/model"
)

// Version is stamped into every envelope's lawdocx_version field.
const Version = "0.4.0"

// Timestamp returns the current UTC time in RFC 3339 form with sub-second
// precision, the format used for generated_at.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// HashBytes returns the SHA-256 hex digest of a byte payload.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile returns the SHA-256 hex digest of a file, streamed rather than
// loaded whole.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// New builds an envelope for one tool run. An empty generatedAt stamps the
// current time; callers running several envelopes in one batch pass a single
// timestamp so the batch is uniform.
func New(tool string, files []model.FileEntry, generatedAt string) model.Envelope {
	if generatedAt == "" {
		generatedAt = Timestamp()
	}
	if files == nil {
		files = []model.FileEntry{}
	}
	return model.Envelope{
		LawdocxVersion: Version,
		Tool:           tool,
		GeneratedAt:    generatedAt,
		Files:          files,
	}
}

// WriteJSONLine serializes v as a single JSON line. HTML escaping is off so
// document text round-trips byte for byte.
func WriteJSONLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FilterFilesBySeverity returns file entries whose items are at or above the
// minimum severity. Entries are kept even when all their items are filtered
// out, so consumers still see every input file.
func FilterFilesBySeverity(files []model.FileEntry, minimum string) []model.FileEntry {
	threshold := model.SeverityRank(minimum)
	filtered := make([]model.FileEntry, 0, len(files))
	for _, entry := range files {
		items := make([]model.Finding, 0, len(entry.Items))
		for _, item := range entry.Items {
			if model.SeverityRank(item.Severity) >= threshold {
				items = append(items, item)
			}
		}
		entry.Items = items
		filtered = append(filtered, entry)
	}
	return filtered
}

// Summarize counts findings by severity across file entries. Unrecognized
// severities are not counted.
func Summarize(files []model.FileEntry) model.Totals {
	var totals model.Totals
	for _, entry := range files {
		for _, item := range entry.Items {
			switch item.Severity {
			case model.SeverityInfo:
				totals.Info++
			case model.SeverityWarning:
				totals.Warning++
			case model.SeverityError:
				totals.Error++
			}
		}
	}
	return totals
}
