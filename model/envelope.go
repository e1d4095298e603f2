package model

// FileEntry is the per-input-file output unit. Items is always a list, never
// null, so downstream consumers can iterate without nil checks.
type FileEntry struct {
	Path   string    `json:"path"`
	SHA256 string    `json:"sha256"`
	Items  []Finding `json:"items"`
}

// Envelope wraps one tool run's findings. Tools is populated only by the
// audit composite, which nests one filtered envelope per tool it ran.
type Envelope struct {
	LawdocxVersion string      `json:"lawdocx_version"`
	Tool           string      `json:"tool"`
	GeneratedAt    string      `json:"generated_at"`
	Files          []FileEntry `json:"files"`
	Tools          []Envelope  `json:"tools,omitempty"`
}

// Totals counts findings by severity across file entries.
type Totals struct {
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

// Add accumulates another set of totals.
func (t *Totals) Add(other Totals) {
	t.Info += other.Info
	t.Warning += other.Warning
	t.Error += other.Error
}

// Sum returns the total number of counted findings.
func (t Totals) Sum() int {
	return t.Info + t.Warning + t.Error
}
