package bundle

// SortMode selects the order in which discovered files are written.
type SortMode string

const (
	SortNone         SortMode = ""             // Keep discovery order.
	SortAlphabetical SortMode = "alphabetical" // Order by file name.
	SortType         SortMode = "type"         // Order by file extension.
)

// Request holds the options for a single bundle invocation.
type Request struct {
	Directory        string   // Directory whose top-level files are bundled.
	Output           string   // Destination path for the bundle file.
	Languages        []string // Language identifiers, or "all".
	IncludeSource    bool     // Write a header listing every discovered file.
	Sort             SortMode // Ordering applied before writing.
	RemoveEmptyLines bool     // Drop blank and whitespace-only lines.
	Exclude          []string // Extra gitignore-style exclude patterns.
}

// FileList is the ordered set of files selected for a bundle.
type FileList []string
