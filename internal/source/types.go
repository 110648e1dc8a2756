// Package source locates and decodes the JSON inputs of a generation run:
// collaborator metric blobs and prior snapshots of this system.
package source

// Input names.
const (
	KPIs        = "kpis"
	History     = "history"
	Projections = "projections"
	DeckData    = "investor"
)

// Input file names.
const (
	KPIsFile        = "kpis.json"
	HistoryFile     = "complete_history.json"
	ProjectionsFile = "revenue_projections.json"
	DeckDataFile    = "investor_deck_data.json"
)

// InputSpec describes one JSON input of a run.
type InputSpec struct {
	Name string
	File string
	// Shared inputs are written by the metrics collaborators one directory
	// above the financial data; they are looked up there when absent from
	// the input directory.
	Shared bool
}

// DefaultInputs lists every input a full run reads, in load order.
var DefaultInputs = []InputSpec{
	{Name: KPIs, File: KPIsFile, Shared: true},
	{Name: History, File: HistoryFile, Shared: true},
	{Name: Projections, File: ProjectionsFile},
	{Name: DeckData, File: DeckDataFile},
}

// DiscoveredFile is an input resolved against the filesystem.
type DiscoveredFile struct {
	Spec InputSpec
	// Path is where the file was found, or the primary candidate when missing.
	Path   string
	Exists bool
	Size   int64
}
