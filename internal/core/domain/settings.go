package domain

const unknownDescription = "Unknown"

// SourceKind identifies where a list is read from.
type SourceKind string

// Available source kinds.
const (
	// SourceKindJSON reads a local JSON file.
	SourceKindJSON SourceKind = "json"

	// SourceKindSheets reads a Google Sheets range.
	SourceKindSheets SourceKind = "sheets"

	// SourceKindXLSX reads a local Excel workbook.
	SourceKindXLSX SourceKind = "xlsx"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindJSON, SourceKindSheets, SourceKindXLSX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the source kind.
func (k SourceKind) Description() string {
	switch k {
	case SourceKindJSON:
		return "Local JSON file"
	case SourceKindSheets:
		return "Google Sheets range"
	case SourceKindXLSX:
		return "Local Excel workbook"
	default:
		return unknownDescription
	}
}

// MatchPolicy decides which canonical name wins when several contain a candidate.
type MatchPolicy string

// Available match policies.
const (
	// MatchPolicyFirst picks the first containing name in mapping order.
	MatchPolicyFirst MatchPolicy = "first"

	// MatchPolicyLongest picks the longest containing name, ties broken by mapping order.
	MatchPolicyLongest MatchPolicy = "longest"
)

// IsValid returns true if the match policy is recognised.
func (p MatchPolicy) IsValid() bool {
	switch p {
	case MatchPolicyFirst, MatchPolicyLongest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p MatchPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p MatchPolicy) Description() string {
	switch p {
	case MatchPolicyFirst:
		return "First (first containing name in mapping order)"
	case MatchPolicyLongest:
		return "Longest (longest containing name)"
	default:
		return unknownDescription
	}
}

// SourceSettings locates one input list.
type SourceSettings struct {
	// Kind selects the connector.
	Kind SourceKind

	// Path is the local file for json and xlsx sources.
	Path string

	// SpreadsheetID is the Google Sheets document for sheets sources.
	SpreadsheetID string

	// Range is the A1 range for sheets sources.
	Range string

	// Sheet is the worksheet for xlsx sources. Empty means the first sheet.
	Sheet string
}

// GoogleSettings holds Google API access configuration.
type GoogleSettings struct {
	// CredentialsFile is the service account key file.
	CredentialsFile string
}

// DirectorySettings locates the company table.
type DirectorySettings struct {
	// Table is the DynamoDB table name.
	Table string

	// Region is the AWS region of the table.
	Region string

	// Attribute is the attribute holding the company name.
	Attribute string

	// Endpoint overrides the DynamoDB endpoint (e.g. DynamoDB Local).
	Endpoint string

	// PageSize limits items per scan page. Zero leaves it to the service.
	PageSize int
}

// MatchSettings controls filtering and matching.
type MatchSettings struct {
	// ExcludeTag drops candidates containing it. Empty disables the filter.
	ExcludeTag string

	// Policy is the tie-break rule for containment matches.
	Policy MatchPolicy
}

// ReportSettings controls what the run reports.
type ReportSettings struct {
	// ResolveAll adds a portal lookup for every matched name.
	ResolveAll bool
}

// Settings holds all application settings.
type Settings struct {
	// Missing locates the missing-merchant candidate list.
	Missing SourceSettings

	// Mapping locates the canonical name to portal URL mapping.
	Mapping SourceSettings

	// Google holds Sheets credentials.
	Google GoogleSettings

	// Directory locates the system-of-record table.
	Directory DirectorySettings

	// Match holds matching behaviour.
	Match MatchSettings

	// Report holds reporting behaviour.
	Report ReportSettings
}

// DefaultExcludeTag marks card-linked offers, which are never reconciled.
const DefaultExcludeTag = "Card Linked"

// DefaultSettings returns settings with sensible defaults.
// Spreadsheet IDs are left empty and must be configured.
func DefaultSettings() Settings {
	return Settings{
		Missing: SourceSettings{
			Kind:  SourceKindJSON,
			Path:  "missing.json",
			Range: "A1:A",
		},
		Mapping: SourceSettings{
			Kind:  SourceKindSheets,
			Path:  "portals.xlsx",
			Range: "Sheet1",
		},
		Google: GoogleSettings{
			CredentialsFile: "credentials.json",
		},
		Directory: DirectorySettings{
			Table:     "Portals-dev",
			Region:    "us-west-2",
			Attribute: "name",
		},
		Match: MatchSettings{
			ExcludeTag: DefaultExcludeTag,
			Policy:     MatchPolicyFirst,
		},
	}
}
