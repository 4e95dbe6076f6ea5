package domain

// Recipient is one unit of work for spreadsheet sharing.
type Recipient struct {
	EmailAddress string `json:"email_address"`
	// Role is one of reader, commenter or writer.
	Role string `json:"role"`
}

// ValidRoles are the Drive permission roles a recipient may be granted.
var ValidRoles = []string{"reader", "commenter", "writer"}

// ValidRole reports whether role is an accepted sharing role.
func ValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// QuerySuccess is a fulfilled multi-range read query.
type QuerySuccess struct {
	SheetQuery
	Data [][]any `json:"data"`
}

// QueryFailure is a multi-range read query that could not be fulfilled.
type QueryFailure struct {
	SheetQuery
	Error string `json:"error"`
}

// MultiSheetData aggregates a multi-range read. Both lists preserve the
// relative input order of their items.
type MultiSheetData struct {
	Successes []QuerySuccess `json:"successes"`
	Failures  []QueryFailure `json:"failures"`
}

// SummaryFailure records a spreadsheet whose summary could not be fetched.
type SummaryFailure struct {
	SpreadsheetID string `json:"spreadsheet_id"`
	Error         string `json:"error"`
}

// MultiSpreadsheetSummary aggregates summaries across spreadsheets.
type MultiSpreadsheetSummary struct {
	Successes []SpreadsheetSummary `json:"successes"`
	Failures  []SummaryFailure     `json:"failures"`
}

// ShareSuccess records one recipient that was granted access.
type ShareSuccess struct {
	EmailAddress string `json:"email_address"`
	Role         string `json:"role"`
	PermissionID string `json:"permissionId"`
}

// ShareFailure records one recipient that could not be granted access.
type ShareFailure struct {
	EmailAddress string `json:"email_address,omitempty"`
	Error        string `json:"error"`
}

// ShareReport aggregates a multi-recipient share.
type ShareReport struct {
	Successes []ShareSuccess `json:"successes"`
	Failures  []ShareFailure `json:"failures"`
}

// CopySheetResult reports a cross-spreadsheet sheet copy.
type CopySheetResult struct {
	// Copied is the new sheet in the destination spreadsheet.
	Copied SheetProperties `json:"copy"`
	// Renamed is true when the copy was renamed to the requested title.
	Renamed bool `json:"renamed"`
}

// CreatedSpreadsheet reports a newly created spreadsheet.
type CreatedSpreadsheet struct {
	SpreadsheetID string   `json:"spreadsheetId"`
	Title         string   `json:"title"`
	Sheets        []string `json:"sheets"`
	// Folder is the Drive folder the spreadsheet was placed in,
	// or "root" when no working folder is configured.
	Folder string `json:"folder"`
}
