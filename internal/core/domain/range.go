package domain

// QualifiedRange builds the address string the Sheets backend accepts as a
// request target. With a sub-range it is "sheet!range"; without one the
// bare sheet name means "the whole sheet".
//
// No A1-notation validation happens here: malformed ranges surface when the
// backend rejects the request, not before.
func QualifiedRange(sheet, subRange string) string {
	if subRange == "" {
		return sheet
	}
	return sheet + "!" + subRange
}
