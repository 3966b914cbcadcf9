package sheets

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook tab names for the local .xlsx source. The layout inside each tab
// is the same as the published spreadsheet (keys, description, data).
const (
	roomsTab = "rooms"
	rulesTab = "calendar_rules"
)

// LoadWorkbook reads the rooms and calendar_rules tabs from a local .xlsx
// file, for running the generator without network access.
func LoadWorkbook(path string) (roomRows, ruleRows [][]string, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	roomRows, err = f.GetRows(roomsTab)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %q tab: %w", roomsTab, err)
	}
	ruleRows, err = f.GetRows(rulesTab)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %q tab: %w", rulesTab, err)
	}
	return roomRows, ruleRows, nil
}
