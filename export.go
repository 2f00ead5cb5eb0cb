package main

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const resultSheet = "Placement"

var resultHeader = []any{"Core", "Grade", "Gem", "Cost", "Point", "Options", "Rank", "Core %", "Combined %", "Gem %"}

// ExportResultXLSX writes a result as a workbook with one row per core,
// one row per placed gem under it, and a final summary row.
func ExportResultXLSX(path string, res *Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	put := func(values []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(resultSheet, cell, &values)
	}

	if err := put(resultHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, cd := range res.Cores {
		err := put([]any{
			cd.Name, cd.Core.Grade.String(), "",
			fmt.Sprintf("%d/%d", cd.TotalCost, cd.Capacity), cd.TotalPoint, "",
			cd.TierRank, cd.CoreBonusPercent, cd.CombinedPercent, "",
		})
		if err != nil {
			return fmt.Errorf("write core %s: %w", cd.Name, err)
		}
		for _, gd := range cd.Gems {
			var opts []string
			for _, o := range gd.Options {
				opts = append(opts, fmt.Sprintf("%s Lv%d", o.Stat, o.Level))
			}
			err := put([]any{
				"", "", gd.Name, gd.Cost, gd.Point, strings.Join(opts, ", "),
				"", "", "", gd.ContributionPercent,
			})
			if err != nil {
				return fmt.Errorf("write gem %s: %w", gd.Name, err)
			}
		}
	}
	if err := put([]any{"Final %", res.Role.String(), "", "", "", "", "", "", res.FinalScorePercent, ""}); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if err := f.SetColWidth(resultSheet, "A", "A", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(resultSheet, "C", "C", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(resultSheet, "F", "F", 36); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
