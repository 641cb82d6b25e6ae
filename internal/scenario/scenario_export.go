package scenario

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"bakehub/internal/timeline"
)

// ExportTimelineXLSX는 계산된 타임라인 행을 엑셀로 내보냅니다.
// 그룹 헤더 순서/행 순서는 화면과 동일합니다(같은 Layout을 사용).
func ExportTimelineXLSX(sc *Scenario, layout timeline.Layout) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	headers := []string{"작업자", "공정", "상품", "도구", "시작(분)", "소요(분)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, row := range layout.Rows {
		if row.Kind == timeline.RowGroup {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "["+row.Label+"]")
			rowNum++
			continue
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.WorkerName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Label)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.ProductName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.ToolName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.Start)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.Duration)
		rowNum++
	}

	// 요약 행: 축 길이와 makespan 표기는 화면 값과 같은 계산을 씁니다.
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum+1), "시나리오")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum+1), sc.Title)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum+2), "축 길이(분)")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum+2), layout.AxisMinutes)

	return f.WriteToBuffer()
}
