package response

import "fieldops/internal/usecase"

type DispatchColumnResponse struct {
	TechnicianID   string          `json:"technician_id,omitempty"`
	TechnicianName string          `json:"technician_name,omitempty"`
	Visits         []VisitResponse `json:"visits"`
}

type DispatchBoardResponse struct {
	Date    string                   `json:"date"`
	Columns []DispatchColumnResponse `json:"columns"`
}

func FromDispatchBoard(b usecase.DispatchBoard) DispatchBoardResponse {
	columns := make([]DispatchColumnResponse, 0, len(b.Columns))
	for _, col := range b.Columns {
		columns = append(columns, DispatchColumnResponse{
			TechnicianID:   col.TechnicianID,
			TechnicianName: col.TechnicianName,
			Visits:         FromVisits(col.Visits),
		})
	}
	return DispatchBoardResponse{Date: b.Date, Columns: columns}
}
