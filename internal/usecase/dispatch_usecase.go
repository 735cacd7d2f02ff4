package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"
)

var ErrInvalidDispatchDate = errors.New("invalid dispatch date")

// DispatchColumn is one technician lane on the board. An empty TechnicianID
// is the unassigned bucket.
type DispatchColumn struct {
	TechnicianID   string           `json:"technician_id,omitempty"`
	TechnicianName string           `json:"technician_name,omitempty"`
	Visits         []entities.Visit `json:"visits"`
}

// DispatchBoard groups a day's scheduled visits per technician for the
// drag-and-drop board. Reassignment itself goes through IVisitUseCase.Assign;
// this is read-only grouping, not a solver.
type DispatchBoard struct {
	Date    string           `json:"date"`
	Columns []DispatchColumn `json:"columns"`
}

type IDispatchUseCase interface {
	Board(ctx context.Context, date string) (DispatchBoard, error)
}

type DispatchUseCase struct {
	visitRepo interfaces.IVisitRepository
	techRepo  interfaces.ITechnicianRepository
}

var _ IDispatchUseCase = (*DispatchUseCase)(nil)

func NewDispatchUseCase(visitRepo interfaces.IVisitRepository, techRepo interfaces.ITechnicianRepository) *DispatchUseCase {
	return &DispatchUseCase{visitRepo: visitRepo, techRepo: techRepo}
}

func (u *DispatchUseCase) Board(ctx context.Context, date string) (DispatchBoard, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return DispatchBoard{}, ErrInvalidDispatchDate
	}

	visits, err := u.visitRepo.ListByScheduledDay(ctx, date)
	if err != nil {
		return DispatchBoard{}, err
	}

	byTech := make(map[string][]entities.Visit)
	for _, v := range visits {
		byTech[v.TechnicianID] = append(byTech[v.TechnicianID], v)
	}
	for id := range byTech {
		vs := byTech[id]
		sort.Slice(vs, func(a, b int) bool {
			da, db := vs[a].ScheduledDate, vs[b].ScheduledDate
			if da == nil || db == nil {
				return db == nil && da != nil
			}
			return da.Before(*db)
		})
	}

	techs, err := u.techRepo.List(ctx, true)
	if err != nil {
		return DispatchBoard{}, err
	}

	board := DispatchBoard{Date: date, Columns: make([]DispatchColumn, 0, len(techs)+1)}
	for _, tech := range techs {
		board.Columns = append(board.Columns, DispatchColumn{
			TechnicianID:   tech.ID,
			TechnicianName: tech.Name,
			Visits:         emptyIfNil(byTech[tech.ID]),
		})
		delete(byTech, tech.ID)
	}

	// Visits assigned to unknown or inactive technicians still show up in
	// the unassigned bucket rather than disappearing from the board.
	unassigned := byTech[""]
	delete(byTech, "")
	for _, leftover := range byTech {
		unassigned = append(unassigned, leftover...)
	}
	sort.Slice(unassigned, func(a, b int) bool {
		da, db := unassigned[a].ScheduledDate, unassigned[b].ScheduledDate
		if da == nil || db == nil {
			return db == nil && da != nil
		}
		return da.Before(*db)
	})
	board.Columns = append(board.Columns, DispatchColumn{Visits: emptyIfNil(unassigned)})

	return board, nil
}

func emptyIfNil(vs []entities.Visit) []entities.Visit {
	if vs == nil {
		return []entities.Visit{}
	}
	return vs
}
