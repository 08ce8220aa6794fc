// Package pipeline is the Kanban board state machine behind the leads
// view. It owns one in-memory snapshot of the pipeline, the drag
// lifecycle, and the commit protocol against the admin API.
package pipeline

import (
	"jewelcms/internal/client"
	"jewelcms/internal/models"
)

const boardLoadLimit = 200

// Board holds one operator's view of the pipeline. It is not safe for
// concurrent use; each session gets its own.
type Board struct {
	api *client.Client

	columns map[string][]*models.Lead
	order   []string

	// drag state, valid between BeginDrag and Drop/CancelDrag
	dragID     string
	dragFrom   string
	hoverStage string
}

func NewBoard(api *client.Client) *Board {
	return &Board{
		api:     api,
		columns: map[string][]*models.Lead{},
		order:   models.PipelineStages,
	}
}

// Load refetches the board. On failure the previous snapshot stays on
// screen and the error is surfaced to the caller.
func (b *Board) Load() error {
	leads, err := b.api.ListLeads(client.ListLeadsOptions{
		Limit: boardLoadLimit,
		Sort:  "createdAt_desc",
	})
	if err != nil {
		return err
	}

	columns := map[string][]*models.Lead{}
	for _, stage := range b.order {
		columns[stage] = []*models.Lead{}
	}
	for _, lead := range leads {
		columns[lead.Status] = append(columns[lead.Status], lead)
	}
	b.columns = columns
	return nil
}

// Stages returns the column order, left to right.
func (b *Board) Stages() []string { return b.order }

// Column returns the leads currently shown under a stage.
func (b *Board) Column(stage string) []*models.Lead { return b.columns[stage] }

// Unbucketed returns leads whose status matches no known stage. They are
// rendered in a catch-all strip rather than dropped on the floor.
func (b *Board) Unbucketed() []*models.Lead {
	known := map[string]bool{}
	for _, stage := range b.order {
		known[stage] = true
	}
	var out []*models.Lead
	for status, leads := range b.columns {
		if !known[status] {
			out = append(out, leads...)
		}
	}
	return out
}

// Count returns the card count for a stage header.
func (b *Board) Count(stage string) int { return len(b.columns[stage]) }

// --- drag lifecycle ---

func (b *Board) BeginDrag(leadID string) {
	b.dragID = leadID
	b.dragFrom = b.stageOf(leadID)
	b.hoverStage = ""
}

// DragOver highlights the hovered column.
func (b *Board) DragOver(stage string) { b.hoverStage = stage }

func (b *Board) DragLeave() { b.hoverStage = "" }

// HoverStage reports which column is highlighted, "" when none.
func (b *Board) HoverStage() string { return b.hoverStage }

// Dragging reports the card in flight, "" when none.
func (b *Board) Dragging() string { return b.dragID }

func (b *Board) CancelDrag() {
	b.dragID = ""
	b.dragFrom = ""
	b.hoverStage = ""
}

// Drop commits the drag onto a stage. Dropping a card back on its own
// column is a no-op and sends nothing. A cross-column drop issues exactly
// one status update; on success only the moved card changes, on failure
// the whole board reloads so the view matches the server again.
func (b *Board) Drop(stage string) error {
	leadID, from := b.dragID, b.dragFrom
	b.CancelDrag()

	if leadID == "" || from == "" {
		return nil
	}
	if stage == from {
		return nil
	}
	return b.commitTransition(leadID, from, stage)
}

func (b *Board) commitTransition(leadID, from, to string) error {
	updated, err := b.api.UpdateLeadStatus(leadID, to)
	if err != nil {
		if reloadErr := b.Load(); reloadErr != nil {
			return reloadErr
		}
		return err
	}

	// move just the one card
	column := b.columns[from]
	for i, lead := range column {
		if lead.ID == leadID {
			b.columns[from] = append(column[:i], column[i+1:]...)
			break
		}
	}
	b.columns[to] = append([]*models.Lead{updated}, b.columns[to]...)
	return nil
}

func (b *Board) stageOf(leadID string) string {
	for status, leads := range b.columns {
		for _, lead := range leads {
			if lead.ID == leadID {
				return status
			}
		}
	}
	return ""
}
