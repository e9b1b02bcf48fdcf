package finance

import (
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target. With a grid, the target is partitioned into
// randomly sized cells the user checks off one by one; without one, progress
// moves only through direct allocations.
type Goal struct {
	Meta
	Name       string          `json:"name"`
	Target     decimal.Decimal `json:"target"`
	Current    decimal.Decimal `json:"current"`
	Deadline   string          `json:"deadline,omitempty"`
	UseGrid    bool            `json:"useGrid"`
	IsArchived bool            `json:"isArchived"`
	Grid       []GoalCell      `json:"grid"`
}

// GoalCell is one piece of a goal grid.
type GoalCell struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Completed bool            `json:"completed"`
}

// GoalPatch is a partial goal update; nil fields are left untouched.
type GoalPatch struct {
	Name     *string
	Deadline *string
}

// gridDenominations are the cell sizes a grid is built from, a mix chosen
// for the challenge-box feel rather than an even partition.
var gridDenominations = []int64{15000, 10000, 5000, 2000, 1000}

// buildGrid partitions target into shuffled cells. Each cell is a random
// denomination that still fits in the remainder, or the exact remainder when
// none fits. The cells always sum to exactly target and are all positive.
func buildGrid(target decimal.Decimal) []GoalCell {
	var grid []GoalCell
	remaining := target
	for remaining.IsPositive() {
		var fitting []decimal.Decimal
		for _, d := range gridDenominations {
			if v := decimal.NewFromInt(d); v.LessThanOrEqual(remaining) {
				fitting = append(fitting, v)
			}
		}
		amount := remaining
		if len(fitting) > 0 {
			amount = fitting[rand.IntN(len(fitting))]
		}
		grid = append(grid, GoalCell{ID: uuid.NewString(), Amount: amount})
		remaining = remaining.Sub(amount)
	}
	rand.Shuffle(len(grid), func(i, j int) { grid[i], grid[j] = grid[j], grid[i] })
	return grid
}

// Goals returns all goals, most recently created first.
func (b *Book) Goals() []Goal {
	goals := b.goals.All()
	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals
}

// CreateGoal saves a new goal, generating its grid when requested.
func (b *Book) CreateGoal(g Goal) Goal {
	g.IsArchived = false
	g.Grid = nil
	if g.UseGrid {
		g.Grid = buildGrid(g.Target)
	}
	return b.goals.Save(g)
}

// UpdateGoal applies the patch to the goal, returning nil when absent.
func (b *Book) UpdateGoal(id string, patch GoalPatch) *Goal {
	return b.goals.Update(id, func(g *Goal) {
		if patch.Name != nil {
			g.Name = *patch.Name
		}
		if patch.Deadline != nil {
			g.Deadline = *patch.Deadline
		}
	})
}

// DeleteGoal removes a goal unconditionally.
func (b *Book) DeleteGoal(id string) { b.goals.Delete(id) }

// ArchiveGoal toggles the archived flag.
func (b *Book) ArchiveGoal(id string) *Goal {
	return b.goals.Update(id, func(g *Goal) { g.IsArchived = !g.IsArchived })
}

// AllocateToGoal adds the amount directly to the goal's progress, used when
// no grid is active or as a manual top-up alongside one.
func (b *Book) AllocateToGoal(id string, amount decimal.Decimal) *Goal {
	return b.goals.Update(id, func(g *Goal) {
		g.Current = g.Current.Add(amount)
	})
}

// ToggleGoalCell flips a grid cell and moves the goal's progress by the
// cell amount, up when completing and down when unticking, so progress
// always equals the completed-cell sum plus direct allocations. Toggling
// the same cell twice is a no-op overall.
func (b *Book) ToggleGoalCell(goalID, cellID string) *Goal {
	var touched bool
	updated := b.goals.Update(goalID, func(g *Goal) {
		for i := range g.Grid {
			if g.Grid[i].ID != cellID {
				continue
			}
			cell := &g.Grid[i]
			cell.Completed = !cell.Completed
			if cell.Completed {
				g.Current = g.Current.Add(cell.Amount)
			} else {
				g.Current = g.Current.Sub(cell.Amount)
			}
			touched = true
			return
		}
	})
	if !touched {
		return nil
	}
	return updated
}
