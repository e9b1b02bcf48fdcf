package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBuildGrid_SumsExactlyToTarget(t *testing.T) {
	targets := []int64{1000, 15000, 37500, 123456, 500}
	for _, target := range targets {
		want := decimal.NewFromInt(target)
		grid := buildGrid(want)

		sum := decimal.Zero
		for _, cell := range grid {
			if !cell.Amount.IsPositive() {
				t.Errorf("target %d: non-positive cell %s", target, cell.Amount)
			}
			if cell.Completed {
				t.Errorf("target %d: cell born completed", target)
			}
			if cell.ID == "" {
				t.Errorf("target %d: cell without id", target)
			}
			sum = sum.Add(cell.Amount)
		}
		if !sum.Equal(want) {
			t.Errorf("target %d: cells sum to %s", target, sum)
		}
	}
}

func TestBuildGrid_ZeroTarget(t *testing.T) {
	if grid := buildGrid(decimal.Zero); len(grid) != 0 {
		t.Errorf("zero target produced %d cells", len(grid))
	}
}

func TestCreateGoal_GridOnlyWhenRequested(t *testing.T) {
	b := newTestBook()
	plain := b.CreateGoal(Goal{Name: "سفرة", Target: decimal.NewFromInt(50000)})
	if plain.Grid != nil {
		t.Errorf("goal without grid got cells: %+v", plain.Grid)
	}
	gridded := b.CreateGoal(Goal{Name: "لابتوب", Target: decimal.NewFromInt(50000), UseGrid: true})
	if len(gridded.Grid) == 0 {
		t.Fatal("goal with useGrid got no cells")
	}
}

func TestToggleGoalCell_Idempotent(t *testing.T) {
	b := newTestBook()
	g := b.CreateGoal(Goal{Name: "هدف", Target: decimal.NewFromInt(20000), UseGrid: true})
	cell := g.Grid[0]

	ticked := b.ToggleGoalCell(g.ID, cell.ID)
	if ticked == nil {
		t.Fatal("toggle returned nil")
	}
	if !ticked.Current.Equal(cell.Amount) {
		t.Errorf("current after tick = %s, want %s", ticked.Current, cell.Amount)
	}
	if !ticked.Grid[0].Completed {
		t.Error("cell not marked completed")
	}

	unticked := b.ToggleGoalCell(g.ID, cell.ID)
	if !unticked.Current.IsZero() {
		t.Errorf("current after untick = %s, want 0", unticked.Current)
	}
	if unticked.Grid[0].Completed {
		t.Error("cell still completed after untick")
	}
}

func TestToggleGoalCell_Missing(t *testing.T) {
	b := newTestBook()
	g := b.CreateGoal(Goal{Name: "هدف", Target: decimal.NewFromInt(20000), UseGrid: true})
	if b.ToggleGoalCell(g.ID, "no-such-cell") != nil {
		t.Error("unknown cell should yield nil")
	}
	if b.ToggleGoalCell("no-such-goal", "x") != nil {
		t.Error("unknown goal should yield nil")
	}
}

func TestAllocateToGoal(t *testing.T) {
	b := newTestBook()
	g := b.CreateGoal(Goal{Name: "هدف", Target: decimal.NewFromInt(100000)})
	b.AllocateToGoal(g.ID, decimal.NewFromInt(30000))
	got := b.AllocateToGoal(g.ID, decimal.NewFromInt(20000))
	if got == nil || !got.Current.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("current = %+v, want 50000", got)
	}
}

func TestArchiveGoal_TogglesAndDelete(t *testing.T) {
	b := newTestBook()
	g := b.CreateGoal(Goal{Name: "هدف", Target: decimal.NewFromInt(10)})

	if got := b.ArchiveGoal(g.ID); got == nil || !got.IsArchived {
		t.Fatalf("archive = %+v", got)
	}
	if got := b.ArchiveGoal(g.ID); got == nil || got.IsArchived {
		t.Fatalf("unarchive = %+v", got)
	}

	b.DeleteGoal(g.ID)
	if got := len(b.Goals()); got != 0 {
		t.Errorf("goals after delete = %d, want 0", got)
	}
}

func TestGoals_MostRecentFirst(t *testing.T) {
	b := newTestBook()
	b.CreateGoal(Goal{Name: "الأول", Target: decimal.NewFromInt(10)})
	b.CreateGoal(Goal{Name: "الثاني", Target: decimal.NewFromInt(10)})
	goals := b.Goals()
	if len(goals) != 2 || goals[0].Name != "الثاني" {
		t.Errorf("order = %+v, want most recent first", goals)
	}
}
