package stage

import (
	"testing"

	"github.com/sillygoals/sillygoals/internal/model"
)

func testGoal(id int64, s int) *model.Goal {
	return &model.Goal{ID: id, Title: "goal", Stage: s, GroupID: 1}
}

func TestValid(t *testing.T) {
	cases := []struct {
		stage int
		want  bool
	}{
		{-1, false},
		{0, true},
		{3, true},
		{4, true},
		{5, false},
		{100, false},
	}
	for _, c := range cases {
		got := Valid(c.stage)
		if got != c.want {
			t.Errorf("Valid(%d) = %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestDisplayable(t *testing.T) {
	cases := []struct {
		stage int
		want  bool
	}{
		{-1, false},
		{0, true},
		{3, true},
		{4, false},
	}
	for _, c := range cases {
		got := Displayable(c.stage)
		if got != c.want {
			t.Errorf("Displayable(%d) = %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestPartition_EachGoalInExactlyOneBucket(t *testing.T) {
	goals := []*model.Goal{
		testGoal(1, 0),
		testGoal(2, 1),
		testGoal(3, 1),
		testGoal(4, 3),
	}

	buckets := Partition(goals)

	seen := map[int64]int{}
	for i, bucket := range buckets {
		for _, g := range bucket {
			seen[g.ID]++
			if g.Stage != i {
				t.Errorf("goal %d with stage %d landed in bucket %d", g.ID, g.Stage, i)
			}
		}
	}
	for _, g := range goals {
		if seen[g.ID] != 1 {
			t.Errorf("goal %d appears in %d buckets, want 1", g.ID, seen[g.ID])
		}
	}
}

func TestPartition_PreservesOrderWithinBucket(t *testing.T) {
	goals := []*model.Goal{
		testGoal(10, 1),
		testGoal(20, 0),
		testGoal(30, 1),
		testGoal(40, 1),
	}

	buckets := Partition(goals)

	if len(buckets[1]) != 3 {
		t.Fatalf("bucket 1 has %d goals, want 3", len(buckets[1]))
	}
	wantOrder := []int64{10, 30, 40}
	for i, id := range wantOrder {
		if buckets[1][i].ID != id {
			t.Errorf("bucket 1 position %d = goal %d, want %d", i, buckets[1][i].ID, id)
		}
	}
}

func TestPartition_DropsOverflowAndInvalidStages(t *testing.T) {
	goals := []*model.Goal{
		testGoal(1, 4),
		testGoal(2, -1),
		testGoal(3, 7),
		testGoal(4, 2),
	}

	buckets := Partition(goals)

	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	if total != 1 {
		t.Errorf("partition kept %d goals, want 1", total)
	}
	if len(buckets[2]) != 1 || buckets[2][0].ID != 4 {
		t.Errorf("bucket 2 = %v, want only goal 4", buckets[2])
	}
}

func TestLabel(t *testing.T) {
	stages := model.StageLabels{"Seed", "Sprout", "Bloom", "Harvest"}

	if got := Label(stages, 2); got != "Bloom" {
		t.Errorf("Label(2) = %q, want %q", got, "Bloom")
	}
	if got := Label(stages, 4); got != "unknown" {
		t.Errorf("Label(4) = %q, want %q", got, "unknown")
	}
	if got := Label(stages, -1); got != "unknown" {
		t.Errorf("Label(-1) = %q, want %q", got, "unknown")
	}
}

func TestColor_OutOfRangeDefaults(t *testing.T) {
	for _, s := range []int{-1, 4, 5, 42} {
		if got := Color(s); got != "bg-gray-500" {
			t.Errorf("Color(%d) = %q, want bg-gray-500", s, got)
		}
		if got := ColorLight(s); got != "bg-gray-200" {
			t.Errorf("ColorLight(%d) = %q, want bg-gray-200", s, got)
		}
		if got := BorderLight(s); got != "border-gray-200" {
			t.Errorf("BorderLight(%d) = %q, want border-gray-200", s, got)
		}
	}
}
