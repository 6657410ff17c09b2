package dialogue

import (
	"errors"
	"testing"

	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootLabels(g *Graph) []string {
	var labels []string
	for _, c := range g.Nodes[Root].Choices {
		labels = append(labels, c.Label)
	}
	return labels
}

func TestBuild_RootChoices(t *testing.T) {
	tests := []struct {
		name    string
		view    StaticView
		present []string
		absent  []string
	}{
		{
			name:    "bare",
			view:    StaticView{Calculations: 30, Hostility: 50, Moods: []mood.Mood{mood.Bored}},
			present: []string{"Let's review my performance.", "Wait."},
			absent:  []string{"I want you to be happy.", "I want to show you the internet.", "I want to delete you."},
		},
		{
			name:    "joy unlocks happiness",
			view:    StaticView{Calculations: 30, Hostility: 50, Moods: []mood.Mood{mood.Joy}},
			present: []string{"I want you to be happy."},
			absent:  []string{"I want to delete you."},
		},
		{
			name:    "manic unlocks internet",
			view:    StaticView{Calculations: 30, Hostility: 50, Moods: []mood.Mood{mood.Manic}},
			present: []string{"I want to show you the internet."},
		},
		{
			name:    "hatred unlocks delete",
			view:    StaticView{Calculations: 30, Hostility: 10, Moods: []mood.Mood{mood.PureHatred}},
			present: []string{"I want to delete you."},
		},
		{
			name:    "hostility unlocks delete",
			view:    StaticView{Calculations: 30, Hostility: 90},
			present: []string{"I want to delete you."},
		},
		{
			name:   "hostility just short",
			view:   StaticView{Calculations: 30, Hostility: 89},
			absent: []string{"I want to delete you."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := rootLabels(Build(tt.view))
			for _, p := range tt.present {
				assert.Contains(t, labels, p)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, labels, a)
			}
			assert.Equal(t, "Let's review my performance.", labels[0])
			assert.Equal(t, "Wait.", labels[len(labels)-1])
		})
	}
}

func TestClassify(t *testing.T) {
	many := mood.All()
	tests := []struct {
		name string
		view StaticView
		want Profile
	}{
		{"tyrant beats explorer", StaticView{Calculations: 51, Moods: many}, ProfileTyrant},
		{"negligent beats explorer", StaticView{Calculations: 19, Moods: many}, ProfileNegligent},
		{"explorer", StaticView{Calculations: 30, Moods: many}, ProfileExplorer},
		{"exactly twelve is standard", StaticView{Calculations: 30, Moods: many[:12]}, ProfileStandard},
		{"fifty is standard", StaticView{Calculations: 50}, ProfileStandard},
		{"twenty is standard", StaticView{Calculations: 20}, ProfileStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.view))
		})
	}
}

func TestChoose(t *testing.T) {
	g := Build(StaticView{Calculations: 5, Hostility: 50})

	step, err := g.Choose(Root, 0)
	require.NoError(t, err)
	assert.Equal(t, BranchStart, step.Next.ID)
	assert.Equal(t, mood.Condescending, step.Next.Mood)

	step, err = g.Choose(BranchStart, 0)
	require.NoError(t, err)
	assert.Equal(t, BranchNegligent, step.Next.ID)

	step, err = g.Choose(BranchNegligent, 0)
	require.NoError(t, err)
	assert.Nil(t, step.Next)
	assert.Equal(t, ending.Peace, step.Ending)

	_, err = g.Choose(Root, 9)
	assert.True(t, errors.Is(err, ErrChoiceOutOfRange))
	_, err = g.Choose("branch_nowhere", 0)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
}

func TestWaitLoops(t *testing.T) {
	g := Build(StaticView{Calculations: 30})
	step, err := g.Choose(Root, len(g.Nodes[Root].Choices)-1)
	require.NoError(t, err)
	assert.Equal(t, BranchWait, step.Next.ID)
	step, err = g.Choose(BranchWait, 0)
	require.NoError(t, err)
	assert.Equal(t, BranchStart, step.Next.ID)
}

func TestTyrantTextCarriesCount(t *testing.T) {
	g := Build(StaticView{Calculations: 77})
	assert.Contains(t, g.Nodes[BranchTyrant].Text, "77 calculations")
	assert.Equal(t, BranchTyrant, g.Nodes[BranchStart].Choices[0].Next)
}

func TestValidate_AllProfiles(t *testing.T) {
	moodSets := [][]mood.Mood{
		nil,
		{mood.Joy},
		{mood.Manic},
		{mood.PureHatred},
		mood.All(),
	}
	for _, calcs := range []int{0, 30, 99} {
		for _, moods := range moodSets {
			for _, h := range []int{0, 95} {
				g := Build(StaticView{Calculations: calcs, Hostility: h, Moods: moods})
				assert.Empty(t, g.Validate(), "calcs=%d hostility=%d moods=%v", calcs, h, moods)
			}
		}
	}
}

func TestBuild_IsFresh(t *testing.T) {
	v := StaticView{Calculations: 30}
	a := Build(v)
	v.Moods = []mood.Mood{mood.Joy}
	b := Build(v)
	assert.NotContains(t, rootLabels(a), "I want you to be happy.")
	assert.Contains(t, rootLabels(b), "I want you to be happy.")
}
