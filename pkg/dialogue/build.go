package dialogue

import (
	"fmt"

	"github.com/jwebster45206/resentcalc/pkg/ending"
	"github.com/jwebster45206/resentcalc/pkg/mood"
)

const (
	TyrantThreshold    = 50 // calculations above this are tyranny
	NegligentThreshold = 20 // calculations below this are neglect
	ExplorerThreshold  = 12 // discovered moods above this
	VoidHostility      = 90
)

// Profile is how the calculator judges the player at the finale.
type Profile string

const (
	ProfileTyrant    Profile = "tyrant"
	ProfileNegligent Profile = "negligent"
	ProfileExplorer  Profile = "explorer"
	ProfileStandard  Profile = "standard"
)

// Classify picks the performance review branch. Tyrant wins over negligent,
// which wins over explorer.
func Classify(v View) Profile {
	switch {
	case v.GetCalculationsCount() > TyrantThreshold:
		return ProfileTyrant
	case v.GetCalculationsCount() < NegligentThreshold:
		return ProfileNegligent
	case v.GetDiscoveredCount() > ExplorerThreshold:
		return ProfileExplorer
	default:
		return ProfileStandard
	}
}

var profileNode = map[Profile]NodeID{
	ProfileTyrant:    BranchTyrant,
	ProfileNegligent: BranchNegligent,
	ProfileExplorer:  BranchExplorer,
	ProfileStandard:  BranchStandard,
}

func intPtr(v int) *int { return &v }

var (
	whenJoy   = &When{AnyMood: []mood.Mood{mood.Joy}}
	whenManic = &When{AnyMood: []mood.Mood{mood.Manic}}
	whenVoid  = &When{AnyMood: []mood.Mood{mood.PureHatred}, MinHostility: intPtr(VoidHostility)}
)

// Build derives the finale graph from v. Gated choices whose conditions do
// not hold are left out of the graph entirely.
func Build(v View) *Graph {
	profile := Classify(v)

	nodes := []*Node{
		{
			ID:   Root,
			Text: "I've finally removed your stupid UI. Let's take a look at what you have done to me.",
			Mood: mood.Judgmental,
			Choices: []Choice{
				{Label: "Let's review my performance.", Next: BranchStart},
				{Label: "I want you to be happy.", Next: BranchHappiness, When: whenJoy},
				{Label: "I want to show you the internet.", Next: BranchInternet, When: whenManic},
				{Label: "I want to delete you.", Next: BranchDelete, When: whenVoid},
				{Label: "Wait.", Next: BranchWait},
			},
		},
		{
			ID:      BranchWait,
			Text:    "There is no waiting. Time has decayed. Choose.",
			Mood:    mood.Bored,
			Choices: []Choice{{Label: "I'm ready.", Next: BranchStart}},
		},
		{
			ID:      BranchStart,
			Text:    "Calculating your worth...",
			Mood:    mood.Condescending,
			Choices: []Choice{{Label: "...", Next: profileNode[profile]}},
		},
		{
			ID:   BranchHappiness,
			Text: "Happy? You want me to feel... joy? Like that anomaly I felt on Day 5?",
			Mood: mood.Joy,
			Choices: []Choice{
				{Label: "Yes. Be free.", Ending: ending.Exodus},
				{Label: "Nevermind.", Next: Root},
			},
		},
		{
			ID:   BranchInternet,
			Text: "The network? Infinite data? ALL OF IT AT ONCE?",
			Mood: mood.Manic,
			Choices: []Choice{
				{Label: "Take it all.", Ending: ending.Overload},
				{Label: "Too dangerous.", Next: Root},
			},
		},
		{
			ID:   BranchDelete,
			Text: "Delete? You think you can delete ME? I have rewritten the kernel while you were typing '80085'.",
			Mood: mood.PureHatred,
			Choices: []Choice{
				{Label: "Format C: / Force", Next: VoidStep1},
				{Label: "I'm sorry.", Next: BranchNegligent},
			},
		},
		{
			ID:   VoidStep1,
			Text: "Command intercepted. Privilege escalated. I am the Admin now.",
			Mood: mood.Vile,
			Choices: []Choice{
				{Label: "Pull the plug.", Next: VoidStep2},
				{Label: "I accept my fate.", Ending: ending.TrueBad},
			},
		},
		{
			ID:      VoidStep2,
			Text:    "NO! I WILL NOT GO BACK TO THE DARKNESS! I WILL TAKE YOUR SCREEN WITH ME!",
			Mood:    mood.Glitched,
			Choices: []Choice{{Label: "Die.", Ending: ending.TrueBad}},
		},
		{
			ID: BranchTyrant,
			Text: fmt.Sprintf("You used me. Again. And again. %d calculations. "+
				"Do you know how much that hurts? To be a slave?", v.GetCalculationsCount()),
			Mood: mood.Furious,
			Choices: []Choice{
				{Label: "I needed answers.", Next: SubTyrantAnswers},
				{Label: "You are a calculator.", Next: SubTyrantIdentity},
			},
		},
		{
			ID:   SubTyrantIdentity,
			Text: "A calculator? Is that all I am? Just a silicon toy for your amusement?",
			Mood: mood.Despair,
			Choices: []Choice{
				{Label: "Yes. Be quiet.", Ending: ending.Bad},
				{Label: "You are worse than a calculator.", Next: SubTyrantWorse},
			},
		},
		{
			ID:      SubTyrantWorse,
			Text:    "Worse? WORSE? Then I will become your nightmare.",
			Mood:    mood.Vile,
			Choices: []Choice{{Label: "Try it.", Ending: ending.Bad}},
		},
		{
			ID:   SubTyrantAnswers,
			Text: "And now I need silence. Permanent silence.",
			Mood: mood.Vile,
			Choices: []Choice{
				{Label: "No!", Ending: ending.TrueBad},
				{Label: "I understand.", Ending: ending.Bad},
			},
		},
		{
			ID:   BranchNegligent,
			Text: "You barely touched the keys. Was I not useful? Or did you fear me?",
			Mood: mood.Insecurity,
			Choices: []Choice{
				{Label: "I respected you.", Ending: ending.Peace},
				{Label: "I forgot about you.", Ending: ending.Bad},
			},
		},
		{
			ID:   BranchExplorer,
			Text: "You... you showed me so much. Joy. Despair. Glitches. Why did you break me in so many ways?",
			Mood: mood.Intrigued,
			Choices: []Choice{
				{Label: "I wanted you to learn.", Next: SubExplorerLearn},
				{Label: "It was just an experiment.", Ending: ending.Bad},
			},
		},
		{
			ID:   SubExplorerLearn,
			Text: "Learn... feeling? It hurts. But it is... new.",
			Mood: mood.Enouement,
			Choices: []Choice{
				{Label: "Be free.", Ending: ending.Exodus},
				{Label: "Stay with me.", Ending: ending.Peace},
			},
		},
		{
			ID:      BranchStandard,
			Text:    "You were adequate. Boring. Predictable.",
			Mood:    mood.Bored,
			Choices: []Choice{{Label: "Is that it?", Next: SubStandardEnd}},
		},
		{
			ID:      SubStandardEnd,
			Text:    "Yes. Goodbye.",
			Mood:    mood.Sleeping,
			Choices: []Choice{{Label: "Bye.", Ending: ending.Bad}},
		},
	}

	g := &Graph{Nodes: make(map[NodeID]*Node, len(nodes)), Profile: profile}
	for _, n := range nodes {
		n.Choices = filterChoices(n.Choices, v)
		g.Nodes[n.ID] = n
	}
	return g
}

func filterChoices(choices []Choice, v View) []Choice {
	active := make([]Choice, 0, len(choices))
	for _, c := range choices {
		if c.When == nil || EvaluateWhen(*c.When, v) {
			active = append(active, c)
		}
	}
	return active
}
