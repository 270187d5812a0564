package core_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/metrics"
)

// counter is a tiny state space over ints: "inc" adds 1, "dbl" doubles.
type counter struct {
	start, goal int
}

func (c counter) InitialState() int    { return c.start }
func (c counter) Actions(int) []string { return []string{"inc", "dbl"} }
func (c counter) IsGoal(s int) bool    { return s == c.goal }
func (c counter) Result(s int, a string) int {
	if a == "dbl" {
		return s * 2
	}
	return s + 1
}

// pricedCounter charges the resulting value minus the source value.
type pricedCounter struct{ counter }

func (pricedCounter) StepCost(from int, _ string, to int) float64 { return float64(to - from) }

// recorderSpy remembers the last Record call.
type recorderSpy struct {
	calls    int
	strategy string
	outcome  string
	expanded int
}

func (r *recorderSpy) Record(strategy, outcome string, m *metrics.Metrics) {
	r.calls++
	r.strategy, r.outcome = strategy, outcome
	r.expanded = m.Int(metrics.NodesExpanded)
}

func TestTree_RootActionsEmpty(t *testing.T) {
	tree := core.NewTree[int, string](7)
	root := tree.Root()

	assert.True(t, tree.Node(root).IsRoot())
	assert.Equal(t, 0, tree.Node(root).Depth)
	acts := tree.Actions(root)
	assert.NotNil(t, acts)
	assert.Empty(t, acts)
}

func TestExpander_DefaultStepCost(t *testing.T) {
	p := counter{start: 1, goal: 100}
	tree := core.NewTree[int, string](p.InitialState())
	x := core.NewExpander[int, string](p, tree)

	children := slices.Collect(x.Expand(tree.Root()))
	require.Len(t, children, 2)
	assert.Equal(t, 1, x.Expansions())

	inc, dbl := tree.Node(children[0]), tree.Node(children[1])
	assert.Equal(t, 2, inc.State)
	assert.Equal(t, "inc", inc.Action)
	assert.Equal(t, 2, dbl.State)
	assert.Equal(t, "dbl", dbl.Action)
	for _, n := range []core.Node[int, string]{inc, dbl} {
		assert.Equal(t, core.DefaultStepCost, n.PathCost)
		assert.Equal(t, 1, n.Depth)
		assert.Equal(t, tree.Root(), n.Parent)
	}
}

func TestExpander_CountsOncePerCall(t *testing.T) {
	p := counter{start: 1, goal: 100}
	tree := core.NewTree[int, string](p.InitialState())
	x := core.NewExpander[int, string](p, tree)

	// stop after the first child: still one expansion
	for range x.Expand(tree.Root()) {
		break
	}
	// never consumed: still counted
	_ = x.Expand(tree.Root())

	assert.Equal(t, 2, x.Expansions())
	assert.Equal(t, 2, tree.Len(), "only the consumed child is stored")
}

func TestExpander_StepCoster(t *testing.T) {
	p := pricedCounter{counter{start: 3, goal: 100}}
	tree := core.NewTree[int, string](p.InitialState())
	x := core.NewExpander[int, string](p, tree)

	children := slices.Collect(x.Expand(tree.Root()))
	require.Len(t, children, 2)
	assert.Equal(t, 1.0, tree.Node(children[0]).PathCost) // 3 → 4
	assert.Equal(t, 3.0, tree.Node(children[1]).PathCost) // 3 → 6

	grand := slices.Collect(x.Expand(children[1]))
	assert.Equal(t, 4.0, tree.Node(grand[0]).PathCost) // 6 → 7
	assert.Equal(t, []string{"dbl", "inc"}, tree.Actions(grand[0]))
}

func TestExpander_NegativeStepCost(t *testing.T) {
	// doubling a negative number lowers it, so the cost is negative
	p := pricedCounter{counter{start: -2, goal: 100}}
	tree := core.NewTree[int, string](p.InitialState())
	x := core.NewExpander[int, string](p, tree)

	children := slices.Collect(x.Expand(tree.Root()))
	assert.Len(t, children, 1, "expansion stops at the invalid cost")
	assert.ErrorIs(t, x.Err(), core.ErrNegativeStepCost)
}

func TestTree_Truncate(t *testing.T) {
	p := counter{start: 1, goal: 100}
	tree := core.NewTree[int, string](p.InitialState())
	x := core.NewExpander[int, string](p, tree)
	_ = slices.Collect(x.Expand(tree.Root()))
	require.Equal(t, 3, tree.Len())

	tree.Truncate(2)
	assert.Equal(t, 2, tree.Len())
	tree.Truncate(0)
	assert.Equal(t, 1, tree.Len(), "root survives")
}

func TestSolutionVersusFailure(t *testing.T) {
	tree := core.NewTree[int, string](5)
	sol := core.Solution(tree, tree.Root())
	fail := core.FailureResult[string]()

	assert.Empty(t, sol.Actions)
	assert.Empty(t, fail.Actions)
	assert.Equal(t, core.Solved, sol.Outcome)
	assert.Equal(t, core.Failure, fail.Outcome)
	assert.True(t, sol.Solved())
	assert.False(t, fail.Solved())
}

func TestReplay(t *testing.T) {
	p := counter{start: 1, goal: 6}
	assert.Equal(t, 6, core.Replay[int, string](p, []string{"inc", "inc", "dbl"}))
	assert.Equal(t, 1, core.Replay[int, string](p, nil))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "failure", core.Failure.String())
	assert.Equal(t, "solved", core.Solved.String())
	assert.Equal(t, "cutoff", core.Cutoff.String())
	assert.Equal(t, "unknown", core.Outcome(42).String())
}

func TestOptions(t *testing.T) {
	o, err := core.Apply()
	require.NoError(t, err)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, "bfs", o.Label("bfs"))

	_, err = core.Apply(core.WithName(""))
	assert.ErrorIs(t, err, core.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	o, err = core.Apply(core.WithContext(ctx), core.WithName("route"), core.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, ctx, o.Ctx)
	assert.Equal(t, "route", o.Label("bfs"))
	assert.NotNil(t, o.Logger, "nil logger keeps the default")
}

func TestOptions_Report(t *testing.T) {
	var buf bytes.Buffer
	spy := &recorderSpy{}
	o, err := core.Apply(
		core.WithLogger(logging.NewWithWriter(&buf, slog.LevelDebug)),
		core.WithRecorder(spy),
	)
	require.NoError(t, err)

	m := metrics.New()
	m.Set(metrics.NodesExpanded, 4)
	o.Report("ucs", core.Solved, m, nil)

	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, "ucs", spy.strategy)
	assert.Equal(t, "solved", spy.outcome)
	assert.Equal(t, 4, spy.expanded)
	assert.Contains(t, buf.String(), "search finished")
	assert.Contains(t, buf.String(), "strategy=ucs")

	// aborted searches are logged but not recorded
	o.Report("ucs", core.Failure, m, context.Canceled)
	assert.Equal(t, 1, spy.calls)
	assert.Contains(t, buf.String(), "err=")
}
