package runtime_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/derelict/internal/runtime"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	g, err := story.Graph()
	require.NoError(t, err)
	return runtime.NewEngine(g, opts...)
}

func TestEngine_Start(t *testing.T) {
	engine := newEngine(t, runtime.WithSessionIDGenerator(func() string { return "fixed" }))

	state, render, err := engine.Start(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "fixed", state.SessionID)
	assert.Equal(t, story.Start, state.CurrentSceneID)
	assert.Equal(t, []string{story.Start}, state.History)
	assert.Empty(t, state.Inventory)
	assert.Equal(t, domain.StatusActive, state.Status)

	assert.Contains(t, render.Text, "Welcome to the Sci-Fi Adventure Game!")
	assert.Equal(t, "spaceship.png", render.Media)
	require.Len(t, render.Choices, 3)
	assert.Equal(t, domain.ChoiceView{ID: "explore-ship", Label: "Explore the spaceship", Kind: domain.ChoiceKindPlain}, render.Choices[0])
	assert.Equal(t, domain.ChoiceKindExit, render.Choices[2].Kind)
}

func TestEngine_StartGeneratesSessionIDs(t *testing.T) {
	engine := newEngine(t)
	a, _, err := engine.Start(context.Background())
	require.NoError(t, err)
	b, _, err := engine.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, a.SessionID)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestEngine_WithEntryScene(t *testing.T) {
	engine := newEngine(t, runtime.WithEntryScene(story.EngineRoom))
	state, _, err := engine.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, story.EngineRoom, state.CurrentSceneID)

	bad := newEngine(t, runtime.WithEntryScene("bridge"))
	_, _, err = bad.Start(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnknownScene)
}

func TestEngine_StorageRoomGrantIsIdempotent(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	state, first, err := engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.Inventory{"Small Key"}, state.Inventory)
	assert.Contains(t, first.Text, "Added to inventory")

	state, second, err := engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)
	assert.Equal(t, domain.Inventory{"Small Key"}, state.Inventory)
	assert.Contains(t, second.Text, "nothing new")
	assert.NotEqual(t, first.Text, second.Text)
	assert.Equal(t, 2, state.Visits(story.StorageRoom))
}

func TestEngine_EnterDoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	next, _, err := engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)

	assert.Equal(t, story.Start, state.CurrentSceneID)
	assert.Empty(t, state.Inventory)
	assert.Len(t, state.History, 1)
	assert.Equal(t, story.StorageRoom, next.CurrentSceneID)
}

func TestEngine_EnterUnknownScene(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	_, _, err = engine.Enter(ctx, state, "bridge")
	require.Error(t, err)

	var unknown *domain.UnknownSceneError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "bridge", unknown.SceneID)
}

func TestEngine_ChooseByIDLabelAndIndex(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	tests := []struct {
		name string
		key  string
		want string
	}{
		{"ID", "explore-ship", story.ExploreShip},
		{"Label", "explore the SPACESHIP", story.ExploreShip},
		{"Index", "2", story.Inventory},
		{"Index With Spaces", " 1 ", story.ExploreShip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, render, err := engine.Choose(ctx, state, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next.CurrentSceneID)
			assert.Equal(t, tt.want, render.SceneID)
		})
	}
}

func TestEngine_ChooseUnknown(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	for _, key := range []string{"", "fly", "0", "4", "solve-riddle"} {
		_, _, err := engine.Choose(ctx, state, key)
		assert.ErrorIsf(t, err, domain.ErrUnknownChoice, "key %q", key)
	}

	var unknown *domain.UnknownChoiceError
	_, _, err = engine.Choose(ctx, state, "fly")
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, story.Start, unknown.SceneID)
	assert.Equal(t, "fly", unknown.Key)
}

func TestEngine_ChooseExit(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	next, render, err := engine.Choose(ctx, state, "exit-game")
	require.NoError(t, err)
	assert.True(t, render.Exit)
	assert.Equal(t, story.Start, next.CurrentSceneID)
	assert.Equal(t, domain.StatusActive, next.Status, "exit needs host confirmation")
}

func TestEngine_ExitedStateIsRejected(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)
	state.Status = domain.StatusExited

	_, _, err = engine.Choose(ctx, state, "1")
	assert.ErrorIs(t, err, domain.ErrSessionEnded)
	_, _, err = engine.Enter(ctx, state, story.StorageRoom)
	assert.ErrorIs(t, err, domain.ErrSessionEnded)
	_, _, err = engine.Resolve(ctx, state, "echo")
	assert.ErrorIs(t, err, domain.ErrSessionEnded)
}

func TestEngine_InventoryScene(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	_, render, err := engine.Choose(ctx, state, "check-inventory")
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyInventoryMessage, render.Text)

	state, _, err = engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)
	_, render, err = engine.Enter(ctx, state, story.Inventory)
	require.NoError(t, err)
	assert.Equal(t, "Your inventory contains:\n- Small Key", render.Text)
}

func TestEngine_InventoryReport(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	report := engine.InventoryReport(state)
	assert.True(t, report.Empty)
	assert.Equal(t, domain.EmptyInventoryMessage, report.String())

	state, _, err = engine.Enter(ctx, state, story.StabilizeReactor)
	require.NoError(t, err)
	state, _, err = engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)

	report = engine.InventoryReport(state)
	assert.False(t, report.Empty)
	assert.Equal(t, []string{"Alien Artifact", "Small Key"}, report.Items)
}

func TestEngine_EscapePodAnimation(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)

	_, _, err = engine.CompleteAnimation(ctx, state)
	assert.ErrorIs(t, err, domain.ErrNotAnimating)

	state, _, err = engine.Enter(ctx, state, story.ControlPanel)
	require.NoError(t, err)
	state, render, err := engine.Choose(ctx, state, "escape-pod")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAnimating, state.Status)
	require.NotNil(t, render.Animation)
	assert.Equal(t, "escape_pod.png", render.Animation.Media)
	assert.Empty(t, render.Choices)
	assert.False(t, render.Terminal)

	state, render, err = engine.CompleteAnimation(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, story.EscapePodLaunched, state.CurrentSceneID)
	assert.Equal(t, domain.StatusActive, state.Status)
	assert.Contains(t, render.Text, "Game Over")
	assert.True(t, render.Terminal)
	require.Len(t, render.Choices, 1)
	assert.Equal(t, domain.ChoiceKindExit, render.Choices[0].Kind)
}

func TestEngine_RenderIsReadOnly(t *testing.T) {
	ctx := context.Background()
	engine := newEngine(t)
	state, _, err := engine.Start(ctx)
	require.NoError(t, err)
	state, entered, err := engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)

	before := state.Clone()
	again, err := engine.Render(ctx, state)
	require.NoError(t, err)
	assert.Equal(t, entered, again)
	assert.Equal(t, before, state)
}

func TestEngine_Hooks(t *testing.T) {
	ctx := context.Background()
	var entered, left, items []string
	var outcomes []domain.Outcome

	hooks := domain.LifecycleHooks{
		OnSceneEnter:  func(_ context.Context, e *domain.SceneEvent) { entered = append(entered, e.SceneID) },
		OnSceneLeave:  func(_ context.Context, e *domain.SceneEvent) { left = append(left, e.SceneID) },
		OnItemGranted: func(_ context.Context, e *domain.ItemEvent) { items = append(items, e.Item) },
		OnGuardResolved: func(_ context.Context, e *domain.GuardEvent) {
			outcomes = append(outcomes, e.Outcome)
		},
	}
	engine := newEngine(t, runtime.WithLifecycleHooks(hooks))

	state, _, err := engine.Start(ctx)
	require.NoError(t, err)
	state, _, err = engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)
	state, _, err = engine.Enter(ctx, state, story.StorageRoom)
	require.NoError(t, err)
	state, _, err = engine.Enter(ctx, state, story.AlienChamber)
	require.NoError(t, err)
	state, _, err = engine.Resolve(ctx, state, "41")
	require.NoError(t, err)
	_, _, err = engine.Resolve(ctx, state, "42")
	require.NoError(t, err)

	assert.Equal(t, []string{story.Start, story.StorageRoom, story.StorageRoom, story.AlienChamber, story.PortalAdventure}, entered)
	assert.Equal(t, []string{story.Start, story.StorageRoom, story.StorageRoom, story.AlienChamber}, left)
	assert.Equal(t, []string{"Small Key"}, items)
	assert.Equal(t, []domain.Outcome{domain.OutcomeFailure, domain.OutcomeSuccess}, outcomes)
}
