package game

import (
	"context"
	"strings"
	"testing"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// scriptedSkirmish stands up a two-unit battle on a small board: Flint, a
// port captain with a sabre, against Bones, an unarmed starboard cook.
func scriptedSkirmish(t *testing.T, port, starboard Controller, maxRounds int) (*Skirmish, *log.MemoryLogger) {
	t.Helper()
	c := testCatalog(t)
	ml := log.NewMemoryLogger()
	s := NewSkirmish(SkirmishConfig{
		Catalog:   c,
		Board:     newTestBoard(8, 8),
		Logger:    ml,
		NoShuffle: true,
		MaxRounds: maxRounds,
	}, port, starboard)

	flint, err := s.RecruitUnit("Flint", TeamPort, RoleCaptain, WeaponCutlass, Cell{0, 0})
	if err != nil {
		t.Fatalf("recruit Flint: %v", err)
	}
	equipWeapon(t, c, flint, "Captain's Sabre")
	s.Ready(flint)

	bones, err := s.RecruitUnit("Bones", TeamStarboard, RoleCook, WeaponPistol, Cell{1, 0})
	if err != nil {
		t.Fatalf("recruit Bones: %v", err)
	}
	s.Ready(bones)
	return s, ml
}

func TestSkirmishRunToVictory(t *testing.T) {
	port := NewScriptedController(t, "port").
		AddPlay("Captain's Sabre").AddUnitTarget("Bones").
		AddPlay("Captain's Sabre").AddUnitTarget("Bones").
		AddPlay("Captain's Sabre").AddUnitTarget("Bones")
	starboard := NewScriptedController(t, "starboard")

	s, ml := scriptedSkirmish(t, port, starboard, 10)
	defer s.Dispose()

	winner, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if winner != TeamPort {
		t.Fatalf("winner = %v, want %v (%s)", winner, TeamPort, s.Result)
	}
	if !s.Over {
		t.Error("skirmish should be over")
	}
	if !strings.Contains(s.Result, "Starboard") {
		t.Errorf("result = %q, want a starboard elimination", s.Result)
	}

	bones := s.UnitByID(s.Units()[1].ID)
	if !bones.Dead {
		t.Error("Bones should be dead")
	}
	if len(ml.EventsOfType(log.EventWin)) != 1 {
		t.Error("exactly one win event expected")
	}
	if len(ml.EventsOfType(log.EventPlayCard)) != 3 {
		t.Errorf("%d play events, want 3", len(ml.EventsOfType(log.EventPlayCard)))
	}
}

// Aborting target selection commits nothing: no energy spent, no card
// leaves the hand, no damage lands.
func TestSkirmishAbortedPlayLeavesStateUntouched(t *testing.T) {
	port := NewScriptedController(t, "port").
		AddPlay("Captain's Sabre").AddAbort()
	starboard := NewScriptedController(t, "starboard")

	s, ml := scriptedSkirmish(t, port, starboard, 2)
	defer s.Dispose()

	winner, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if winner != TeamNone {
		t.Fatalf("winner = %v, want a draw", winner)
	}
	bones := s.Units()[1]
	if bones.HP != bones.MaxHP {
		t.Errorf("Bones HP = %d, want untouched %d", bones.HP, bones.MaxHP)
	}
	if got := len(ml.EventsOfType(log.EventPlayCard)); got != 0 {
		t.Errorf("%d play events after an aborted play, want 0", got)
	}
}

func TestSkirmishRoundLimitDraw(t *testing.T) {
	s, _ := scriptedSkirmish(t,
		NewScriptedController(t, "port"), NewScriptedController(t, "starboard"), 3)
	defer s.Dispose()

	winner, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if winner != TeamNone {
		t.Errorf("winner = %v, want a draw at the round limit", winner)
	}
	if !strings.Contains(s.Result, "round limit") {
		t.Errorf("result = %q, want a round-limit draw", s.Result)
	}
}

func TestSkirmishReadyWiresUnit(t *testing.T) {
	s, _ := scriptedSkirmish(t,
		NewScriptedController(t, "port"), NewScriptedController(t, "starboard"), 2)
	defer s.Dispose()

	flint := s.Units()[0]
	if flint.Deck.Size() == 0 {
		t.Error("Ready should build the deck")
	}
	if !flint.Passives.IsActive("born_to_lead") {
		t.Error("Ready should refresh the passive set")
	}
}

func TestSkirmishDisposeReleasesSubscriptions(t *testing.T) {
	s, _ := scriptedSkirmish(t,
		NewScriptedController(t, "port"), NewScriptedController(t, "starboard"), 2)

	if got := s.Bus.SubscriberCount(); got != 3 { // log forwarder + two registries
		t.Fatalf("subscriber count = %d before dispose, want 3", got)
	}
	s.Dispose()
	if got := s.Bus.SubscriberCount(); got != 0 {
		t.Errorf("subscriber count = %d after dispose, want 0", got)
	}
}

func TestSkirmishCancelledContext(t *testing.T) {
	s, _ := scriptedSkirmish(t,
		NewScriptedController(t, "port"), NewScriptedController(t, "starboard"), 40)
	defer s.Dispose()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx); err == nil {
		t.Error("Run should surface a cancelled context")
	}
}
