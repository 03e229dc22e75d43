package layout

import (
	"testing"

	"github.com/matzehuels/meetlayout/pkg/geom"
)

func TestStoreApplyNotifiesOnChange(t *testing.T) {
	store := NewStore(desktop())

	var calls int
	var last State
	unsubscribe := store.Subscribe(StateObserverFunc(func(prev, next State) {
		calls++
		last = next
	}))

	store.Apply(WindowResized(1280, 800))
	if calls != 0 {
		t.Fatalf("unchanged state notified %d times", calls)
	}

	got := store.Apply(WindowResized(1024, 768), CamerasChanged(2))
	if calls != 1 {
		t.Fatalf("one Apply with two changes notified %d times, want 1", calls)
	}
	if last != got || got.Window.Width != 1024 || got.Input.CameraDock.NumCameras != 2 {
		t.Errorf("observer saw %+v, Apply returned %+v", last, got)
	}

	unsubscribe()
	unsubscribe()
	store.Apply(CamerasChanged(3))
	if calls != 1 {
		t.Errorf("unsubscribed observer was notified")
	}
}

func TestStoreObserversRunInOrder(t *testing.T) {
	store := NewStore(desktop())
	var order []int
	for i := range 3 {
		store.Subscribe(StateObserverFunc(func(_, _ State) { order = append(order, i) }))
	}
	store.Apply(FontSizeChanged(18))

	if len(order) != 3 || order[0] != 0 || order[1] != 1 || order[2] != 2 {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
}

func TestStoreObserverCanReadStore(t *testing.T) {
	store := NewStore(desktop())
	var seen State
	store.Subscribe(StateObserverFunc(func(_, _ State) { seen = store.State() }))

	store.Apply(CamerasChanged(1))
	if seen.Input.CameraDock.NumCameras != 1 {
		t.Errorf("observer read %d cameras, want 1", seen.Input.CameraDock.NumCameras)
	}
}

func TestStoreDispatchAllIsOneUpdate(t *testing.T) {
	store := NewStore(desktop())
	out := mustCalculate(t, store.State())

	var outputs int
	store.SubscribeOutput(OutputObserverFunc(func(_, _ Output) { outputs++ }))

	store.DispatchAll(OutputMessages(out)...)
	if outputs != 1 {
		t.Fatalf("output observers notified %d times, want 1", outputs)
	}
	if store.Output() != out {
		t.Errorf("store output differs from the dispatched output")
	}

	store.DispatchAll(OutputMessages(out)...)
	if outputs != 1 {
		t.Errorf("republishing the same output notified observers")
	}
}

func TestStoreDispatchUpdatesInput(t *testing.T) {
	store := NewStore(desktop())

	var changed bool
	store.Subscribe(StateObserverFunc(func(_, _ State) { changed = true }))

	store.Dispatch(SetCameraDockOptimalGridSize{Size: geom.Size{Width: 1064, Height: 800}})
	if !changed {
		t.Fatal("optimal grid size did not notify state observers")
	}
	if got := store.State().Input.CameraDock.OptimalGrid; got != (geom.Size{Width: 1064, Height: 800}) {
		t.Errorf("optimal grid = %+v", got)
	}

	in := DefaultInput()
	in.CameraDock.NumCameras = 7
	store.Dispatch(SetLayoutInput{Input: in})
	if store.State().Input != in {
		t.Errorf("SetLayoutInput was not applied")
	}
}

func TestChanges(t *testing.T) {
	s := desktop()
	for _, c := range []Change{
		DeviceClassChanged(TabletLandscape),
		SidebarNavigationToggled(false),
		SidebarNavigationResized(120),
		SidebarContentResized(300, 400),
		FullscreenChanged(ElementWebcams, GroupWebcams),
		LoadedModeChanged(Both),
		BannerChanged(true, false),
		SlideChanged(3, Slide{Num: 2, Size: geom.Size{Width: 4, Height: 3}}),
		PanelSelected(PanelPoll),
	} {
		c(&s)
	}

	in := s.Input
	switch {
	case s.DeviceClass != TabletLandscape:
		t.Error("device class not applied")
	case in.SidebarNavigation.IsOpen || in.SidebarNavigation.Width != 120:
		t.Error("navigation changes not applied")
	case !in.SidebarContent.IsOpen || in.SidebarContent.Panel != PanelPoll || in.CurrentPanelType != PanelPoll:
		t.Error("panel selection not applied")
	case in.SidebarContent.Width != 300 || in.SidebarContent.Height != 400:
		t.Error("content resize not applied")
	case s.Fullscreen.Group != GroupWebcams || s.LoadedMode != Both:
		t.Error("fullscreen or loaded mode not applied")
	case !in.Banner.HasBanner || in.Notifications.HasNotification:
		t.Error("banner not applied")
	case !in.Presentation.IsOpen || in.Presentation.SlidesLength != 3:
		t.Error("slide not applied")
	}

	PanelSelected(PanelNone)(&s)
	if s.Input.SidebarContent.IsOpen {
		t.Error("selecting no panel should close the content sidebar")
	}

	Replace(desktop())(&s)
	if s != desktop() {
		t.Error("Replace did not swap the state")
	}
}

func TestFanoutBatchesWhereSupported(t *testing.T) {
	store := NewStore(desktop())
	var batches int
	store.Subscribe(StateObserverFunc(func(prev, next State) { batches++ }))

	var types []string
	f := Fanout{store, DispatcherFunc(func(m Message) { types = append(types, m.Type()) })}

	in := desktop().Input
	in.CameraDock.NumCameras = 2
	DispatchAll(f,
		SetLayoutInput{Input: in},
		SetCameraDockOptimalGridSize{Size: geom.Size{Width: 600, Height: 400}},
	)

	if batches != 1 {
		t.Errorf("store saw %d updates, want 1", batches)
	}
	if want := []string{"SET_LAYOUT_INPUT", "SET_CAMERA_DOCK_OPTIMAL_GRID_SIZE"}; len(types) != 2 || types[0] != want[0] || types[1] != want[1] {
		t.Errorf("func dispatcher saw %v, want %v", types, want)
	}
	if got := store.State().Input.CameraDock; got.NumCameras != 2 || got.OptimalGrid.Width != 600 {
		t.Errorf("camera dock input = %+v", got)
	}
}
