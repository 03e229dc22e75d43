package layout

import "github.com/matzehuels/meetlayout/pkg/geom"

// Message is a typed update published by the engine and the tiler. The set
// of implementations is closed; switch on the concrete type.
type Message interface {
	// Type returns the wire name of the message, e.g. "SET_NAVBAR_OUTPUT".
	Type() string
	message()
}

// SetLayoutInput replaces the whole input record after a reset.
type SetLayoutInput struct{ Input Input }

// SetNavbarOutput publishes the navbar region.
type SetNavbarOutput struct{ Output RegionOutput }

// SetActionBarOutput publishes the action bar region.
type SetActionBarOutput struct{ Output RegionOutput }

// SetSidebarNavigationOutput publishes the navigation sidebar region.
type SetSidebarNavigationOutput struct{ Output RegionOutput }

// SetSidebarContentOutput publishes the content sidebar region.
type SetSidebarContentOutput struct{ Output RegionOutput }

// SetMediaAreaSize publishes the media area and the main size it was cut
// from.
type SetMediaAreaSize struct {
	Main geom.Size
	Area geom.Box
}

// SetCameraDockOutput publishes the camera dock region.
type SetCameraDockOutput struct{ Output RegionOutput }

// SetPresentationOutput publishes the presentation region.
type SetPresentationOutput struct{ Output RegionOutput }

// SetScreenShareOutput publishes the screenshare region.
type SetScreenShareOutput struct{ Output RegionOutput }

// SetExternalVideoOutput publishes the external video region.
type SetExternalVideoOutput struct{ Output RegionOutput }

// SetCameraDockOptimalGridSize feeds the tiler's chosen grid footprint back
// into the input record.
type SetCameraDockOptimalGridSize struct{ Size geom.Size }

func (SetLayoutInput) Type() string               { return "SET_LAYOUT_INPUT" }
func (SetNavbarOutput) Type() string              { return "SET_NAVBAR_OUTPUT" }
func (SetActionBarOutput) Type() string           { return "SET_ACTIONBAR_OUTPUT" }
func (SetSidebarNavigationOutput) Type() string   { return "SET_SIDEBAR_NAVIGATION_OUTPUT" }
func (SetSidebarContentOutput) Type() string      { return "SET_SIDEBAR_CONTENT_OUTPUT" }
func (SetMediaAreaSize) Type() string             { return "SET_MEDIA_AREA_SIZE" }
func (SetCameraDockOutput) Type() string          { return "SET_CAMERA_DOCK_OUTPUT" }
func (SetPresentationOutput) Type() string        { return "SET_PRESENTATION_OUTPUT" }
func (SetScreenShareOutput) Type() string         { return "SET_SCREEN_SHARE_OUTPUT" }
func (SetExternalVideoOutput) Type() string       { return "SET_EXTERNAL_VIDEO_OUTPUT" }
func (SetCameraDockOptimalGridSize) Type() string { return "SET_CAMERA_DOCK_OPTIMAL_GRID_SIZE" }

func (SetLayoutInput) message()               {}
func (SetNavbarOutput) message()              {}
func (SetActionBarOutput) message()           {}
func (SetSidebarNavigationOutput) message()   {}
func (SetSidebarContentOutput) message()      {}
func (SetMediaAreaSize) message()             {}
func (SetCameraDockOutput) message()          {}
func (SetPresentationOutput) message()        {}
func (SetScreenShareOutput) message()         {}
func (SetExternalVideoOutput) message()       {}
func (SetCameraDockOptimalGridSize) message() {}

// OutputMessages returns the messages that publish out, in dispatch order.
func OutputMessages(out Output) []Message {
	return []Message{
		SetNavbarOutput{out.Navbar},
		SetActionBarOutput{out.ActionBar},
		SetSidebarNavigationOutput{out.SidebarNavigation},
		SetSidebarContentOutput{out.SidebarContent},
		SetMediaAreaSize{Main: out.Main, Area: out.MediaArea},
		SetCameraDockOutput{out.CameraDock},
		SetPresentationOutput{out.Presentation},
		SetScreenShareOutput{out.ScreenShare},
		SetExternalVideoOutput{out.ExternalVideo},
	}
}

// Dispatcher receives published messages.
type Dispatcher interface {
	Dispatch(m Message)
}

// BatchDispatcher receives a group of messages that belong to one pass.
// Implementations apply them as a unit.
type BatchDispatcher interface {
	Dispatcher
	DispatchAll(ms ...Message)
}

// DispatchAll delivers ms as one batch when d supports it and one by one
// otherwise.
func DispatchAll(d Dispatcher, ms ...Message) {
	if b, ok := d.(BatchDispatcher); ok {
		b.DispatchAll(ms...)
		return
	}
	for _, m := range ms {
		d.Dispatch(m)
	}
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(Message)

func (f DispatcherFunc) Dispatch(m Message) { f(m) }

// ChanDispatcher sends every message on a channel. Dispatch blocks until
// the message is received.
type ChanDispatcher chan<- Message

func (c ChanDispatcher) Dispatch(m Message) { c <- m }

// Fanout delivers each message to every dispatcher in order.
type Fanout []Dispatcher

func (f Fanout) Dispatch(m Message) {
	for _, d := range f {
		d.Dispatch(m)
	}
}

func (f Fanout) DispatchAll(ms ...Message) {
	for _, d := range f {
		DispatchAll(d, ms...)
	}
}
