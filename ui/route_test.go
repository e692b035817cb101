package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpticalFlyer/retain/event"
	"github.com/OpticalFlyer/retain/geom"
	"github.com/OpticalFlyer/retain/mouse"
	"github.com/OpticalFlyer/retain/ui"
	"github.com/OpticalFlyer/retain/ui/uitest"
)

func TestRouteMove(t *testing.T) {
	from, to := geom.Pt(0, 0.5), geom.Pt(1, 0.5)
	entrance, exit := geom.Pt(0.25, 0.5), geom.Pt(0.75, 0.5)
	all := ui.Subscriptions{MouseMove: true, MouseEnter: true, MouseLeave: true}

	tests := []struct {
		name string
		subs ui.Subscriptions
		li   geom.LineIntersection
		want []string
	}{
		{
			name: "inside",
			subs: all,
			li:   geom.Inside(),
			want: []string{"p: Move{mouse#1, (0.0000, 0.5000) -> (1.0000, 0.5000)}"},
		},
		{
			name: "outside",
			subs: all,
			li:   geom.Outside(),
		},
		{
			name: "enters",
			subs: all,
			li:   geom.Entering(entrance),
			want: []string{
				"p: Enter{mouse#1, (0.2500, 0.5000)}",
				"p: Move{mouse#1, (0.2500, 0.5000) -> (1.0000, 0.5000)}",
			},
		},
		{
			name: "enters at the end",
			subs: all,
			li:   geom.Entering(to),
			want: []string{"p: Enter{mouse#1, (1.0000, 0.5000)}"},
		},
		{
			name: "exits",
			subs: all,
			li:   geom.Exiting(exit),
			want: []string{
				"p: Move{mouse#1, (0.0000, 0.5000) -> (0.7500, 0.5000)}",
				"p: Leave{mouse#1, (0.7500, 0.5000)}",
			},
		},
		{
			name: "crosses",
			subs: all,
			li:   geom.Crossing(entrance, exit),
			want: []string{
				"p: Enter{mouse#1, (0.2500, 0.5000)}",
				"p: Move{mouse#1, (0.2500, 0.5000) -> (0.7500, 0.5000)}",
				"p: Leave{mouse#1, (0.7500, 0.5000)}",
			},
		},
		{
			name: "crosses without enter",
			subs: ui.Subscriptions{MouseMove: true, MouseLeave: true},
			li:   geom.Crossing(entrance, exit),
			want: []string{
				"p: Move{mouse#1, (0.2500, 0.5000) -> (0.7500, 0.5000)}",
				"p: Leave{mouse#1, (0.7500, 0.5000)}",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := uitest.NewProbe("p", tt.subs)
			buddy := ui.NewRootBuddy(mouse.NewStore())
			buddy.Attach()
			probe.OnAttach(buddy)
			*probe.Log = nil

			ui.RouteMove(probe, buddy, &buddy.BuddyCore, event.NewMove(mouse.Mouse(1), from, to), tt.li)
			assert.Equal(t, tt.want, *probe.Log)
		})
	}
}
