package scene

import (
	"log/slog"

	"linviz/internal/geometry"
	"linviz/internal/history"
	"linviz/internal/linear"
	"linviz/internal/logging"
)

// Projection holds the handles of everything drawn for the current function.
type Projection struct {
	surface Surface
	log     *slog.Logger

	ready  bool
	line   Handle
	yMark  Handle
	xMark  Handle
	labels []Handle
	decor  []Handle
	points []Handle
}

func NewProjection(surface Surface, log *slog.Logger) *Projection {
	if log == nil {
		log = logging.NewNop()
	}
	return &Projection{
		surface: surface,
		log:     log,
		line:    NoHandle,
		yMark:   NoHandle,
		xMark:   NoHandle,
	}
}

// Init creates the persistent primitives from the first snapshot. Calling it
// again only applies the snapshot.
func (p *Projection) Init(s geometry.Snapshot) {
	if p.ready {
		p.ApplyGeometry(s)
		return
	}
	p.ready = true
	p.addDecoration(s.Extent)
	p.line = p.surface.AddLine(s.Line, ColorLine)
	p.yMark = p.surface.AddMarker(s.YIntercept.Pos, InterceptRadius, ColorYIntercept)
	p.xMark = p.surface.AddMarker(s.XIntercept.Pos, InterceptRadius, ColorXIntercept)
	p.labels = make([]Handle, 0, len(s.Labels))
	dropped := 0
	for _, l := range s.Labels {
		h := p.surface.AddLabel(l.Pos, l.Text, ColorLabel)
		if !h.Valid() {
			dropped++
			continue
		}
		p.labels = append(p.labels, h)
	}
	if dropped > 0 {
		p.log.Warn("surface full, tick labels dropped", "dropped", dropped, "extent", s.Extent)
	}
	p.ApplyGeometry(s)
}

// Capacity returns the mesh and sprite slots a surface needs to hold every
// persistent primitive for extent plus points point markers.
func Capacity(extent float64, points int) (meshes, sprites int) {
	n := int(extent)
	grid := 2 * (2*n + 1)
	meshes = grid + 3 + 1 + 2 + max(points, 0)
	sprites = len(geometry.TickLabels(extent))
	return meshes, sprites
}

// addDecoration draws the XY grid and the three axes.
func (p *Projection) addDecoration(extent float64) {
	n := int(extent)
	for i := -n; i <= n; i++ {
		v := float64(i)
		p.decor = append(p.decor,
			p.surface.AddLine(geometry.Segment{
				From: geometry.Vec3{X: v, Y: -extent},
				To:   geometry.Vec3{X: v, Y: extent},
			}, ColorGrid),
			p.surface.AddLine(geometry.Segment{
				From: geometry.Vec3{X: -extent, Y: v},
				To:   geometry.Vec3{X: extent, Y: v},
			}, ColorGrid),
		)
	}
	p.decor = append(p.decor,
		p.surface.AddLine(geometry.Segment{To: geometry.Vec3{X: extent}}, ColorAxisX),
		p.surface.AddLine(geometry.Segment{To: geometry.Vec3{Y: extent}}, ColorAxisY),
		p.surface.AddLine(geometry.Segment{To: geometry.Vec3{Z: extent}}, ColorAxisZ),
	)
}

// ApplyGeometry mutates the line and intercept markers in place.
func (p *Projection) ApplyGeometry(s geometry.Snapshot) {
	if !p.ready {
		p.Init(s)
		return
	}
	p.surface.UpdateLine(p.line, s.Line)
	p.surface.MoveMarker(p.yMark, s.YIntercept.Pos)
	p.surface.SetVisible(p.yMark, s.YIntercept.Visible)
	if s.XIntercept.Visible {
		p.surface.MoveMarker(p.xMark, s.XIntercept.Pos)
	}
	p.surface.SetVisible(p.xMark, s.XIntercept.Visible)
}

// ClearPointMarkers removes every displayed point marker.
func (p *Projection) ClearPointMarkers() {
	for _, h := range p.points {
		p.surface.Remove(h)
	}
	p.points = p.points[:0]
}

// ShowPoints replaces the displayed markers with one per parseable row.
// Rows that do not parse as finite numbers are skipped.
func (p *Projection) ShowPoints(rows []history.Row) (shown, skipped int) {
	p.ClearPointMarkers()
	for _, r := range rows {
		x, errX := linear.ParseValue(r.X)
		y, errY := linear.ParseValue(r.Y)
		if errX != nil || errY != nil {
			skipped++
			p.log.Warn("skipping unparseable row", "x", r.X, "y", r.Y)
			continue
		}
		h := p.surface.AddMarker(geometry.Vec3{X: x, Y: y}, PointRadius, ColorPoint)
		if !h.Valid() {
			skipped++
			p.log.Warn("surface full, point marker dropped", "x", r.X, "y", r.Y)
			continue
		}
		p.points = append(p.points, h)
		shown++
	}
	return shown, skipped
}

// PointMarkers returns the number of displayed point markers.
func (p *Projection) PointMarkers() int { return len(p.points) }

// XInterceptHandle is the handle of the x-intercept marker.
func (p *Projection) XInterceptHandle() Handle { return p.xMark }

func (p *Projection) YInterceptHandle() Handle { return p.yMark }

func (p *Projection) LineHandle() Handle { return p.line }

// LabelCount returns the number of tick labels placed on the surface.
func (p *Projection) LabelCount() int { return len(p.labels) }
