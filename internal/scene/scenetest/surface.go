// Package scenetest provides an in-memory scene.Surface for tests.
package scenetest

import (
	"linviz/internal/geometry"
	"linviz/internal/scene"
)

// Kind is the type of a recorded primitive.
type Kind uint8

const (
	KindLine Kind = iota
	KindMarker
	KindLabel
)

// Prim is one live primitive.
type Prim struct {
	Kind    Kind
	Seg     geometry.Segment
	Pos     geometry.Vec3
	Radius  float64
	Text    string
	Color   scene.Color
	Visible bool
}

// Surface records primitives by handle and counts every call.
type Surface struct {
	// Limit caps the number of live primitives; 0 means unlimited.
	Limit int

	Prims   map[scene.Handle]*Prim
	Adds    int
	Updates int
	Removes int

	next scene.Handle
}

var _ scene.Surface = (*Surface)(nil)

func New() *Surface {
	return &Surface{Prims: make(map[scene.Handle]*Prim)}
}

func (s *Surface) add(p *Prim) scene.Handle {
	if s.Limit > 0 && len(s.Prims) >= s.Limit {
		return scene.NoHandle
	}
	h := s.next
	s.next++
	p.Visible = true
	s.Prims[h] = p
	s.Adds++
	return h
}

func (s *Surface) AddLine(seg geometry.Segment, c scene.Color) scene.Handle {
	return s.add(&Prim{Kind: KindLine, Seg: seg, Color: c})
}

func (s *Surface) UpdateLine(h scene.Handle, seg geometry.Segment) {
	if p, ok := s.Prims[h]; ok && p.Kind == KindLine {
		p.Seg = seg
		s.Updates++
	}
}

func (s *Surface) AddMarker(pos geometry.Vec3, radius float64, c scene.Color) scene.Handle {
	return s.add(&Prim{Kind: KindMarker, Pos: pos, Radius: radius, Color: c})
}

func (s *Surface) MoveMarker(h scene.Handle, pos geometry.Vec3) {
	if p, ok := s.Prims[h]; ok && p.Kind == KindMarker {
		p.Pos = pos
		s.Updates++
	}
}

func (s *Surface) AddLabel(pos geometry.Vec3, text string, c scene.Color) scene.Handle {
	return s.add(&Prim{Kind: KindLabel, Pos: pos, Text: text, Color: c})
}

func (s *Surface) SetVisible(h scene.Handle, visible bool) {
	if p, ok := s.Prims[h]; ok {
		p.Visible = visible
	}
}

func (s *Surface) Remove(h scene.Handle) {
	if _, ok := s.Prims[h]; ok {
		delete(s.Prims, h)
		s.Removes++
	}
}

// Markers returns the live markers with the given color.
func (s *Surface) Markers(c scene.Color) []*Prim {
	var out []*Prim
	for _, p := range s.Prims {
		if p.Kind == KindMarker && p.Color == c {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of live primitives of kind k.
func (s *Surface) Count(k Kind) int {
	n := 0
	for _, p := range s.Prims {
		if p.Kind == k {
			n++
		}
	}
	return n
}
