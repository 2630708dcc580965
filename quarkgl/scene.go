package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	// Unlit skips directional lighting; used for lines and flat markers.
	Unlit bool
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad Scalar

	// Orthographic (half-height).
	OrthoSize Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	if c.Type == CameraOrtho {
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		right := size * aspect
		return Mat4Ortho(-right, right, -size, size, c.Near, c.Far)
	}
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Primitive selects how a mesh's indices are read.
type Primitive uint8

const (
	// Triangles reads indices three at a time.
	Triangles Primitive = iota
	// Lines reads indices two at a time.
	Lines
)

// Vertex is a mesh vertex.
type Vertex struct {
	Pos Vec3
}

// Mesh is an indexed primitive list with an object transform.
type Mesh struct {
	Enabled bool

	Primitive Primitive
	Vertices  []Vertex
	Indices   []uint16

	Transform Mat4
	Material  Material
}

// Bitmap is a 1-bit coverage mask stored row-major.
type Bitmap struct {
	W, H int
	Bits []bool
}

// At reports whether the pixel at (x, y) is set.
func (b *Bitmap) At(x, y int) bool {
	if b == nil || x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.Bits[y*b.W+x]
}

// Sprite is a screen-aligned mask anchored at a 3D position.
type Sprite struct {
	Enabled bool
	Pos     Vec3
	Mask    *Bitmap
	Color   Color
}

// Scene is a collection of objects to render.
//
// Meshes and sprites live in fixed-capacity slot tables; ids stay valid until
// removed.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool

	sprites     []Sprite
	spriteAlive []bool
}

// CreateScene allocates a scene with fixed mesh and sprite capacities.
func CreateScene(maxMeshes, maxSprites int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	if maxSprites < 0 {
		maxSprites = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  V3(0, 0, 3),
			Up:        V3(0, 1, 0),
			FOVYRad:   1,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       Normalize(V3(1, 1, 1)),
			DirAmount: 0.75,
		},
		meshes:      make([]Mesh, maxMeshes),
		alive:       make([]bool, maxMeshes),
		sprites:     make([]Sprite, maxSprites),
		spriteAlive: make([]bool, maxSprites),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

func (s *Scene) validMesh(id int) bool {
	return s != nil && id >= 0 && id < len(s.meshes) && s.alive[id]
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if !s.validMesh(id) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if !s.validMesh(id) {
		return
	}
	s.meshes[id].Enabled = enabled
}

// MeshEnabled reports whether id is alive and enabled.
func (s *Scene) MeshEnabled(id int) bool {
	return s.validMesh(id) && s.meshes[id].Enabled
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if !s.validMesh(id) {
		return
	}
	s.meshes[id].Transform = m
}

// UpdateMeshVertex overwrites one vertex position in place.
func (s *Scene) UpdateMeshVertex(id, idx int, pos Vec3) {
	if !s.validMesh(id) || idx < 0 || idx >= len(s.meshes[id].Vertices) {
		return
	}
	s.meshes[id].Vertices[idx].Pos = pos
}

// Mesh returns a copy of the mesh with the given id.
func (s *Scene) Mesh(id int) (Mesh, bool) {
	if !s.validMesh(id) {
		return Mesh{}, false
	}
	return s.meshes[id], true
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	n := 0
	for _, ok := range s.alive {
		if ok {
			n++
		}
	}
	return n
}

// AddSprite adds a sprite and returns its id or -1 if full.
func (s *Scene) AddSprite(sp Sprite) int {
	if s == nil {
		return -1
	}
	for i := range s.sprites {
		if s.spriteAlive[i] {
			continue
		}
		if sp.Color == (Color{}) {
			sp.Color = RGB(0xFF, 0xFF, 0xFF)
		}
		sp.Enabled = true
		s.sprites[i] = sp
		s.spriteAlive[i] = true
		return i
	}
	return -1
}

func (s *Scene) validSprite(id int) bool {
	return s != nil && id >= 0 && id < len(s.sprites) && s.spriteAlive[id]
}

// RemoveSprite removes a sprite by id.
func (s *Scene) RemoveSprite(id int) {
	if !s.validSprite(id) {
		return
	}
	s.spriteAlive[id] = false
	s.sprites[id] = Sprite{}
}

// SetSpriteEnabled enables/disables a sprite by id.
func (s *Scene) SetSpriteEnabled(id int, enabled bool) {
	if !s.validSprite(id) {
		return
	}
	s.sprites[id].Enabled = enabled
}

// SpriteCount returns the number of live sprites.
func (s *Scene) SpriteCount() int {
	n := 0
	for _, ok := range s.spriteAlive {
		if ok {
			n++
		}
	}
	return n
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}

func (s *Scene) eachSprite(fn func(sp *Sprite)) {
	for i := range s.sprites {
		if !s.spriteAlive[i] {
			continue
		}
		fn(&s.sprites[i])
	}
}
