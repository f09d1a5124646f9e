package entity

import "github.com/go-gl/mathgl/mgl32"

// PropDynamic is a model based prop. It is also used for
// prop_physics_multiplayer, which shares the same keys.
type PropDynamic struct {
	base                  `yaml:"-"`
	Angles                [3]float32 `yaml:"angles"`
	DisableReceiveShadows bool       `yaml:"disablereceiveshadows"`
	DisableShadows        bool       `yaml:"disableshadows"`
	Scale                 *float32   `yaml:"modelscale,omitempty"`
	Model                 string     `yaml:"model"`
	Origin                mgl32.Vec3 `yaml:"origin"`
	Color                 [3]uint8   `yaml:"rendercolor"`
	Name                  *string    `yaml:"targetname,omitempty"`
	Parent                *string    `yaml:"parentname,omitempty"`
}

// PropDynamicOverride is a prop_dynamic that ignores the model's own
// prop data; its scale is mandatory.
type PropDynamicOverride struct {
	base                  `yaml:"-"`
	Angles                [3]float32 `yaml:"angles"`
	DisableReceiveShadows bool       `yaml:"disablereceiveshadows"`
	DisableShadows        bool       `yaml:"disableshadows"`
	Scale                 float32    `yaml:"modelscale"`
	Model                 string     `yaml:"model"`
	Origin                mgl32.Vec3 `yaml:"origin"`
	Color                 [3]uint8   `yaml:"rendercolor"`
	Name                  *string    `yaml:"targetname,omitempty"`
	Parent                *string    `yaml:"parentname,omitempty"`
}

// ParticleSystem is an info_particle_system.
type ParticleSystem struct {
	base        `yaml:"-"`
	Origin      mgl32.Vec3 `yaml:"origin"`
	Angles      [3]float32 `yaml:"angles"`
	TargetName  string     `yaml:"targetname"`
	EffectName  string     `yaml:"effect_name"`
	StartActive bool       `yaml:"start_active"`
}

// DustMotes is a func_dustmotes volume.
type DustMotes struct {
	base          `yaml:"-"`
	Model         string      `yaml:"model"`
	Origin        *mgl32.Vec3 `yaml:"origin,omitempty"`
	StartDisabled bool        `yaml:"StartDisabled"`
	Color         [3]float32  `yaml:"Color"`
	SpawnRate     uint32      `yaml:"SpawnRate"`
	SizeMin       uint32      `yaml:"SizeMin"`
	SizeMax       uint32      `yaml:"SizeMax"`
	Alpha         uint8       `yaml:"Alpha"`
}

// RopeKeyFrame is a keyframe_rope: an intermediate rope point.
type RopeKeyFrame struct {
	base         `yaml:"-"`
	Origin       mgl32.Vec3 `yaml:"origin"`
	TargetName   *string    `yaml:"targetname,omitempty"`
	Material     string     `yaml:"RopeMaterial"`
	Dangling     *bool      `yaml:"Dangling,omitempty"`
	Barbed       *bool      `yaml:"Barbed,omitempty"`
	Breakable    *bool      `yaml:"Breakable,omitempty"`
	TextureScale float32    `yaml:"TextureScale"`
	Collide      *bool      `yaml:"Collide,omitempty"`
	Width        float32    `yaml:"Width"`
	Slack        float32    `yaml:"Slack"`
	MoveSpeed    float32    `yaml:"MoveSpeed"`
	Subdiv       uint8      `yaml:"Subdiv"`
}

// RopeMove is a move_rope: the start of a rope.
type RopeMove struct {
	base         `yaml:"-"`
	Origin       mgl32.Vec3 `yaml:"origin"`
	Material     string     `yaml:"RopeMaterial"`
	TextureScale float32    `yaml:"TextureScale"`
	Slack        float32    `yaml:"Slack"`
	Width        float32    `yaml:"Width"`
	Dangling     *bool      `yaml:"Dangling,omitempty"`
	Barbed       *bool      `yaml:"Barbed,omitempty"`
	Breakable    *bool      `yaml:"Breakable,omitempty"`
	Interpolator uint8      `yaml:"PositionInterpolator"`
	MoveSpeed    float32    `yaml:"MoveSpeed"`
	Type         *uint8     `yaml:"Type,omitempty"`
	NextKey      string     `yaml:"NextKey"`
	Subdiv       uint8      `yaml:"Subdiv"`
}

func propDynamicSchema() schema[PropDynamic] {
	return schema[PropDynamic]{
		req("angles", array3[float32](), func(e *PropDynamic) *[3]float32 { return &e.Angles }),
		def("disablereceiveshadows", boolean, func(e *PropDynamic) *bool { return &e.DisableReceiveShadows }, false),
		def("disableshadows", boolean, func(e *PropDynamic) *bool { return &e.DisableShadows }, false),
		opt("modelscale", number[float32](), func(e *PropDynamic) **float32 { return &e.Scale }),
		req("model", text, func(e *PropDynamic) *string { return &e.Model }),
		req("origin", vector, func(e *PropDynamic) *mgl32.Vec3 { return &e.Origin }),
		req("rendercolor", array3[uint8](), func(e *PropDynamic) *[3]uint8 { return &e.Color }),
		opt("targetname", text, func(e *PropDynamic) **string { return &e.Name }),
		opt("parentname", text, func(e *PropDynamic) **string { return &e.Parent }),
	}
}

func init() {
	register[PropDynamic]("prop_dynamic", KindPropDynamic, propDynamicSchema())
	register[PropDynamic]("prop_physics_multiplayer", KindPropPhysics, propDynamicSchema())

	register[PropDynamicOverride]("prop_dynamic_override", KindPropDynamicOverride, schema[PropDynamicOverride]{
		req("angles", array3[float32](), func(e *PropDynamicOverride) *[3]float32 { return &e.Angles }),
		def("disablereceiveshadows", boolean, func(e *PropDynamicOverride) *bool { return &e.DisableReceiveShadows }, false),
		def("disableshadows", boolean, func(e *PropDynamicOverride) *bool { return &e.DisableShadows }, false),
		req("modelscale", number[float32](), func(e *PropDynamicOverride) *float32 { return &e.Scale }),
		req("model", text, func(e *PropDynamicOverride) *string { return &e.Model }),
		req("origin", vector, func(e *PropDynamicOverride) *mgl32.Vec3 { return &e.Origin }),
		req("rendercolor", array3[uint8](), func(e *PropDynamicOverride) *[3]uint8 { return &e.Color }),
		opt("targetname", text, func(e *PropDynamicOverride) **string { return &e.Name }),
		opt("parentname", text, func(e *PropDynamicOverride) **string { return &e.Parent }),
	})

	register[ParticleSystem]("info_particle_system", KindParticleSystem, schema[ParticleSystem]{
		req("origin", vector, func(e *ParticleSystem) *mgl32.Vec3 { return &e.Origin }),
		req("angles", array3[float32](), func(e *ParticleSystem) *[3]float32 { return &e.Angles }),
		req("targetname", text, func(e *ParticleSystem) *string { return &e.TargetName }),
		req("effect_name", text, func(e *ParticleSystem) *string { return &e.EffectName }),
		def("start_active", boolean, func(e *ParticleSystem) *bool { return &e.StartActive }, false),
	})

	register[DustMotes]("func_dustmotes", KindDustMotes, schema[DustMotes]{
		req("model", text, func(e *DustMotes) *string { return &e.Model }),
		opt("origin", vector, func(e *DustMotes) **mgl32.Vec3 { return &e.Origin }),
		def("StartDisabled", boolean, func(e *DustMotes) *bool { return &e.StartDisabled }, false),
		req("Color", array3[float32](), func(e *DustMotes) *[3]float32 { return &e.Color }),
		req("SpawnRate", number[uint32](), func(e *DustMotes) *uint32 { return &e.SpawnRate }),
		req("SizeMin", number[uint32](), func(e *DustMotes) *uint32 { return &e.SizeMin }),
		req("SizeMax", number[uint32](), func(e *DustMotes) *uint32 { return &e.SizeMax }),
		req("Alpha", number[uint8](), func(e *DustMotes) *uint8 { return &e.Alpha }),
	})

	register[RopeKeyFrame]("keyframe_rope", KindRopeKeyFrame, schema[RopeKeyFrame]{
		req("origin", vector, func(e *RopeKeyFrame) *mgl32.Vec3 { return &e.Origin }),
		opt("targetname", text, func(e *RopeKeyFrame) **string { return &e.TargetName }),
		req("RopeMaterial", text, func(e *RopeKeyFrame) *string { return &e.Material }),
		opt("Dangling", boolean, func(e *RopeKeyFrame) **bool { return &e.Dangling }),
		opt("Barbed", boolean, func(e *RopeKeyFrame) **bool { return &e.Barbed }),
		opt("Breakable", boolean, func(e *RopeKeyFrame) **bool { return &e.Breakable }),
		req("TextureScale", number[float32](), func(e *RopeKeyFrame) *float32 { return &e.TextureScale }),
		opt("Collide", boolean, func(e *RopeKeyFrame) **bool { return &e.Collide }),
		req("Width", number[float32](), func(e *RopeKeyFrame) *float32 { return &e.Width }),
		req("Slack", number[float32](), func(e *RopeKeyFrame) *float32 { return &e.Slack }),
		req("MoveSpeed", number[float32](), func(e *RopeKeyFrame) *float32 { return &e.MoveSpeed }),
		req("Subdiv", number[uint8](), func(e *RopeKeyFrame) *uint8 { return &e.Subdiv }),
	})

	register[RopeMove]("move_rope", KindRopeMove, schema[RopeMove]{
		req("origin", vector, func(e *RopeMove) *mgl32.Vec3 { return &e.Origin }),
		req("RopeMaterial", text, func(e *RopeMove) *string { return &e.Material }),
		req("TextureScale", number[float32](), func(e *RopeMove) *float32 { return &e.TextureScale }),
		req("Slack", number[float32](), func(e *RopeMove) *float32 { return &e.Slack }),
		req("Width", number[float32](), func(e *RopeMove) *float32 { return &e.Width }),
		opt("Dangling", boolean, func(e *RopeMove) **bool { return &e.Dangling }),
		opt("Barbed", boolean, func(e *RopeMove) **bool { return &e.Barbed }),
		opt("Breakable", boolean, func(e *RopeMove) **bool { return &e.Breakable }),
		req("PositionInterpolator", number[uint8](), func(e *RopeMove) *uint8 { return &e.Interpolator }),
		req("MoveSpeed", number[float32](), func(e *RopeMove) *float32 { return &e.MoveSpeed }),
		opt("Type", number[uint8](), func(e *RopeMove) **uint8 { return &e.Type }),
		req("NextKey", text, func(e *RopeMove) *string { return &e.NextKey }),
		req("Subdiv", number[uint8](), func(e *RopeMove) *uint8 { return &e.Subdiv }),
	})
}
