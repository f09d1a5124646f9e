package entity

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light.
type Light struct {
	base   `yaml:"-"`
	Origin mgl32.Vec3 `yaml:"origin"`
	// Light is red, green, blue and brightness.
	Light [4]uint32 `yaml:"_light"`
}

// SpotLight is a point_spotlight: a visible beam, not a light source.
type SpotLight struct {
	base                  `yaml:"-"`
	Origin                mgl32.Vec3  `yaml:"origin"`
	Angles                [3]float32  `yaml:"angles"`
	Color                 [3]uint8    `yaml:"rendercolor"`
	Cone                  uint32      `yaml:"spotlightwidth"`
	Length                uint32      `yaml:"spotlightlength"`
	DisableReceiveShadows *bool       `yaml:"disablereceiveshadows,omitempty"`
	RenderFX              *uint8      `yaml:"renderfx,omitempty"`
	RenderMode            *RenderMode `yaml:"rendermode,omitempty"`
}

// LightSpot is a cone shaped light source.
type LightSpot struct {
	base                 `yaml:"-"`
	Origin               mgl32.Vec3     `yaml:"origin"`
	Angles               [3]float32     `yaml:"angles"`
	Light                [4]uint32      `yaml:"_light"`
	LightHDR             [4]int32       `yaml:"_lightHDR"`
	Style                LightSpotStyle `yaml:"style"`
	Pattern              *string        `yaml:"pattern,omitempty"`
	Cone                 uint8          `yaml:"_cone"`
	InnerCone            uint8          `yaml:"_inner_cone"`
	Exponent             float32        `yaml:"_exponent"`
	Distance             uint32         `yaml:"_distance"`
	LightScaleHDR        *float32       `yaml:"_lightscaleHDR,omitempty"`
	Pitch                float32        `yaml:"pitch"`
	ConstantAttenuation  *float32       `yaml:"_constant_attn,omitempty"`
	LinearAttenuation    *float32       `yaml:"_linear_attn,omitempty"`
	QuadraticAttenuation *float32       `yaml:"_quadratic_attn,omitempty"`
	// ZeroPercentDistance overrides the attenuation terms when non-zero.
	ZeroPercentDistance  float32 `yaml:"_zero_percent_distance"`
	FiftyPercentDistance float32 `yaml:"_fifty_percent_distance"`
}

// LightGlow is an env_lightglow halo.
type LightGlow struct {
	base           `yaml:"-"`
	Origin         mgl32.Vec3 `yaml:"origin"`
	VerticalSize   uint32     `yaml:"VerticalGlowSize"`
	HorizontalSize uint32     `yaml:"HorizontalGlowSize"`
	StartDisabled  bool       `yaml:"StartDisabled"`
	Color          [3]float32 `yaml:"rendercolor"`
	MinDistance    uint32     `yaml:"MinDist"`
	MaxDistance    uint32     `yaml:"MaxDist"`
}

// EnvSprite is a camera facing sprite.
type EnvSprite struct {
	base   `yaml:"-"`
	Origin mgl32.Vec3 `yaml:"origin"`
	Scale  float32    `yaml:"scale"`
	Model  string     `yaml:"model"`
	Color  [3]uint8   `yaml:"rendercolor"`
}

func init() {
	register[Light]("light", KindLight, schema[Light]{
		req("origin", vector, func(e *Light) *mgl32.Vec3 { return &e.Origin }),
		req("_light", array4[uint32](), func(e *Light) *[4]uint32 { return &e.Light }),
	})

	register[SpotLight]("point_spotlight", KindSpotLight, schema[SpotLight]{
		req("origin", vector, func(e *SpotLight) *mgl32.Vec3 { return &e.Origin }),
		req("angles", array3[float32](), func(e *SpotLight) *[3]float32 { return &e.Angles }),
		req("rendercolor", array3[uint8](), func(e *SpotLight) *[3]uint8 { return &e.Color }),
		req("spotlightwidth", number[uint32](), func(e *SpotLight) *uint32 { return &e.Cone }),
		req("spotlightlength", number[uint32](), func(e *SpotLight) *uint32 { return &e.Length }),
		opt("disablereceiveshadows", boolean, func(e *SpotLight) **bool { return &e.DisableReceiveShadows }),
		opt("renderfx", number[uint8](), func(e *SpotLight) **uint8 { return &e.RenderFX }),
		opt("rendermode", enum(RenderMode.valid), func(e *SpotLight) **RenderMode { return &e.RenderMode }),
	})

	register[LightSpot]("light_spot", KindLightSpot, schema[LightSpot]{
		req("origin", vector, func(e *LightSpot) *mgl32.Vec3 { return &e.Origin }),
		req("angles", array3[float32](), func(e *LightSpot) *[3]float32 { return &e.Angles }),
		req("_light", array4[uint32](), func(e *LightSpot) *[4]uint32 { return &e.Light }),
		req("_lightHDR", array4[int32](), func(e *LightSpot) *[4]int32 { return &e.LightHDR }),
		def("style", enum(LightSpotStyle.valid), func(e *LightSpot) *LightSpotStyle { return &e.Style }, StyleNormal),
		opt("pattern", text, func(e *LightSpot) **string { return &e.Pattern }),
		req("_cone", number[uint8](), func(e *LightSpot) *uint8 { return &e.Cone }),
		req("_inner_cone", number[uint8](), func(e *LightSpot) *uint8 { return &e.InnerCone }),
		req("_exponent", number[float32](), func(e *LightSpot) *float32 { return &e.Exponent }),
		def("_distance", number[uint32](), func(e *LightSpot) *uint32 { return &e.Distance }, 0),
		opt("_lightscaleHDR", number[float32](), func(e *LightSpot) **float32 { return &e.LightScaleHDR }),
		req("pitch", number[float32](), func(e *LightSpot) *float32 { return &e.Pitch }),
		opt("_constant_attn", number[float32](), func(e *LightSpot) **float32 { return &e.ConstantAttenuation }),
		opt("_linear_attn", number[float32](), func(e *LightSpot) **float32 { return &e.LinearAttenuation }),
		opt("_quadratic_attn", number[float32](), func(e *LightSpot) **float32 { return &e.QuadraticAttenuation }),
		def("_zero_percent_distance", number[float32](), func(e *LightSpot) *float32 { return &e.ZeroPercentDistance }, 0),
		def("_fifty_percent_distance", number[float32](), func(e *LightSpot) *float32 { return &e.FiftyPercentDistance }, 0),
	})

	register[LightGlow]("env_lightglow", KindLightGlow, schema[LightGlow]{
		req("origin", vector, func(e *LightGlow) *mgl32.Vec3 { return &e.Origin }),
		req("VerticalGlowSize", number[uint32](), func(e *LightGlow) *uint32 { return &e.VerticalSize }),
		req("HorizontalGlowSize", number[uint32](), func(e *LightGlow) *uint32 { return &e.HorizontalSize }),
		def("StartDisabled", boolean, func(e *LightGlow) *bool { return &e.StartDisabled }, false),
		req("rendercolor", array3[float32](), func(e *LightGlow) *[3]float32 { return &e.Color }),
		req("MinDist", number[uint32](), func(e *LightGlow) *uint32 { return &e.MinDistance }),
		req("MaxDist", number[uint32](), func(e *LightGlow) *uint32 { return &e.MaxDistance }),
	})

	register[EnvSprite]("env_sprite", KindEnvSprite, schema[EnvSprite]{
		req("origin", vector, func(e *EnvSprite) *mgl32.Vec3 { return &e.Origin }),
		req("scale", number[float32](), func(e *EnvSprite) *float32 { return &e.Scale }),
		req("model", text, func(e *EnvSprite) *string { return &e.Model }),
		req("rendercolor", array3[uint8](), func(e *EnvSprite) *[3]uint8 { return &e.Color }),
	})
}
