package entity

import "github.com/go-gl/mathgl/mgl32"

// WorldSpawn holds the map wide settings; every map has exactly one.
type WorldSpawn struct {
	base           `yaml:"-"`
	Min            mgl32.Vec3 `yaml:"world_mins"`
	Max            mgl32.Vec3 `yaml:"world_maxs"`
	DetailVBSP     string     `yaml:"detailvbsp"`
	DetailMaterial string     `yaml:"detailmaterial"`
	Comment        *string    `yaml:"comment,omitempty"`
	Skybox         string     `yaml:"skyname"`
	Version        uint32     `yaml:"mapversion"`
}

// SkyCamera positions the 3D skybox.
type SkyCamera struct {
	base      `yaml:"-"`
	Origin    mgl32.Vec3 `yaml:"origin"`
	Fog       bool       `yaml:"fogenable"`
	UseAngles bool       `yaml:"use_angles"`
	FogStart  float32    `yaml:"fogstart"`
	FogEnd    float32    `yaml:"fogend"`
	Angles    [3]uint32  `yaml:"angles"`
	Direction [3]uint8   `yaml:"fogdir"`
	Scale     uint32     `yaml:"scale"`
	Color     [3]uint8   `yaml:"fogcolor"`
	Color2    *[3]uint8  `yaml:"fogcolor2,omitempty"`
}

// Spawn is an info_player_teamspawn.
type Spawn struct {
	base          `yaml:"-"`
	Origin        mgl32.Vec3 `yaml:"origin"`
	Angles        [3]float32 `yaml:"angles"`
	Target        *string    `yaml:"targetname,omitempty"`
	ControlPoint  *string    `yaml:"controlpoint,omitempty"`
	StartDisabled bool       `yaml:"StartDisabled"`
	Team          uint8      `yaml:"TeamNum"`
}

// ObserverPoint is a spectator camera position.
type ObserverPoint struct {
	base          `yaml:"-"`
	StartDisabled bool       `yaml:"StartDisabled"`
	Angles        [3]float32 `yaml:"angles"`
	Origin        mgl32.Vec3 `yaml:"origin"`
	Target        *string    `yaml:"targetname,omitempty"`
	Parent        *string    `yaml:"parentname,omitempty"`
}

// AmmoPack is an ammo pickup of any size; Kind tells the size apart.
type AmmoPack struct {
	base   `yaml:"-"`
	Origin mgl32.Vec3 `yaml:"origin"`
}

// HealthPack is a health pickup of any size; Kind tells the size apart.
type HealthPack struct {
	base   `yaml:"-"`
	Origin mgl32.Vec3 `yaml:"origin"`
}

// Regenerate is a func_regenerate resupply volume.
type Regenerate struct {
	base            `yaml:"-"`
	AssociatedModel string `yaml:"associatedmodel"`
	Model           string `yaml:"model"`
	Team            uint8  `yaml:"TeamNum"`
}

// RespawnRoom is a func_respawnroom volume.
type RespawnRoom struct {
	base          `yaml:"-"`
	Target        *string `yaml:"targetname,omitempty"`
	Model         string  `yaml:"model"`
	StartDisabled bool    `yaml:"StartDisabled"`
	Team          uint8   `yaml:"TeamNum"`
}

// RespawnVisualizer draws the boundary of a respawn room.
type RespawnVisualizer struct {
	base           `yaml:"-"`
	Origin         mgl32.Vec3 `yaml:"origin"`
	RoomName       string     `yaml:"respawnroomname"`
	Color          [3]float32 `yaml:"rendercolor"`
	SolidToEnemies bool       `yaml:"solid_to_enemies"`
}

// Door is a sliding func_door.
type Door struct {
	base          `yaml:"-"`
	Origin        mgl32.Vec3 `yaml:"origin"`
	Target        string     `yaml:"targetname"`
	Speed         float32    `yaml:"speed"`
	ForceClosed   bool       `yaml:"forceclosed"`
	MoveDirection mgl32.Vec3 `yaml:"movedir"`
	Model         string     `yaml:"model"`
}

// BrushEntity is a func_brush.
type BrushEntity struct {
	base          `yaml:"-"`
	Model         string     `yaml:"model"`
	Origin        mgl32.Vec3 `yaml:"origin"`
	StartDisabled bool       `yaml:"StartDisabled"`
	Color         [3]float32 `yaml:"rendercolor"`
}

// AreaPortal is a func_areaportal.
type AreaPortal struct {
	base      `yaml:"-"`
	Version   uint8 `yaml:"PortalVersion"`
	Number    uint8 `yaml:"portalnumber"`
	StartOpen bool  `yaml:"StartOpen"`
}

// SoundScapeProxy forwards a soundscape to another area.
type SoundScapeProxy struct {
	base     `yaml:"-"`
	Origin   mgl32.Vec3 `yaml:"origin"`
	Radius   float32    `yaml:"radius"`
	MainName string     `yaml:"MainSoundscapeName"`
}

// PathTrack is one node of a train path.
type PathTrack struct {
	base            `yaml:"-"`
	Origin          mgl32.Vec3 `yaml:"origin"`
	Target          *string    `yaml:"target,omitempty"`
	TargetName      *string    `yaml:"targetname,omitempty"`
	OrientationType uint8      `yaml:"orientationtype"`
	Angles          [3]uint32  `yaml:"angles"`
	Radius          float32    `yaml:"radius"`
	Speed           float32    `yaml:"speed"`
}

func init() {
	register[WorldSpawn]("worldspawn", KindWorldSpawn, schema[WorldSpawn]{
		req("world_mins", vector, func(e *WorldSpawn) *mgl32.Vec3 { return &e.Min }),
		req("world_maxs", vector, func(e *WorldSpawn) *mgl32.Vec3 { return &e.Max }),
		req("detailvbsp", text, func(e *WorldSpawn) *string { return &e.DetailVBSP }),
		req("detailmaterial", text, func(e *WorldSpawn) *string { return &e.DetailMaterial }),
		opt("comment", text, func(e *WorldSpawn) **string { return &e.Comment }),
		req("skyname", text, func(e *WorldSpawn) *string { return &e.Skybox }),
		req("mapversion", number[uint32](), func(e *WorldSpawn) *uint32 { return &e.Version }),
	})

	register[SkyCamera]("sky_camera", KindSkyCamera, schema[SkyCamera]{
		req("origin", vector, func(e *SkyCamera) *mgl32.Vec3 { return &e.Origin }),
		req("fogenable", boolean, func(e *SkyCamera) *bool { return &e.Fog }),
		req("use_angles", boolean, func(e *SkyCamera) *bool { return &e.UseAngles }),
		req("fogstart", number[float32](), func(e *SkyCamera) *float32 { return &e.FogStart }),
		req("fogend", number[float32](), func(e *SkyCamera) *float32 { return &e.FogEnd }),
		req("angles", array3[uint32](), func(e *SkyCamera) *[3]uint32 { return &e.Angles }),
		req("fogdir", array3[uint8](), func(e *SkyCamera) *[3]uint8 { return &e.Direction }),
		req("scale", number[uint32](), func(e *SkyCamera) *uint32 { return &e.Scale }),
		req("fogcolor", array3[uint8](), func(e *SkyCamera) *[3]uint8 { return &e.Color }),
		opt("fogcolor2", array3[uint8](), func(e *SkyCamera) **[3]uint8 { return &e.Color2 }),
	})

	register[Spawn]("info_player_teamspawn", KindSpawn, schema[Spawn]{
		req("origin", vector, func(e *Spawn) *mgl32.Vec3 { return &e.Origin }),
		req("angles", array3[float32](), func(e *Spawn) *[3]float32 { return &e.Angles }),
		opt("targetname", text, func(e *Spawn) **string { return &e.Target }),
		opt("controlpoint", text, func(e *Spawn) **string { return &e.ControlPoint }),
		def("StartDisabled", boolean, func(e *Spawn) *bool { return &e.StartDisabled }, false),
		req("TeamNum", number[uint8](), func(e *Spawn) *uint8 { return &e.Team }),
	})

	register[ObserverPoint]("info_observer_point", KindObserverPoint, schema[ObserverPoint]{
		def("StartDisabled", boolean, func(e *ObserverPoint) *bool { return &e.StartDisabled }, false),
		req("angles", array3[float32](), func(e *ObserverPoint) *[3]float32 { return &e.Angles }),
		req("origin", vector, func(e *ObserverPoint) *mgl32.Vec3 { return &e.Origin }),
		opt("targetname", text, func(e *ObserverPoint) **string { return &e.Target }),
		opt("parentname", text, func(e *ObserverPoint) **string { return &e.Parent }),
	})

	ammo := schema[AmmoPack]{req("origin", vector, func(e *AmmoPack) *mgl32.Vec3 { return &e.Origin })}
	register[AmmoPack]("item_ammopack_small", KindAmmoPackSmall, ammo)
	register[AmmoPack]("item_ammopack_medium", KindAmmoPackMedium, ammo)
	register[AmmoPack]("item_ammopack_full", KindAmmoPackFull, ammo)

	health := schema[HealthPack]{req("origin", vector, func(e *HealthPack) *mgl32.Vec3 { return &e.Origin })}
	register[HealthPack]("item_healthkit_small", KindHealthPackSmall, health)
	register[HealthPack]("item_healthkit_medium", KindHealthPackMedium, health)
	register[HealthPack]("item_healthkit_full", KindHealthPackFull, health)

	register[Regenerate]("func_regenerate", KindRegenerate, schema[Regenerate]{
		req("associatedmodel", text, func(e *Regenerate) *string { return &e.AssociatedModel }),
		req("model", text, func(e *Regenerate) *string { return &e.Model }),
		req("TeamNum", number[uint8](), func(e *Regenerate) *uint8 { return &e.Team }),
	})

	register[RespawnRoom]("func_respawnroom", KindRespawnRoom, schema[RespawnRoom]{
		opt("targetname", text, func(e *RespawnRoom) **string { return &e.Target }),
		req("model", text, func(e *RespawnRoom) *string { return &e.Model }),
		def("StartDisabled", boolean, func(e *RespawnRoom) *bool { return &e.StartDisabled }, false),
		req("TeamNum", number[uint8](), func(e *RespawnRoom) *uint8 { return &e.Team }),
	})

	register[RespawnVisualizer]("func_respawnroomvisualizer", KindRespawnVisualizer, schema[RespawnVisualizer]{
		req("origin", vector, func(e *RespawnVisualizer) *mgl32.Vec3 { return &e.Origin }),
		req("respawnroomname", text, func(e *RespawnVisualizer) *string { return &e.RoomName }),
		req("rendercolor", array3[float32](), func(e *RespawnVisualizer) *[3]float32 { return &e.Color }),
		req("solid_to_enemies", boolean, func(e *RespawnVisualizer) *bool { return &e.SolidToEnemies }),
	})

	register[Door]("func_door", KindDoor, schema[Door]{
		req("origin", vector, func(e *Door) *mgl32.Vec3 { return &e.Origin }),
		def("targetname", text, func(e *Door) *string { return &e.Target }, ""),
		req("speed", number[float32](), func(e *Door) *float32 { return &e.Speed }),
		def("forceclosed", boolean, func(e *Door) *bool { return &e.ForceClosed }, false),
		req("movedir", vector, func(e *Door) *mgl32.Vec3 { return &e.MoveDirection }),
		req("model", text, func(e *Door) *string { return &e.Model }),
	})

	register[BrushEntity]("func_brush", KindBrush, schema[BrushEntity]{
		req("model", text, func(e *BrushEntity) *string { return &e.Model }),
		req("origin", vector, func(e *BrushEntity) *mgl32.Vec3 { return &e.Origin }),
		def("StartDisabled", boolean, func(e *BrushEntity) *bool { return &e.StartDisabled }, false),
		req("rendercolor", array3[float32](), func(e *BrushEntity) *[3]float32 { return &e.Color }),
	})

	register[AreaPortal]("func_areaportal", KindAreaPortal, schema[AreaPortal]{
		req("PortalVersion", number[uint8](), func(e *AreaPortal) *uint8 { return &e.Version }),
		req("portalnumber", number[uint8](), func(e *AreaPortal) *uint8 { return &e.Number }),
		req("StartOpen", boolean, func(e *AreaPortal) *bool { return &e.StartOpen }),
	})

	register[SoundScapeProxy]("env_soundscape_proxy", KindSoundScapeProxy, schema[SoundScapeProxy]{
		req("origin", vector, func(e *SoundScapeProxy) *mgl32.Vec3 { return &e.Origin }),
		req("radius", number[float32](), func(e *SoundScapeProxy) *float32 { return &e.Radius }),
		req("MainSoundscapeName", text, func(e *SoundScapeProxy) *string { return &e.MainName }),
	})

	register[PathTrack]("path_track", KindPathTrack, schema[PathTrack]{
		req("origin", vector, func(e *PathTrack) *mgl32.Vec3 { return &e.Origin }),
		opt("target", text, func(e *PathTrack) **string { return &e.Target }),
		opt("targetname", text, func(e *PathTrack) **string { return &e.TargetName }),
		def("orientationtype", number[uint8](), func(e *PathTrack) *uint8 { return &e.OrientationType }, 0),
		req("angles", array3[uint32](), func(e *PathTrack) *[3]uint32 { return &e.Angles }),
		req("radius", number[float32](), func(e *PathTrack) *float32 { return &e.Radius }),
		req("speed", number[float32](), func(e *PathTrack) *float32 { return &e.Speed }),
	})
}
