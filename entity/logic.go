package entity

import "github.com/go-gl/mathgl/mgl32"

// TriggerMultiple is a re-triggerable brush volume. The output fields hold
// the raw I/O connection strings.
type TriggerMultiple struct {
	base          `yaml:"-"`
	Model         string     `yaml:"model"`
	Origin        mgl32.Vec3 `yaml:"origin"`
	StartTouch    *string    `yaml:"OnStartTouch,omitempty"`
	StartTouchAll *string    `yaml:"OnStartTouchAll,omitempty"`
	EndTouch      *string    `yaml:"OnEndTouch,omitempty"`
	EndTouchAll   *string    `yaml:"OnEndTouchAll,omitempty"`
	NotTouching   *string    `yaml:"OnNotTouching,omitempty"`
	TargetName    *string    `yaml:"targetname,omitempty"`
	Filter        *string    `yaml:"filtername,omitempty"`
	Wait          *uint32    `yaml:"wait,omitempty"`
	StartDisabled bool       `yaml:"StartDisabled"`
}

// LogicRelay fires its outputs when triggered.
type LogicRelay struct {
	base       `yaml:"-"`
	Origin     mgl32.Vec3 `yaml:"origin"`
	TargetName *string    `yaml:"targetname,omitempty"`
	OnTrigger  *string    `yaml:"OnTrigger,omitempty"`
}

// LogicAuto fires outputs on map spawn.
type LogicAuto struct {
	base       `yaml:"-"`
	Origin     mgl32.Vec3 `yaml:"origin"`
	OnMapSpawn *string    `yaml:"OnMapSpawn,omitempty"`
}

// FilterActivatorTeam passes activators of one team.
type FilterActivatorTeam struct {
	base       `yaml:"-"`
	Origin     mgl32.Vec3 `yaml:"origin"`
	TargetName *string    `yaml:"targetname,omitempty"`
	Negated    *string    `yaml:"negated,omitempty"`
	Team       uint8      `yaml:"TeamNum"`
}

// TeamControlPoint is a capturable point.
type TeamControlPoint struct {
	base          `yaml:"-"`
	Origin        mgl32.Vec3 `yaml:"origin"`
	Angles        [3]float32 `yaml:"angles"`
	TargetName    string     `yaml:"targetname"`
	WarnSound     string     `yaml:"point_warn_sound"`
	TeamModel0    string     `yaml:"team_model_0"`
	TeamModel2    string     `yaml:"team_model_2"`
	TeamModel3    string     `yaml:"team_model_3"`
	TeamIcon0     string     `yaml:"team_icon_0"`
	TeamIcon2     string     `yaml:"team_icon_2"`
	TeamIcon3     string     `yaml:"team_icon_3"`
	DefaultOwner  uint8      `yaml:"point_default_owner"`
	StartDisabled bool       `yaml:"StartDisabled"`
}

// GameText shows a HUD message.
type GameText struct {
	base       `yaml:"-"`
	Origin     mgl32.Vec3 `yaml:"origin"`
	TargetName *string    `yaml:"targetname,omitempty"`
	Message    string     `yaml:"message"`
	Color      [3]uint8   `yaml:"color"`
	FadeIn     float32    `yaml:"fadein"`
	FadeOut    float32    `yaml:"fadeout"`
	X          float32    `yaml:"x"`
	Y          float32    `yaml:"y"`
	HoldTime   float32    `yaml:"holdtime"`
	FXTime     float32    `yaml:"fxtime"`
	Channel    uint8      `yaml:"channel"`
}

// GameRules holds team game settings (tf_gamerules).
type GameRules struct {
	base        `yaml:"-"`
	Origin      mgl32.Vec3 `yaml:"origin"`
	TargetName  *string    `yaml:"targetname,omitempty"`
	CTFOvertime bool       `yaml:"ctf_overtime"`
	HUDType     uint32     `yaml:"hud_type"`
}

// KothLogic configures king of the hill timers, in seconds.
type KothLogic struct {
	base        `yaml:"-"`
	Origin      mgl32.Vec3 `yaml:"origin"`
	UnlockPoint uint32     `yaml:"unlock_point"`
	TimerLength uint32     `yaml:"timer_length"`
}

func init() {
	register[TriggerMultiple]("trigger_multiple", KindTriggerMultiple, schema[TriggerMultiple]{
		req("model", text, func(e *TriggerMultiple) *string { return &e.Model }),
		req("origin", vector, func(e *TriggerMultiple) *mgl32.Vec3 { return &e.Origin }),
		opt("OnStartTouch", text, func(e *TriggerMultiple) **string { return &e.StartTouch }),
		opt("OnStartTouchAll", text, func(e *TriggerMultiple) **string { return &e.StartTouchAll }),
		opt("OnEndTouch", text, func(e *TriggerMultiple) **string { return &e.EndTouch }),
		opt("OnEndTouchAll", text, func(e *TriggerMultiple) **string { return &e.EndTouchAll }),
		opt("OnNotTouching", text, func(e *TriggerMultiple) **string { return &e.NotTouching }),
		opt("targetname", text, func(e *TriggerMultiple) **string { return &e.TargetName }),
		opt("filtername", text, func(e *TriggerMultiple) **string { return &e.Filter }),
		opt("wait", number[uint32](), func(e *TriggerMultiple) **uint32 { return &e.Wait }),
		def("StartDisabled", boolean, func(e *TriggerMultiple) *bool { return &e.StartDisabled }, false),
	})

	register[LogicRelay]("logic_relay", KindLogicRelay, schema[LogicRelay]{
		req("origin", vector, func(e *LogicRelay) *mgl32.Vec3 { return &e.Origin }),
		opt("targetname", text, func(e *LogicRelay) **string { return &e.TargetName }),
		opt("OnTrigger", text, func(e *LogicRelay) **string { return &e.OnTrigger }),
	})

	register[LogicAuto]("logic_auto", KindLogicAuto, schema[LogicAuto]{
		req("origin", vector, func(e *LogicAuto) *mgl32.Vec3 { return &e.Origin }),
		opt("OnMapSpawn", text, func(e *LogicAuto) **string { return &e.OnMapSpawn }),
	})

	register[FilterActivatorTeam]("filter_activator_tfteam", KindFilterActivatorTeam, schema[FilterActivatorTeam]{
		req("origin", vector, func(e *FilterActivatorTeam) *mgl32.Vec3 { return &e.Origin }),
		opt("targetname", text, func(e *FilterActivatorTeam) **string { return &e.TargetName }),
		opt("negated", text, func(e *FilterActivatorTeam) **string { return &e.Negated }),
		def("TeamNum", number[uint8](), func(e *FilterActivatorTeam) *uint8 { return &e.Team }, 0),
	})

	register[TeamControlPoint]("team_control_point", KindTeamControlPoint, schema[TeamControlPoint]{
		req("origin", vector, func(e *TeamControlPoint) *mgl32.Vec3 { return &e.Origin }),
		req("angles", array3[float32](), func(e *TeamControlPoint) *[3]float32 { return &e.Angles }),
		req("targetname", text, func(e *TeamControlPoint) *string { return &e.TargetName }),
		req("point_warn_sound", text, func(e *TeamControlPoint) *string { return &e.WarnSound }),
		req("team_model_0", text, func(e *TeamControlPoint) *string { return &e.TeamModel0 }),
		req("team_model_2", text, func(e *TeamControlPoint) *string { return &e.TeamModel2 }),
		req("team_model_3", text, func(e *TeamControlPoint) *string { return &e.TeamModel3 }),
		req("team_icon_0", text, func(e *TeamControlPoint) *string { return &e.TeamIcon0 }),
		req("team_icon_2", text, func(e *TeamControlPoint) *string { return &e.TeamIcon2 }),
		req("team_icon_3", text, func(e *TeamControlPoint) *string { return &e.TeamIcon3 }),
		req("point_default_owner", number[uint8](), func(e *TeamControlPoint) *uint8 { return &e.DefaultOwner }),
		def("StartDisabled", boolean, func(e *TeamControlPoint) *bool { return &e.StartDisabled }, false),
	})

	register[GameText]("game_text", KindGameText, schema[GameText]{
		req("origin", vector, func(e *GameText) *mgl32.Vec3 { return &e.Origin }),
		opt("targetname", text, func(e *GameText) **string { return &e.TargetName }),
		req("message", text, func(e *GameText) *string { return &e.Message }),
		req("color", array3[uint8](), func(e *GameText) *[3]uint8 { return &e.Color }),
		req("fadein", number[float32](), func(e *GameText) *float32 { return &e.FadeIn }),
		req("fadeout", number[float32](), func(e *GameText) *float32 { return &e.FadeOut }),
		req("x", number[float32](), func(e *GameText) *float32 { return &e.X }),
		req("y", number[float32](), func(e *GameText) *float32 { return &e.Y }),
		req("holdtime", number[float32](), func(e *GameText) *float32 { return &e.HoldTime }),
		req("fxtime", number[float32](), func(e *GameText) *float32 { return &e.FXTime }),
		req("channel", number[uint8](), func(e *GameText) *uint8 { return &e.Channel }),
	})

	register[GameRules]("tf_gamerules", KindGameRules, schema[GameRules]{
		req("origin", vector, func(e *GameRules) *mgl32.Vec3 { return &e.Origin }),
		opt("targetname", text, func(e *GameRules) **string { return &e.TargetName }),
		def("ctf_overtime", boolean, func(e *GameRules) *bool { return &e.CTFOvertime }, false),
		def("hud_type", number[uint32](), func(e *GameRules) *uint32 { return &e.HUDType }, 0),
	})

	register[KothLogic]("tf_logic_koth", KindKothLogic, schema[KothLogic]{
		req("origin", vector, func(e *KothLogic) *mgl32.Vec3 { return &e.Origin }),
		req("unlock_point", number[uint32](), func(e *KothLogic) *uint32 { return &e.UnlockPoint }),
		req("timer_length", number[uint32](), func(e *KothLogic) *uint32 { return &e.TimerLength }),
	})
}
