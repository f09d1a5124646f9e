package entity

import "fmt"

// Kind identifies a typed entity record. Classes sharing a record type,
// like the three ammo pack sizes, still have distinct kinds.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindSpotLight
	KindLight
	KindLightSpot
	KindPropDynamic
	KindPropDynamicOverride
	KindPropPhysics
	KindEnvSprite
	KindSpawn
	KindRegenerate
	KindRespawnRoom
	KindDoor
	KindWorldSpawn
	KindObserverPoint
	KindBrush
	KindAmmoPackSmall
	KindAmmoPackMedium
	KindAmmoPackFull
	KindHealthPackSmall
	KindHealthPackMedium
	KindHealthPackFull
	KindLightGlow
	KindTriggerMultiple
	KindLogicRelay
	KindFilterActivatorTeam
	KindLogicAuto
	KindDustMotes
	KindSkyCamera
	KindPathTrack
	KindSoundScapeProxy
	KindRespawnVisualizer
	KindParticleSystem
	KindTeamControlPoint
	KindAreaPortal
	KindGameText
	KindRopeKeyFrame
	KindRopeMove
	KindGameRules
	KindKothLogic
)

// String returns the classname of the kind.
func (k Kind) String() string {
	if k == KindUnknown {
		return "unknown"
	}
	if name, ok := classNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// RenderMode is the render mode of sprites and lights.
type RenderMode uint8

const (
	RenderNormal RenderMode = iota
	RenderColor
	RenderTexture
	RenderGlow
	RenderSolid
	RenderAdditive
	RenderUnknown
	RenderAdditiveFractional
	RenderAlphaAdd
	RenderWorldSpaceGlow
	RenderSkip
)

func (m RenderMode) valid() bool { return m <= RenderSkip }

// LightSpotStyle is the animated brightness pattern of a light_spot.
type LightSpotStyle uint8

const (
	// StyleNormal is a solid light, pattern "m".
	StyleNormal LightSpotStyle = iota
	StyleFlickerA
	StyleSlowStrongPulse
	StyleCandleA
	StyleFastStrobe
	StyleGentlePulse
	StyleFlickerB
	StyleCandleB
	StyleCandleC
	StyleSlowStrobe
	StyleFluorescentFlicker
	StyleSlowPulseNoBlack
	StyleUnderwaterLightMutation
)

func (s LightSpotStyle) valid() bool { return s <= StyleUnderwaterLightMutation }
